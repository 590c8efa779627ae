package services

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ijaz003/Employment-Exchange/internal/apperrors"
	"github.com/ijaz003/Employment-Exchange/internal/auth"
	"github.com/ijaz003/Employment-Exchange/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("password")
	require.NoError(t, err)
	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Phone:    "1234567890",
		Password: hash,
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

// fakeStorage counts uploads so tests can assert nothing was written before
// a validation failure.
type fakeStorage struct {
	uploads int
	fail    bool
}

func (f *fakeStorage) Upload(ctx context.Context, file io.Reader, filename string) (models.Resume, error) {
	f.uploads++
	if f.fail {
		return models.Resume{}, apperrors.New(apperrors.KindInternal, "Failed to upload resume.")
	}
	return models.Resume{
		PublicID: "resumes/fake",
		URL:      "https://cdn.example.com/resumes/fake.pdf",
	}, nil
}
