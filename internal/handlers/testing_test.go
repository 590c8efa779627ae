package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ijaz003/Employment-Exchange/internal/auth"
	"github.com/ijaz003/Employment-Exchange/internal/middlewares"
	"github.com/ijaz003/Employment-Exchange/internal/models"
	"github.com/ijaz003/Employment-Exchange/internal/services"
)

type fakeStorage struct {
	uploads int
	fail    bool
}

func (f *fakeStorage) Upload(ctx context.Context, file io.Reader, filename string) (models.Resume, error) {
	f.uploads++
	if f.fail {
		return models.Resume{}, io.ErrUnexpectedEOF
	}
	return models.Resume{PublicID: "resumes/fake", URL: "https://cdn.example.com/resumes/fake.pdf"}, nil
}

type testEnv struct {
	router  *gin.Engine
	db      *gorm.DB
	tokens  *auth.TokenService
	storage *fakeStorage
}

// newTestEnv wires the full route table against an on-disk sqlite DB and a
// fake resume store, mirroring cmd/api/main.go.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}))

	tokens := auth.NewTokenService("test-secret", 7)
	st := &fakeStorage{}

	userService := services.NewUserService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db, st)

	authn := middlewares.NewAuth(tokens, userService)
	userHandler := NewUserHandler(userService, tokens)
	jobHandler := NewJobHandler(jobService, services.NewLLMService(""))
	applicationHandler := NewApplicationHandler(applicationService)

	r := gin.New()
	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)

		user := api.Group("/user")
		{
			user.POST("/register", userHandler.Register)
			user.POST("/login", userHandler.Login)
			user.GET("/logout", authn.Authenticate(), userHandler.Logout)
			user.GET("/getuser", authn.Authenticate(), userHandler.GetUser)
		}

		job := api.Group("/job")
		{
			job.GET("/getall", jobHandler.GetAllJobs)
			job.POST("/post", authn.Authenticate(), jobHandler.PostJob)
			job.GET("/getmyjobs", authn.Authenticate(), jobHandler.GetMyJobs)
			job.PUT("/update/:id", authn.Authenticate(), jobHandler.UpdateJob)
			job.DELETE("/delete/:id", authn.Authenticate(), jobHandler.DeleteJob)
			job.POST("/extract", authn.Authenticate(), jobHandler.ExtractPosting)
			job.GET("/:id", jobHandler.GetSingleJob)
		}

		application := api.Group("/application")
		{
			application.POST("/post", authn.Authenticate(), applicationHandler.Post)
			application.GET("/employer/getall", authn.Authenticate(), applicationHandler.EmployerGetAll)
			application.GET("/jobseeker/getall", authn.Authenticate(), applicationHandler.JobseekerGetAll)
			application.DELETE("/delete/:id", authn.Authenticate(), applicationHandler.Delete)
		}
	}

	return &testEnv{router: r, db: db, tokens: tokens, storage: st}
}

func (e *testEnv) seedUser(t *testing.T, email string, role models.Role) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("password")
	require.NoError(t, err)
	user := &models.User{Name: "Test User", Email: email, Phone: "123", Password: hash, Role: role}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) cookieFor(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	token, err := e.tokens.Issue(user.ID)
	require.NoError(t, err)
	return &http.Cookie{Name: "token", Value: token}
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doMultipart(t *testing.T, path string, fields map[string]string, fileField, filename string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte("resume bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func floatPtr(v float64) *float64 { return &v }
