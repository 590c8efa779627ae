package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/ijaz003/Employment-Exchange/internal/apperrors"
	"github.com/ijaz003/Employment-Exchange/internal/models"
)

// ResumeStorage puts an uploaded resume somewhere retrievable and hands back
// the stored reference kept on the application.
type ResumeStorage interface {
	Upload(ctx context.Context, file io.Reader, filename string) (models.Resume, error)
}

type CloudinaryStorage struct {
	client *cloudinary.Cloudinary
}

func NewCloudinaryStorage(url string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStorage{client: cld}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader, filename string) (models.Resume, error) {
	res, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: "resumes/" + uuid.NewString(),
	})
	if err != nil {
		return models.Resume{}, apperrors.Wrap(err, apperrors.KindInternal, "Failed to upload resume.")
	}
	// Cloudinary reports some rejections with a 200 and no URL.
	if res.SecureURL == "" {
		return models.Resume{}, apperrors.New(apperrors.KindInternal, "Failed to upload resume.")
	}
	return models.Resume{PublicID: res.PublicID, URL: res.SecureURL}, nil
}
