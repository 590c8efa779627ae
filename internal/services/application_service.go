package services

import (
	"context"
	"errors"
	"io"
	"strconv"

	"gorm.io/gorm"

	"github.com/ijaz003/Employment-Exchange/internal/apperrors"
	"github.com/ijaz003/Employment-Exchange/internal/dtos"
	"github.com/ijaz003/Employment-Exchange/internal/models"
	"github.com/ijaz003/Employment-Exchange/internal/storage"
)

type ApplicationService struct {
	DB      *gorm.DB
	Storage storage.ResumeStorage
}

func NewApplicationService(db *gorm.DB, st storage.ResumeStorage) *ApplicationService {
	return &ApplicationService{DB: db, Storage: st}
}

// Submit creates an application against an existing posting. resume is nil
// when no file was attached; that is rejected before anything is written.
// This is the single place the denormalized applicant/employer pairs are
// built, which is what keeps the employer side consistent with the posting's
// owner.
func (s *ApplicationService) Submit(ctx context.Context, actor *models.User, req *dtos.ApplicationRequest, resume io.Reader, filename string) (*models.Application, error) {
	if actor.Role == models.RoleEmployer {
		return nil, apperrors.New(apperrors.KindForbidden, "Employers are not allowed to apply for jobs.")
	}
	if resume == nil {
		return nil, apperrors.New(apperrors.KindBadRequest, "Resume file is required.")
	}
	if req.Name == "" || req.Email == "" || req.CoverLetter == "" ||
		req.Phone == "" || req.Address == "" || req.JobID == "" {
		return nil, apperrors.New(apperrors.KindBadRequest, "Please fill in all required fields.")
	}

	jobID, err := strconv.ParseUint(req.JobID, 10, 64)
	if err != nil {
		return nil, apperrors.New(apperrors.KindNotFound, "Job not found.")
	}
	var job models.Job
	err = s.DB.First(&job, uint(jobID)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.KindNotFound, "Job not found.")
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}

	ref, err := s.Storage.Upload(ctx, resume, filename)
	if err != nil {
		return nil, err
	}

	application := &models.Application{
		Name:        req.Name,
		Email:       req.Email,
		CoverLetter: req.CoverLetter,
		Phone:       req.Phone,
		Address:     req.Address,
		ApplicantID: models.OwnerRef{User: actor.ID, Role: models.RoleJobSeeker},
		EmployerID:  models.OwnerRef{User: job.PostedBy, Role: models.RoleEmployer},
		Resume:      ref,
	}
	if err := s.DB.Create(application).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}
	return application, nil
}

func (s *ApplicationService) EmployerGetAll(actor *models.User) ([]models.Application, error) {
	if actor.Role == models.RoleJobSeeker {
		return nil, apperrors.New(apperrors.KindForbidden, "Job Seekers are not allowed to access this resource.")
	}
	var applications []models.Application
	if err := s.DB.Where("employer_user = ?", actor.ID).Find(&applications).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}
	return applications, nil
}

func (s *ApplicationService) JobseekerGetAll(actor *models.User) ([]models.Application, error) {
	if actor.Role == models.RoleEmployer {
		return nil, apperrors.New(apperrors.KindForbidden, "Employers are not allowed to access this resource.")
	}
	var applications []models.Application
	if err := s.DB.Where("applicant_user = ?", actor.ID).Find(&applications).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}
	return applications, nil
}

// Delete removes an application. The gate is by role only, matching the
// documented contract.
func (s *ApplicationService) Delete(actor *models.User, id uint) error {
	if actor.Role == models.RoleEmployer {
		return apperrors.New(apperrors.KindForbidden, "Employers are not allowed to perform this action.")
	}

	var application models.Application
	err := s.DB.First(&application, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.New(apperrors.KindNotFound, "Application not found.")
	}
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}

	if err := s.DB.Delete(&application).Error; err != nil {
		return apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}
	return nil
}
