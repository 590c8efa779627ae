package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ijaz003/Employment-Exchange/internal/apperrors"
	"github.com/ijaz003/Employment-Exchange/internal/dtos"
	"github.com/ijaz003/Employment-Exchange/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// GetAllOpen returns every posting that has not expired. Public, no actor.
func (s *JobService) GetAllOpen() ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.Where("expired = ?", false).Find(&jobs).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}
	return jobs, nil
}

func (s *JobService) Post(actor *models.User, req *dtos.JobPostRequest) (*models.Job, error) {
	if actor.Role == models.RoleJobSeeker {
		return nil, apperrors.New(apperrors.KindForbidden, "Job Seekers are not allowed to post jobs.")
	}
	if req.Title == "" || req.Description == "" || req.Category == "" ||
		req.Country == "" || req.City == "" || req.Location == "" {
		return nil, apperrors.New(apperrors.KindBadRequest, "Please provide full job details.")
	}
	if err := validateSalary(req.FixedSalary, req.SalaryFrom, req.SalaryTo); err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Country:     req.Country,
		City:        req.City,
		Location:    req.Location,
		FixedSalary: req.FixedSalary,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		PostedBy:    actor.ID,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}
	return job, nil
}

func (s *JobService) GetMyJobs(actor *models.User) ([]models.Job, error) {
	if actor.Role == models.RoleJobSeeker {
		return nil, apperrors.New(apperrors.KindForbidden, "Job Seekers cannot access this resource.")
	}
	var jobs []models.Job
	if err := s.DB.Where("posted_by = ?", actor.ID).Find(&jobs).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}
	return jobs, nil
}

// Update applies a partial update and re-validates the merged record. The
// role gate is by role only; any employer may edit any posting.
func (s *JobService) Update(actor *models.User, id uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	if actor.Role == models.RoleJobSeeker {
		return nil, apperrors.New(apperrors.KindForbidden, "Job Seekers cannot update jobs.")
	}

	var job models.Job
	err := s.DB.First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.KindNotFound, "Job not found.")
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.Country != nil {
		job.Country = *req.Country
	}
	if req.City != nil {
		job.City = *req.City
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	// Salary fields travel as a group: touching any of them replaces all
	// three, so a posting cannot end up carrying both a fixed and a ranged
	// salary from two different requests.
	if req.FixedSalary != nil || req.SalaryFrom != nil || req.SalaryTo != nil {
		job.FixedSalary = req.FixedSalary
		job.SalaryFrom = req.SalaryFrom
		job.SalaryTo = req.SalaryTo
	}
	if req.Expired != nil {
		job.Expired = *req.Expired
	}

	if job.Title == "" || job.Description == "" || job.Category == "" ||
		job.Country == "" || job.City == "" || job.Location == "" {
		return nil, apperrors.New(apperrors.KindBadRequest, "Please provide full job details.")
	}
	if err := validateSalary(job.FixedSalary, job.SalaryFrom, job.SalaryTo); err != nil {
		return nil, err
	}

	if err := s.DB.Save(&job).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}
	return &job, nil
}

func (s *JobService) Delete(actor *models.User, id uint) error {
	if actor.Role == models.RoleJobSeeker {
		return apperrors.New(apperrors.KindForbidden, "Job Seekers cannot delete jobs.")
	}

	var job models.Job
	err := s.DB.First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.New(apperrors.KindNotFound, "Job not found.")
	}
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}

	// No cascade: applications keep their denormalized reference and stay
	// listed for both sides after the posting disappears.
	if err := s.DB.Delete(&job).Error; err != nil {
		return apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}
	return nil
}

// GetByID returns a single posting regardless of expiry or caller.
func (s *JobService) GetByID(id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.KindNotFound, "Job not found.")
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}
	return &job, nil
}

// validateSalary enforces the posting invariant: exactly one of a fixed
// salary or a complete from/to range.
func validateSalary(fixed, from, to *float64) error {
	hasFixed := fixed != nil
	hasFrom := from != nil
	hasTo := to != nil

	if !hasFixed && !(hasFrom && hasTo) {
		return apperrors.New(apperrors.KindBadRequest, "Please provide either fixed salary or ranged salary.")
	}
	if hasFixed && (hasFrom || hasTo) {
		return apperrors.New(apperrors.KindBadRequest, "Cannot provide both fixed and ranged salary.")
	}
	return nil
}
