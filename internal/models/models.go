package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the account type. Every protected operation branches on it, so it
// stays a closed enum instead of a free-form string.
type Role string

const (
	RoleJobSeeker Role = "Job Seeker"
	RoleEmployer  Role = "Employer"
)

func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleEmployer
}

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Phone string `gorm:"not null" json:"phone"`
	// bcrypt hash, never serialized
	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"not null" json:"role"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `json:"category"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Location    string `json:"location"`

	// Exactly one of FixedSalary / (SalaryFrom + SalaryTo) is set. Pointers
	// because zero is a legal salary and absence has to be distinguishable.
	FixedSalary *float64 `json:"fixedSalary,omitempty"`
	SalaryFrom  *float64 `json:"salaryFrom,omitempty"`
	SalaryTo    *float64 `json:"salaryTo,omitempty"`

	Expired  bool `gorm:"default:false" json:"expired"`
	PostedBy uint `gorm:"index;not null" json:"postedBy"`
}

// OwnerRef is the denormalized id+role pair an Application keeps for both
// sides, so per-role listings never join back to users or jobs.
type OwnerRef struct {
	User uint `json:"user"`
	Role Role `json:"role"`
}

// Resume is the externally stored file reference returned by the upload
// service.
type Resume struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

type Application struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"not null" json:"email"`
	CoverLetter string `gorm:"type:text" json:"coverLetter"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`

	ApplicantID OwnerRef `gorm:"embedded;embeddedPrefix:applicant_" json:"applicantID"`
	EmployerID  OwnerRef `gorm:"embedded;embeddedPrefix:employer_" json:"employerID"`
	Resume      Resume   `gorm:"embedded;embeddedPrefix:resume_" json:"resume"`
}
