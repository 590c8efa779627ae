package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ijaz003/Employment-Exchange/internal/apperrors"
	"github.com/ijaz003/Employment-Exchange/internal/auth"
	"github.com/ijaz003/Employment-Exchange/internal/dtos"
	"github.com/ijaz003/Employment-Exchange/internal/models"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) Register(req *dtos.RegisterRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Password == "" || req.Role == "" {
		return nil, apperrors.New(apperrors.KindBadRequest, "Please fill the full form!")
	}
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, apperrors.New(apperrors.KindBadRequest, "Please provide a valid role!")
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}
	if count > 0 {
		return nil, apperrors.New(apperrors.KindConflict, "Email already registered!")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hash,
		Role:     role,
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}
	return user, nil
}

func (s *UserService) Login(req *dtos.LoginRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return nil, apperrors.New(apperrors.KindBadRequest, "Please provide email, password, and role!")
	}

	var user models.User
	err := s.DB.Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.KindUnauthorized, "Invalid email or password!")
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}

	if !auth.ComparePassword(user.Password, req.Password) {
		return nil, apperrors.New(apperrors.KindUnauthorized, "Invalid email or password!")
	}

	// Same credentials under the wrong role is a 404, not a 401: the account
	// exists, just not for the portal side the client asked for.
	if user.Role != models.Role(req.Role) {
		return nil, apperrors.New(apperrors.KindNotFound,
			fmt.Sprintf("User with provided email and role '%s' not found!", req.Role))
	}
	return &user, nil
}

// GetByID is what the auth middleware uses to turn a verified token back
// into an actor.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.KindUnauthorized, "User Not Authorized")
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error")
	}
	return &user, nil
}
