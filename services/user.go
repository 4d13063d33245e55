package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Aishwarya-deoraj/Sustainability-tracker/models"
	"github.com/Aishwarya-deoraj/Sustainability-tracker/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewUserService(db *gorm.DB, logger *zap.Logger) *UserService {
	return &UserService{db: db, logger: logger}
}

func (s *UserService) SignUp(input models.SignUpInput) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("user with this email %w", ErrConflict)
	}
	if err := s.db.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("username %w", ErrConflict)
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	email := input.Email
	user := models.User{
		Username:     input.Username,
		Email:        &email,
		PasswordHash: hash,
		LastLogin:    time.Now(),
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	s.logger.Info("user_signed_up",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return &user, nil
}

// Authenticate verifies email+password and stamps last_login. Unknown
// email and wrong password fail with the same error.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	user.LastLogin = time.Now()
	if err := s.db.Model(&user).Update("last_login", user.LastLogin).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// LegacyCreate keeps the old passwordless signup working: posting an
// existing username just returns that user.
func (s *UserService) LegacyCreate(input models.LegacyUserInput) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		return &existing, nil
	}

	user := models.User{
		Username:  input.Username,
		LastLogin: time.Now(),
	}
	if input.Email != "" {
		email := input.Email
		user.Email = &email
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	s.logger.Info("legacy_user_created",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return &user, nil
}
