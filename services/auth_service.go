package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"travel-backend/models"
	"travel-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB        *gorm.DB
	JWTSecret string
	TokenTTL  time.Duration
	HashCost  int
	Now       func() time.Time
}

func NewAuthService(db *gorm.DB, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		DB:        db,
		JWTSecret: jwtSecret,
		TokenTTL:  tokenTTL,
		HashCost:  bcrypt.DefaultCost,
		Now:       time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) respond(user *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, s.JWTSecret, s.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &models.AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
		Token:    token,
	}, nil
}

// Signup registers an account. The very first account is made admin; the
// count and insert share a transaction so two first signups cannot both be
// promoted.
func (s *AuthService) Signup(req models.SignupRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	username := strings.TrimSpace(req.Username)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.HashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}
		if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrUsernameTaken
		}

		var total int64
		if err := tx.Model(&models.User{}).Count(&total).Error; err != nil {
			return err
		}
		user.IsAdmin = total == 0

		return tx.Create(&user).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = s.duplicateAccountError(email)
	}
	if err != nil {
		return nil, err
	}

	return s.respond(&user)
}

// duplicateAccountError names the unique column a concurrent signup took.
// The aborted transaction cannot be queried, so the check runs on s.DB.
func (s *AuthService) duplicateAccountError(email string) error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}

// Login checks the password and records the login as account activity.
func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	var user models.User
	if err := s.DB.Where("email = ?", normalizeEmail(req.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.Now()
	if err := s.DB.Model(&user).Update("updated_at", now).Error; err != nil {
		return nil, fmt.Errorf("touch user %d: %w", user.ID, err)
	}
	user.UpdatedAt = now

	return s.respond(&user)
}

// ResetPassword replaces the password of the account registered under email.
func (s *AuthService) ResetPassword(req models.ResetPasswordRequest) error {
	var user models.User
	if err := s.DB.Where("email = ?", normalizeEmail(req.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmailNotFound
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.HashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.DB.Model(&user).Update("password", string(hash)).Error
}

func (s *AuthService) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
