package services

import (
	"errors"

	"gorm.io/gorm"

	"gateapp-http-service/internal/domain/models"
	"gateapp-http-service/pkg/logger"
	"gateapp-http-service/pkg/utils"
)

// Sentinel errors for account operations
var (
	ErrUserNotFound      = errors.New("account not found")
	ErrUserAlreadyExists = errors.New("account already exists")
	ErrPasswordIncorrect = errors.New("incorrect password")
)

// InterfaceUserService manages dashboard accounts
type InterfaceUserService interface {
	Login(username, password string) (*models.User, error)
	CreateUser(user *models.User, password string) error
	GetUserByID(id uint) (*models.User, error)
	ListUsers() ([]models.User, error)
	EnsureDefaultAdmin(password string) error
}

// UserService implements InterfaceUserService on the database
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService
func NewUserService(db *gorm.DB) InterfaceUserService {
	return &UserService{db: db}
}

// Login verifies credentials and returns the account
func (s *UserService) Login(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrPasswordIncorrect
	}
	return &user, nil
}

// CreateUser creates an account with a hashed password
func (s *UserService) CreateUser(user *models.User, password string) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUserAlreadyExists
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hashed

	return s.db.Create(user).Error
}

// GetUserByID fetches an account by id
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all accounts
func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// EnsureDefaultAdmin seeds the admin account on first boot so a fresh
// deployment is reachable
func (s *UserService) EnsureDefaultAdmin(password string) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := &models.User{
		Username: "admin",
		Name:     "Administrator",
		Email:    "admin@gateapp.local",
		Role:     "admin",
		Status:   "active",
	}
	if err := s.CreateUser(admin, password); err != nil {
		return err
	}
	logger.Info("seeded default admin account")
	return nil
}
