package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookstore/app/models"
	"github.com/shashiranjanraj/bookstore/app/repositories"
	"github.com/shashiranjanraj/bookstore/pkg/basicauth"
	"github.com/shashiranjanraj/bookstore/pkg/middleware"
)

// AuthService owns account creation and the per-request credential check.
type AuthService struct {
	db    *gorm.DB
	users *repositories.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		db:    db,
		users: repositories.NewUserRepository(db),
	}
}

// CheckCredentials resolves an email/password pair to a role-tagged identity.
// Used by the BasicAuth middleware on every protected request.
func (s *AuthService) CheckCredentials(email, password string) (*middleware.Identity, error) {
	user, err := s.users.FindByEmail(normalizeEmail(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !basicauth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return &middleware.Identity{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
		Name:  user.Name,
	}, nil
}

// Register creates a CUSTOMER account with an empty profile row.
// Self-service registration never accepts a role from the caller.
func (s *AuthService) Register(name, email, password string) (models.User, error) {
	return s.createUser(name, email, password, models.RoleCustomer)
}

// CreateUser is the admin path: role is caller-supplied but must be one of
// the three known roles.
func (s *AuthService) CreateUser(name, email, password, role string) (models.User, error) {
	if !models.ValidRole(role) {
		return models.User{}, ErrInvalidRole
	}
	return s.createUser(name, email, password, role)
}

func (s *AuthService) createUser(name, email, password, role string) (models.User, error) {
	email = normalizeEmail(email)

	exists, err := s.users.EmailExists(email)
	if err != nil {
		return models.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	hash, err := basicauth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	// User and its one-to-one profile land together or not at all.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Profile{UserID: user.ID}).Error
	})
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
