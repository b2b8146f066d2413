package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookstore/app/models"
	"github.com/shashiranjanraj/bookstore/app/repositories"
)

// UpdateUserInput carries a partial account update: nil fields keep their
// current value. Email and password are immutable through this path.
type UpdateUserInput struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

// UserService is the admin view over accounts. Creation lives on AuthService
// so the hashing and profile rules exist in one place.
type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{users: repositories.NewUserRepository(db)}
}

// List returns every account, newest first.
func (s *UserService) List() ([]models.User, error) {
	return s.users.All()
}

// Get returns one account.
func (s *UserService) Get(id uint) (models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// Update applies a partial update to one account.
func (s *UserService) Update(id uint, in UpdateUserInput) (models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return models.User{}, err
	}

	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Role != nil {
		if !models.ValidRole(*in.Role) {
			return models.User{}, ErrInvalidRole
		}
		user.Role = *in.Role
	}

	if err := s.users.Save(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Delete removes an account; the profile and orders cascade at the storage
// layer.
func (s *UserService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.users.Delete(id)
}
