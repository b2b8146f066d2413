package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookstore/app/models"
	"github.com/shashiranjanraj/bookstore/app/repositories"
)

// ProfileService owns the one-to-one profile attached to every account.
type ProfileService struct {
	profiles *repositories.ProfileRepository
	users    *repositories.UserRepository
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		profiles: repositories.NewProfileRepository(db),
		users:    repositories.NewUserRepository(db),
	}
}

// GetOwn returns the caller's profile. A missing row reads as an empty
// profile rather than an error: the row is created lazily on first update.
func (s *ProfileService) GetOwn(userID uint) (models.Profile, error) {
	profile, err := s.profiles.FindByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Profile{UserID: userID}, nil
		}
		return models.Profile{}, err
	}
	return profile, nil
}

// UpdateOwn sets the caller's phone, creating the profile row if needed.
func (s *ProfileService) UpdateOwn(userID uint, phone *string) (models.Profile, error) {
	if err := s.profiles.EnsureExists(userID); err != nil {
		return models.Profile{}, err
	}
	if err := s.profiles.SetPhone(userID, phone); err != nil {
		return models.Profile{}, err
	}
	return s.profiles.FindByUser(userID)
}

// List returns every profile (the admin view).
func (s *ProfileService) List() ([]models.Profile, error) {
	return s.profiles.All()
}

// Get returns one user's profile; unlike GetOwn, a missing row is an error.
func (s *ProfileService) Get(userID uint) (models.Profile, error) {
	profile, err := s.profiles.FindByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Profile{}, ErrProfileNotFound
		}
		return models.Profile{}, err
	}
	return profile, nil
}

// Create adds a profile for an existing user.
func (s *ProfileService) Create(userID uint, phone *string) (models.Profile, error) {
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Profile{}, ErrUserNotFound
		}
		return models.Profile{}, err
	}

	profile := models.Profile{UserID: userID, Phone: phone}
	if err := s.profiles.Create(&profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// Update sets the phone on one user's existing profile.
func (s *ProfileService) Update(userID uint, phone *string) (models.Profile, error) {
	if _, err := s.Get(userID); err != nil {
		return models.Profile{}, err
	}
	if err := s.profiles.SetPhone(userID, phone); err != nil {
		return models.Profile{}, err
	}
	return s.profiles.FindByUser(userID)
}

// Delete removes one user's profile.
func (s *ProfileService) Delete(userID uint) error {
	err := s.profiles.Delete(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProfileNotFound
	}
	return err
}
