package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/bookstore/app/models"
)

// ProfileRepository handles database operations for Profile.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// FindByUser returns the profile for one user.
func (r *ProfileRepository) FindByUser(userID uint) (models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	return profile, err
}

// All returns every profile, newest user first.
func (r *ProfileRepository) All() ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Order("user_id DESC").Find(&profiles).Error
	return profiles, err
}

// Create inserts a profile row.
func (r *ProfileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// EnsureExists inserts an empty profile row if the user has none yet
// (insert-if-absent, so self-service updates never hit a missing row).
func (r *ProfileRepository) EnsureExists(userID uint) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Profile{UserID: userID}).Error
}

// SetPhone updates the phone for one user's profile.
func (r *ProfileRepository) SetPhone(userID uint, phone *string) error {
	return r.db.Model(&models.Profile{}).Where("user_id = ?", userID).
		Update("phone", phone).Error
}

// Delete removes one user's profile. Returns gorm.ErrRecordNotFound when no
// profile exists.
func (r *ProfileRepository) Delete(userID uint) error {
	res := r.db.Where("user_id = ?", userID).Delete(&models.Profile{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists reports whether a profile row exists for the user.
func (r *ProfileRepository) Exists(userID uint) (bool, error) {
	_, err := r.FindByUser(userID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
