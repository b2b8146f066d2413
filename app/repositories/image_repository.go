package repositories

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookstore/app/models"
)

// ImageRepository handles database operations for Image.
type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// All returns every image, newest first.
func (r *ImageRepository) All() ([]models.Image, error) {
	var images []models.Image
	err := r.db.Order("id DESC").Find(&images).Error
	return images, err
}

// FindByID returns one image.
func (r *ImageRepository) FindByID(id uint) (models.Image, error) {
	var image models.Image
	err := r.db.First(&image, id).Error
	return image, err
}

// Create persists a new image.
func (r *ImageRepository) Create(image *models.Image) error {
	return r.db.Create(image).Error
}

// Save persists changes to an existing image.
func (r *ImageRepository) Save(image *models.Image) error {
	return r.db.Save(image).Error
}

// Delete removes an image; referencing books are detached (SET NULL) at the
// storage layer, so deletion is always safe.
func (r *ImageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Image{}, id).Error
}
