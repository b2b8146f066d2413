package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookstore/app/models"
	"github.com/shashiranjanraj/bookstore/app/repositories"
)

// ImageService owns cover image records. Deleting an image detaches it from
// any books (SET NULL), so the catalog listing changes too.
type ImageService struct {
	images *repositories.ImageRepository
}

func NewImageService(db *gorm.DB) *ImageService {
	return &ImageService{images: repositories.NewImageRepository(db)}
}

func (s *ImageService) List() ([]models.Image, error) {
	return s.images.All()
}

func (s *ImageService) Get(id uint) (models.Image, error) {
	image, err := s.images.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Image{}, ErrImageNotFound
		}
		return models.Image{}, err
	}
	return image, nil
}

func (s *ImageService) Create(url string) (models.Image, error) {
	image := models.Image{URL: url}
	if err := s.images.Create(&image); err != nil {
		return models.Image{}, err
	}
	return image, nil
}

func (s *ImageService) Update(id uint, url string) (models.Image, error) {
	image, err := s.Get(id)
	if err != nil {
		return models.Image{}, err
	}

	image.URL = url
	if err := s.images.Save(&image); err != nil {
		return models.Image{}, err
	}

	invalidateCatalog()
	return image, nil
}

func (s *ImageService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.images.Delete(id); err != nil {
		return err
	}
	invalidateCatalog()
	return nil
}
