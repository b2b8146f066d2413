package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookstore/app/models"
	"github.com/shashiranjanraj/bookstore/app/repositories"
	"github.com/shashiranjanraj/bookstore/pkg/cache"
)

// UpdateBookInput carries a partial update: nil fields keep their current
// value.
type UpdateBookInput struct {
	Name        *string  `json:"name"`
	Author      *string  `json:"author"`
	Description *string  `json:"description"`
	Language    *string  `json:"language"`
	Year        *int     `json:"year"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	ImageID     *uint    `json:"image_id"`
}

// BookService owns the catalog. The unfiltered listing is cached briefly;
// everything that can change a book row drops the cache.
type BookService struct {
	books *repositories.BookRepository
}

func NewBookService(db *gorm.DB) *BookService {
	return &BookService{books: repositories.NewBookRepository(db)}
}

// List returns the catalog, optionally filtered by a case-insensitive
// substring match on name or author. Only the unfiltered listing goes
// through the cache.
func (s *BookService) List(search string) ([]models.Book, error) {
	if search != "" {
		return s.books.All(search)
	}

	var cached []models.Book
	if cache.Get(catalogCacheKey, &cached) {
		return cached, nil
	}

	books, err := s.books.All("")
	if err != nil {
		return nil, err
	}

	_ = cache.Set(catalogCacheKey, books, catalogCacheTTL)
	return books, nil
}

// Get returns one book with its image URL.
func (s *BookService) Get(id uint) (models.Book, error) {
	book, err := s.books.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Book{}, ErrBookNotFound
		}
		return models.Book{}, err
	}
	return book, nil
}

// Create adds a book to the catalog.
func (s *BookService) Create(book models.Book) (models.Book, error) {
	if err := s.books.Create(&book); err != nil {
		return models.Book{}, err
	}
	invalidateCatalog()
	return s.Get(book.ID)
}

// Update applies a partial update to one book.
func (s *BookService) Update(id uint, in UpdateBookInput) (models.Book, error) {
	book, err := s.Get(id)
	if err != nil {
		return models.Book{}, err
	}

	if in.Name != nil {
		book.Name = *in.Name
	}
	if in.Author != nil {
		book.Author = *in.Author
	}
	if in.Description != nil {
		book.Description = *in.Description
	}
	if in.Language != nil {
		book.Language = in.Language
	}
	if in.Year != nil {
		book.Year = in.Year
	}
	if in.Price != nil {
		book.Price = *in.Price
	}
	if in.Stock != nil {
		book.Stock = *in.Stock
	}
	if in.ImageID != nil {
		book.ImageID = in.ImageID
	}

	if err := s.books.Save(&book); err != nil {
		return models.Book{}, err
	}

	invalidateCatalog()
	return s.Get(id)
}

// SetStock sets the absolute stock level (the restock endpoint).
func (s *BookService) SetStock(id uint, stock int) (models.Book, error) {
	if err := s.books.SetStock(id, stock); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Book{}, ErrBookNotFound
		}
		return models.Book{}, err
	}
	invalidateCatalog()
	return s.Get(id)
}

// Delete removes a book unless any order still references it.
func (s *BookService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	referenced, err := s.books.ReferencedByOrders(id)
	if err != nil {
		return err
	}
	if referenced {
		return ErrBookReferenced
	}

	if err := s.books.Delete(id); err != nil {
		return err
	}
	invalidateCatalog()
	return nil
}
