package repositories

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookstore/app/models"
)

// bookColumns selects the book row plus the joined image URL.
const bookColumns = "books.*, images.url AS image_url"

// BookRepository handles database operations for Book.
type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) withImage() *gorm.DB {
	return r.db.Model(&models.Book{}).
		Select(bookColumns).
		Joins("LEFT JOIN images ON images.id = books.image_id")
}

// All returns every book, newest first, optionally filtered by a
// case-insensitive substring match on name or author.
func (r *BookRepository) All(search string) ([]models.Book, error) {
	q := r.withImage()
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("LOWER(books.name) LIKE LOWER(?) OR LOWER(books.author) LIKE LOWER(?)", pattern, pattern)
	}

	var books []models.Book
	err := q.Order("books.id DESC").Find(&books).Error
	return books, err
}

// FindByID returns one book with its joined image URL.
func (r *BookRepository) FindByID(id uint) (models.Book, error) {
	var book models.Book
	err := r.withImage().Where("books.id = ?", id).First(&book).Error
	return book, err
}

// Create persists a new book.
func (r *BookRepository) Create(book *models.Book) error {
	return r.db.Create(book).Error
}

// Save persists changes to an existing book.
func (r *BookRepository) Save(book *models.Book) error {
	return r.db.Save(book).Error
}

// SetStock sets the absolute stock value. Returns gorm.ErrRecordNotFound
// when the book does not exist.
func (r *BookRepository) SetStock(id uint, stock int) error {
	res := r.db.Model(&models.Book{}).Where("id = ?", id).Update("stock", stock)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReferencedByOrders reports whether any order item still references the book.
func (r *BookRepository) ReferencedByOrders(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.OrderItem{}).Where("book_id = ?", id).Count(&count).Error
	return count > 0, err
}

// Delete removes a book. The order_items FK restricts deletion while the
// book is still referenced; callers should check ReferencedByOrders first
// for a clean error.
func (r *BookRepository) Delete(id uint) error {
	return r.db.Delete(&models.Book{}, id).Error
}

// Count returns the number of books (used by the catalog seeder).
func (r *BookRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Book{}).Count(&count).Error
	return count, err
}
