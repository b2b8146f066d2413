package repositories

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookstore/app/models"
)

// itemColumns selects the order line plus the joined book name/author.
const itemColumns = "order_items.*, books.name AS book_name, books.author AS book_author"

// OrderRepository handles read-side database operations for orders.
// All stock-mutating writes live in services.OrderService, inside explicit
// transactions, so the reservation rules exist in exactly one place.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// FindByID returns one order without its items.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	return order, err
}

// ListAll returns every order, newest first.
func (r *OrderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("id DESC").Find(&orders).Error
	return orders, err
}

// ListByCustomer returns one customer's orders, newest first.
func (r *OrderRepository) ListByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("customer_id = ?", customerID).Order("id DESC").Find(&orders).Error
	return orders, err
}

// ListAllWithCustomer returns every order joined with the owning customer's
// identity, newest first (the manager/admin overview).
func (r *OrderRepository) ListAllWithCustomer() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Model(&models.Order{}).
		Select("orders.*, users.email AS customer_email, users.name AS customer_name").
		Joins("JOIN users ON users.id = orders.customer_id").
		Order("orders.id DESC").
		Find(&orders).Error
	return orders, err
}

// ItemsForOrder returns an order's lines with joined book name and author,
// ordered by book name.
func (r *OrderRepository) ItemsForOrder(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Model(&models.OrderItem{}).
		Select(itemColumns).
		Joins("JOIN books ON books.id = order_items.book_id").
		Where("order_items.order_id = ?", orderID).
		Order("books.name").
		Find(&items).Error
	return items, err
}

// FindItem returns one (order, book) line.
func (r *OrderRepository) FindItem(orderID, bookID uint) (models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.Where("order_id = ? AND book_id = ?", orderID, bookID).First(&item).Error
	return item, err
}

// Delete removes an order; its items cascade at the storage layer.
func (r *OrderRepository) Delete(id uint) error {
	return r.db.Delete(&models.Order{}, id).Error
}
