package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookstore/app/models"
	"github.com/shashiranjanraj/bookstore/app/repositories"
	"github.com/shashiranjanraj/bookstore/pkg/metrics"
)

// CheckoutLine is one requested (book, quantity) pair in a checkout.
type CheckoutLine struct {
	BookID   uint `json:"book_id" validate:"required"`
	Quantity int  `json:"quantity" validate:"required,gt=0"`
}

// OrderService owns every write that touches order_items or books.stock.
// Each mutation runs inside one transaction, and stock is only ever taken
// with a conditional decrement, so two concurrent buyers can never drive a
// stock count negative.
type OrderService struct {
	db     *gorm.DB
	orders *repositories.OrderRepository
	books  *repositories.BookRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		db:     db,
		orders: repositories.NewOrderRepository(db),
		books:  repositories.NewBookRepository(db),
	}
}

// reserveStock atomically takes qty units from a book's stock. The guard in
// the WHERE clause is the whole concurrency story: the row only changes when
// enough stock is present, and zero rows affected means it was not.
func reserveStock(tx *gorm.DB, bookID uint, qty int) error {
	res := tx.Model(&models.Book{}).
		Where("id = ? AND stock >= ?", bookID, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		metrics.StockConflicts.Inc()
		return fmt.Errorf("%w for book %d", ErrInsufficientStock, bookID)
	}
	return nil
}

// releaseStock returns qty units to a book's stock.
func releaseStock(tx *gorm.DB, bookID uint, qty int) error {
	return tx.Model(&models.Book{}).
		Where("id = ?", bookID).
		UpdateColumn("stock", gorm.Expr("stock + ?", qty)).Error
}

// Checkout creates an order for the customer, reserving stock for every line.
// Any missing book or short stock rolls the whole order back.
func (s *OrderService) Checkout(customerID uint, lines []CheckoutLine) (models.Order, error) {
	lines = mergeLines(lines)

	order := models.Order{CustomerID: customerID, Status: models.StatusNew}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for _, line := range lines {
			var book models.Book
			if err := tx.First(&book, line.BookID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %d", ErrBookNotFound, line.BookID)
				}
				return err
			}

			item := models.OrderItem{
				OrderID:   order.ID,
				BookID:    book.ID,
				Quantity:  line.Quantity,
				UnitPrice: book.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("create order item: %w", err)
			}

			if err := reserveStock(tx, book.ID, line.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	metrics.OrdersCreated.Inc()
	invalidateCatalog()
	return order, nil
}

// mergeLines folds duplicate book IDs into a single line so the composite
// (order_id, book_id) key never conflicts within one checkout.
func mergeLines(lines []CheckoutLine) []CheckoutLine {
	index := make(map[uint]int, len(lines))
	merged := make([]CheckoutLine, 0, len(lines))
	for _, line := range lines {
		if i, ok := index[line.BookID]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[line.BookID] = len(merged)
		merged = append(merged, line)
	}
	return merged
}

// AddItem puts qty units of a book on an existing order. If the order already
// carries the book the line grows; either way qty units are reserved. Like
// reserveStock, the grow is a single relative UPDATE, so two concurrent adds
// can never lose each other's increment under read-committed isolation.
func (s *OrderService) AddItem(orderID, bookID uint, qty int) (models.OrderItem, error) {
	var item models.OrderItem

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Order{}, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		var book models.Book
		if err := tx.First(&book, bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}

		res := tx.Model(&models.OrderItem{}).
			Where("order_id = ? AND book_id = ?", orderID, bookID).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", qty))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			item = models.OrderItem{
				OrderID:   orderID,
				BookID:    bookID,
				Quantity:  qty,
				UnitPrice: book.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		} else if err := tx.Where("order_id = ? AND book_id = ?", orderID, bookID).
			First(&item).Error; err != nil {
			return err
		}

		return reserveStock(tx, bookID, qty)
	})
	if err != nil {
		return models.OrderItem{}, err
	}

	invalidateCatalog()
	return item, nil
}

// UpdateItemQuantity sets the absolute quantity on one order line, reserving
// or releasing only the difference. The write is guarded on the quantity the
// delta was computed from; a concurrent change to the line rolls the whole
// transaction back so stock and quantity cannot drift apart.
func (s *OrderService) UpdateItemQuantity(orderID, bookID uint, qty int) (models.OrderItem, error) {
	var item models.OrderItem

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ? AND book_id = ?", orderID, bookID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		delta := qty - item.Quantity
		if delta > 0 {
			if err := reserveStock(tx, bookID, delta); err != nil {
				return err
			}
		} else if delta < 0 {
			if err := releaseStock(tx, bookID, -delta); err != nil {
				return err
			}
		}

		res := tx.Model(&models.OrderItem{}).
			Where("order_id = ? AND book_id = ? AND quantity = ?", orderID, bookID, item.Quantity).
			Update("quantity", qty)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrItemConflict
		}

		item.Quantity = qty
		return nil
	})
	if err != nil {
		return models.OrderItem{}, err
	}

	invalidateCatalog()
	return item, nil
}

// RemoveItem deletes one order line and returns its units to stock.
func (s *OrderService) RemoveItem(orderID, bookID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item models.OrderItem
		if err := tx.Where("order_id = ? AND book_id = ?", orderID, bookID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		if err := tx.Where("order_id = ? AND book_id = ?", orderID, bookID).
			Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}

		return releaseStock(tx, bookID, item.Quantity)
	})
	if err != nil {
		return err
	}

	invalidateCatalog()
	return nil
}

// UpdateStatus moves an order along the lifecycle. Unknown statuses and
// illegal transitions are rejected before anything is written.
func (s *OrderService) UpdateStatus(orderID uint, status string) (models.Order, error) {
	if !models.ValidStatus(status) {
		return models.Order{}, ErrInvalidStatus
	}

	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}

	if !models.CanTransition(order.Status, status) {
		return models.Order{}, fmt.Errorf("%w: %s → %s", ErrStatusTransition, order.Status, status)
	}

	order.Status = status
	if err := s.db.Model(&models.Order{}).Where("id = ?", orderID).
		Update("status", status).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// Delete removes an order and its lines. Stock is not restored: a deleted
// order is archived as fulfilled, not undone. Use RemoveItem to give units
// back.
func (s *OrderService) Delete(orderID uint) error {
	if _, err := s.orders.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return s.orders.Delete(orderID)
}

// Get returns one order with its item lines.
func (s *OrderService) Get(orderID uint) (models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}

	items, err := s.orders.ItemsForOrder(orderID)
	if err != nil {
		return models.Order{}, err
	}
	order.Items = items
	return order, nil
}

// Items returns the lines of one order with joined book details.
func (s *OrderService) Items(orderID uint) ([]models.OrderItem, error) {
	if _, err := s.orders.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.orders.ItemsForOrder(orderID)
}

// Item returns one (order, book) line.
func (s *OrderService) Item(orderID, bookID uint) (models.OrderItem, error) {
	item, err := s.orders.FindItem(orderID, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.OrderItem{}, ErrItemNotFound
		}
		return models.OrderItem{}, err
	}
	return item, nil
}

// ListForCustomer returns one customer's orders with their item lines.
func (s *OrderService) ListForCustomer(customerID uint) ([]models.Order, error) {
	orders, err := s.orders.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(orders)
}

// ListAll returns every order in the store.
func (s *OrderService) ListAll() ([]models.Order, error) {
	return s.orders.ListAll()
}

// ListAllDetailed is the staff overview: every order with customer identity
// and item lines attached.
func (s *OrderService) ListAllDetailed() ([]models.Order, error) {
	orders, err := s.orders.ListAllWithCustomer()
	if err != nil {
		return nil, err
	}
	return s.attachItems(orders)
}

func (s *OrderService) attachItems(orders []models.Order) ([]models.Order, error) {
	for i := range orders {
		items, err := s.orders.ItemsForOrder(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}
