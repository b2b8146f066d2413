package models

import "time"

// Order lifecycle. Status starts at NEW and may only move along
// NEW → PAID → SHIPPED, with CANCELLED reachable from NEW and PAID.
const (
	StatusNew       = "NEW"
	StatusPaid      = "PAID"
	StatusShipped   = "SHIPPED"
	StatusCancelled = "CANCELLED"
)

var statusTransitions = map[string][]string{
	StatusNew:       {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusShipped, StatusCancelled},
	StatusShipped:   {},
	StatusCancelled: {},
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to another.
// A no-op transition (same status) is always allowed.
func CanTransition(from, to string) bool {
	if from == to {
		return ValidStatus(to)
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order belongs to exactly one customer. Deleting an order cascades to its
// items at the storage layer; stock is deliberately not restored (the order
// is treated as fulfilled; item-level delete is the restoring path).
type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Status     string    `gorm:"size:50;not null;default:NEW" json:"status"`
	CreatedAt  time.Time `json:"created_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	// Joined customer identity, present only in the admin listing.
	CustomerEmail *string `gorm:"column:customer_email;->;-:migration" json:"customer_email,omitempty"`
	CustomerName  *string `gorm:"column:customer_name;->;-:migration" json:"customer_name,omitempty"`
}

// OrderItem is one (order, book) line: at most one per pair, so adding the
// same book again grows the existing line. UnitPrice is captured at creation
// time, decoupling historical order value from later price changes.
type OrderItem struct {
	OrderID   uint    `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	BookID    uint    `gorm:"primaryKey;autoIncrement:false" json:"book_id"`
	Quantity  int     `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`

	// Joined book fields for order detail views; read-only, not columns.
	BookName   *string `gorm:"column:book_name;->;-:migration" json:"name,omitempty"`
	BookAuthor *string `gorm:"column:book_author;->;-:migration" json:"author,omitempty"`
}
