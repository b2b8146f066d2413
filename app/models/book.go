package models

// Image is a URL referenced by zero or more books. Deleting an image detaches
// referencing books (SET NULL) rather than blocking.
type Image struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	URL string `gorm:"not null" json:"url"`
}

// Book is a catalog entry. Stock is the one invariant-bearing field: it never
// goes negative and, at every quiescent point, equals initial stock minus the
// summed quantities of all live order items for the book.
type Book struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null;index" json:"name"`
	Author      string  `gorm:"size:255;not null;index" json:"author"`
	Description string  `gorm:"type:text;default:''" json:"description"`
	Language    *string `gorm:"size:50" json:"language"`
	Year        *int    `json:"year"`
	Price       float64 `gorm:"not null;check:price >= 0" json:"price"`
	Stock       int     `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	ImageID     *uint   `json:"image_id"`

	Image *Image      `gorm:"foreignKey:ImageID;constraint:OnDelete:SET NULL" json:"-"`
	Items []OrderItem `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT" json:"-"`

	// ImageURL is filled by the LEFT JOIN onto images; read-only, not a column.
	ImageURL *string `gorm:"column:image_url;->;-:migration" json:"image_url"`
}
