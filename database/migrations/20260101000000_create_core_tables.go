package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookstore/app/models"
	"github.com/shashiranjanraj/bookstore/pkg/migration"
)

func init() {
	migration.Register("20260101000000_create_core_tables", createCoreTables{})
}

// createCoreTables builds the whole schema: users, profiles, images, books,
// orders, order_items, with FK constraints enforced at the storage layer.
type createCoreTables struct{}

func (createCoreTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Image{},
		&models.Book{},
		&models.Order{},
		&models.OrderItem{},
	)
}

func (createCoreTables) Down(db *gorm.DB) error {
	// Reverse dependency order so FK constraints never block the drop.
	return db.Migrator().DropTable(
		&models.OrderItem{},
		&models.Order{},
		&models.Book{},
		&models.Image{},
		&models.Profile{},
		&models.User{},
	)
}
