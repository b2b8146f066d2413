package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/bookstore/app/models"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// Each call gets its own named memory database so tests stay isolated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:services%d?mode=memory&cache=shared&_foreign_keys=on", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Image{},
		&models.Book{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func createBook(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Book {
	t.Helper()

	book := models.Book{Name: name, Author: "Test Author", Price: price, Stock: stock}
	require.NoError(t, db.Create(&book).Error)
	return book
}

func createCustomer(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user, err := NewAuthService(db).Register("Test Customer", email, "secret123")
	require.NoError(t, err)
	return user
}

func bookStock(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()

	var book models.Book
	require.NoError(t, db.First(&book, id).Error)
	return book.Stock
}
