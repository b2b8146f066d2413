package seeders

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/bookstore/app/models"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:seeders%d?mode=memory&cache=shared&_foreign_keys=on", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Profile{}, &models.Image{},
		&models.Book{}, &models.Order{}, &models.OrderItem{},
	))
	return db
}

func TestSeedBooksOnlyWhenEmpty(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedBooks(db))

	var count int64
	require.NoError(t, db.Model(&models.Book{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)

	var orwell models.Book
	require.NoError(t, db.Where("name = ?", "1984").First(&orwell).Error)
	assert.Equal(t, 40, orwell.Stock)
	assert.Equal(t, 24.99, orwell.Price)

	// Re-running must not duplicate the catalog.
	require.NoError(t, SeedBooks(db))
	require.NoError(t, db.Model(&models.Book{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)

	// A non-empty table, even a manually curated one, is left alone.
	db2 := newTestDB(t)
	require.NoError(t, db2.Create(&models.Book{Name: "Curated", Author: "A", Price: 1, Stock: 1}).Error)
	require.NoError(t, SeedBooks(db2))
	require.NoError(t, db2.Model(&models.Book{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSeedAccountsWithoutCredentialsIsNoop(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedAccounts(db))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
