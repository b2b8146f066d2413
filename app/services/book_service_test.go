package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bookstore/app/models"
)

func TestBookListSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookService(db)

	createBook(t, db, "The Great Gatsby", 19.99, 50)
	createBook(t, db, "1984", 24.99, 40)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matched, err := svc.List("gatsby")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "The Great Gatsby", matched[0].Name)

	none, err := svc.List("dune")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBookUpdateMergesFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookService(db)

	book := createBook(t, db, "Old Name", 10, 5)

	newName := "New Name"
	newPrice := 12.5
	updated, err := svc.Update(book.ID, UpdateBookInput{Name: &newName, Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, 12.5, updated.Price)
	// Untouched fields survive the merge.
	assert.Equal(t, "Test Author", updated.Author)
	assert.Equal(t, 5, updated.Stock)

	_, err = svc.Update(9999, UpdateBookInput{Name: &newName})
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBookSetStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookService(db)

	book := createBook(t, db, "Restocked", 10, 2)

	updated, err := svc.SetStock(book.ID, 75)
	require.NoError(t, err)
	assert.Equal(t, 75, updated.Stock)

	_, err = svc.SetStock(9999, 10)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBookDeleteRestrictedWhileReferenced(t *testing.T) {
	db := newTestDB(t)
	books := NewBookService(db)
	orders := NewOrderService(db)

	customer := createCustomer(t, db, "buyer@example.com")
	book := createBook(t, db, "Referenced", 10, 10)

	order, err := orders.Checkout(customer.ID, []CheckoutLine{{BookID: book.ID, Quantity: 1}})
	require.NoError(t, err)

	assert.ErrorIs(t, books.Delete(book.ID), ErrBookReferenced)

	// Once the line is gone the book can be removed.
	require.NoError(t, orders.RemoveItem(order.ID, book.ID))
	require.NoError(t, books.Delete(book.ID))

	_, err = books.Get(book.ID)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBookImageJoin(t *testing.T) {
	db := newTestDB(t)
	books := NewBookService(db)
	images := NewImageService(db)

	image, err := images.Create("https://covers.example.com/gatsby.jpg")
	require.NoError(t, err)

	created, err := books.Create(models.Book{
		Name: "Covered", Author: "A", Price: 10, Stock: 1, ImageID: &image.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, created.ImageURL)
	assert.Equal(t, "https://covers.example.com/gatsby.jpg", *created.ImageURL)

	// Deleting the image detaches it rather than blocking.
	require.NoError(t, images.Delete(image.ID))

	got, err := books.Get(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ImageURL)
}
