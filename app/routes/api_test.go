package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/bookstore/app/models"
	"github.com/shashiranjanraj/bookstore/app/services"
	"github.com/shashiranjanraj/bookstore/pkg/router"
)

var testDBSeq atomic.Int64

func newTestRouter(t *testing.T) (*router.Router, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:routes%d?mode=memory&cache=shared&_foreign_keys=on", testDBSeq.Add(1))
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

	return Register(db), db
}

func createAccount(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()

	auth := services.NewAuthService(db)
	user, err := auth.CreateUser("Test "+role, email, "secret123", role)
	require.NoError(t, err)
	return user
}

func createBook(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Book {
	t.Helper()

	book := models.Book{Name: name, Author: "Test Author", Price: price, Stock: stock}
	require.NoError(t, db.Create(&book).Error)
	return book
}

// doJSON performs a request against the router. Empty email means no
// Authorization header.
func doJSON(r *router.Router, method, path, email string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		req.SetBasicAuth(email, "secret123")
	}

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)
	return w
}

func TestPublicCatalog(t *testing.T) {
	r, db := newTestRouter(t)
	createBook(t, db, "The Great Gatsby", 19.99, 50)

	w := doJSON(r, http.MethodGet, "/api/books", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var books []models.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
	require.Len(t, books, 1)
	assert.Equal(t, "The Great Gatsby", books[0].Name)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/books/%d", books[0].ID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/books/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnauthenticatedRequestsAreChallenged(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, `Basic realm="bookstore"`, w.Header().Get("WWW-Authenticate"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestRegisterAndDuplicateEmail(t *testing.T) {
	r, _ := newTestRouter(t)

	payload := map[string]string{
		"name":     "Jane Reader",
		"email":    "jane@example.com",
		"password": "secret123",
	}

	w := doJSON(r, http.MethodPost, "/api/register", "", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, models.RoleCustomer, body["role"])
	assert.NotZero(t, body["userId"])

	w = doJSON(r, http.MethodPost, "/api/register", "", payload)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodPost, "/api/register", "", map[string]string{"email": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeReturnsIdentity(t *testing.T) {
	r, db := newTestRouter(t)
	createAccount(t, db, "worker@example.com", models.RoleEmployee)

	w := doJSON(r, http.MethodGet, "/api/me", "worker@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "worker@example.com", body["email"])
	assert.Equal(t, models.RoleEmployee, body["role"])
}

func TestBookWritesRequireStaffRole(t *testing.T) {
	r, db := newTestRouter(t)
	createAccount(t, db, "shopper@example.com", models.RoleCustomer)
	createAccount(t, db, "worker@example.com", models.RoleEmployee)

	payload := map[string]interface{}{
		"name": "New Book", "author": "A. Writer", "price": 15.0, "stock": 10,
	}

	w := doJSON(r, http.MethodPost, "/api/books", "shopper@example.com", payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPost, "/api/books", "worker@example.com", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var book models.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, "New Book", book.Name)

	// Restock endpoint rejects negative values.
	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/books/%d/stock", book.ID),
		"worker@example.com", map[string]int{"stock": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/books/%d/stock", book.ID),
		"worker@example.com", map[string]int{"stock": 75})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, 75, book.Stock)
}

func TestCheckoutAndOrderVisibility(t *testing.T) {
	r, db := newTestRouter(t)
	createAccount(t, db, "alice@example.com", models.RoleCustomer)
	createAccount(t, db, "bob@example.com", models.RoleCustomer)
	createAccount(t, db, "worker@example.com", models.RoleEmployee)
	book := createBook(t, db, "1984", 24.99, 40)

	w := doJSON(r, http.MethodPost, "/api/orders", "alice@example.com", map[string]interface{}{
		"items": []map[string]interface{}{{"book_id": book.ID, "quantity": 5}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, models.StatusNew, order.Status)

	orderPath := fmt.Sprintf("/api/orders/%d", order.ID)

	// The owner and staff can read it; another customer cannot.
	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, orderPath, "alice@example.com", nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, orderPath, "worker@example.com", nil).Code)
	assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodGet, orderPath, "bob@example.com", nil).Code)

	// Checkout beyond stock is a 400, not a partial order.
	w = doJSON(r, http.MethodPost, "/api/orders", "bob@example.com", map[string]interface{}{
		"items": []map[string]interface{}{{"book_id": book.ID, "quantity": 999}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderListingScope(t *testing.T) {
	r, db := newTestRouter(t)
	createAccount(t, db, "alice@example.com", models.RoleCustomer)
	createAccount(t, db, "bob@example.com", models.RoleCustomer)
	createAccount(t, db, "worker@example.com", models.RoleEmployee)
	book := createBook(t, db, "Dune", 15, 30)

	for _, buyer := range []string{"alice@example.com", "bob@example.com"} {
		w := doJSON(r, http.MethodPost, "/api/orders", buyer, map[string]interface{}{
			"items": []map[string]interface{}{{"book_id": book.ID, "quantity": 1}},
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Staff see the whole store, including orders they did not place.
	w := doJSON(r, http.MethodGet, "/api/orders", "worker@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 2)

	// Customers still see only their own.
	w = doJSON(r, http.MethodGet, "/api/orders", "alice@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var own []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &own))
	assert.Len(t, own, 1)

	// /my carries the item lines with joined book details.
	w = doJSON(r, http.MethodGet, "/api/orders/my", "alice@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	require.Len(t, mine, 1)
	require.Len(t, mine[0].Items, 1)
	require.NotNil(t, mine[0].Items[0].BookName)
	assert.Equal(t, "Dune", *mine[0].Items[0].BookName)
}

func TestItemMutationsAreStaffOnly(t *testing.T) {
	r, db := newTestRouter(t)
	createAccount(t, db, "alice@example.com", models.RoleCustomer)
	createAccount(t, db, "worker@example.com", models.RoleEmployee)
	book := createBook(t, db, "Stocked", 10, 10)

	w := doJSON(r, http.MethodPost, "/api/orders", "alice@example.com", map[string]interface{}{
		"items": []map[string]interface{}{{"book_id": book.ID, "quantity": 2}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	itemPath := fmt.Sprintf("/api/orders/%d/items/%d", order.ID, book.ID)

	// Customers cannot reshape order lines.
	w = doJSON(r, http.MethodPut, itemPath, "alice@example.com", map[string]int{"quantity": 5})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPut, itemPath, "worker@example.com", map[string]int{"quantity": 5})
	require.Equal(t, http.StatusOK, w.Code)

	var item models.OrderItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 5, item.Quantity)

	// Asking for more than the shelf holds rolls back with a 400.
	w = doJSON(r, http.MethodPut, itemPath, "worker@example.com", map[string]int{"quantity": 50})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodDelete, itemPath, "worker@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestAdminOnlySurfaces(t *testing.T) {
	r, db := newTestRouter(t)
	createAccount(t, db, "worker@example.com", models.RoleEmployee)
	createAccount(t, db, "root@example.com", models.RoleAdmin)

	// Admin user creation with explicit role.
	payload := map[string]string{
		"name": "New Staff", "email": "staff2@example.com",
		"password": "secret123", "role": models.RoleEmployee,
	}

	w := doJSON(r, http.MethodPost, "/api/admin/create-user", "worker@example.com", payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPost, "/api/admin/create-user", "root@example.com", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	// User CRUD lives under the orders prefix and is admin-gated too.
	w = doJSON(r, http.MethodGet, "/api/orders/users", "worker@example.com", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodGet, "/api/orders/users", "root@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 3)
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"db":"ready"}`, w.Body.String())
}
