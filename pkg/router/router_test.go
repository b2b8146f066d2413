package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRoutesAndURL(t *testing.T) {
	r := New()
	r.Get("/api/books", "books.index", okHandler)
	r.Get("/api/books/{id}", "books.show", okHandler)

	path, ok := r.Path("books.show")
	require.True(t, ok)
	assert.Equal(t, "/api/books/{id}", path)

	url, err := r.URL("books.show", map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/api/books/7", url)

	_, err = r.URL("books.show", nil)
	assert.Error(t, err)

	_, err = r.URL("missing", nil)
	assert.Error(t, err)

	assert.Len(t, r.Routes(), 2)
}

func TestGroupPrefixes(t *testing.T) {
	r := New()
	api := r.Group("/api")
	orders := api.Group("/orders")
	orders.Get("/{id}", "orders.show", okHandler)
	orders.Post("", "orders.store", okHandler)

	path, ok := r.Path("orders.show")
	require.True(t, ok)
	assert.Equal(t, "/api/orders/{id}", path)

	path, ok = r.Path("orders.store")
	require.True(t, ok)
	assert.Equal(t, "/api/orders", path)

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("POST", "/api/orders", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGroupMiddlewareApplies(t *testing.T) {
	var order []string
	mw := func(tag string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := New()
	g := r.Group("/api", mw("group"))
	g.Get("/ping", "ping", okHandler, mw("route"))

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/api/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"group", "route"}, order)
}
