package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/bookstore/app/models"
	"github.com/shashiranjanraj/bookstore/app/services"
	"github.com/shashiranjanraj/bookstore/pkg/response"
)

type CreateBookInput struct {
	Name        string   `json:"name"   validate:"required"`
	Author      string   `json:"author" validate:"required"`
	Description string   `json:"description"`
	Language    *string  `json:"language"`
	Year        *int     `json:"year"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
	ImageID     *uint    `json:"image_id"`
}

type SetStockInput struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}

type BookController struct {
	books *services.BookService
}

func NewBookController(books *services.BookService) *BookController {
	return &BookController{books: books}
}

// Index handles GET /api/books?search=: the public catalog listing.
func (c *BookController) Index(w http.ResponseWriter, r *http.Request) {
	books, err := c.books.List(r.URL.Query().Get("search"))
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, books)
}

// Show handles GET /api/books/:id.
func (c *BookController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	book, err := c.books.Get(id)
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, book)
}

// Store handles POST /api/books.
func (c *BookController) Store(w http.ResponseWriter, r *http.Request) {
	var in CreateBookInput
	if !bindJSON(w, r, &in) {
		return
	}

	book, err := c.books.Create(models.Book{
		Name:        in.Name,
		Author:      in.Author,
		Description: in.Description,
		Language:    in.Language,
		Year:        in.Year,
		Price:       *in.Price,
		Stock:       *in.Stock,
		ImageID:     in.ImageID,
	})
	if err != nil {
		fail(w, err)
		return
	}
	response.Created(w, book)
}

// Update handles PUT /api/books/:id: a partial merge over the current row.
func (c *BookController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	var in services.UpdateBookInput
	if !bindJSON(w, r, &in) {
		return
	}

	book, err := c.books.Update(id, in)
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, book)
}

// UpdateStock handles PATCH /api/books/:id/stock: the restock endpoint.
func (c *BookController) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	var in SetStockInput
	if !bindJSON(w, r, &in) {
		return
	}

	book, err := c.books.SetStock(id, *in.Stock)
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, book)
}

// Destroy handles DELETE /api/books/:id.
func (c *BookController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.books.Delete(id); err != nil {
		fail(w, err)
		return
	}
	response.Deleted(w)
}
