package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/bookstore/app/models"
	"github.com/shashiranjanraj/bookstore/app/services"
	"github.com/shashiranjanraj/bookstore/pkg/middleware"
	"github.com/shashiranjanraj/bookstore/pkg/response"
)

type CheckoutInput struct {
	Items []services.CheckoutLine `json:"items" validate:"required,min=1,dive"`
}

type AddItemInput struct {
	BookID   uint `json:"book_id"  validate:"required"`
	Quantity int  `json:"quantity" validate:"required,gt=0"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Store handles POST /api/orders: checkout for the authenticated customer.
// A missing book here is a bad request, not a 404: the id came from the
// cart body, not the URL.
func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Missing Basic Auth")
		return
	}

	var in CheckoutInput
	if !bindJSON(w, r, &in) {
		return
	}

	order, err := c.orders.Checkout(identity.ID, in.Items)
	if err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			response.BadRequest(w, err.Error())
			return
		}
		fail(w, err)
		return
	}
	response.Created(w, order)
}

// Index handles GET /api/orders. Staff see every order in the store;
// customers see only their own.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Missing Basic Auth")
		return
	}

	var (
		orders []models.Order
		err    error
	)
	if identity.Role == models.RoleCustomer {
		orders, err = c.orders.ListForCustomer(identity.ID)
	} else {
		orders, err = c.orders.ListAll()
	}
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, orders)
}

// Mine handles GET /api/orders/my: the caller's own orders with item lines,
// regardless of role.
func (c *OrderController) Mine(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Missing Basic Auth")
		return
	}

	orders, err := c.orders.ListForCustomer(identity.ID)
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, orders)
}

// AdminIndex handles GET /api/orders/admin: every order with customer
// identity and item lines.
func (c *OrderController) AdminIndex(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.ListAllDetailed()
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, orders)
}

// Show handles GET /api/orders/:id. Customers may only see their own orders;
// staff may see any.
func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Missing Basic Auth")
		return
	}

	id, ok := paramUint(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	order, err := c.orders.Get(id)
	if err != nil {
		fail(w, err)
		return
	}

	if identity.Role == models.RoleCustomer && order.CustomerID != identity.ID {
		response.Forbidden(w)
		return
	}
	response.OK(w, order)
}

// Update handles PUT /api/orders/:id: moves the order along its lifecycle.
func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	var in UpdateStatusInput
	if !bindJSON(w, r, &in) {
		return
	}

	order, err := c.orders.UpdateStatus(id, in.Status)
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, order)
}

// Destroy handles DELETE /api/orders/:id.
func (c *OrderController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.orders.Delete(id); err != nil {
		fail(w, err)
		return
	}
	response.Deleted(w)
}

// StoreItem handles POST /api/orders/:orderId/items: puts more of a book on
// an existing order.
func (c *OrderController) StoreItem(w http.ResponseWriter, r *http.Request) {
	orderID, ok := paramUint(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	var in AddItemInput
	if !bindJSON(w, r, &in) {
		return
	}

	item, err := c.orders.AddItem(orderID, in.BookID, in.Quantity)
	if err != nil {
		fail(w, err)
		return
	}
	response.Created(w, item)
}

// UpdateItem handles PUT /api/orders/:orderId/items/:bookId: sets the
// absolute line quantity.
func (c *OrderController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	orderID, ok := paramUint(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}
	bookID, ok := paramUint(r, "bookId")
	if !ok {
		response.NotFound(w)
		return
	}

	var in SetQuantityInput
	if !bindJSON(w, r, &in) {
		return
	}

	item, err := c.orders.UpdateItemQuantity(orderID, bookID, in.Quantity)
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, item)
}

// DestroyItem handles DELETE /api/orders/:orderId/items/:bookId.
func (c *OrderController) DestroyItem(w http.ResponseWriter, r *http.Request) {
	orderID, ok := paramUint(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}
	bookID, ok := paramUint(r, "bookId")
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.orders.RemoveItem(orderID, bookID); err != nil {
		fail(w, err)
		return
	}
	response.Deleted(w)
}
