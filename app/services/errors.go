package services

import "errors"

// Domain errors. Controllers map these onto the HTTP taxonomy:
// not-found → 404, conflict → 409, everything validation-shaped → 400.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidRole        = errors.New("role must be CUSTOMER/EMPLOYEE/ADMIN")

	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrImageNotFound   = errors.New("image not found")
	ErrBookNotFound    = errors.New("book not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrItemNotFound    = errors.New("order item not found")

	ErrInsufficientStock = errors.New("not enough stock")
	ErrBookReferenced    = errors.New("book is referenced by orders")
	ErrItemConflict      = errors.New("order item changed concurrently, retry")

	ErrInvalidStatus    = errors.New("unknown order status")
	ErrStatusTransition = errors.New("illegal status transition")
)
