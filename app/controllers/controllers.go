// Package controllers holds the HTTP handlers. Controllers bind and validate
// input, call one service method, and map domain errors onto the error
// taxonomy; business rules live below them.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/bookstore/app/services"
	"github.com/shashiranjanraj/bookstore/pkg/bind"
	"github.com/shashiranjanraj/bookstore/pkg/response"
)

// bindJSON decodes and validates the request body into dest, answering the
// 400 itself on failure. Returns false when the handler should stop.
func bindJSON(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	errs, err := bind.JSON(r, dest)
	if err != nil {
		response.BadRequest(w, err.Error())
		return false
	}
	if bind.HasErrors(errs) {
		response.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": errs,
		})
		return false
	}
	return true
}

// paramUint reads a positive integer URL parameter.
func paramUint(r *http.Request, name string) (uint, bool) {
	n, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// fail translates a service error to the HTTP taxonomy: unknown ids → 404,
// duplicate email → 409, everything validation-shaped → 400, rest → 500.
func fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrImageNotFound),
		errors.Is(err, services.ErrBookNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrItemNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrItemConflict):
		response.Conflict(w, err.Error())
	case errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrBookReferenced),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrStatusTransition):
		response.BadRequest(w, err.Error())
	default:
		response.Internal(w, err)
	}
}
