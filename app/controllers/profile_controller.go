package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/bookstore/app/services"
	"github.com/shashiranjanraj/bookstore/pkg/middleware"
	"github.com/shashiranjanraj/bookstore/pkg/response"
)

type ProfileInput struct {
	Phone *string `json:"phone"`
}

type CreateProfileInput struct {
	UserID uint    `json:"user_id" validate:"required"`
	Phone  *string `json:"phone"`
}

type ProfileController struct {
	profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{profiles: profiles}
}

// ShowOwn handles GET /api/profiles/me.
func (c *ProfileController) ShowOwn(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Missing Basic Auth")
		return
	}

	profile, err := c.profiles.GetOwn(identity.ID)
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, profile)
}

// UpdateOwn handles PUT /api/profiles/me.
func (c *ProfileController) UpdateOwn(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Missing Basic Auth")
		return
	}

	var in ProfileInput
	if !bindJSON(w, r, &in) {
		return
	}

	profile, err := c.profiles.UpdateOwn(identity.ID, in.Phone)
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, profile)
}

// Index handles GET /api/profiles (admin).
func (c *ProfileController) Index(w http.ResponseWriter, r *http.Request) {
	profiles, err := c.profiles.List()
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, profiles)
}

// Show handles GET /api/profiles/:userId (admin).
func (c *ProfileController) Show(w http.ResponseWriter, r *http.Request) {
	userID, ok := paramUint(r, "userId")
	if !ok {
		response.NotFound(w)
		return
	}

	profile, err := c.profiles.Get(userID)
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, profile)
}

// Store handles POST /api/profiles (admin).
func (c *ProfileController) Store(w http.ResponseWriter, r *http.Request) {
	var in CreateProfileInput
	if !bindJSON(w, r, &in) {
		return
	}

	profile, err := c.profiles.Create(in.UserID, in.Phone)
	if err != nil {
		fail(w, err)
		return
	}
	response.Created(w, profile)
}

// Update handles PUT /api/profiles/:userId (admin).
func (c *ProfileController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := paramUint(r, "userId")
	if !ok {
		response.NotFound(w)
		return
	}

	var in ProfileInput
	if !bindJSON(w, r, &in) {
		return
	}

	profile, err := c.profiles.Update(userID, in.Phone)
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, profile)
}

// Destroy handles DELETE /api/profiles/:userId (admin).
func (c *ProfileController) Destroy(w http.ResponseWriter, r *http.Request) {
	userID, ok := paramUint(r, "userId")
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.profiles.Delete(userID); err != nil {
		fail(w, err)
		return
	}
	response.Deleted(w)
}
