package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/bookstore/app/services"
	"github.com/shashiranjanraj/bookstore/pkg/middleware"
	"github.com/shashiranjanraj/bookstore/pkg/response"
)

type RegisterInput struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type CreateUserInput struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=CUSTOMER EMPLOYEE ADMIN"`
}

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register handles POST /api/register: public self-service signup, always
// role CUSTOMER.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in RegisterInput
	if !bindJSON(w, r, &in) {
		return
	}

	user, err := c.auth.Register(in.Name, in.Email, in.Password)
	if err != nil {
		fail(w, err)
		return
	}

	response.Created(w, map[string]interface{}{
		"ok":     true,
		"userId": user.ID,
		"role":   user.Role,
	})
}

// Me handles GET /api/me: echoes the authenticated identity.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Missing Basic Auth")
		return
	}
	response.OK(w, identity)
}

// CreateUser handles POST /api/admin/create-user: admin-only signup with an
// explicit role.
func (c *AuthController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in CreateUserInput
	if !bindJSON(w, r, &in) {
		return
	}

	user, err := c.auth.CreateUser(in.Name, in.Email, in.Password, in.Role)
	if err != nil {
		fail(w, err)
		return
	}
	response.Created(w, user)
}
