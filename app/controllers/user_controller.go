package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/bookstore/app/services"
	"github.com/shashiranjanraj/bookstore/pkg/response"
)

// UserController is the admin account CRUD, mounted under /api/orders/users.
type UserController struct {
	users *services.UserService
	auth  *services.AuthService
}

func NewUserController(users *services.UserService, auth *services.AuthService) *UserController {
	return &UserController{users: users, auth: auth}
}

func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.List()
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, users)
}

func (c *UserController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	user, err := c.users.Get(id)
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, user)
}

// Store creates an account with an explicit role; hashing and the profile
// row go through the same path as /api/admin/create-user.
func (c *UserController) Store(w http.ResponseWriter, r *http.Request) {
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

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	var in services.UpdateUserInput
	if !bindJSON(w, r, &in) {
		return
	}

	user, err := c.users.Update(id, in)
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, user)
}

func (c *UserController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.users.Delete(id); err != nil {
		fail(w, err)
		return
	}
	response.Deleted(w)
}
