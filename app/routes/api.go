// Package routes wires the HTTP surface: global middleware, public catalog
// and registration endpoints, and the Basic-Auth-gated API with per-route
// role checks.
package routes

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookstore/app/controllers"
	"github.com/shashiranjanraj/bookstore/app/models"
	"github.com/shashiranjanraj/bookstore/app/services"
	"github.com/shashiranjanraj/bookstore/config"
	"github.com/shashiranjanraj/bookstore/pkg/metrics"
	"github.com/shashiranjanraj/bookstore/pkg/middleware"
	"github.com/shashiranjanraj/bookstore/pkg/rbac"
	"github.com/shashiranjanraj/bookstore/pkg/reqid"
	"github.com/shashiranjanraj/bookstore/pkg/router"
)

// Register builds the full route table on top of db.
func Register(db *gorm.DB) *router.Router {
	authService := services.NewAuthService(db)

	auth := controllers.NewAuthController(authService)
	books := controllers.NewBookController(services.NewBookService(db))
	orders := controllers.NewOrderController(services.NewOrderService(db))
	users := controllers.NewUserController(services.NewUserService(db), authService)
	profiles := controllers.NewProfileController(services.NewProfileService(db))
	images := controllers.NewImageController(services.NewImageService(db))
	health := controllers.NewHealthController(db)

	authed := middleware.BasicAuth(config.BasicAuthRealm(), authService.CheckCredentials)
	staff := rbac.AnyRole(models.RoleEmployee, models.RoleAdmin)
	admin := rbac.AnyRole(models.RoleAdmin)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(200, time.Minute),
	)

	r.HandleFunc("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.Get("/health", "health", health.Show)
	api.Post("/register", "auth.register", auth.Register)
	api.Get("/me", "auth.me", auth.Me, authed)
	api.Post("/admin/create-user", "auth.create-user", auth.CreateUser, authed, admin)

	// Catalog: reads are public, writes are staff-only.
	api.Get("/books", "books.index", books.Index)
	api.Get("/books/{id}", "books.show", books.Show)
	api.Post("/books", "books.store", books.Store, authed, staff)
	api.Put("/books/{id}", "books.update", books.Update, authed, staff)
	api.Patch("/books/{id}/stock", "books.stock", books.UpdateStock, authed, staff)
	api.Delete("/books/{id}", "books.destroy", books.Destroy, authed, staff)

	o := api.Group("/orders", authed)
	o.Post("", "orders.store", orders.Store)
	o.Get("", "orders.index", orders.Index)
	o.Get("/my", "orders.my", orders.Mine)
	o.Get("/admin", "orders.admin", orders.AdminIndex, staff)
	o.Get("/{id}", "orders.show", orders.Show)
	o.Put("/{id}", "orders.update", orders.Update, staff)
	o.Delete("/{id}", "orders.destroy", orders.Destroy, admin)
	o.Post("/{id}/items", "orders.items.store", orders.StoreItem, staff)
	o.Put("/{id}/items/{bookId}", "orders.items.update", orders.UpdateItem, staff)
	o.Delete("/{id}/items/{bookId}", "orders.items.destroy", orders.DestroyItem, staff)

	// Account CRUD kept under the orders prefix for client compatibility.
	u := o.Group("/users", admin)
	u.Get("", "users.index", users.Index)
	u.Post("", "users.store", users.Store)
	u.Get("/{id}", "users.show", users.Show)
	u.Put("/{id}", "users.update", users.Update)
	u.Delete("/{id}", "users.destroy", users.Destroy)

	p := api.Group("/profiles", authed)
	p.Get("/me", "profiles.me", profiles.ShowOwn)
	p.Put("/me", "profiles.me.update", profiles.UpdateOwn)
	p.Get("", "profiles.index", profiles.Index, admin)
	p.Post("", "profiles.store", profiles.Store, admin)
	p.Get("/{userId}", "profiles.show", profiles.Show, admin)
	p.Put("/{userId}", "profiles.update", profiles.Update, admin)
	p.Delete("/{userId}", "profiles.destroy", profiles.Destroy, admin)

	i := api.Group("/images", authed)
	i.Get("", "images.index", images.Index, staff)
	i.Get("/{id}", "images.show", images.Show, staff)
	i.Post("", "images.store", images.Store, admin)
	i.Put("/{id}", "images.update", images.Update, admin)
	i.Delete("/{id}", "images.destroy", images.Destroy, admin)

	return r
}
