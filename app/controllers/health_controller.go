package controllers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookstore/pkg/response"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Show handles GET /api/health: liveness plus a database ping.
func (c *HealthController) Show(w http.ResponseWriter, r *http.Request) {
	state := "ready"

	sqlDB, err := c.db.DB()
	if err != nil || sqlDB.PingContext(r.Context()) != nil {
		state = "down"
	}

	response.OK(w, map[string]interface{}{"ok": state == "ready", "db": state})
}
