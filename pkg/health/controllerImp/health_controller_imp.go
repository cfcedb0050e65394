package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	if sqlDB, err := h.db.DB(); err != nil {
		dbOK = false
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbOK = false
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"ok":         dbOK,
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"time":       time.Now().Format(time.RFC3339),
	})
}
