package router

import (
	"github.com/labstack/echo/v4"
)

// New registers the read-only API. Only GET is routed; echo answers any
// other method on these paths with 405.
func New(
	e *echo.Echo,
	farmCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
	},
	plantCtrl interface{ List(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/farms", farmCtrl.List)
	e.GET("/farms/:id", farmCtrl.Get)
	e.GET("/plants", plantCtrl.List)
	e.GET("/health", healthCtrl.Health)
	return e
}
