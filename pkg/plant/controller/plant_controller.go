package controller

import "github.com/labstack/echo/v4"

type PlantController interface {
	List(c echo.Context) error
}
