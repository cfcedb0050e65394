package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aabusam/UPickFront/pkg/pagination"
	"github.com/aabusam/UPickFront/pkg/plant/repository"
	"github.com/aabusam/UPickFront/pkg/views"
)

type PlantCtrl struct {
	repo repository.FarmPlantRepository
	loc  *time.Location
}

func New(repo repository.FarmPlantRepository, loc *time.Location) *PlantCtrl {
	return &PlantCtrl{repo: repo, loc: loc}
}

func (h *PlantCtrl) List(c echo.Context) error {
	var q repository.Query
	var err error
	if q.CategoryID, err = parseID(c, "plant__category"); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if q.FarmID, err = parseID(c, "farm"); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if q.PlantID, err = parseID(c, "plant"); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	p, err := pagination.Parse(c.QueryParam("page"), c.QueryParam("page_size"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	fps, count, err := h.repo.List(q, p.Offset(), p.PageSize)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	now := time.Now().In(h.loc)
	results := make([]views.PlantFarmView, 0, len(fps))
	for i := range fps {
		results = append(results, views.PlantFarm(&fps[i], now))
	}
	return c.JSON(http.StatusOK, pagination.NewEnvelope(c.Request(), p, count, len(results), results))
}

func parseID(c echo.Context, name string) (*uint, error) {
	s := c.QueryParam(name)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("bad %s %q", name, s)
	}
	id := uint(n)
	return &id, nil
}
