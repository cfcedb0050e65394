package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/aabusam/UPickFront/pkg/farm/repository"
	"github.com/aabusam/UPickFront/pkg/geo"
	"github.com/aabusam/UPickFront/pkg/pagination"
	"github.com/aabusam/UPickFront/pkg/views"
)

type FarmCtrl struct {
	repo repository.FarmRepository
	loc  *time.Location
}

func New(repo repository.FarmRepository, loc *time.Location) *FarmCtrl {
	return &FarmCtrl{repo: repo, loc: loc}
}

func (h *FarmCtrl) List(c echo.Context) error {
	now := time.Now().In(h.loc)
	q, err := parseQuery(c, now)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	p, err := pagination.Parse(c.QueryParam("page"), c.QueryParam("page_size"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	farms, count, err := h.repo.List(q, p.Offset(), p.PageSize)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	results := make([]views.FarmView, 0, len(farms))
	for i := range farms {
		results = append(results, views.Farm(&farms[i], views.ModeList, now))
	}
	return c.JSON(http.StatusOK, pagination.NewEnvelope(c.Request(), p, count, len(results), results))
}

func (h *FarmCtrl) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	f, err := h.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, views.Farm(f, views.ModeDetail, time.Now().In(h.loc)))
}

// parseQuery validates the filter params before any repository work.
func parseQuery(c echo.Context, now time.Time) (repository.Query, error) {
	q := repository.Query{FeeMin: 0, FeeMax: repository.FeeUnbounded, Now: now}

	if s := c.QueryParam("is_open"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return q, fmt.Errorf("bad is_open %q", s)
		}
		q.IsOpen = &v
	}

	radiusS := c.QueryParam("radius")
	latS := c.QueryParam("address__lat")
	longS := c.QueryParam("address__long")
	if radiusS != "" || latS != "" || longS != "" {
		if radiusS == "" || latS == "" || longS == "" {
			return q, errors.New("must supply radius, address__lat, and address__long together")
		}
		radius, err := parseFloat("radius", radiusS)
		if err != nil {
			return q, err
		}
		lat, err := parseFloat("address__lat", latS)
		if err != nil {
			return q, err
		}
		long, err := parseFloat("address__long", longS)
		if err != nil {
			return q, err
		}
		box, err := geo.Box(lat, long, radius)
		if err != nil {
			return q, err
		}
		q.Box = &box
	}

	if s := c.QueryParam("entrance_fee_min"); s != "" {
		v, err := parseFloat("entrance_fee_min", s)
		if err != nil {
			return q, err
		}
		q.FeeMin = v
	}
	if s := c.QueryParam("entrance_fee_max"); s != "" {
		v, err := parseFloat("entrance_fee_max", s)
		if err != nil {
			return q, err
		}
		q.FeeMax = v
	}
	return q, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q", name, s)
	}
	return v, nil
}
