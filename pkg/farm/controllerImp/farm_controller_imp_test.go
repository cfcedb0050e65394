package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aabusam/UPickFront/entities"
	farmRepoImp "github.com/aabusam/UPickFront/pkg/farm/repositoryImp"
)

func newTestCtrl(t *testing.T) (*FarmCtrl, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Farm{}, &entities.Address{}, &entities.WorkingHour{},
		&entities.PlantCategory{}, &entities.Plant{}, &entities.FarmPlant{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return New(farmRepoImp.New(db), time.UTC), db
}

func doList(t *testing.T, h *FarmCtrl, target string) (*httptest.ResponseRecorder, map[string]any) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.List(e.NewContext(req, rec)))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestListEnvelopeShape(t *testing.T) {
	h, db := newTestCtrl(t)
	require.NoError(t, db.Create(&entities.Farm{Title: "A"}).Error)

	rec, body := doList(t, h, "/farms")
	assert.Equal(t, http.StatusOK, rec.Code)

	info, ok := body["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), info["count"])
	assert.Nil(t, info["next"])
	assert.Nil(t, info["previous"])
	assert.Equal(t, float64(1), info["results_per_page"])
	results, ok := body["results"].([]any)
	require.True(t, ok)
	assert.Len(t, results, 1)
}

func TestListPartialRadiusTripleRejected(t *testing.T) {
	h, _ := newTestCtrl(t)

	for _, target := range []string{
		"/farms?radius=5",
		"/farms?address__lat=37.3",
		"/farms?address__long=-121.9",
		"/farms?radius=5&address__lat=37.3",
		"/farms?radius=5&address__long=-121.9",
		"/farms?address__lat=37.3&address__long=-121.9",
	} {
		rec, body := doList(t, h, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Contains(t, body["error"], "together", target)
	}
}

func TestListRadiusEndToEnd(t *testing.T) {
	h, db := newTestCtrl(t)
	require.NoError(t, db.Create(&entities.Farm{
		Title:   "San Jose",
		Address: &entities.Address{Lat: 37.3, Long: -121.9},
	}).Error)

	// client standing on the farm
	rec, body := doList(t, h, "/farms?radius=5&address__lat=37.3&address__long=-121.9")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["info"].(map[string]any)["count"])

	// client far to the north
	_, body = doList(t, h, "/farms?radius=5&address__lat=40.0&address__long=-121.9")
	assert.Equal(t, float64(0), body["info"].(map[string]any)["count"])
}

func TestListPolarLatitudeRejected(t *testing.T) {
	h, _ := newTestCtrl(t)
	rec, _ := doList(t, h, "/farms?radius=5&address__lat=90&address__long=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListMalformedParamsRejected(t *testing.T) {
	h, _ := newTestCtrl(t)
	for _, target := range []string{
		"/farms?is_open=maybe",
		"/farms?radius=five&address__lat=37.3&address__long=-121.9",
		"/farms?entrance_fee_min=abc",
		"/farms?page=zero",
		"/farms?page_size=x",
	} {
		rec, _ := doList(t, h, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestListPageSizeCappedAt100(t *testing.T) {
	h, db := newTestCtrl(t)
	for i := 0; i < 120; i++ {
		require.NoError(t, db.Create(&entities.Farm{Title: "F"}).Error)
	}

	_, body := doList(t, h, "/farms?page_size=150")
	info := body["info"].(map[string]any)
	assert.Equal(t, float64(120), info["count"])
	assert.Equal(t, float64(100), info["results_per_page"])
	require.NotNil(t, info["next"])
	assert.Contains(t, info["next"], "page=2")
}

func TestListPageBeyondLast(t *testing.T) {
	h, db := newTestCtrl(t)
	require.NoError(t, db.Create(&entities.Farm{Title: "Only"}).Error)

	_, body := doList(t, h, "/farms?page=5")
	info := body["info"].(map[string]any)
	assert.Nil(t, info["next"])
	assert.Equal(t, float64(0), info["results_per_page"])
	assert.Equal(t, []any{}, body["results"])
}

func TestGetDetail(t *testing.T) {
	h, db := newTestCtrl(t)
	f := entities.Farm{Title: "Detail", Address: &entities.Address{Lat: 1, Long: 2}}
	require.NoError(t, db.Create(&f).Error)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/farms/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Detail", body["title"])
	// empty association still projects as an array
	assert.Equal(t, []any{}, body["farm_plants"])
	addr := body["address"].(map[string]any)
	geo := addr["geo_location"].(map[string]any)
	assert.Equal(t, float64(1), geo["lat"])
	assert.Equal(t, float64(2), geo["long"])
}

func TestGetUnknownIDIs404(t *testing.T) {
	h, _ := newTestCtrl(t)

	e := echo.New()
	for _, id := range []string{"42", "not-a-number"} {
		req := httptest.NewRequest(http.MethodGet, "/farms/"+id, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)
		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code, id)
	}
}
