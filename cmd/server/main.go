package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/aabusam/UPickFront/config"
	"github.com/aabusam/UPickFront/database"
	"github.com/aabusam/UPickFront/router"

	// Farm
	farmCtrlImp "github.com/aabusam/UPickFront/pkg/farm/controllerImp"
	farmRepoImp "github.com/aabusam/UPickFront/pkg/farm/repositoryImp"

	// Plant
	plantCtrlImp "github.com/aabusam/UPickFront/pkg/plant/controllerImp"
	plantRepoImp "github.com/aabusam/UPickFront/pkg/plant/repositoryImp"

	// Health
	healthCtrlImp "github.com/aabusam/UPickFront/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("timezone %q: %v", cfg.Timezone, err)
	}

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Optional directory import
	if cfg.SeedXLSX != "" {
		if err := database.SeedFromXLSX(db, cfg.SeedXLSX); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	// 4) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 5) Repos/Controllers
	fRepo := farmRepoImp.New(db)
	pRepo := plantRepoImp.New(db)
	fCtrl := farmCtrlImp.New(fRepo, loc)
	pCtrl := plantCtrlImp.New(pRepo, loc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Router
	r := router.New(e, fCtrl, pCtrl, hCtrl)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
