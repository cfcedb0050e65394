package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"github.com/aabusam/UPickFront/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Farm{},
		&entities.Address{},
		&entities.WorkingHour{},
		&entities.PlantCategory{},
		&entities.Plant{},
		&entities.FarmPlant{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
