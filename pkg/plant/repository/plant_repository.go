package repository

import "github.com/aabusam/UPickFront/entities"

// Query holds the association-list equality filters.
type Query struct {
	CategoryID *uint // plant__category
	FarmID     *uint
	PlantID    *uint
}

type FarmPlantRepository interface {
	List(q Query, offset, limit int) ([]entities.FarmPlant, int64, error)
}
