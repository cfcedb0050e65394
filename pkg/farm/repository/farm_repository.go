package repository

import (
	"time"

	"github.com/aabusam/UPickFront/entities"
	"github.com/aabusam/UPickFront/pkg/geo"
)

// Query is the validated filter set applied before pagination. All filters
// are optional and conjunctive.
type Query struct {
	IsOpen *bool
	Box    *geo.BoundingBox
	FeeMin float64 // coalesced default 0
	FeeMax float64 // coalesced default FeeUnbounded
	Now    time.Time
}

// FeeUnbounded stands in for a missing entrance_fee_max; stored fees are
// 6-digit decimals, so anything this large keeps them all.
const FeeUnbounded = 1e12

type FarmRepository interface {
	List(q Query, offset, limit int) ([]entities.Farm, int64, error)
	FindByID(id uint) (*entities.Farm, error)
}
