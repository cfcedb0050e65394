package geo

import (
	"errors"
	"math"
)

// Approximate miles spanned by one degree of latitude.
const milesPerDegree = 69.0

// ErrPolarLatitude is returned when the target latitude is so close to a
// pole that the longitude range degenerates (cos(lat) ~ 0).
var ErrPolarLatitude = errors.New("latitude too close to a pole to derive a longitude range")

// BoundingBox is a rectangular lat/long approximation of a circular search
// radius. Bounds are inclusive.
type BoundingBox struct {
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

// Box converts a (lat, long, radius-in-miles) query into a bounding box.
// Flat-earth approximation, good enough for short-range local search.
func Box(lat, long, radiusMiles float64) (BoundingBox, error) {
	cosLat := math.Abs(math.Cos(lat * math.Pi / 180))
	if cosLat < 1e-9 {
		return BoundingBox{}, ErrPolarLatitude
	}
	latDelta := radiusMiles / milesPerDegree
	lonDelta := radiusMiles / (milesPerDegree * cosLat)
	return BoundingBox{
		LatMin: lat - latDelta,
		LatMax: lat + latDelta,
		LonMin: long - lonDelta,
		LonMax: long + lonDelta,
	}, nil
}
