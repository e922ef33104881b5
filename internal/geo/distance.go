// Package geo holds the great-circle distance math used by the retailer
// proximity search. Distances are in statute miles because every radius
// in the product is expressed in miles.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusMiles is the Earth radius used by the Haversine formula.
const EarthRadiusMiles = 3959.0

// DefaultSearchRadiusMiles is the fallback search radius applied when the
// caller does not pick one.
const DefaultSearchRadiusMiles = 10.0

// Valid reports whether p is a usable coordinate pair. orb points are
// (lng, lat) ordered.
func Valid(p orb.Point) bool {
	lng, lat := p.Lon(), p.Lat()
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// DistanceMiles returns the Haversine great-circle distance between two
// points in miles.
func DistanceMiles(from, to orb.Point) float64 {
	dLat := toRadians(to.Lat() - from.Lat())
	dLng := toRadians(to.Lon() - from.Lon())

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	a := sinLat*sinLat +
		math.Cos(toRadians(from.Lat()))*math.Cos(toRadians(to.Lat()))*sinLng*sinLng

	return 2 * EarthRadiusMiles * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// WithinRadius reports whether to lies within radiusMiles of from.
// Boundary ties are inside (<=, not <).
func WithinRadius(from, to orb.Point, radiusMiles float64) bool {
	return DistanceMiles(from, to) <= radiusMiles
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
