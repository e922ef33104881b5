package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceMiles_SamePointIsZero(t *testing.T) {
	p := orb.Point{-75.0, 40.0}

	assert.Equal(t, 0.0, DistanceMiles(p, p))
}

func TestDistanceMiles_OneDegreeLatitude(t *testing.T) {
	// One degree of latitude is roughly 69 statute miles.
	from := orb.Point{-75.0, 40.0}
	to := orb.Point{-75.0, 41.0}

	d := DistanceMiles(from, to)
	assert.InDelta(t, 69.1, d, 0.5)
}

func TestDistanceMiles_Symmetric(t *testing.T) {
	a := orb.Point{-122.4194, 37.7749} // San Francisco
	b := orb.Point{-118.2437, 34.0522} // Los Angeles

	assert.InDelta(t, DistanceMiles(a, b), DistanceMiles(b, a), 1e-9)
}

func TestDistanceMiles_KnownCityPair(t *testing.T) {
	// SF to LA is about 347 miles great-circle.
	a := orb.Point{-122.4194, 37.7749}
	b := orb.Point{-118.2437, 34.0522}

	assert.InDelta(t, 347, DistanceMiles(a, b), 5)
}

func TestWithinRadius_BoundaryTieIncluded(t *testing.T) {
	from := orb.Point{-75.0, 40.0}
	to := orb.Point{-75.0, 40.0}

	// Distance zero, radius zero: included.
	assert.True(t, WithinRadius(from, to, 0))
}

func TestWithinRadius_Outside(t *testing.T) {
	from := orb.Point{-75.0, 40.0}
	to := orb.Point{-75.0, 41.0} // ~69 miles

	assert.False(t, WithinRadius(from, to, 1))
	assert.True(t, WithinRadius(from, to, 70))
}

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		point orb.Point
		want  bool
	}{
		{"origin", orb.Point{0, 0}, true},
		{"lat north pole", orb.Point{0, 90}, true},
		{"lat beyond pole", orb.Point{0, 90.01}, false},
		{"lng date line", orb.Point{-180, 10}, true},
		{"lng beyond date line", orb.Point{180.5, 10}, false},
		{"nan lat", orb.Point{0, math.NaN()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.point))
		})
	}
}
