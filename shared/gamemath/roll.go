package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

// Roller is the source of every gameplay random decision. *rand.Rand
// satisfies it; tests script it.
type Roller interface {
	Float64() float64
	Intn(n int) int
}

// RandRange returns a value in [lo, hi).
func RandRange(r Roller, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// RandUnit2D returns a uniformly distributed ground plane direction.
func RandUnit2D(r Roller) vector.Vector {
	a := r.Float64() * 2 * math.Pi
	return vector.Vector{math.Cos(a), math.Sin(a), 0}
}
