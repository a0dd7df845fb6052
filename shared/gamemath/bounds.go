package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

// Bounds is an axis aligned box in world space.
type Bounds struct {
	Min, Max vector.Vector
}

// BoundsAround builds bounds for an upright body standing at feet.
func BoundsAround(feet vector.Vector, radius, height float64) Bounds {
	return Bounds{
		Min: vector.Vector{feet[0] - radius, feet[1] - radius, feet[2]},
		Max: vector.Vector{feet[0] + radius, feet[1] + radius, feet[2] + height},
	}
}

// Expand grows the bounds by half on every axis. Testing a segment against
// the expanded bounds is the same as sweeping a box of that half size.
func (b Bounds) Expand(half vector.Vector) Bounds {
	return Bounds{Min: b.Min.Sub(half), Max: b.Max.Add(half)}
}

// Contains reports whether p lies inside the bounds.
func (b Bounds) Contains(p vector.Vector) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// SegmentHit intersects the segment start->end with b using the slab method.
// It returns the entry fraction along the segment in [0,1].
func SegmentHit(start, end vector.Vector, b Bounds) (float64, bool) {
	tmin, tmax := 0.0, 1.0
	for i := 0; i < 3; i++ {
		d := end[i] - start[i]
		if math.Abs(d) < epsilon {
			if start[i] < b.Min[i] || start[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / d
		t1 := (b.Min[i] - start[i]) * inv
		t2 := (b.Max[i] - start[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
