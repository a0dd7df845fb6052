// Package gamemath holds the vector helpers shared by the sandbox, the
// headless server and the gameplay systems. XY is the ground plane and Z
// points up. It must stay free of ebiten imports.
package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

const epsilon = 1e-8

// Up is the world up axis.
var Up = vector.Vector{0, 0, 1}

// Vec3 builds a 3D vector.
func Vec3(x, y, z float64) vector.Vector {
	return vector.Vector{x, y, z}
}

// Zero returns a fresh zero vector.
func Zero() vector.Vector {
	return vector.Vector{0, 0, 0}
}

// Lift returns v with its Z component replaced.
func Lift(v vector.Vector, z float64) vector.Vector {
	return vector.Vector{v[0], v[1], z}
}

// SafeNormal returns v scaled to unit length, or the zero vector when v is
// too short to normalize.
func SafeNormal(v vector.Vector) vector.Vector {
	m := v.Magnitude()
	if m < epsilon {
		return Zero()
	}
	return v.Scale(1 / m)
}

// SafeNormal2D drops the Z component before normalizing.
func SafeNormal2D(v vector.Vector) vector.Vector {
	return SafeNormal(vector.Vector{v[0], v[1], 0})
}

// Cross returns a x b for 3D vectors. Mismatched input yields zero.
func Cross(a, b vector.Vector) vector.Vector {
	c, err := a.Cross(b)
	if err != nil {
		return Zero()
	}
	return c
}

// DistSquared is the squared distance between two points.
func DistSquared(a, b vector.Vector) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// Dist2D is the ground plane distance between two points.
func Dist2D(a, b vector.Vector) float64 {
	return math.Hypot(a[0]-b[0], a[1]-b[1])
}

// ForwardFromYaw converts a yaw in radians into a unit forward vector.
func ForwardFromYaw(yaw float64) vector.Vector {
	return vector.Vector{math.Cos(yaw), math.Sin(yaw), 0}
}

// YawOf returns the yaw of the ground plane projection of v.
func YawOf(v vector.Vector) float64 {
	return math.Atan2(v[1], v[0])
}

// RotateByYaw rotates a local offset around Up.
func RotateByYaw(local vector.Vector, yaw float64) vector.Vector {
	s, c := math.Sincos(yaw)
	return vector.Vector{
		local[0]*c - local[1]*s,
		local[0]*s + local[1]*c,
		local[2],
	}
}

// ApproachAngle turns current toward target by at most step radians.
func ApproachAngle(current, target, step float64) float64 {
	diff := math.Remainder(target-current, 2*math.Pi)
	if math.Abs(diff) <= step {
		return target
	}
	return current + math.Copysign(step, diff)
}
