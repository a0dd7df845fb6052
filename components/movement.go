package components

import (
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

type MovementData struct {
	Velocity vector.Vector
	// Input is the desired ground direction, nil when idle.
	Input vector.Vector

	MaxSpeed        float64
	WalkSpeed       float64
	AttackModeSpeed float64
	Acceleration    float64
	Deceleration    float64
	BrakingFriction float64
	RotateSpeed     float64 // degrees per second
	GravityScale    float64

	Disabled bool
}

// StopImmediately zeroes velocity and clears input.
func (m *MovementData) StopImmediately() {
	m.Velocity = vector.Vector{0, 0, 0}
	m.Input = nil
}

// Launch overrides the whole velocity.
func (m *MovementData) Launch(v vector.Vector) {
	m.Velocity = v.Clone()
}

var Movement = donburi.NewComponentType[MovementData]()
