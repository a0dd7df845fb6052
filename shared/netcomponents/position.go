package netcomponents

import (
	"math"

	"github.com/yohamta/donburi"
)

// NetPositionData is an entity's feet position and facing.
type NetPositionData struct {
	X, Y, Z float64
	Yaw     float64
}

var NetPosition = donburi.NewComponentType[NetPositionData]()

// LerpNetPosition interpolates between two positions
func LerpNetPosition(from, to NetPositionData, t float64) *NetPositionData {
	return &NetPositionData{
		X:   from.X + (to.X-from.X)*t,
		Y:   from.Y + (to.Y-from.Y)*t,
		Z:   from.Z + (to.Z-from.Z)*t,
		Yaw: lerpAngle(from.Yaw, to.Yaw, t),
	}
}

// lerpAngle takes the short way around.
func lerpAngle(from, to, t float64) float64 {
	d := math.Remainder(to-from, 2*math.Pi)
	return from + d*t
}
