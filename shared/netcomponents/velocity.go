package netcomponents

import (
	"math"

	"github.com/yohamta/donburi"
)

// NetVelocityData is a body's ground-plane velocity. Clients read Speed to
// blend walk and run animations without re-deriving it.
type NetVelocityData struct {
	VX, VY float64
	Speed  float64
}

var NetVelocity = donburi.NewComponentType[NetVelocityData]()

// NewNetVelocity builds the synced value from a world velocity. Vertical
// motion is not sent.
func NewNetVelocity(vx, vy float64) NetVelocityData {
	return NetVelocityData{VX: vx, VY: vy, Speed: math.Hypot(vx, vy)}
}

// LerpNetVelocity blends the components and recomputes the speed.
func LerpNetVelocity(from, to NetVelocityData, t float64) *NetVelocityData {
	v := NewNetVelocity(
		from.VX+(to.VX-from.VX)*t,
		from.VY+(to.VY-from.VY)*t,
	)
	return &v
}
