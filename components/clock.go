package components

import (
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ClockData is the singleton simulation clock.
type ClockData struct {
	TPS      int
	Frame    int
	Dilation float64 // gameplay time scale, 1 is normal
	Elapsed  float64 // scaled seconds since start
	Rand     gamemath.Roller
}

// DT is the real duration of one tick.
func (c *ClockData) DT() float64 {
	if c.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TPS)
}

// ScaledDT is the gameplay duration of one tick.
func (c *ClockData) ScaledDT() float64 {
	return c.DT() * c.Dilation
}

var Clock = donburi.NewComponentType[ClockData]()
