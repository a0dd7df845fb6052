package components

import (
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

// DamageEventData queues hits for the next combat update. Source is the
// world location the damage came from, nil when unknown.
type DamageEventData struct {
	Hits []DamageHit
}

type DamageHit struct {
	Amount float64
	Source vector.Vector
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
