package components

import (
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

// Navigator answers traversable terrain queries.
type Navigator interface {
	// RandomReachablePoint returns a point reachable from center within
	// radius.
	RandomReachablePoint(center vector.Vector, radius float64) (vector.Vector, bool)
	// ProjectToTraversable snaps p onto traversable terrain nearby.
	ProjectToTraversable(p vector.Vector) (vector.Vector, bool)
}

type NavigationData struct {
	Nav Navigator
}

var Navigation = donburi.NewComponentType[NavigationData]()
