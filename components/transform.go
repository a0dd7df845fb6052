package components

import (
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's feet position and facing.
type TransformData struct {
	Position vector.Vector
	Yaw      float64 // radians, 0 faces +X
}

// Forward is the unit facing vector on the ground plane.
func (t *TransformData) Forward() vector.Vector {
	return gamemath.ForwardFromYaw(t.Yaw)
}

var Transform = donburi.NewComponentType[TransformData]()

// BodyData is the collision body of a character.
type BodyData struct {
	Radius float64
	Height float64

	CollisionEnabled  bool
	AffectsNavigation bool
	Parts             []MeshPart
}

// MeshPart is one visual/collision part of a character body.
type MeshPart struct {
	Name             string
	CollisionEnabled bool
	Visible          bool
}

// Bounds returns the body's world space box.
func (b *BodyData) Bounds(t *TransformData) gamemath.Bounds {
	return gamemath.BoundsAround(t.Position, b.Radius, b.Height)
}

// Visible reports whether any mesh part is still drawn.
func (b *BodyData) Visible() bool {
	for _, p := range b.Parts {
		if p.Visible {
			return true
		}
	}
	return false
}

var Body = donburi.NewComponentType[BodyData]()
