package components

import (
	"github.com/automoto/xv-arena/config"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

type ItemData struct {
	ID    string // instance id
	Class string
	Kind  config.ItemKind

	Radius          float64
	SimulatePhysics bool
	EnableGravity   bool
	Velocity        vector.Vector
	Grounded        bool
}

var Item = donburi.NewComponentType[ItemData]()

// WeaponData is a weapon attached to a combatant. Socket offsets are local
// to the owner's facing and feet.
type WeaponData struct {
	Type             string
	Owner            donburi.Entity
	MuzzleOffset     vector.Vector
	ShellEjectOffset vector.Vector
}

var Weapon = donburi.NewComponentType[WeaponData]()
