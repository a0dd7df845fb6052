package factory

import (
	"github.com/automoto/xv-arena/archetypes"
	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWeapon attaches a weapon to owner. Unknown weapon types get sockets
// at the owner's feet.
func CreateWeapon(ecs *ecs.ECS, owner *donburi.Entry, weaponType string) *donburi.Entry {
	weapon := archetypes.Weapon.Spawn(ecs)
	wc := cfg.Weapon.Types[weaponType]

	components.Weapon.SetValue(weapon, components.WeaponData{
		Type:             weaponType,
		Owner:            owner.Entity(),
		MuzzleOffset:     vector.Vector{wc.MuzzleOffset[0], wc.MuzzleOffset[1], wc.MuzzleOffset[2]},
		ShellEjectOffset: vector.Vector{wc.ShellEjectOffset[0], wc.ShellEjectOffset[1], wc.ShellEjectOffset[2]},
	})
	if owner.HasComponent(components.Transform) {
		components.Transform.SetValue(weapon, *components.Transform.Get(owner))
	}
	return weapon
}
