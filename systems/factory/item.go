package factory

import (
	"log"

	"github.com/automoto/xv-arena/archetypes"
	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/google/uuid"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateItem spawns a pickup of class at pos. With physics on it falls to
// the ground before it can be collected. Unknown classes are skipped.
func CreateItem(ecs *ecs.ECS, class string, pos vector.Vector, simulatePhysics bool) *donburi.Entry {
	ic, ok := cfg.Item.Classes[class]
	if !ok {
		log.Printf("[loot] Warning: unknown item class %q", class)
		return nil
	}

	item := archetypes.Item.Spawn(ecs)
	components.Item.SetValue(item, components.ItemData{
		ID:              uuid.NewString(),
		Class:           class,
		Kind:            ic.Kind,
		Radius:          ic.Radius,
		SimulatePhysics: simulatePhysics,
		EnableGravity:   simulatePhysics,
		Velocity:        gamemath.Zero(),
		Grounded:        !simulatePhysics,
	})
	components.Transform.SetValue(item, components.TransformData{Position: pos.Clone()})
	return item
}
