package systems

import (
	"log"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/automoto/xv-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DropItem rolls the combatant's loot table and spawns the picked item
// above it with gravity on. Empty tables and empty entries drop nothing.
func DropItem(e *ecs.ECS, target *donburi.Entry) *donburi.Entry {
	if target == nil || !target.Valid() || !target.HasComponent(components.Loot) {
		return nil
	}
	t, ok := positionOf(target)
	if !ok {
		return nil
	}

	name := components.Loot.Get(target).Table
	table, ok := cfg.Loot.Tables[name]
	if !ok {
		return nil
	}
	entry, ok := table.PickRandomEntry(rollerOf(e.World))
	if !ok || entry.ItemClass == "" {
		return nil
	}

	at := t.Position.Add(gamemath.Vec3(0, 0, cfg.Combat.LootSpawnHeight))
	item := factory.CreateItem(e, entry.ItemClass, at, true)
	if item != nil {
		log.Printf("[loot] %v dropped %s", target.Entity(), entry.ItemClass)
	}
	return item
}
