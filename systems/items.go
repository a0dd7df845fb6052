package systems

import (
	"log"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/events"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/automoto/xv-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateItems drops physics items to the ground and lets the active player
// collect grounded ones within reach.
func UpdateItems(e *ecs.ECS) {
	dt := scaledDT(e.World)
	player, hasPlayer := ActivePlayer(e.World)
	var pt *components.TransformData
	if hasPlayer {
		pt, hasPlayer = positionOf(player)
	}

	var collected []*donburi.Entry
	tags.Pickup.Each(e.World, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)
		t := components.Transform.Get(entry)

		if item.SimulatePhysics && !item.Grounded {
			if item.Velocity == nil {
				item.Velocity = gamemath.Zero()
			}
			if item.EnableGravity {
				item.Velocity[2] -= cfg.Physics.Gravity * dt
			}
			t.Position = t.Position.Add(item.Velocity.Scale(dt))
			if t.Position[2] <= cfg.Physics.GroundZ {
				t.Position[2] = cfg.Physics.GroundZ
				item.Velocity = gamemath.Zero()
				item.Grounded = true
			}
		}

		if !hasPlayer || (item.SimulatePhysics && !item.Grounded) {
			return
		}
		reach := cfg.Player.PickupRadius + item.Radius
		if gamemath.Dist2D(t.Position, pt.Position) <= reach {
			collected = append(collected, entry)
		}
	})

	for _, entry := range collected {
		CollectItem(e, player, entry)
	}
}

// CollectItem applies an item to the player and removes it from the world.
func CollectItem(e *ecs.ECS, player, item *donburi.Entry) bool {
	p := playerOf(player)
	if p == nil || p.IsDie || item == nil || !item.Valid() || !item.HasComponent(components.Item) {
		return false
	}
	data := components.Item.Get(item)
	switch data.Kind {
	case cfg.ItemPotion:
		SetHealthPotionCount(e, player, p.HealthPotionCount+1)
	default:
		SetCurrentItem(e, player, data.Class)
	}

	if t, ok := positionOf(item); ok {
		events.PlaySoundEvent.Publish(e.World, events.PlaySound{Sound: cfg.SoundPickup, Location: t.Position})
	}
	log.Printf("[loot] player picked up %s (%s)", data.Class, data.ID)
	e.World.Remove(item.Entity())
	return true
}
