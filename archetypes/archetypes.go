package archetypes

import (
	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Movement,
		components.Body,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Combatant,
		components.Transform,
		components.Movement,
		components.Body,
		components.Object,
		components.Brain,
		components.Perception,
		components.Animation,
		components.Loot,
	)
	Weapon = newArchetype(
		tags.Weapon,
		components.Weapon,
		components.Transform,
	)
	Item = newArchetype(
		tags.Pickup,
		components.Item,
		components.Transform,
	)
	Blocker = newArchetype(
		tags.Blocker,
		components.Blocker,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	World = newArchetype(
		components.Clock,
		components.Scheduler,
		components.Effects,
		components.Director,
		components.Navigation,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
