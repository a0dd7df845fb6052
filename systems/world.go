package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/xv-arena/archetypes"
	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/events"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetupWorld creates the world singletons and wires the event subscribers.
// A nil roller seeds one from the clock.
func SetupWorld(e *ecs.ECS, roller gamemath.Roller) *donburi.Entry {
	if roller == nil {
		roller = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	entry := archetypes.World.Spawn(e)
	components.Clock.SetValue(entry, components.ClockData{
		TPS:      cfg.C.TPS,
		Dilation: 1,
		Rand:     roller,
	})

	w := e.World
	events.AnimNotifyEvent.Subscribe(w, func(w donburi.World, ev events.AnimNotify) {
		onAnimNotify(e, ev)
	})
	events.SlowMotionEvent.Subscribe(w, onSlowMotion)
	events.PlaySoundEvent.Subscribe(w, onPlaySound)
	events.SpawnEffectEvent.Subscribe(w, onSpawnEffect)
	events.CombatantKilledEvent.Subscribe(w, onCombatantKilled)

	return entry
}

// RegisterSystems adds the simulation systems in tick order.
func RegisterSystems(e *ecs.ECS) {
	e.AddSystem(UpdateClock)
	e.AddSystem(UpdateBrains)
	e.AddSystem(UpdateMovement)
	e.AddSystem(UpdateItems)
	e.AddSystem(UpdateAnimations)
	e.AddSystem(UpdateCombat)
	e.AddSystem(UpdateTimers)
	e.AddSystem(UpdateEffects)
	e.AddSystem(UpdateEvents)
}

// UpdateClock advances the simulation clock by one tick.
func UpdateClock(e *ecs.ECS) {
	clock := GetClock(e.World)
	if clock == nil {
		return
	}
	clock.Frame++
	clock.Elapsed += clock.ScaledDT()
}

// UpdateEvents delivers everything queued this tick.
func UpdateEvents(e *ecs.ECS) {
	events.ProcessAll(e.World)
}

func GetClock(w donburi.World) *components.ClockData {
	entry, ok := components.Clock.First(w)
	if !ok {
		return nil
	}
	return components.Clock.Get(entry)
}

// scaledDT is the gameplay step, real time multiplied by dilation.
func scaledDT(w donburi.World) float64 {
	if clock := GetClock(w); clock != nil {
		return clock.ScaledDT()
	}
	return 1.0 / 60
}

func realDT(w donburi.World) float64 {
	if clock := GetClock(w); clock != nil {
		return clock.DT()
	}
	return 1.0 / 60
}

func rollerOf(w donburi.World) gamemath.Roller {
	if clock := GetClock(w); clock != nil && clock.Rand != nil {
		return clock.Rand
	}
	return fallbackRand
}

var fallbackRand = rand.New(rand.NewSource(1))

func spaceOf(w donburi.World) *resolv.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

func navigatorOf(w donburi.World) components.Navigator {
	entry, ok := components.Navigation.First(w)
	if !ok {
		return nil
	}
	return components.Navigation.Get(entry).Nav
}

// SetNavigator installs the terrain service used for repositioning.
func SetNavigator(w donburi.World, nav components.Navigator) {
	entry, ok := components.Navigation.First(w)
	if !ok {
		return
	}
	components.Navigation.Get(entry).Nav = nav
}

// ActivePlayer returns the player entity that enemies target, if any.
func ActivePlayer(w donburi.World) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Player.Each(w, func(entry *donburi.Entry) {
		if found != nil {
			return
		}
		if !components.Player.Get(entry).IsDie {
			found = entry
		}
	})
	return found, found != nil
}

func positionOf(entry *donburi.Entry) (*components.TransformData, bool) {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Transform) {
		return nil, false
	}
	return components.Transform.Get(entry), true
}

// syncObject moves the entity's resolv object to match its transform.
func syncObject(entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) || !entry.HasComponent(components.Transform) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	t := components.Transform.Get(entry)
	obj.X = t.Position[0] - obj.W/2
	obj.Y = t.Position[1] - obj.H/2
	obj.Update()
}

// removeObject takes the entity's resolv object out of the space.
func removeObject(w donburi.World, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	if space := spaceOf(w); space != nil {
		space.Remove(obj.Object)
	}
	obj.Object = nil
}
