package systems

import (
	"testing"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/automoto/xv-arena/systems/factory"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dbevents "github.com/yohamta/donburi/features/events"
)

// scriptedRoller replays fixed rolls. Once a script runs out it keeps
// returning the fallback values.
type scriptedRoller struct {
	floats    []float64
	ints      []int
	fallbackF float64
	fallbackI int
}

func (r *scriptedRoller) Float64() float64 {
	if len(r.floats) == 0 {
		return r.fallbackF
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRoller) Intn(n int) int {
	v := r.fallbackI
	if len(r.ints) > 0 {
		v = r.ints[0]
		r.ints = r.ints[1:]
	}
	if v >= n {
		return n - 1
	}
	return v
}

// rolls builds a roller. The default fallback float never dodges and
// always takes the pain branch.
func rolls(floats []float64, ints ...int) *scriptedRoller {
	return &scriptedRoller{floats: floats, ints: ints, fallbackF: 0.99}
}

func newTestECS(t *testing.T, r gamemath.Roller) *ecs.ECS {
	t.Helper()
	cfg.SetDefaults()
	t.Cleanup(cfg.SetDefaults)

	e := ecs.NewECS(donburi.NewWorld())
	SetupWorld(e, r)
	factory.CreateSpace(e, cfg.C.ArenaWidth, cfg.C.ArenaHeight, cfg.C.SpaceCell, cfg.C.SpaceCell)
	return e
}

func spawnEnemy(e *ecs.ECS, typeName string, x, y float64) *donburi.Entry {
	return factory.CreateCombatant(e, typeName, gamemath.Vec3(x, y, 0), 0)
}

func spawnPlayer(e *ecs.ECS, x, y float64) *donburi.Entry {
	return factory.CreatePlayer(e, gamemath.Vec3(x, y, 0))
}

// advance runs the time driven systems for the given gameplay seconds.
func advance(e *ecs.ECS, seconds float64) {
	ticks := int(seconds*float64(cfg.C.TPS)) + 1
	for i := 0; i < ticks; i++ {
		UpdateClock(e)
		UpdateAnimations(e)
		UpdateCombat(e)
		UpdateTimers(e)
		UpdateEffects(e)
		UpdateEvents(e)
	}
}

func combatantOf(entry *donburi.Entry) *components.CombatantData {
	return components.Combatant.Get(entry)
}

func count[T any](w donburi.World, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

// fakeNav answers terrain queries from canned results.
type fakeNav struct {
	reachable    vector.Vector
	reachableOK  bool
	project      func(p vector.Vector) (vector.Vector, bool)
	projectCalls int
}

func (n *fakeNav) RandomReachablePoint(center vector.Vector, radius float64) (vector.Vector, bool) {
	return n.reachable, n.reachableOK
}

func (n *fakeNav) ProjectToTraversable(p vector.Vector) (vector.Vector, bool) {
	n.projectCalls++
	if n.project == nil {
		return nil, false
	}
	return n.project(p)
}

// captured records events of one type as they are delivered.
type captured[T any] struct {
	got []T
}

func capture[T any](w donburi.World, et *dbevents.EventType[T]) *captured[T] {
	c := &captured[T]{}
	et.Subscribe(w, func(_ donburi.World, ev T) {
		c.got = append(c.got, ev)
	})
	return c
}
