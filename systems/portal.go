package systems

import (
	"log"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TryReposition teleports the combatant to a traversable point behind the
// active player. Facing is kept. It reports whether a teleport happened;
// a missing navigator or player is a silent no-op.
func TryReposition(e *ecs.ECS, target *donburi.Entry) bool {
	t, ok := positionOf(target)
	if !ok {
		return false
	}
	nav := navigatorOf(e.World)
	if nav == nil {
		return false
	}
	player, ok := ActivePlayer(e.World)
	if !ok {
		return false
	}
	pt, ok := positionOf(player)
	if !ok {
		return false
	}

	dest, ok := findRepositionPoint(nav, rollerOf(e.World), pt)
	if !ok {
		log.Printf("[combat] %v: no reposition point behind player", target.Entity())
		return false
	}

	t.Position = dest
	if target.HasComponent(components.Movement) {
		components.Movement.Get(target).StopImmediately()
	}
	syncObject(target)
	return true
}

// findRepositionPoint tries, in order: a random reachable point around the
// spot behind the player, random offsets in the ring [MinRadius,
// RandomRadius] projected onto terrain, and finally the spot itself.
func findRepositionPoint(nav components.Navigator, r gamemath.Roller, player *components.TransformData) (vector.Vector, bool) {
	rc := cfg.Reposition
	base := player.Position.Sub(player.Forward().Scale(rc.BehindDistance))

	if p, ok := nav.RandomReachablePoint(base, rc.RandomRadius); ok &&
		gamemath.DistSquared(p, base) >= rc.MinRadius*rc.MinRadius {
		return p, true
	}

	for i := 0; i < rc.MaxTries; i++ {
		dir := gamemath.RandUnit2D(r)
		dist := gamemath.RandRange(r, rc.MinRadius, rc.RandomRadius)
		if p, ok := nav.ProjectToTraversable(base.Add(dir.Scale(dist))); ok {
			return p, true
		}
	}

	return nav.ProjectToTraversable(base)
}
