package systems

import (
	"math"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/automoto/xv-arena/tags"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement integrates character velocities. Ground speed accelerates
// toward Input*MaxSpeed and brakes otherwise; anything above MaxSpeed (a
// dodge launch) is braked back down first. Characters are pushed out of
// solid blockers on the ground plane.
func UpdateMovement(e *ecs.ECS) {
	dt := scaledDT(e.World)
	space := spaceOf(e.World)

	components.Movement.Each(e.World, func(entry *donburi.Entry) {
		mv := components.Movement.Get(entry)
		if mv.Disabled {
			return
		}
		t := components.Transform.Get(entry)
		if mv.Velocity == nil {
			mv.Velocity = gamemath.Zero()
		}

		ground := vector.Vector{mv.Velocity[0], mv.Velocity[1], 0}
		speed := ground.Magnitude()
		switch {
		case speed > mv.MaxSpeed:
			ground = brake(ground, speed, mv.Deceleration*math.Max(mv.BrakingFriction, 1)*dt)
		case mv.Input != nil:
			ground = ground.Add(mv.Input.Scale(mv.Acceleration * dt))
			if m := ground.Magnitude(); m > mv.MaxSpeed {
				ground = ground.Scale(mv.MaxSpeed / m)
			}
		default:
			ground = brake(ground, speed, mv.Deceleration*dt)
		}

		vz := mv.Velocity[2]
		airborne := t.Position[2] > cfg.Physics.GroundZ || vz > 0
		if airborne {
			vz -= cfg.Physics.Gravity * mv.GravityScale * dt
		}
		mv.Velocity = vector.Vector{ground[0], ground[1], vz}

		next := t.Position.Add(mv.Velocity.Scale(dt))
		if next[2] <= cfg.Physics.GroundZ {
			next[2] = cfg.Physics.GroundZ
			mv.Velocity[2] = 0
		}
		if space != nil && entry.HasComponent(components.Object) {
			next = resolveSolids(entry, t.Position, next)
		}
		t.Position = clampToArena(next)
		syncObject(entry)
	})
}

func brake(v vector.Vector, speed, amount float64) vector.Vector {
	if speed <= amount || speed == 0 {
		return gamemath.Zero()
	}
	return v.Scale((speed - amount) / speed)
}

// resolveSolids cancels the axis that would move the body into a blocker.
func resolveSolids(entry *donburi.Entry, from, to vector.Vector) vector.Vector {
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return to
	}
	dx, dy := to[0]-from[0], to[1]-from[1]
	if obj.Check(dx, 0, tags.ResolvSolid) != nil {
		to[0] = from[0]
	}
	if obj.Check(to[0]-from[0], dy, tags.ResolvSolid) != nil {
		to[1] = from[1]
	}
	return to
}

func clampToArena(p vector.Vector) vector.Vector {
	w, h := float64(cfg.C.ArenaWidth), float64(cfg.C.ArenaHeight)
	p[0] = math.Max(0, math.Min(w, p[0]))
	p[1] = math.Max(0, math.Min(h, p[1]))
	return p
}
