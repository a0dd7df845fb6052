package systems

import (
	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Dodge directions, picked uniformly.
const (
	dodgeRight = iota
	dodgeLeft
	dodgeBack
	dodgeDirections
)

// TryDodge marks the combatant as avoiding, plays a random directional
// dodge cue and launches it away from source. The avoid ends with the cue,
// or right away when no cue is configured for the chosen direction.
func TryDodge(e *ecs.ECS, target *donburi.Entry, source vector.Vector) bool {
	if target == nil || !target.Valid() || !target.HasComponent(components.Combatant) {
		return false
	}
	c := components.Combatant.Get(target)
	t, ok := positionOf(target)
	if !ok || source == nil {
		return false
	}

	c.IsAvoiding = true
	if brain := brainOf(target); brain != nil {
		brain.Blackboard.IsAvoiding = true
		brain.Stop(StopReasonAvoid)
	}

	toSource := gamemath.SafeNormal2D(source.Sub(t.Position))
	right := gamemath.SafeNormal(gamemath.Cross(toSource, gamemath.Up))

	cues := typeOf(c).Cues
	var dir vector.Vector
	var cue *cfg.AnimationCue
	switch rollerOf(e.World).Intn(dodgeDirections) {
	case dodgeRight:
		dir, cue = right, cues.AvoidRight
	case dodgeLeft:
		dir, cue = right.Scale(-1), cues.AvoidLeft
	default:
		dir, cue = toSource.Scale(-1), cues.AvoidBack
	}

	played := PlayCue(e, target, cue, components.CueDodge)

	if target.HasComponent(components.Movement) {
		mv := components.Movement.Get(target)
		mv.Launch(gamemath.SafeNormal(dir).Scale(mv.MaxSpeed * cfg.Combat.DodgeImpulseScale))
	}

	if !played {
		endAvoid(e, target)
	}
	return true
}

// endAvoid leaves the avoiding state and schedules the brain to resume.
func endAvoid(e *ecs.ECS, target *donburi.Entry) {
	if !target.Valid() || !target.HasComponent(components.Combatant) {
		return
	}
	c := components.Combatant.Get(target)
	c.IsAvoiding = false

	c.ResumeTimer.Cancel()
	c.ResumeTimer = Schedule(e, target, "resume-after-avoid", cfg.Combat.DodgeResumeDelay, resumeAfterAvoid)

	if c.IsBoss && rollerOf(e.World).Float64() < cfg.Combat.BossRepositionChance {
		if c.Health <= 0 {
			return
		}
		TryReposition(e, target)
	}
}

func resumeAfterAvoid(e *ecs.ECS, owner *donburi.Entry) {
	c := components.Combatant.Get(owner)
	c.ResumeTimer = nil
	if c.IsDead {
		return
	}
	if brain := brainOf(owner); brain != nil {
		brain.Blackboard.IsAvoiding = false
		brain.Start()
	}
}
