package systems

import (
	"math"

	"github.com/automoto/xv-arena/components"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/automoto/xv-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func brainOf(entry *donburi.Entry) *components.BrainData {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Brain) {
		return nil
	}
	return components.Brain.Get(entry)
}

func haltBrain(entry *donburi.Entry, reason string) {
	if brain := brainOf(entry); brain != nil {
		brain.Stop(reason)
	}
	if entry.HasComponent(components.Movement) {
		components.Movement.Get(entry).Input = nil
	}
}

func startBrain(entry *donburi.Entry) {
	if brain := brainOf(entry); brain != nil {
		brain.Start()
	}
}

// SetAttackMode switches the combatant between walk and attack speeds.
func SetAttackMode(entry *donburi.Entry, on bool) {
	if brain := brainOf(entry); brain != nil {
		brain.AttackMode = on
	}
	if !entry.HasComponent(components.Movement) {
		return
	}
	mv := components.Movement.Get(entry)
	if on {
		mv.MaxSpeed = mv.AttackModeSpeed
	} else {
		mv.MaxSpeed = mv.WalkSpeed
	}
}

func onAttackEnded(entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	SetAttackMode(entry, false)
}

// UpdateBrains runs the per-tick decisions of every running brain: turn
// toward the player, close the distance, and fire the attack cue when in
// range and off cooldown.
func UpdateBrains(e *ecs.ECS) {
	dt := scaledDT(e.World)
	player, hasPlayer := ActivePlayer(e.World)
	var target *components.TransformData
	if hasPlayer {
		target, hasPlayer = positionOf(player)
	}

	var attackers []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		brain := components.Brain.Get(entry)
		if brain.AttackCooldown > 0 {
			brain.AttackCooldown -= dt
		}
		mv := components.Movement.Get(entry)
		if !brain.Running || !hasPlayer {
			mv.Input = nil
			brain.HasFocus = false
			return
		}
		c := components.Combatant.Get(entry)
		if c.IsDead || c.IsAvoiding {
			return
		}

		t := components.Transform.Get(entry)
		perception := components.Perception.Get(entry)
		dist := gamemath.Dist2D(t.Position, target.Position)
		if !perception.Active || (perception.SightRadius > 0 && dist > perception.SightRadius) {
			mv.Input = nil
			brain.HasFocus = false
			return
		}

		brain.HasFocus = true
		to := target.Position.Sub(t.Position)
		step := mv.RotateSpeed * math.Pi / 180 * dt
		t.Yaw = gamemath.ApproachAngle(t.Yaw, gamemath.YawOf(to), step)

		if dist > brain.AttackRange {
			mv.Input = gamemath.SafeNormal2D(to)
			return
		}
		mv.Input = nil

		anim := components.Animation.Get(entry)
		if brain.AttackCooldown <= 0 && !anim.Playing() && typeOf(c).Cues.Attack != nil {
			attackers = append(attackers, entry)
		}
	})

	// Cues start after the query so end handlers never run mid-iteration.
	for _, entry := range attackers {
		c := components.Combatant.Get(entry)
		brain := components.Brain.Get(entry)
		SetAttackMode(entry, true)
		if PlayCue(e, entry, typeOf(c).Cues.Attack, components.CueAttack) {
			brain.AttackCooldown = typeOf(c).AttackCooldown
		}
	}
}
