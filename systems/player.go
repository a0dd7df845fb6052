package systems

import (
	"log"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/events"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/automoto/xv-arena/tags"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func playerOf(entry *donburi.Entry) *components.PlayerData {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Player) {
		return nil
	}
	return components.Player.Get(entry)
}

// SetPlayerHealth sets health clamped to [0, MaxHealth]. Reaching zero
// kills the player.
func SetPlayerHealth(e *ecs.ECS, entry *donburi.Entry, value float64) {
	p := playerOf(entry)
	if p == nil || p.IsDie {
		return
	}
	prev := p.Health
	p.Health = max(0, min(value, p.MaxHealth))
	if p.Health != prev {
		events.HealthChangedEvent.Publish(e.World, events.HealthChanged{
			Entity:         entry.Entity(),
			Current:        p.Health,
			Max:            p.MaxHealth,
			PreviousHealth: prev,
		})
	}
	if p.Health <= 0 {
		KillPlayer(e, entry)
	}
}

// SetPlayerMaxHealth changes max health, clamping current health to it.
func SetPlayerMaxHealth(e *ecs.ECS, entry *donburi.Entry, value float64) {
	p := playerOf(entry)
	if p == nil || value <= 0 {
		return
	}
	p.MaxHealth = value
	if p.Health > value {
		SetPlayerHealth(e, entry, value)
		return
	}
	events.HealthChangedEvent.Publish(e.World, events.HealthChanged{
		Entity:         entry.Entity(),
		Current:        p.Health,
		Max:            p.MaxHealth,
		PreviousHealth: p.Health,
	})
}

func AddPlayerHealth(e *ecs.ECS, entry *donburi.Entry, value float64) {
	if p := playerOf(entry); p != nil {
		SetPlayerHealth(e, entry, p.Health+value)
	}
}

// AddPlayerDamage is the player's damage intake.
func AddPlayerDamage(e *ecs.ECS, entry *donburi.Entry, value float64) {
	p := playerOf(entry)
	if p == nil || p.IsDie || value <= 0 {
		return
	}
	if t, ok := positionOf(entry); ok {
		events.PlaySoundEvent.Publish(e.World, events.PlaySound{Sound: cfg.SoundPlayerHurt, Location: t.Position})
	}
	SetPlayerHealth(e, entry, p.Health-value)
}

// ConsumeHealthPotion spends one potion to heal. It reports whether a
// potion was used.
func ConsumeHealthPotion(e *ecs.ECS, entry *donburi.Entry) bool {
	p := playerOf(entry)
	if p == nil || p.IsDie || p.HealthPotionCount <= 0 {
		return false
	}
	SetHealthPotionCount(e, entry, p.HealthPotionCount-1)
	AddPlayerHealth(e, entry, cfg.Player.PotionHeal)
	return true
}

func SetHealthPotionCount(e *ecs.ECS, entry *donburi.Entry, count int) {
	p := playerOf(entry)
	if p == nil {
		return
	}
	p.HealthPotionCount = max(0, count)
	events.PotionCountChangedEvent.Publish(e.World, events.PotionCountChanged{
		Entity: entry.Entity(),
		Count:  p.HealthPotionCount,
	})
}

func SetCurrentItem(e *ecs.ECS, entry *donburi.Entry, item string) {
	p := playerOf(entry)
	if p == nil || p.CurrentItem == item {
		return
	}
	p.CurrentItem = item
	events.CurrentItemChangedEvent.Publish(e.World, events.CurrentItemChanged{
		Entity: entry.Entity(),
		Item:   item,
	})
}

func SetPlayerWeapon(e *ecs.ECS, entry *donburi.Entry, slot components.WeaponSlot) {
	p := playerOf(entry)
	if p == nil || p.Weapon == slot {
		return
	}
	p.Weapon = slot
	events.WeaponChangedEvent.Publish(e.World, events.WeaponChanged{
		Entity: entry.Entity(),
		Weapon: slot,
	})
}

// SetPlayerStance updates the movement flags and the resulting max speed.
// Sitting wins over aiming, aiming wins over running.
func SetPlayerStance(entry *donburi.Entry, running, sitting, aiming bool) {
	p := playerOf(entry)
	if p == nil {
		return
	}
	p.Running, p.Sitting, p.Aiming = running, sitting, aiming
	if !entry.HasComponent(components.Movement) {
		return
	}
	mv := components.Movement.Get(entry)
	switch {
	case sitting:
		mv.MaxSpeed = cfg.Player.SitSpeed
	case aiming:
		mv.MaxSpeed = cfg.Player.AimSpeed
	case running:
		mv.MaxSpeed = cfg.Player.SprintSpeed
	default:
		mv.MaxSpeed = cfg.Player.NormalSpeed
	}
}

// KillPlayer marks the player dead, stops it and schedules removal after
// the die delay.
func KillPlayer(e *ecs.ECS, entry *donburi.Entry) {
	p := playerOf(entry)
	if p == nil || p.IsDie {
		return
	}
	p.IsDie = true
	if entry.HasComponent(components.Movement) {
		mv := components.Movement.Get(entry)
		mv.StopImmediately()
		mv.Disabled = true
	}
	events.PlayerDiedEvent.Publish(e.World, events.PlayerDied{Entity: entry.Entity()})
	log.Printf("[player] %v died", entry.Entity())

	p.DieTimer = Schedule(e, entry, "player-die", cfg.Player.DieDelay, onDieFinished)
}

func onDieFinished(e *ecs.ECS, entry *donburi.Entry) {
	RemovePlayer(e, entry)
}

// RemovePlayer takes the player out of the world and the collision space.
func RemovePlayer(e *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if p := playerOf(entry); p != nil {
		p.DieTimer.Cancel()
	}
	removeObject(e.World, entry)
	e.World.Remove(entry.Entity())
}

// SetPlayerInput steers the player along dir on the ground plane. A zero
// direction releases the input; otherwise the player turns to face it.
func SetPlayerInput(entry *donburi.Entry, dir vector.Vector) {
	p := playerOf(entry)
	if p == nil || p.IsDie || !entry.HasComponent(components.Movement) {
		return
	}
	mv := components.Movement.Get(entry)
	if len(dir) < 2 {
		mv.Input = nil
		return
	}
	n := gamemath.SafeNormal2D(dir)
	if n.Magnitude() == 0 {
		mv.Input = nil
		return
	}
	mv.Input = n
	components.Transform.Get(entry).Yaw = gamemath.YawOf(n)
}

// PlayerShoot fires at the nearest living combatant inside the aim cone and
// range. It returns the target hit, or nil.
func PlayerShoot(e *ecs.ECS, entry *donburi.Entry) (*donburi.Entry, DamageOutcome) {
	p := playerOf(entry)
	pt, ok := positionOf(entry)
	if p == nil || p.IsDie || !ok {
		return nil, DamageIgnored
	}
	fwd := pt.Forward()

	var best *donburi.Entry
	bestDist := cfg.Player.ShotRange
	tags.Enemy.Each(e.World, func(candidate *donburi.Entry) {
		if components.Combatant.Get(candidate).IsDead {
			return
		}
		ct := components.Transform.Get(candidate)
		to := vector.Vector{ct.Position[0] - pt.Position[0], ct.Position[1] - pt.Position[1], 0}
		dist := to.Magnitude()
		if dist > bestDist || dist == 0 {
			return
		}
		if to.Scale(1/dist).Dot(fwd) < cfg.Player.ShotCone {
			return
		}
		best, bestDist = candidate, dist
	})

	events.PlaySoundEvent.Publish(e.World, events.PlaySound{Sound: cfg.SoundShot, Location: pt.Position})
	if best == nil {
		return nil, DamageIgnored
	}
	return best, ApplyDamage(e, best, cfg.Player.ShotDamage, pt.Position.Clone())
}
