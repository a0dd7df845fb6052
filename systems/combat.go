package systems

import (
	"log"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/events"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DamageOutcome reports how a combatant resolved a hit.
type DamageOutcome int

const (
	DamageIgnored     DamageOutcome = iota // target is not a combatant
	DamageAlreadyDead                      // target was dead, nothing changed
	DamageAbsorbed                         // target was avoiding
	DamageKilled
	DamageDodged
	DamagePain
	DamageNoReaction // survived without dodging or flinching
)

func (o DamageOutcome) String() string {
	switch o {
	case DamageIgnored:
		return "ignored"
	case DamageAlreadyDead:
		return "already-dead"
	case DamageAbsorbed:
		return "absorbed"
	case DamageKilled:
		return "killed"
	case DamageDodged:
		return "dodged"
	case DamagePain:
		return "pain"
	case DamageNoReaction:
		return "no-reaction"
	}
	return "unknown"
}

// Brain stop reasons
const (
	StopReasonDead   = "Dead"
	StopReasonAvoid  = "Avoid"
	StopReasonDamage = "Damaged"
)

// ApplyDamageTo routes damage to whichever health model the target has.
func ApplyDamageTo(e *ecs.ECS, target *donburi.Entry, amount float64, source vector.Vector) {
	if target == nil || !target.Valid() {
		return
	}
	switch {
	case target.HasComponent(components.Combatant):
		ApplyDamage(e, target, amount, source)
	case target.HasComponent(components.Player):
		AddPlayerDamage(e, target, amount)
	}
}

// QueueDamage defers a hit to the next UpdateCombat.
func QueueDamage(target *donburi.Entry, amount float64, source vector.Vector) {
	if target == nil || !target.Valid() {
		return
	}
	hit := components.DamageHit{Amount: amount, Source: source}
	if target.HasComponent(components.DamageEvent) {
		ev := components.DamageEvent.Get(target)
		ev.Hits = append(ev.Hits, hit)
		return
	}
	donburi.Add(target, components.DamageEvent, &components.DamageEventData{
		Hits: []components.DamageHit{hit},
	})
}

// UpdateCombat drains queued hits in arrival order.
func UpdateCombat(e *ecs.ECS) {
	var pending []*donburi.Entry
	components.DamageEvent.Each(e.World, func(entry *donburi.Entry) {
		pending = append(pending, entry)
	})

	for _, entry := range pending {
		if !entry.Valid() {
			continue
		}
		hits := components.DamageEvent.Get(entry).Hits
		donburi.Remove[components.DamageEventData](entry, components.DamageEvent)
		for _, hit := range hits {
			if !entry.Valid() {
				break
			}
			ApplyDamageTo(e, entry, hit.Amount, hit.Source)
		}
	}
}

// ApplyDamage resolves one hit against a combatant. source is where the
// damage came from, nil when unknown; the dodge falls back to the active
// player's location. It never fails: unusable targets and missing
// collaborators are logged and skipped.
func ApplyDamage(e *ecs.ECS, target *donburi.Entry, amount float64, source vector.Vector) DamageOutcome {
	if target == nil || !target.Valid() || !target.HasComponent(components.Combatant) {
		return DamageIgnored
	}
	c := components.Combatant.Get(target)

	if c.IsDead {
		log.Printf("[combat] %s %v took %.1f damage after death, ignoring", c.TypeName, target.Entity(), amount)
		haltBrain(target, StopReasonDead)
		return DamageAlreadyDead
	}
	if c.IsAvoiding {
		return DamageAbsorbed
	}

	entity, isBoss, maxHealth := target.Entity(), c.IsBoss, c.MaxHealth
	outcome := resolveDamage(e, target, c, amount, source)
	if isBoss {
		// A kill may already have despawned the target
		health := 0.0
		if outcome != DamageKilled {
			health = c.Health
		}
		events.BossDamagedEvent.Publish(e.World, events.BossDamaged{
			Entity:    entity,
			Amount:    amount,
			Health:    health,
			MaxHealth: maxHealth,
			Outcome:   outcome.String(),
		})
	}
	return outcome
}

// resolveDamage picks the single reaction to a hit on a living combatant
// that is not avoiding.
func resolveDamage(e *ecs.ECS, target *donburi.Entry, c *components.CombatantData, amount float64, source vector.Vector) DamageOutcome {
	if c.Health-amount <= 0 {
		c.Health = 0
		die(e, target)
		return DamageKilled
	}

	roller := rollerOf(e.World)
	threshold := avoidThreshold(c)

	if c.Health > cfg.Combat.AvoidHealthGate && !c.IsAvoiding && roller.Float64() < threshold {
		loc := damageSource(e.World, source)
		if loc == nil {
			log.Printf("[combat] %s %v: no damage source to dodge from", c.TypeName, target.Entity())
			return DamageNoReaction
		}
		if !TryDodge(e, target, loc) {
			return DamageNoReaction
		}
		return DamageDodged
	}

	if c.Health > cfg.Combat.PainHealthGate && !c.IsAvoiding && roller.Float64() > threshold {
		c.Health -= amount
		haltBrain(target, StopReasonDamage)
		playPain(e, target)
		return DamagePain
	}

	return DamageNoReaction
}

func avoidThreshold(c *components.CombatantData) float64 {
	if c.IsBoss {
		return cfg.Combat.BossAvoidChance
	}
	return c.AvoidChance
}

func damageSource(w donburi.World, source vector.Vector) vector.Vector {
	if source != nil {
		return source
	}
	player, ok := ActivePlayer(w)
	if !ok {
		return nil
	}
	if t, ok := positionOf(player); ok {
		return t.Position
	}
	return nil
}

func typeOf(c *components.CombatantData) *cfg.EnemyTypeConfig {
	if c.TypeConfig != nil {
		return c.TypeConfig
	}
	return &cfg.EnemyTypeConfig{}
}

func playPain(e *ecs.ECS, target *donburi.Entry) {
	c := components.Combatant.Get(target)
	cues := typeOf(c).Cues.Pain
	if len(cues) == 0 {
		onPainEnded(e, target)
		return
	}
	cue := &cues[rollerOf(e.World).Intn(len(cues))]
	PlayCue(e, target, cue, components.CuePain)
}

// onPainEnded runs when a pain cue finishes or is interrupted.
func onPainEnded(e *ecs.ECS, target *donburi.Entry) {
	if !target.Valid() || !target.HasComponent(components.Combatant) {
		return
	}
	c := components.Combatant.Get(target)
	if c.IsDead || c.IsAvoiding {
		return
	}
	startBrain(target)
	if c.IsBoss && rollerOf(e.World).Float64() < cfg.Combat.BossRepositionChance {
		if c.Health <= 0 {
			return
		}
		TryReposition(e, target)
	}
}

// die runs the death sequence. The order matters: loot drops before
// collision is disabled and the kill is reported before the dead flag.
func die(e *ecs.ECS, target *donburi.Entry) {
	c := components.Combatant.Get(target)
	typ := typeOf(c)

	var location vector.Vector
	if t, ok := positionOf(target); ok {
		location = t.Position.Clone()
	}

	DropItem(e, target)

	if c.IsBoss && typ.DeathSound != cfg.SoundNone {
		if target.HasComponent(components.Movement) {
			components.Movement.Get(target).GravityScale = 0
		}
		events.PlaySoundEvent.Publish(e.World, events.PlaySound{Sound: typ.DeathSound, Location: location})
	}

	if target.HasComponent(components.Perception) {
		components.Perception.Get(target).Active = false
	}

	disableCollision(e.World, target)

	events.CombatantKilledEvent.Publish(e.World, events.CombatantKilled{
		Entity:   target.Entity(),
		TypeName: c.TypeName,
		IsBoss:   c.IsBoss,
		Location: location,
	})

	c.IsDead = true
	if brain := brainOf(target); brain != nil {
		brain.Blackboard.IsDead = true
		brain.HasFocus = false
		brain.Stop(StopReasonDead)
	}
	if target.HasComponent(components.Movement) {
		mv := components.Movement.Get(target)
		mv.StopImmediately()
		mv.Disabled = true
	}

	log.Printf("[combat] %s %v died", c.TypeName, target.Entity())

	if typ.Cues.Death == nil {
		startDespawn(e, target)
		return
	}
	if c.IsBoss {
		events.SlowMotionEvent.Publish(e.World, events.SlowMotion{
			Dilation: cfg.Combat.SlowMotionDilation,
			Duration: cfg.Combat.SlowMotionDuration,
		})
	}
	PlayCue(e, target, typ.Cues.Death, components.CueDeath)
}

func disableCollision(w donburi.World, target *donburi.Entry) {
	if target.HasComponent(components.Body) {
		body := components.Body.Get(target)
		body.CollisionEnabled = false
		body.AffectsNavigation = false
		for i := range body.Parts {
			body.Parts[i].CollisionEnabled = false
		}
	}
	removeObject(w, target)
}
