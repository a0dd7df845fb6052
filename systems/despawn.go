package systems

import (
	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// startDespawn freezes and hides a dead combatant and schedules its
// removal. Runs once.
func startDespawn(e *ecs.ECS, target *donburi.Entry) {
	if !target.Valid() || !target.HasComponent(components.Combatant) {
		return
	}
	c := components.Combatant.Get(target)
	if c.Despawning {
		return
	}
	c.Despawning = true

	if target.HasComponent(components.Animation) {
		components.Animation.Get(target).Frozen = true
	}
	if target.HasComponent(components.Body) {
		body := components.Body.Get(target)
		for i := range body.Parts {
			body.Parts[i].Visible = false
		}
	}

	c.DespawnTimer = Schedule(e, target, "despawn", cfg.Combat.DespawnDelay, func(e *ecs.ECS, owner *donburi.Entry) {
		RemoveCombatant(e, owner)
	})
}

// RemoveCombatant destroys a combatant with its weapon. Owned timers are
// cancelled so nothing fires against the removed entity.
func RemoveCombatant(e *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Combatant) {
		c := components.Combatant.Get(entry)
		c.ResumeTimer.Cancel()
		c.DespawnTimer.Cancel()
		if c.Weapon != nil && c.Weapon.Valid() {
			e.World.Remove(c.Weapon.Entity())
		}
		c.Weapon = nil
	}
	removeObject(e.World, entry)
	e.World.Remove(entry.Entity())
}
