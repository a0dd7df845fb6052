package systems

import (
	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayCue starts cue on entry. A cue that is still playing is interrupted
// and its end handler runs first with interrupted set.
func PlayCue(e *ecs.ECS, entry *donburi.Entry, cue *cfg.AnimationCue, purpose components.CuePurpose) bool {
	if cue == nil || entry == nil || !entry.Valid() || !entry.HasComponent(components.Animation) {
		return false
	}
	anim := components.Animation.Get(entry)
	if anim.Playing() {
		prev, prevPurpose := anim.Current, anim.Purpose
		anim.Clear()
		cueEnded(e, entry, prev, prevPurpose, true)
	}
	anim.Frozen = false
	anim.Begin(cue, purpose)
	return true
}

// UpdateAnimations advances every playing cue, publishing notifies and
// running end handlers for cues that finish this tick.
func UpdateAnimations(e *ecs.ECS) {
	dt := scaledDT(e.World)

	var entries []*donburi.Entry
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})

	for _, entry := range entries {
		if !entry.Valid() {
			continue
		}
		anim := components.Animation.Get(entry)
		if !anim.Playing() {
			continue
		}
		cue, purpose := anim.Current, anim.Purpose
		passed, done := anim.Advance(dt)
		for _, n := range passed {
			events.AnimNotifyEvent.Publish(e.World, events.AnimNotify{
				Entity: entry.Entity(),
				Cue:    cue.Name,
				Notify: n.Name,
			})
		}
		if done && anim.Current == cue {
			anim.Clear()
			cueEnded(e, entry, cue, purpose, false)
		}
	}
}

func cueEnded(e *ecs.ECS, entry *donburi.Entry, cue *cfg.AnimationCue, purpose components.CuePurpose, interrupted bool) {
	events.CueEndedEvent.Publish(e.World, events.CueEnded{
		Entity:      entry.Entity(),
		Cue:         cue.Name,
		Purpose:     purpose,
		Interrupted: interrupted,
	})

	switch purpose {
	case components.CuePain:
		onPainEnded(e, entry)
	case components.CueDodge:
		endAvoid(e, entry)
	case components.CueDeath:
		startDespawn(e, entry)
	case components.CueAttack:
		onAttackEnded(entry)
	}
}

func onAnimNotify(e *ecs.ECS, ev events.AnimNotify) {
	if !e.World.Valid(ev.Entity) {
		return
	}
	entry := e.World.Entry(ev.Entity)
	switch ev.Notify {
	case cfg.NotifyRangedCheckHit:
		ResolveRangedHit(e, entry)
	}
}
