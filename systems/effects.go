package systems

import (
	"log"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/events"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// holdThenRelease keeps the starting dilation for the whole duration and
// snaps back to normal speed at the end.
var holdThenRelease ease.TweenFunc = func(t, b, c, d float32) float32 {
	if t < d {
		return b
	}
	return b + c
}

func effectsOf(w donburi.World) *components.EffectsData {
	entry, ok := components.Effects.First(w)
	if !ok {
		return nil
	}
	return components.Effects.Get(entry)
}

// onSlowMotion dilates gameplay time. The curve runs on real time so the
// revert is not itself slowed down. A new request replaces the old one.
func onSlowMotion(w donburi.World, ev events.SlowMotion) {
	fx := effectsOf(w)
	clock := GetClock(w)
	if fx == nil || clock == nil {
		return
	}
	if ev.Duration <= 0 || ev.Dilation <= 0 {
		return
	}
	fx.SlowMotion = gween.New(float32(ev.Dilation), 1, float32(ev.Duration), holdThenRelease)
	clock.Dilation = ev.Dilation
	log.Printf("[effects] slow motion x%.2f for %.1fs", ev.Dilation, ev.Duration)
}

func onPlaySound(w donburi.World, ev events.PlaySound) {
	fx := effectsOf(w)
	if fx == nil {
		return
	}
	fx.PendingSFX = append(fx.PendingSFX, components.SoundRequest{Sound: ev.Sound, Location: ev.Location})
	fx.SoundsPlayed++
}

func onSpawnEffect(w donburi.World, ev events.SpawnEffect) {
	fx := effectsOf(w)
	if fx == nil {
		return
	}
	ttl, ok := cfg.Effects.Lifetimes[ev.Effect]
	if !ok {
		ttl = 0.1
	}
	fx.Active = append(fx.Active, components.EffectInstance{
		Effect:   ev.Effect,
		Location: ev.Location,
		TTL:      ttl,
	})
	fx.EffectsSpawned++
}

// UpdateEffects advances the dilation curve and expires effects. Queued
// sounds an audio backend has not drained by now are dropped.
func UpdateEffects(e *ecs.ECS) {
	fx := effectsOf(e.World)
	if fx == nil {
		return
	}
	dt := realDT(e.World)

	if fx.SlowMotion != nil {
		v, done := fx.SlowMotion.Update(float32(dt))
		if clock := GetClock(e.World); clock != nil {
			clock.Dilation = float64(v)
			if done {
				clock.Dilation = 1
			}
		}
		if done {
			fx.SlowMotion = nil
		}
	}

	kept := fx.Active[:0]
	for _, inst := range fx.Active {
		inst.TTL -= dt
		if inst.TTL > 0 {
			kept = append(kept, inst)
		}
	}
	fx.Active = kept

	fx.PendingSFX = fx.PendingSFX[:0]
}
