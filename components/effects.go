package components

import (
	"github.com/automoto/xv-arena/config"
	"github.com/kvartborg/vector"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EffectInstance is a spawned visual effect waiting to expire.
type EffectInstance struct {
	Effect   config.EffectID
	Location vector.Vector
	TTL      float64
}

// SoundRequest is a queued positional sound.
type SoundRequest struct {
	Sound    config.SoundID
	Location vector.Vector
}

// EffectsData is the singleton presentation state: queued sounds, live
// effects and the time dilation curve.
type EffectsData struct {
	PendingSFX []SoundRequest
	Active     []EffectInstance

	SlowMotion *gween.Tween

	SoundsPlayed   int
	EffectsSpawned int
}

var Effects = donburi.NewComponentType[EffectsData]()
