package systems

import (
	"testing"

	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/events"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlowMotionHoldsThenReverts(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	events.SlowMotionEvent.Publish(e.World, events.SlowMotion{Dilation: 0.2, Duration: 3})
	UpdateEvents(e)

	clock := GetClock(e.World)
	assert.Equal(t, 0.2, clock.Dilation)
	assert.InDelta(t, 0.2/60, scaledDT(e.World), 1e-9)

	advance(e, 1.5)
	assert.InDelta(t, 0.2, clock.Dilation, 1e-6)

	advance(e, 1.6)
	assert.Equal(t, 1.0, clock.Dilation)
	assert.Nil(t, effectsOf(e.World).SlowMotion)
}

func TestSlowMotionRejectsInvalidRequests(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	events.SlowMotionEvent.Publish(e.World, events.SlowMotion{Dilation: 0.2, Duration: 0})
	events.SlowMotionEvent.Publish(e.World, events.SlowMotion{Dilation: 0, Duration: 2})
	UpdateEvents(e)

	assert.Equal(t, 1.0, GetClock(e.World).Dilation)
	assert.Nil(t, effectsOf(e.World).SlowMotion)
}

func TestSoundsQueueUntilEffectsTick(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	at := gamemath.Vec3(10, 20, 0)
	events.PlaySoundEvent.Publish(e.World, events.PlaySound{Sound: cfg.SoundShot, Location: at})
	UpdateEvents(e)

	fx := effectsOf(e.World)
	require.Len(t, fx.PendingSFX, 1)
	assert.Equal(t, cfg.SoundShot, fx.PendingSFX[0].Sound)
	assert.Equal(t, at, fx.PendingSFX[0].Location)

	UpdateEffects(e)
	assert.Empty(t, fx.PendingSFX)
	assert.Equal(t, 1, fx.SoundsPlayed)
}

func TestSpawnedEffectsExpire(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	events.SpawnEffectEvent.Publish(e.World, events.SpawnEffect{Effect: cfg.EffectMuzzleFlash})
	events.SpawnEffectEvent.Publish(e.World, events.SpawnEffect{Effect: cfg.EffectShellEject})
	UpdateEvents(e)

	fx := effectsOf(e.World)
	require.Len(t, fx.Active, 2)

	advance(e, 0.2)
	require.Len(t, fx.Active, 1)
	assert.Equal(t, cfg.EffectShellEject, fx.Active[0].Effect)

	advance(e, 0.4)
	assert.Empty(t, fx.Active)
	assert.Equal(t, 2, fx.EffectsSpawned)
}
