package systems

import (
	"testing"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/events"
	"github.com/automoto/xv-arena/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type ecsFixture struct {
	*ecs.ECS
	attacker *donburi.Entry
	player   *donburi.Entry
}

// rangedSetup puts an attacker facing +X at a player 500 units away.
func rangedSetup(t *testing.T, typeName string, floats ...float64) *ecsFixture {
	t.Helper()
	w := newTestECS(t, rolls(floats))
	return &ecsFixture{
		ECS:      w,
		attacker: spawnEnemy(w, typeName, 1000, 1000),
		player:   spawnPlayer(w, 1500, 1000),
	}
}

func TestResolveRangedHitDamagesPlayerOnSuccessfulRoll(t *testing.T) {
	f := rangedSetup(t, "Rifleman", 0.2)
	effects := capture(f.World, events.SpawnEffectEvent)
	sounds := capture(f.World, events.PlaySoundEvent)

	assert.Equal(t, RangedHit, ResolveRangedHit(f.ECS, f.attacker))
	assert.Equal(t, 92.0, components.Player.Get(f.player).Health)

	UpdateEvents(f.ECS)
	require.Len(t, effects.got, 2)
	assert.Equal(t, cfg.EffectMuzzleFlash, effects.got[0].Effect)
	assert.Equal(t, cfg.EffectShellEject, effects.got[1].Effect)
	assert.NotEqual(t, effects.got[0].Location, effects.got[1].Location)

	var shot bool
	for _, s := range sounds.got {
		if s.Sound == cfg.SoundShot {
			shot = true
			assert.Equal(t, effects.got[0].Location, s.Location)
		}
	}
	assert.True(t, shot)
}

func TestResolveRangedHitMissStillPlaysEffects(t *testing.T) {
	f := rangedSetup(t, "Rifleman", cfg.RangedHit.HitProbability)
	effects := capture(f.World, events.SpawnEffectEvent)

	assert.Equal(t, RangedMiss, ResolveRangedHit(f.ECS, f.attacker))
	assert.Equal(t, 100.0, components.Player.Get(f.player).Health)

	UpdateEvents(f.ECS)
	assert.Len(t, effects.got, 2)
}

func TestResolveRangedHitUsesDefaultDamageWithoutStatus(t *testing.T) {
	f := rangedSetup(t, "Brute", 0.1)
	require.False(t, f.attacker.HasComponent(components.Status))

	assert.Equal(t, RangedHit, ResolveRangedHit(f.ECS, f.attacker))
	assert.Equal(t, 100-cfg.Combat.DefaultAttackDamage, components.Player.Get(f.player).Health)
}

func TestResolveRangedHitAborts(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(f *ecsFixture)
	}{
		{"attacker avoiding", func(f *ecsFixture) {
			combatantOf(f.attacker).IsAvoiding = true
		}},
		{"blackboard avoiding", func(f *ecsFixture) {
			components.Brain.Get(f.attacker).Blackboard.IsAvoiding = true
		}},
		{"attacker dead", func(f *ecsFixture) {
			combatantOf(f.attacker).IsDead = true
		}},
		{"no player", func(f *ecsFixture) {
			RemovePlayer(f.ECS, f.player)
		}},
		{"player dead", func(f *ecsFixture) {
			components.Player.Get(f.player).IsDie = true
		}},
		{"attacker without transform", func(f *ecsFixture) {
			f.attacker.RemoveComponent(components.Transform)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := rangedSetup(t, "Rifleman", 0.1)
			effects := capture(f.World, events.SpawnEffectEvent)
			tt.prepare(f)

			assert.Equal(t, RangedAborted, ResolveRangedHit(f.ECS, f.attacker))
			UpdateEvents(f.ECS)
			assert.Empty(t, effects.got)
		})
	}
}

func TestResolveRangedHitBlockedByWall(t *testing.T) {
	f := rangedSetup(t, "Rifleman", 0.1)
	factory.CreateBlocker(f.ECS, 1200, 900, 60, 200, 300)
	effects := capture(f.World, events.SpawnEffectEvent)

	assert.Equal(t, RangedNoTarget, ResolveRangedHit(f.ECS, f.attacker))
	assert.Equal(t, 100.0, components.Player.Get(f.player).Health)
	UpdateEvents(f.ECS)
	assert.Empty(t, effects.got)
}

func TestResolveRangedHitShootsOverLowCover(t *testing.T) {
	f := rangedSetup(t, "Rifleman", 0.1)
	// The trace runs from 100 down to 40 above the ground.
	factory.CreateBlocker(f.ECS, 1200, 900, 60, 200, 20)

	assert.Equal(t, RangedHit, ResolveRangedHit(f.ECS, f.attacker))
}

func TestResolveRangedHitIgnoresOtherCombatants(t *testing.T) {
	f := rangedSetup(t, "Rifleman", 0.1)
	bystander := spawnEnemy(f.ECS, "Rifleman", 1250, 1000)

	assert.Equal(t, RangedHit, ResolveRangedHit(f.ECS, f.attacker))
	assert.Equal(t, 92.0, components.Player.Get(f.player).Health)
	assert.Equal(t, 60.0, combatantOf(bystander).Health)
}

func TestAttackCueNotifyFiresRangedHit(t *testing.T) {
	f := rangedSetup(t, "Rifleman", 0.1)
	c := combatantOf(f.attacker)
	require.True(t, PlayCue(f.ECS, f.attacker, c.TypeConfig.Cues.Attack, components.CueAttack))

	advance(f.ECS, 0.4)
	assert.Equal(t, 92.0, components.Player.Get(f.player).Health)
}
