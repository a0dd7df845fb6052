package systems

import (
	"testing"

	"github.com/automoto/xv-arena/components"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/automoto/xv-arena/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrainApproachesPlayerOutOfRange(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	spawnPlayer(e, 3000, 1000)
	enemy := spawnEnemy(e, "Rifleman", 1000, 1000)

	UpdateBrains(e)
	brain := components.Brain.Get(enemy)
	assert.True(t, brain.HasFocus)
	mv := components.Movement.Get(enemy)
	require.NotNil(t, mv.Input)
	assert.InDelta(t, 1, mv.Input[0], 1e-9)
	assert.False(t, components.Animation.Get(enemy).Playing())
}

func TestBrainAttacksInRangeThenCoolsDown(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	spawnPlayer(e, 1500, 1000)
	enemy := spawnEnemy(e, "Rifleman", 1000, 1000)
	typ := combatantOf(enemy).TypeConfig

	UpdateBrains(e)
	brain := components.Brain.Get(enemy)
	mv := components.Movement.Get(enemy)
	anim := components.Animation.Get(enemy)
	require.True(t, anim.Playing())
	assert.Equal(t, components.CueAttack, anim.Purpose)
	assert.True(t, brain.AttackMode)
	assert.Equal(t, typ.AttackModeSpeed, mv.MaxSpeed)
	assert.Equal(t, typ.AttackCooldown, brain.AttackCooldown)
	assert.Nil(t, mv.Input)

	advance(e, typ.Cues.Attack.Duration)
	assert.False(t, brain.AttackMode)
	assert.Equal(t, typ.WalkSpeed, mv.MaxSpeed)

	UpdateBrains(e)
	assert.False(t, anim.Playing(), "still cooling down")
}

func TestStoppedBrainReleasesInput(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	spawnPlayer(e, 3000, 1000)
	enemy := spawnEnemy(e, "Rifleman", 1000, 1000)
	UpdateBrains(e)

	haltBrain(enemy, StopReasonDamage)
	UpdateBrains(e)
	assert.Nil(t, components.Movement.Get(enemy).Input)
	assert.False(t, components.Brain.Get(enemy).HasFocus)
}

func TestBrainIgnoresPlayerOutOfSight(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	spawnPlayer(e, 4000, 4000)
	enemy := spawnEnemy(e, "Brute", 100, 100)

	UpdateBrains(e)
	assert.False(t, components.Brain.Get(enemy).HasFocus)
	assert.Nil(t, components.Movement.Get(enemy).Input)
}

func TestMovementBrakesDodgeLaunch(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	enemy := spawnEnemy(e, "Rifleman", 1000, 1000)
	mv := components.Movement.Get(enemy)
	mv.Launch(gamemath.Vec3(-900, 0, 0))

	UpdateMovement(e)
	x := components.Transform.Get(enemy).Position[0]
	assert.Less(t, x, 1000.0)
	assert.Less(t, mv.Velocity.Magnitude(), 900.0)

	for i := 0; i < 60; i++ {
		UpdateMovement(e)
	}
	assert.InDelta(t, 0, mv.Velocity.Magnitude(), 1e-9)
	assert.Equal(t, 0.0, components.Transform.Get(enemy).Position[2])
}

func TestMovementAcceleratesTowardInput(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	player := spawnPlayer(e, 1000, 1000)
	SetPlayerInput(player, gamemath.Vec3(0, 1, 0))
	mv := components.Movement.Get(player)

	for i := 0; i < 60; i++ {
		UpdateMovement(e)
	}
	assert.InDelta(t, mv.MaxSpeed, mv.Velocity.Magnitude(), 1e-6)
	assert.Greater(t, components.Transform.Get(player).Position[1], 1000.0)

	obj := components.Object.Get(player)
	assert.InDelta(t, components.Transform.Get(player).Position[1]-obj.H/2, obj.Y, 1e-9)
}

func TestMovementStopsAtBlocker(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	factory.CreateBlocker(e, 1040, 900, 64, 200, 300)
	player := spawnPlayer(e, 1000, 1000)
	SetPlayerInput(player, gamemath.Vec3(1, 0, 0))

	for i := 0; i < 60; i++ {
		UpdateMovement(e)
	}
	assert.LessOrEqual(t, components.Transform.Get(player).Position[0], 1040.0-34)
}

func TestDisabledMovementDoesNotMove(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	enemy := spawnEnemy(e, "Rifleman", 1000, 1000)
	mv := components.Movement.Get(enemy)
	mv.Launch(gamemath.Vec3(500, 0, 0))
	mv.Disabled = true

	UpdateMovement(e)
	assert.Equal(t, 1000.0, components.Transform.Get(enemy).Position[0])
}
