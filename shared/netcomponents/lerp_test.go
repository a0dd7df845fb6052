package netcomponents

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpNetPositionTakesShortestTurn(t *testing.T) {
	from := NetPositionData{X: 0, Y: 10, Z: 0, Yaw: math.Pi - 0.2}
	to := NetPositionData{X: 100, Y: 30, Z: 50, Yaw: -math.Pi + 0.2}

	got := LerpNetPosition(from, to, 0.5)
	assert.Equal(t, 50.0, got.X)
	assert.Equal(t, 20.0, got.Y)
	assert.Equal(t, 25.0, got.Z)
	assert.InDelta(t, math.Pi, math.Abs(got.Yaw), 1e-9)
}

func TestLerpNetEnemySnapsAllButHealth(t *testing.T) {
	from := NetEnemyData{TypeName: "Warden", State: CombatAlive, Health: 400, MaxHealth: 400, IsBoss: true, Visible: true}
	to := NetEnemyData{TypeName: "Warden", State: CombatDead, Health: 0, MaxHealth: 400, IsBoss: true}

	got := LerpNetEnemy(from, to, 0.25)
	assert.Equal(t, 300.0, got.Health)
	assert.Equal(t, CombatDead, got.State)
	assert.False(t, got.Visible)
}

func TestLerpNetVelocityRecomputesSpeed(t *testing.T) {
	from := NewNetVelocity(300, 0)
	to := NewNetVelocity(-300, 0)

	got := LerpNetVelocity(from, to, 0.5)
	assert.Equal(t, 0.0, got.VX)
	assert.Equal(t, 0.0, got.Speed)

	got = LerpNetVelocity(NewNetVelocity(0, 0), NewNetVelocity(30, 40), 1)
	assert.Equal(t, 50.0, got.Speed)
}
