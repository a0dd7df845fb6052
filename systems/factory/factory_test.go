package factory

import (
	"math"
	"testing"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/automoto/xv-arena/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newECS(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.SetDefaults()
	t.Cleanup(cfg.SetDefaults)
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 4096, 4096, 64, 64)
	return e
}

func TestCreateCombatantFromType(t *testing.T) {
	e := newECS(t)
	enemy := CreateCombatant(e, "Warden", gamemath.Vec3(500, 600, 999), DegToYaw(90))

	c := components.Combatant.Get(enemy)
	assert.Equal(t, "Warden", c.TypeName)
	assert.Equal(t, 400.0, c.Health)
	assert.Equal(t, c.Health, c.MaxHealth)
	assert.True(t, c.IsBoss)
	assert.True(t, enemy.HasComponent(tags.Boss))
	require.True(t, enemy.HasComponent(components.Status))
	assert.Equal(t, 15.0, components.Status.Get(enemy).AttackDamage)

	tr := components.Transform.Get(enemy)
	assert.Equal(t, gamemath.Vec3(500, 600, cfg.Physics.GroundZ), tr.Position)
	assert.InDelta(t, math.Pi/2, tr.Yaw, 1e-9)

	brain := components.Brain.Get(enemy)
	assert.True(t, brain.Running)
	assert.True(t, brain.Blackboard.IsBoss)

	obj := components.Object.Get(enemy)
	require.NotNil(t, obj.Object)
	assert.Equal(t, enemy, obj.Data)
	assert.True(t, obj.HasTags(tags.ResolvCharacter))

	require.NotNil(t, c.Weapon)
	wd := components.Weapon.Get(c.Weapon)
	assert.Equal(t, "rifle", wd.Type)
	assert.Equal(t, enemy.Entity(), wd.Owner)
}

func TestCreateCombatantTypeConfigIsPerInstance(t *testing.T) {
	e := newECS(t)
	a := CreateCombatant(e, "Rifleman", gamemath.Zero(), 0)
	b := CreateCombatant(e, "Rifleman", gamemath.Zero(), 0)

	components.Combatant.Get(a).TypeConfig.Cues.Death = nil
	assert.NotNil(t, components.Combatant.Get(b).TypeConfig.Cues.Death)
	assert.NotNil(t, cfg.Enemy.Types["Rifleman"].Cues.Death)
}

func TestCreateCombatantUnknownTypeUsesDefault(t *testing.T) {
	e := newECS(t)
	enemy := CreateCombatant(e, "Ghost", gamemath.Zero(), 0)
	assert.Equal(t, cfg.Enemy.DefaultType, components.Combatant.Get(enemy).TypeName)

	cfg.Enemy.DefaultType = "Missing"
	assert.Panics(t, func() { CreateCombatant(e, "Ghost", gamemath.Zero(), 0) })
}

func TestCreateCombatantWithoutAttackDamageHasNoStatus(t *testing.T) {
	e := newECS(t)
	brute := CreateCombatant(e, "Brute", gamemath.Zero(), 0)
	assert.False(t, brute.HasComponent(components.Status))
	assert.False(t, brute.HasComponent(tags.Boss))
}

func TestCreateItem(t *testing.T) {
	e := newECS(t)
	falling := CreateItem(e, "HealthPotion", gamemath.Vec3(1, 2, 200), true)
	resting := CreateItem(e, "AmmoBox", gamemath.Vec3(1, 2, 0), false)

	f := components.Item.Get(falling)
	assert.NotEmpty(t, f.ID)
	assert.Equal(t, cfg.ItemPotion, f.Kind)
	assert.True(t, f.EnableGravity)
	assert.False(t, f.Grounded)

	r := components.Item.Get(resting)
	assert.NotEqual(t, f.ID, r.ID)
	assert.True(t, r.Grounded)
	assert.Equal(t, cfg.ItemEquip, r.Kind)
}
