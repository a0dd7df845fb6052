package systems

import (
	"testing"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/automoto/xv-arena/systems/factory"
	"github.com/automoto/xv-arena/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDroppedItemFallsBeforePickup(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	player := spawnPlayer(e, 1000, 1000)
	item := factory.CreateItem(e, "HealthPotion", gamemath.Vec3(1000, 1000, 200), true)
	require.NotNil(t, item)

	UpdateItems(e)
	require.True(t, item.Valid())
	assert.Less(t, components.Transform.Get(item).Position[2], 200.0)
	assert.False(t, components.Item.Get(item).Grounded)

	for i := 0; i < cfg.C.TPS && item.Valid(); i++ {
		UpdateItems(e)
	}
	assert.False(t, item.Valid())
	assert.Equal(t, cfg.Player.StartingPotions+1, components.Player.Get(player).HealthPotionCount)
}

func TestGroundedItemsOutOfReachStay(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	spawnPlayer(e, 1000, 1000)
	item := factory.CreateItem(e, "AmmoBox", gamemath.Vec3(1500, 1000, 0), false)

	UpdateItems(e)
	assert.True(t, item.Valid())
	assert.Equal(t, 1, count(e.World, tags.Pickup))
}

func TestCollectEquipItemSetsCurrentItem(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	player := spawnPlayer(e, 1000, 1000)
	item := factory.CreateItem(e, "ArmorPlate", gamemath.Vec3(1050, 1000, 0), false)

	UpdateItems(e)
	assert.False(t, item.Valid())
	assert.Equal(t, "ArmorPlate", components.Player.Get(player).CurrentItem)
	assert.Equal(t, cfg.Player.StartingPotions, components.Player.Get(player).HealthPotionCount)
}

func TestDeadPlayerCollectsNothing(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	player := spawnPlayer(e, 1000, 1000)
	item := factory.CreateItem(e, "HealthPotion", gamemath.Vec3(1000, 1000, 0), false)
	KillPlayer(e, player)

	UpdateItems(e)
	assert.True(t, item.Valid())
	assert.False(t, CollectItem(e, player, item))
}

func TestUnknownItemClassIsSkipped(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	assert.Nil(t, factory.CreateItem(e, "Nope", gamemath.Zero(), true))
	assert.Zero(t, count(e.World, components.Item))
}

func TestDropItemEmptyEntryDropsNothing(t *testing.T) {
	e := newTestECS(t, rolls(nil, 0))
	enemy := spawnEnemy(e, "Rifleman", 1000, 1000)

	assert.Nil(t, DropItem(e, enemy))
	assert.Zero(t, count(e.World, tags.Pickup))

	components.Loot.Get(enemy).Table = "missing"
	assert.Nil(t, DropItem(e, enemy))
}

func TestDropItemFromEmptyTableIsNoop(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	enemy := spawnEnemy(e, "Rifleman", 1000, 1000)
	cfg.Loot.Tables["empty"] = cfg.LootTable{}
	components.Loot.Get(enemy).Table = "empty"

	assert.Nil(t, DropItem(e, enemy))
	assert.Zero(t, count(e.World, tags.Pickup))
}
