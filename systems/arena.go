package systems

import (
	"errors"
	"log"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/automoto/xv-arena/shared/leveldata"
	"github.com/automoto/xv-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BuildArena populates the world from arena data: the collision space,
// blockers, the enemies and the nav grid. SetupWorld must have run first.
// Players are added separately with SpawnPlayer.
func BuildArena(e *ecs.ECS, arena *leveldata.ArenaData) error {
	if arena == nil {
		return errors.New("nil arena")
	}
	if len(arena.PlayerSpawns) == 0 {
		return errors.New("no player spawn points defined in arena")
	}

	cfg.C.ArenaWidth = arena.Width
	cfg.C.ArenaHeight = arena.Height

	spaceEntry := factory.CreateSpace(e, arena.Width, arena.Height, cfg.C.SpaceCell, cfg.C.SpaceCell)
	space := components.Space.Get(spaceEntry)

	for _, b := range arena.Blockers {
		factory.CreateBlocker(e, b.X, b.Y, b.W, b.H, b.Height)
	}

	for _, es := range arena.EnemySpawns {
		factory.CreateCombatant(e, es.EnemyType, gamemath.Vec3(es.X, es.Y, 0), factory.DegToYaw(es.Yaw))
	}

	grid := CreateNavGrid(space, arena.Width, arena.Height, cfg.Navigation.CellSize, rollerOf(e.World))
	SetNavigator(e.World, grid)

	log.Printf("[arena] built %q: %d blockers, %d enemies", arena.Name, len(arena.Blockers), len(arena.EnemySpawns))
	return nil
}

// SpawnPlayer adds a player at spawn point index, wrapping around when
// there are more players than spawns.
func SpawnPlayer(e *ecs.ECS, arena *leveldata.ArenaData, index int) *donburi.Entry {
	if arena == nil || len(arena.PlayerSpawns) == 0 {
		return nil
	}
	spawn := arena.PlayerSpawns[absInt(index)%len(arena.PlayerSpawns)]
	return factory.CreatePlayer(e, gamemath.Vec3(spawn.X, spawn.Y, 0))
}
