// Package leveldata provides TMX arena parsing shared between the sandbox and
// the server. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// ArenaData holds everything the arena builder needs from a TMX file.
type ArenaData struct {
	Name         string
	Width        int
	Height       int
	Blockers     []BlockerRect
	PlayerSpawns []SpawnPoint
	EnemySpawns  []EnemySpawn
}

// BlockerRect is a solid rectangle on the ground plane. Height is its
// vertical extent from the ground.
type BlockerRect struct {
	X, Y, W, H float64
	Height     float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// EnemySpawn places a combatant of EnemyType.
type EnemySpawn struct {
	X, Y      float64
	EnemyType string
	Yaw       float64 // degrees
}
