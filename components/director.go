package components

import "github.com/yohamta/donburi"

// DirectorData counts kills for the current session and across sessions.
type DirectorData struct {
	Kills     int
	BossKills int

	TotalKills     int
	TotalBossKills int

	LastKilled string
}

var Director = donburi.NewComponentType[DirectorData]()
