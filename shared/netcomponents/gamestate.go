package netcomponents

import "github.com/yohamta/donburi"

// NetGameStateData is the arena-wide state every client needs.
type NetGameStateData struct {
	Arena     string
	Kills     int
	BossKills int
	Dilation  float64 // 1 is normal speed
	Enemies   int     // combatants still alive
}

var NetGameState = donburi.NewComponentType[NetGameStateData]()
