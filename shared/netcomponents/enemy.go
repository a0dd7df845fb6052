package netcomponents

import "github.com/yohamta/donburi"

// Combat states as sent over the wire
const (
	CombatAlive = iota
	CombatAvoiding
	CombatDead
)

type NetEnemyData struct {
	TypeName  string // "Rifleman", "Warden", etc.
	State     int
	Health    float64
	MaxHealth float64
	IsBoss    bool
	Visible   bool
}

var NetEnemy = donburi.NewComponentType[NetEnemyData]()

// LerpNetEnemy interpolates health so bars drain smoothly; the rest snaps.
func LerpNetEnemy(from, to NetEnemyData, t float64) *NetEnemyData {
	out := to
	out.Health = from.Health + (to.Health-from.Health)*t
	return &out
}
