package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Enemy   = donburi.NewTag().SetName("Enemy")
	Boss    = donburi.NewTag().SetName("Boss")
	Blocker = donburi.NewTag().SetName("Blocker")
	Pickup  = donburi.NewTag().SetName("Pickup")
	Weapon  = donburi.NewTag().SetName("Weapon")
)

// Resolv tags for spatial queries
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
	ResolvPickup    = "pickup"
)
