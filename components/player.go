package components

import "github.com/yohamta/donburi"

// WeaponSlot is the player's equipped weapon type.
type WeaponSlot int

const (
	WeaponMain WeaponSlot = iota
	WeaponSub
)

func (w WeaponSlot) String() string {
	if w == WeaponSub {
		return "sub"
	}
	return "main"
}

type PlayerData struct {
	Health    float64
	MaxHealth float64

	HealthPotionCount int
	CurrentItem       string
	Weapon            WeaponSlot

	// Movement flags
	Running  bool
	Sitting  bool
	Aiming   bool
	TurnRate float64

	IsDie    bool
	DieTimer *Timer
}

// HealthPercent is health over max health in [0,1].
func (p *PlayerData) HealthPercent() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return p.Health / p.MaxHealth
}

var Player = donburi.NewComponentType[PlayerData]()
