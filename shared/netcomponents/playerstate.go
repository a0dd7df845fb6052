package netcomponents

import "github.com/yohamta/donburi"

type NetPlayerStateData struct {
	Health       float64
	MaxHealth    float64
	Potions      int
	CurrentItem  string
	Weapon       int
	IsDead       bool
	LastSequence uint32 // Last input sequence processed by the server (for prediction reconciliation)
	IsLocal      bool   // Client-side only, not synced
}

var NetPlayerState = donburi.NewComponentType[NetPlayerStateData]()
