package netcomponents

import "github.com/yohamta/donburi"

// NetItemData is a loot pickup lying in (or falling into) the arena.
type NetItemData struct {
	ID       string
	Class    string
	Grounded bool
}

var NetItem = donburi.NewComponentType[NetItemData]()
