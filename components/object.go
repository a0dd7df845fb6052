package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its resolv object. The object's Data
// field points back at the entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton resolv space every object lives in.
var Space = donburi.NewComponentType[resolv.Space]()

// BlockerData gives a solid resolv rectangle its vertical extent.
type BlockerData struct {
	MinZ, MaxZ float64
}

var Blocker = donburi.NewComponentType[BlockerData]()
