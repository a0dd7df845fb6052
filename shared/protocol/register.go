package protocol

import (
	"fmt"

	"github.com/automoto/xv-arena/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync IDs start at 10; necs reserves 1 for NetworkId.
const (
	SyncIDNetPosition    uint = 10
	SyncIDNetVelocity    uint = 11
	SyncIDNetPlayerState uint = 12
	SyncIDNetItem        uint = 13
	SyncIDNetEnemy       uint = 14
	SyncIDNetGameState   uint = 15
)

// Interpolation IDs share the sync ID of the component they blend.
const (
	InterpIDNetPosition uint8 = uint8(SyncIDNetPosition)
	InterpIDNetVelocity uint8 = uint8(SyncIDNetVelocity)
	InterpIDNetEnemy    uint8 = uint8(SyncIDNetEnemy)
)

type registration struct {
	name     string
	register func() error
}

// registrations lists every synced component. Order does not matter on
// the wire, but both sides must register the same set.
var registrations = []registration{
	{"position", func() error {
		return esync.RegisterComponent(SyncIDNetPosition, netcomponents.NetPositionData{}, netcomponents.NetPosition,
			esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition))
	}},
	{"velocity", func() error {
		return esync.RegisterComponent(SyncIDNetVelocity, netcomponents.NetVelocityData{}, netcomponents.NetVelocity,
			esync.WithInterpFn(InterpIDNetVelocity, netcomponents.LerpNetVelocity))
	}},
	{"player state", func() error {
		return esync.RegisterComponent(SyncIDNetPlayerState, netcomponents.NetPlayerStateData{}, netcomponents.NetPlayerState)
	}},
	{"item", func() error {
		return esync.RegisterComponent(SyncIDNetItem, netcomponents.NetItemData{}, netcomponents.NetItem)
	}},
	{"enemy", func() error {
		return esync.RegisterComponent(SyncIDNetEnemy, netcomponents.NetEnemyData{}, netcomponents.NetEnemy,
			esync.WithInterpFn(InterpIDNetEnemy, netcomponents.LerpNetEnemy))
	}},
	{"game state", func() error {
		return esync.RegisterComponent(SyncIDNetGameState, netcomponents.NetGameStateData{}, netcomponents.NetGameState)
	}},
}

// RegisterComponents registers the arena's synced components with necs.
// Server and client both call it once before any network traffic.
func RegisterComponents() error {
	for _, r := range registrations {
		if err := r.register(); err != nil {
			return fmt.Errorf("register %s: %w", r.name, err)
		}
	}
	return nil
}
