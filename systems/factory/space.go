package factory

import (
	"github.com/automoto/xv-arena/archetypes"
	"github.com/automoto/xv-arena/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the world's space, if there is one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	components.Space.Get(entry).Add(obj)
}
