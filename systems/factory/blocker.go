package factory

import (
	"github.com/automoto/xv-arena/archetypes"
	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBlocker adds a solid box standing on the ground.
func CreateBlocker(ecs *ecs.ECS, x, y, w, h, height float64) *donburi.Entry {
	blocker := archetypes.Blocker.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags(tags.ResolvSolid)
	obj.Data = blocker
	components.Object.SetValue(blocker, components.ObjectData{Object: obj})

	components.Blocker.SetValue(blocker, components.BlockerData{
		MinZ: cfg.Physics.GroundZ,
		MaxZ: cfg.Physics.GroundZ + height,
	})

	addToSpace(ecs, obj)
	return blocker
}
