package factory

import (
	"math"

	"github.com/automoto/xv-arena/archetypes"
	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/automoto/xv-arena/tags"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, pos vector.Vector) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	pc := cfg.Player

	components.Player.SetValue(player, components.PlayerData{
		Health:            pc.Health,
		MaxHealth:         pc.MaxHealth,
		HealthPotionCount: pc.StartingPotions,
		Weapon:            components.WeaponMain,
		TurnRate:          pc.TurnRate,
	})
	components.Transform.SetValue(player, components.TransformData{
		Position: gamemath.Lift(pos, cfg.Physics.GroundZ),
		Yaw:      -math.Pi / 2, // facing -Y, toward the arena's north
	})
	components.Movement.SetValue(player, components.MovementData{
		Velocity:     gamemath.Zero(),
		MaxSpeed:     pc.NormalSpeed,
		WalkSpeed:    pc.NormalSpeed,
		Acceleration: pc.Acceleration,
		Deceleration: pc.Deceleration,
		GravityScale: 1,
	})
	components.Body.SetValue(player, components.BodyData{
		Radius:            pc.Radius,
		Height:            pc.Height,
		CollisionEnabled:  true,
		AffectsNavigation: false,
		Parts:             []components.MeshPart{{Name: "body", CollisionEnabled: true, Visible: true}},
	})

	size := pc.Radius * 2
	obj := resolv.NewObject(pos[0]-pc.Radius, pos[1]-pc.Radius, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return player
}
