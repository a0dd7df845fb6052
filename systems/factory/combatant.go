package factory

import (
	"fmt"
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

// CreateCombatant spawns an enemy of the named type, facing yaw radians.
// Unknown types fall back to the default type.
func CreateCombatant(ecs *ecs.ECS, typeName string, pos vector.Vector, yaw float64) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[typeName]
	if !exists {
		typeName = cfg.Enemy.DefaultType
		enemyType, exists = cfg.Enemy.Types[typeName]
		if !exists {
			panic(fmt.Sprintf("enemy type %q and default type are not configured", typeName))
		}
	}

	var extra []donburi.IComponentType
	if enemyType.AttackDamage > 0 {
		extra = append(extra, components.Status)
	}
	if enemyType.IsBoss {
		extra = append(extra, tags.Boss)
	}
	enemy := archetypes.Enemy.Spawn(ecs, extra...)

	components.Combatant.SetValue(enemy, components.CombatantData{
		TypeName:    typeName,
		TypeConfig:  &enemyType,
		Health:      enemyType.Health,
		MaxHealth:   enemyType.Health,
		AvoidChance: enemyType.AvoidChance,
		IsBoss:      enemyType.IsBoss,
	})
	if enemyType.AttackDamage > 0 {
		components.Status.SetValue(enemy, components.StatusData{AttackDamage: enemyType.AttackDamage})
	}

	components.Transform.SetValue(enemy, components.TransformData{
		Position: gamemath.Lift(pos, cfg.Physics.GroundZ),
		Yaw:      yaw,
	})
	components.Movement.SetValue(enemy, components.MovementData{
		Velocity:        gamemath.Zero(),
		MaxSpeed:        enemyType.WalkSpeed,
		WalkSpeed:       enemyType.WalkSpeed,
		AttackModeSpeed: enemyType.AttackModeSpeed,
		Acceleration:    enemyType.Acceleration,
		Deceleration:    enemyType.Deceleration,
		BrakingFriction: enemyType.BrakingFriction,
		RotateSpeed:     enemyType.RotateSpeed,
		GravityScale:    1,
	})
	components.Body.SetValue(enemy, components.BodyData{
		Radius:            enemyType.Radius,
		Height:            enemyType.Height,
		CollisionEnabled:  true,
		AffectsNavigation: true,
		Parts: []components.MeshPart{
			{Name: "body", CollisionEnabled: true, Visible: true},
			{Name: "head", CollisionEnabled: true, Visible: true},
		},
	})
	components.Brain.SetValue(enemy, components.BrainData{
		Running:     true,
		Blackboard:  components.Blackboard{IsBoss: enemyType.IsBoss},
		AttackRange: enemyType.AttackRange,
	})
	components.Perception.SetValue(enemy, components.PerceptionData{
		Active:      true,
		SightRadius: enemyType.SightRadius,
	})
	components.Animation.SetValue(enemy, components.AnimationData{PlayRate: 1})
	components.Loot.SetValue(enemy, components.LootData{Table: enemyType.LootTable})

	size := enemyType.Radius * 2
	obj := resolv.NewObject(pos[0]-enemyType.Radius, pos[1]-enemyType.Radius, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	if enemyType.Weapon != "" {
		weapon := CreateWeapon(ecs, enemy, enemyType.Weapon)
		components.Combatant.Get(enemy).Weapon = weapon
	}

	return enemy
}

// DegToYaw converts a map yaw in degrees.
func DegToYaw(deg float64) float64 {
	return deg * math.Pi / 180
}
