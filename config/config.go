package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render/update layer the arena uses.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`

	// Arena extents in world units. The arena starts at the origin and
	// stays in positive coordinates so the resolv grid can cover it.
	ArenaWidth  int `yaml:"arena_width"`
	ArenaHeight int `yaml:"arena_height"`
	SpaceCell   int `yaml:"space_cell"`

	// DrawScale maps world units to screen pixels in the sandbox.
	DrawScale float64 `yaml:"draw_scale"`
}

// PhysicsConfig contains world physics values
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // units/s^2
	GroundZ float64 `yaml:"ground_z"`
}

// CombatConfig holds the combat controller tunables shared by every type.
type CombatConfig struct {
	BossAvoidChance      float64 `yaml:"boss_avoid_chance"`
	AvoidHealthGate      float64 `yaml:"avoid_health_gate"` // dodge needs health above this
	PainHealthGate       float64 `yaml:"pain_health_gate"`  // pain needs health above this
	BossRepositionChance float64 `yaml:"boss_reposition_chance"`

	DodgeImpulseScale float64 `yaml:"dodge_impulse_scale"` // impulse = MaxSpeed * scale
	DodgeResumeDelay  float64 `yaml:"dodge_resume_delay"`  // seconds before the brain restarts
	DespawnDelay      float64 `yaml:"despawn_delay"`

	SlowMotionDilation float64 `yaml:"slow_motion_dilation"`
	SlowMotionDuration float64 `yaml:"slow_motion_duration"` // real seconds

	LootSpawnHeight     float64 `yaml:"loot_spawn_height"`
	DefaultAttackDamage float64 `yaml:"default_attack_damage"`
}

// RangedHitConfig configures the swept box check fired by ranged attack cues.
type RangedHitConfig struct {
	HitProbability float64    `yaml:"hit_probability"`
	BoxHalfSize    [3]float64 `yaml:"box_half_size"`
	ForwardOffset  float64    `yaml:"forward_offset"`
	StartHeight    float64    `yaml:"start_height"`
	TargetHeight   float64    `yaml:"target_height"`

	MuzzleFlash EffectID `yaml:"muzzle_flash"`
	ShellEject  EffectID `yaml:"shell_eject"`
	ShotSound   SoundID  `yaml:"shot_sound"`
}

// RepositionConfig configures the boss teleport behind the player.
type RepositionConfig struct {
	BehindDistance float64 `yaml:"behind_distance"`
	RandomRadius   float64 `yaml:"random_radius"`
	MinRadius      float64 `yaml:"min_radius"`
	MaxTries       int     `yaml:"max_tries"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Health          float64 `yaml:"health"`
	MaxHealth       float64 `yaml:"max_health"`
	StartingPotions int     `yaml:"starting_potions"`
	PotionHeal      float64 `yaml:"potion_heal"`
	DieDelay        float64 `yaml:"die_delay"` // seconds between death and removal

	NormalSpeed float64 `yaml:"normal_speed"`
	SprintSpeed float64 `yaml:"sprint_speed"`
	SitSpeed    float64 `yaml:"sit_speed"`
	AimSpeed    float64 `yaml:"aim_speed"`
	TurnRate    float64 `yaml:"turn_rate"`

	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"`

	Radius       float64 `yaml:"radius"`
	Height       float64 `yaml:"height"`
	PickupRadius float64 `yaml:"pickup_radius"`

	ShotDamage float64 `yaml:"shot_damage"`
	ShotRange  float64 `yaml:"shot_range"`
	ShotCone   float64 `yaml:"shot_cone"` // minimum cosine between aim and target
}

// NavigationConfig configures the grid used for reachability queries.
type NavigationConfig struct {
	CellSize          float64 `yaml:"cell_size"`
	ProjectCells      int     `yaml:"project_cells"` // search radius when projecting onto the grid
	ReachableAttempts int     `yaml:"reachable_attempts"`
}

// DirectorConfig controls the encounter director.
type DirectorConfig struct {
	AppName   string `yaml:"app_name"`
	SaveKills bool   `yaml:"save_kills"`
}

// Config instances. Systems read these directly; LoadFile replaces them.
var (
	C          *Config
	Physics    PhysicsConfig
	Combat     CombatConfig
	RangedHit  RangedHitConfig
	Reposition RepositionConfig
	Player     PlayerConfig
	Navigation NavigationConfig
	Director   DirectorConfig
)

// Debug draw colors
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue       = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple     = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Gray       = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	DarkGray   = color.RGBA{R: 40, G: 40, B: 48, A: 255}
)

func init() {
	SetDefaults()
}

// SetDefaults restores every config instance to the built-in values.
func SetDefaults() {
	C = &Config{
		Width:       960,
		Height:      540,
		TPS:         60,
		ArenaWidth:  4096,
		ArenaHeight: 4096,
		SpaceCell:   64,
		DrawScale:   0.125,
	}

	Physics = PhysicsConfig{
		Gravity: 980,
		GroundZ: 0,
	}

	Combat = CombatConfig{
		BossAvoidChance:      0.5,
		AvoidHealthGate:      10,
		PainHealthGate:       5,
		BossRepositionChance: 0.5,

		DodgeImpulseScale: 3,
		DodgeResumeDelay:  1,
		DespawnDelay:      0.5,

		SlowMotionDilation: 0.2,
		SlowMotionDuration: 3,

		LootSpawnHeight:     200,
		DefaultAttackDamage: 10,
	}

	RangedHit = RangedHitConfig{
		HitProbability: 0.5,
		BoxHalfSize:    [3]float64{10, 10, 10},
		ForwardOffset:  80,
		StartHeight:    100,
		TargetHeight:   40,

		MuzzleFlash: EffectMuzzleFlash,
		ShellEject:  EffectShellEject,
		ShotSound:   SoundShot,
	}

	Reposition = RepositionConfig{
		BehindDistance: 1200,
		RandomRadius:   600,
		MinRadius:      200,
		MaxTries:       20,
	}

	Player = PlayerConfig{
		Health:          100,
		MaxHealth:       100,
		StartingPotions: 1,
		PotionHeal:      30,
		DieDelay:        2,

		NormalSpeed: 400,
		SprintSpeed: 700,
		SitSpeed:    200,
		AimSpeed:    250,
		TurnRate:    45,

		Acceleration: 2048,
		Deceleration: 2048,

		Radius:       34,
		Height:       176,
		PickupRadius: 90,

		ShotDamage: 12,
		ShotRange:  1500,
		ShotCone:   0.9,
	}

	Navigation = NavigationConfig{
		CellSize:          64,
		ProjectCells:      2,
		ReachableAttempts: 16,
	}

	Director = DirectorConfig{
		AppName:   "xv-arena",
		SaveKills: true,
	}

	Enemy = defaultEnemies()
	Loot = defaultLoot()
	Weapon = defaultWeapons()
	Item = defaultItems()
	Effects = defaultEffects()
	Audio, Sound = defaultAudio()
}
