package config

// NotifyRangedCheckHit is the cue notify that fires the ranged hit check.
const NotifyRangedCheckHit = "RangedCheckHit"

// CueNotify is a named marker inside an animation cue.
type CueNotify struct {
	Name string  `yaml:"name"`
	Time float64 `yaml:"time"` // seconds from cue start
}

// AnimationCue is a timed animation. Notifies fire in order as playback
// passes them; the cue ends after Duration.
type AnimationCue struct {
	Name     string      `yaml:"name"`
	Duration float64     `yaml:"duration"`
	Notifies []CueNotify `yaml:"notifies"`
}

// CueSet groups the cues a combatant type can play. Nil cues are simply
// not configured.
type CueSet struct {
	Pain       []AnimationCue `yaml:"pain"`
	Death      *AnimationCue  `yaml:"death"`
	AvoidRight *AnimationCue  `yaml:"avoid_right"`
	AvoidLeft  *AnimationCue  `yaml:"avoid_left"`
	AvoidBack  *AnimationCue  `yaml:"avoid_back"`
	Attack     *AnimationCue  `yaml:"attack"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name        string  `yaml:"name"`
	Health      float64 `yaml:"health"`
	AvoidChance float64 `yaml:"avoid_chance"`
	IsBoss      bool    `yaml:"is_boss"`

	// AttackDamage > 0 attaches a status component; otherwise ranged hits
	// fall back to Combat.DefaultAttackDamage.
	AttackDamage   float64 `yaml:"attack_damage"`
	AttackRange    float64 `yaml:"attack_range"`
	AttackCooldown float64 `yaml:"attack_cooldown"` // seconds
	SightRadius    float64 `yaml:"sight_radius"`

	// Movement
	WalkSpeed       float64 `yaml:"walk_speed"`
	AttackModeSpeed float64 `yaml:"attack_mode_speed"`
	RotateSpeed     float64 `yaml:"rotate_speed"` // degrees per second
	Acceleration    float64 `yaml:"acceleration"`
	Deceleration    float64 `yaml:"deceleration"`
	BrakingFriction float64 `yaml:"braking_friction"`

	// Body
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`

	Cues       CueSet  `yaml:"cues"`
	LootTable  string  `yaml:"loot_table"`
	Weapon     string  `yaml:"weapon"`
	DeathSound SoundID `yaml:"death_sound"`
}

// EnemyConfig contains enemy type definitions
type EnemyConfig struct {
	DefaultType string                     `yaml:"default_type"`
	Types       map[string]EnemyTypeConfig `yaml:"types"`
}

var Enemy EnemyConfig

func defaultEnemies() EnemyConfig {
	rifleAttack := &AnimationCue{
		Name:     "rifle_fire",
		Duration: 0.8,
		Notifies: []CueNotify{{Name: NotifyRangedCheckHit, Time: 0.35}},
	}
	pain := []AnimationCue{
		{Name: "hit_front", Duration: 0.5},
		{Name: "hit_side", Duration: 0.45},
	}
	avoids := func(d float64) (r, l, b *AnimationCue) {
		return &AnimationCue{Name: "avoid_right", Duration: d},
			&AnimationCue{Name: "avoid_left", Duration: d},
			&AnimationCue{Name: "avoid_back", Duration: d}
	}

	rR, rL, rB := avoids(0.6)
	bR, bL, bB := avoids(0.5)

	return EnemyConfig{
		DefaultType: "Rifleman",
		Types: map[string]EnemyTypeConfig{
			"Rifleman": {
				Name:            "Rifleman",
				Health:          60,
				AvoidChance:     0.1,
				AttackDamage:    8,
				AttackRange:     1400,
				AttackCooldown:  1.5,
				SightRadius:     3000,
				WalkSpeed:       300,
				AttackModeSpeed: 400,
				RotateSpeed:     480,
				Acceleration:    2048,
				Deceleration:    2048,
				BrakingFriction: 2,
				Radius:          34,
				Height:          176,
				Cues: CueSet{
					Pain:       pain,
					Death:      &AnimationCue{Name: "death", Duration: 1.2},
					AvoidRight: rR,
					AvoidLeft:  rL,
					AvoidBack:  rB,
					Attack:     rifleAttack,
				},
				LootTable:  "grunt",
				Weapon:     "rifle",
				DeathSound: SoundNone,
			},
			"Brute": {
				Name:            "Brute",
				Health:          140,
				AvoidChance:     0.05,
				AttackRange:     900,
				AttackCooldown:  2,
				SightRadius:     2500,
				WalkSpeed:       220,
				AttackModeSpeed: 300,
				RotateSpeed:     360,
				Acceleration:    1500,
				Deceleration:    2048,
				BrakingFriction: 2,
				Radius:          48,
				Height:          200,
				Cues: CueSet{
					Pain:   pain[:1],
					Death:  &AnimationCue{Name: "death", Duration: 1.5},
					Attack: rifleAttack,
				},
				LootTable: "grunt",
				Weapon:    "shotgun",
			},
			"Warden": {
				Name:            "Warden",
				Health:          400,
				AvoidChance:     0.1,
				IsBoss:          true,
				AttackDamage:    15,
				AttackRange:     1800,
				AttackCooldown:  1,
				SightRadius:     4000,
				WalkSpeed:       350,
				AttackModeSpeed: 450,
				RotateSpeed:     540,
				Acceleration:    2048,
				Deceleration:    2048,
				BrakingFriction: 2,
				Radius:          42,
				Height:          220,
				Cues: CueSet{
					Pain:       pain,
					Death:      &AnimationCue{Name: "boss_death", Duration: 2.5},
					AvoidRight: bR,
					AvoidLeft:  bL,
					AvoidBack:  bB,
					Attack:     rifleAttack,
				},
				LootTable:  "boss",
				Weapon:     "rifle",
				DeathSound: SoundBossDeath,
			},
		},
	}
}
