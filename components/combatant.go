package components

import (
	"github.com/automoto/xv-arena/config"
	"github.com/yohamta/donburi"
)

// CombatState is derived from the combatant flags.
type CombatState int

const (
	StateAlive CombatState = iota
	StateAvoiding
	StateDead
)

func (s CombatState) String() string {
	switch s {
	case StateAlive:
		return "Alive"
	case StateAvoiding:
		return "Avoiding"
	case StateDead:
		return "Dead"
	}
	return "Unknown"
}

type CombatantData struct {
	TypeName   string
	TypeConfig *config.EnemyTypeConfig

	Health      float64
	MaxHealth   float64
	AvoidChance float64
	IsBoss      bool

	IsDead     bool
	IsAvoiding bool

	// Owned scheduled tasks. Cancelled when the combatant is removed.
	ResumeTimer  *Timer
	DespawnTimer *Timer
	Despawning   bool

	Weapon *donburi.Entry
}

func (c *CombatantData) State() CombatState {
	switch {
	case c.IsDead:
		return StateDead
	case c.IsAvoiding:
		return StateAvoiding
	}
	return StateAlive
}

var Combatant = donburi.NewComponentType[CombatantData]()

// StatusData carries attack stats for combatants that define them.
type StatusData struct {
	AttackDamage float64
}

var Status = donburi.NewComponentType[StatusData]()

// LootData names the loot table rolled on death.
type LootData struct {
	Table string
}

var Loot = donburi.NewComponentType[LootData]()

// PerceptionData controls whether a combatant can still sense the player.
type PerceptionData struct {
	Active      bool
	SightRadius float64
}

var Perception = donburi.NewComponentType[PerceptionData]()
