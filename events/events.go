// Package events defines the typed events that carry cross-entity side
// effects. Publishers never wait on subscribers; everything queued during a
// tick is delivered by systems.UpdateEvents at the end of it.
package events

import (
	"github.com/automoto/xv-arena/components"
	"github.com/automoto/xv-arena/config"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	dbevents "github.com/yohamta/donburi/features/events"
)

// CombatantKilled is sent once when a combatant enters the dead state.
type CombatantKilled struct {
	Entity   donburi.Entity
	TypeName string
	IsBoss   bool
	Location vector.Vector
}

// BossDamaged is sent for every hit a living boss resolves. Health is the
// boss's health after the reaction, so dodged hits leave it unchanged.
type BossDamaged struct {
	Entity    donburi.Entity
	Amount    float64
	Health    float64
	MaxHealth float64
	Outcome   string
}

// SlowMotion asks the effects coordinator to dilate gameplay time.
type SlowMotion struct {
	Dilation float64
	Duration float64 // real seconds
}

type PlaySound struct {
	Sound    config.SoundID
	Location vector.Vector
}

type SpawnEffect struct {
	Effect   config.EffectID
	Location vector.Vector
}

// AnimNotify fires when playback passes a named marker in a cue.
type AnimNotify struct {
	Entity donburi.Entity
	Cue    string
	Notify string
}

// CueEnded reports a finished or interrupted cue.
type CueEnded struct {
	Entity      donburi.Entity
	Cue         string
	Purpose     components.CuePurpose
	Interrupted bool
}

// Player change notifications for the UI layer.
type HealthChanged struct {
	Entity         donburi.Entity
	Current, Max   float64
	PreviousHealth float64
}

type PotionCountChanged struct {
	Entity donburi.Entity
	Count  int
}

type WeaponChanged struct {
	Entity donburi.Entity
	Weapon components.WeaponSlot
}

type CurrentItemChanged struct {
	Entity donburi.Entity
	Item   string
}

type PlayerDied struct {
	Entity donburi.Entity
}

var (
	CombatantKilledEvent    = dbevents.NewEventType[CombatantKilled]()
	BossDamagedEvent        = dbevents.NewEventType[BossDamaged]()
	SlowMotionEvent         = dbevents.NewEventType[SlowMotion]()
	PlaySoundEvent          = dbevents.NewEventType[PlaySound]()
	SpawnEffectEvent        = dbevents.NewEventType[SpawnEffect]()
	AnimNotifyEvent         = dbevents.NewEventType[AnimNotify]()
	CueEndedEvent           = dbevents.NewEventType[CueEnded]()
	HealthChangedEvent      = dbevents.NewEventType[HealthChanged]()
	PotionCountChangedEvent = dbevents.NewEventType[PotionCountChanged]()
	WeaponChangedEvent      = dbevents.NewEventType[WeaponChanged]()
	CurrentItemChangedEvent = dbevents.NewEventType[CurrentItemChanged]()
	PlayerDiedEvent         = dbevents.NewEventType[PlayerDied]()
)

// ProcessAll delivers every queued event.
func ProcessAll(w donburi.World) {
	dbevents.ProcessAllEvents(w)
}
