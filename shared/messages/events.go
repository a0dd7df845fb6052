package messages

// CombatantKilledEvent is broadcast when an enemy dies
type CombatantKilledEvent struct {
	NetworkID uint // NetworkId of the combatant, 0 if it was never synced
	TypeName  string
	IsBoss    bool
	X, Y, Z   float64
}

// DamageEvent is broadcast when a player shot resolves against an enemy
type DamageEvent struct {
	AttackerID uint // NetworkId of the shooting player
	TargetID   uint // NetworkId of the combatant
	Amount     float64
	Outcome    string // "killed", "dodged", "pain", ...
}

// SlowMotionEvent tells clients to dilate presentation time
type SlowMotionEvent struct {
	Dilation float64
	Duration float64 // real seconds
}

// SoundEvent asks clients to play a positional sound
type SoundEvent struct {
	Sound   int // config.SoundID
	X, Y, Z float64
}

// EffectEvent asks clients to spawn a visual effect
type EffectEvent struct {
	Effect  int // config.EffectID
	X, Y, Z float64
}
