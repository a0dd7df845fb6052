package components

import "github.com/yohamta/donburi"

// Blackboard is the decision state shared between the combat controller
// and the brain.
type Blackboard struct {
	IsAvoiding bool
	IsDead     bool
	IsBoss     bool
}

// BrainData is a minimal stand-in for a behaviour tree: while running it
// faces and approaches the player and fires the attack cue in range.
type BrainData struct {
	Running    bool
	StopReason string
	Blackboard Blackboard

	HasFocus       bool
	AttackMode     bool
	AttackRange    float64
	AttackCooldown float64 // seconds remaining
}

// Start resumes decision making.
func (b *BrainData) Start() {
	b.Running = true
	b.StopReason = ""
}

// Stop halts decision making. Stopping a stopped brain only updates the
// reason.
func (b *BrainData) Stop(reason string) {
	b.Running = false
	b.StopReason = reason
}

var Brain = donburi.NewComponentType[BrainData]()
