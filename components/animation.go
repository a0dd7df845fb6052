package components

import (
	"github.com/automoto/xv-arena/config"
	"github.com/yohamta/donburi"
)

// CuePurpose tells the end handler why a cue was played.
type CuePurpose int

const (
	CueNone CuePurpose = iota
	CuePain
	CueDodge
	CueDeath
	CueAttack
)

func (p CuePurpose) String() string {
	switch p {
	case CuePain:
		return "pain"
	case CueDodge:
		return "dodge"
	case CueDeath:
		return "death"
	case CueAttack:
		return "attack"
	}
	return "none"
}

type AnimationData struct {
	Current  *config.AnimationCue
	Purpose  CuePurpose
	Elapsed  float64
	PlayRate float64
	Frozen   bool

	nextNotify int
}

// Playing reports whether a cue is active.
func (a *AnimationData) Playing() bool {
	return a.Current != nil
}

// Begin starts cue from zero.
func (a *AnimationData) Begin(cue *config.AnimationCue, purpose CuePurpose) {
	a.Current = cue
	a.Purpose = purpose
	a.Elapsed = 0
	a.nextNotify = 0
	if a.PlayRate <= 0 {
		a.PlayRate = 1
	}
}

// Clear drops the current cue without any callbacks.
func (a *AnimationData) Clear() {
	a.Current = nil
	a.Purpose = CueNone
	a.Elapsed = 0
	a.nextNotify = 0
}

// Advance moves playback forward and returns the notifies passed. done is
// true when the cue has reached its end.
func (a *AnimationData) Advance(dt float64) (passed []config.CueNotify, done bool) {
	if a.Current == nil || a.Frozen {
		return nil, false
	}
	a.Elapsed += dt * a.PlayRate
	for a.nextNotify < len(a.Current.Notifies) && a.Current.Notifies[a.nextNotify].Time <= a.Elapsed {
		passed = append(passed, a.Current.Notifies[a.nextNotify])
		a.nextNotify++
	}
	return passed, a.Elapsed >= a.Current.Duration
}

var Animation = donburi.NewComponentType[AnimationData]()
