package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type timerState int

const (
	timerPending timerState = iota
	timerFired
	timerCancelled
)

// TimerFunc runs when a timer fires. owner is nil for unowned timers.
type TimerFunc func(e *ecs.ECS, owner *donburi.Entry)

// Timer is a scheduled task handle. A timer with an owner never fires once
// the owner has been removed from the world.
type Timer struct {
	Name      string
	Remaining float64
	// Unscaled timers advance on real time, ignoring time dilation.
	Unscaled bool

	owner    donburi.Entity
	hasOwner bool
	fn       TimerFunc
	state    timerState
}

func NewTimer(name string, delay float64, fn TimerFunc) *Timer {
	return &Timer{Name: name, Remaining: delay, fn: fn}
}

// OwnedBy ties the timer's lifetime to an entity.
func (t *Timer) OwnedBy(e donburi.Entity) *Timer {
	t.owner = e
	t.hasOwner = true
	return t
}

// Cancel stops a pending timer. Safe on nil and on fired timers.
func (t *Timer) Cancel() {
	if t != nil && t.state == timerPending {
		t.state = timerCancelled
	}
}

func (t *Timer) Pending() bool {
	return t != nil && t.state == timerPending
}

// Tick advances the timer and reports whether it is due.
func (t *Timer) Tick(dt float64) bool {
	if t.state != timerPending {
		return false
	}
	t.Remaining -= dt
	return t.Remaining <= 0
}

// Fire runs the task once, unless it was cancelled or its owner is gone.
func (t *Timer) Fire(e *ecs.ECS) {
	if t.state != timerPending {
		return
	}
	t.state = timerFired
	var owner *donburi.Entry
	if t.hasOwner {
		if !e.World.Valid(t.owner) {
			return
		}
		owner = e.World.Entry(t.owner)
	}
	if t.fn != nil {
		t.fn(e, owner)
	}
}

// SchedulerData is the singleton list of pending timers.
type SchedulerData struct {
	Tasks []*Timer
}

var Scheduler = donburi.NewComponentType[SchedulerData]()
