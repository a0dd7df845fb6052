package systems

import (
	"github.com/automoto/xv-arena/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Schedule runs fn after delay gameplay seconds. With a non-nil owner the
// task is dropped if the owner is removed first.
func Schedule(e *ecs.ECS, owner *donburi.Entry, name string, delay float64, fn components.TimerFunc) *components.Timer {
	t := components.NewTimer(name, delay, fn)
	if owner != nil {
		t.OwnedBy(owner.Entity())
	}
	return enqueue(e, t)
}

// ScheduleReal runs fn after delay real seconds, ignoring time dilation.
func ScheduleReal(e *ecs.ECS, name string, delay float64, fn components.TimerFunc) *components.Timer {
	t := components.NewTimer(name, delay, fn)
	t.Unscaled = true
	return enqueue(e, t)
}

func enqueue(e *ecs.ECS, t *components.Timer) *components.Timer {
	entry, ok := components.Scheduler.First(e.World)
	if !ok {
		return t
	}
	s := components.Scheduler.Get(entry)
	s.Tasks = append(s.Tasks, t)
	return t
}

// UpdateTimers ticks pending tasks and fires the due ones. Tasks scheduled
// while firing start ticking next frame.
func UpdateTimers(e *ecs.ECS) {
	entry, ok := components.Scheduler.First(e.World)
	if !ok {
		return
	}
	s := components.Scheduler.Get(entry)

	scaled, unscaled := scaledDT(e.World), realDT(e.World)

	tasks := s.Tasks
	s.Tasks = nil
	var due []*components.Timer
	for _, t := range tasks {
		if !t.Pending() {
			continue
		}
		dt := scaled
		if t.Unscaled {
			dt = unscaled
		}
		if t.Tick(dt) {
			due = append(due, t)
			continue
		}
		s.Tasks = append(s.Tasks, t)
	}

	for _, t := range due {
		t.Fire(e)
	}
}
