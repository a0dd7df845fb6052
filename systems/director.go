package systems

import (
	"log"

	"github.com/automoto/xv-arena/components"
	"github.com/automoto/xv-arena/events"
	"github.com/yohamta/donburi"
)

func directorOf(w donburi.World) *components.DirectorData {
	entry, ok := components.Director.First(w)
	if !ok {
		return nil
	}
	return components.Director.Get(entry)
}

// onCombatantKilled counts kills. Each kill event is counted once,
// whatever order kills arrive in.
func onCombatantKilled(w donburi.World, ev events.CombatantKilled) {
	d := directorOf(w)
	if d == nil {
		return
	}
	d.Kills++
	d.TotalKills++
	if ev.IsBoss {
		d.BossKills++
		d.TotalBossKills++
	}
	d.LastKilled = ev.TypeName
	log.Printf("[director] %s killed (%d this session, %d total)", ev.TypeName, d.Kills, d.TotalKills)

	if err := SaveDirectorStats(d); err != nil {
		log.Printf("[director] Warning: could not save kill totals: %v", err)
	}
}

// Kills returns the session kill count.
func Kills(w donburi.World) int {
	if d := directorOf(w); d != nil {
		return d.Kills
	}
	return 0
}

// RestoreDirectorStats loads persisted totals into the director.
func RestoreDirectorStats(w donburi.World) {
	d := directorOf(w)
	if d == nil {
		return
	}
	saved, err := LoadDirectorStats()
	if err != nil || saved == nil {
		return
	}
	d.TotalKills = saved.TotalKills
	d.TotalBossKills = saved.TotalBossKills
}
