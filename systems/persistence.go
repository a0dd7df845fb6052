package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/quasilyte/gdata"
)

const directorStatsKey = "director"

// SavedDirectorStats represents the kill totals stored on disk
type SavedDirectorStats struct {
	TotalKills     int `json:"totalKills"`
	TotalBossKills int `json:"totalBossKills"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for kill totals
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Director.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadDirectorStats loads kill totals from disk. Missing data is not an
// error.
func LoadDirectorStats() (*SavedDirectorStats, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(directorStatsKey)
	if err != nil {
		log.Printf("Warning: Could not load kill totals: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var stats SavedDirectorStats
	if err := json.Unmarshal(data, &stats); err != nil {
		log.Printf("Warning: Could not parse kill totals: %v", err)
		return nil, err
	}
	return &stats, nil
}

// SaveDirectorStats writes the director's totals. It is a no-op until
// InitPersistence succeeded or when saving is disabled.
func SaveDirectorStats(d *components.DirectorData) error {
	if !gdataInitialized || gdataManager == nil || !cfg.Director.SaveKills || d == nil {
		return nil
	}

	data, err := json.Marshal(SavedDirectorStats{
		TotalKills:     d.TotalKills,
		TotalBossKills: d.TotalBossKills,
	})
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(directorStatsKey, data)
}
