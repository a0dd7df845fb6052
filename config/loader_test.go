package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	SetDefaults()

	assert.Equal(t, 0.5, Combat.BossAvoidChance)
	assert.Equal(t, 10.0, Combat.AvoidHealthGate)
	assert.Equal(t, 5.0, Combat.PainHealthGate)
	assert.Equal(t, 1200.0, Reposition.BehindDistance)
	assert.Equal(t, 20, Reposition.MaxTries)
	assert.Equal(t, 10.0, Combat.DefaultAttackDamage)

	def, ok := Enemy.Types[Enemy.DefaultType]
	require.True(t, ok)
	assert.Equal(t, 0.1, def.AvoidChance)
	assert.True(t, Enemy.Types["Warden"].IsBoss)
}

func TestLoadMergesSections(t *testing.T) {
	SetDefaults()
	t.Cleanup(SetDefaults)

	data := []byte(`
combat:
  boss_avoid_chance: 0.25
  avoid_health_gate: 20
  pain_health_gate: 5
  dodge_resume_delay: 2
enemies:
  Sniper:
    health: 30
    avoid_chance: 0.3
    cues:
      pain:
        - name: flinch
          duration: 0.2
loot:
  empty:
    entries: []
`)
	require.NoError(t, Load(data))

	assert.Equal(t, 0.25, Combat.BossAvoidChance)
	assert.Equal(t, 2.0, Combat.DodgeResumeDelay)

	sniper, ok := Enemy.Types["Sniper"]
	require.True(t, ok)
	assert.Equal(t, "Sniper", sniper.Name)
	require.Len(t, sniper.Cues.Pain, 1)
	assert.Equal(t, "flinch", sniper.Cues.Pain[0].Name)

	// Built-in types survive a partial enemy section.
	_, ok = Enemy.Types["Rifleman"]
	assert.True(t, ok)

	_, ok = Loot.Tables["empty"]
	assert.True(t, ok)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "combat: [unclosed"},
		{"zero tps", "general:\n  tps: 0\n"},
		{"probability", "ranged_hit:\n  hit_probability: 1.5\n"},
		{"radius order", "reposition:\n  random_radius: 100\n  min_radius: 200\n"},
		{"enemy health", "enemies:\n  Ghost:\n    health: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetDefaults()
			t.Cleanup(SetDefaults)

			before := Combat
			assert.Error(t, Load([]byte(tt.data)))
			assert.Equal(t, before, Combat)
		})
	}
}

func TestLoadFile(t *testing.T) {
	SetDefaults()
	t.Cleanup(SetDefaults)

	path := filepath.Join(t.TempDir(), "arena.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reposition:\n  behind_distance: 800\n  random_radius: 600\n  min_radius: 200\n  max_tries: 5\n"), 0o644))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, 800.0, Reposition.BehindDistance)
	assert.Equal(t, 5, Reposition.MaxTries)

	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

type fixedRoller struct{ n int }

func (f fixedRoller) Float64() float64 { return 0 }
func (f fixedRoller) Intn(int) int     { return f.n }

func TestPickRandomEntry(t *testing.T) {
	_, ok := LootTable{}.PickRandomEntry(fixedRoller{})
	assert.False(t, ok)

	table := LootTable{Entries: []LootEntry{{Name: "a"}, {Name: "b", ItemClass: "HealthPotion"}}}
	e, ok := table.PickRandomEntry(fixedRoller{n: 1})
	require.True(t, ok)
	assert.Equal(t, "b", e.Name)
}
