package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk override format. Every section is optional; a
// present section replaces the built-in one, except enemy types, loot
// tables, item classes and weapons which merge by key.
type File struct {
	General    *Config                     `yaml:"general"`
	Physics    *PhysicsConfig              `yaml:"physics"`
	Combat     *CombatConfig               `yaml:"combat"`
	RangedHit  *RangedHitConfig            `yaml:"ranged_hit"`
	Reposition *RepositionConfig           `yaml:"reposition"`
	Player     *PlayerConfig               `yaml:"player"`
	Navigation *NavigationConfig           `yaml:"navigation"`
	Enemies    map[string]EnemyTypeConfig  `yaml:"enemies"`
	Loot       map[string]LootTable        `yaml:"loot"`
	Items      map[string]ItemClassConfig  `yaml:"items"`
	Weapons    map[string]WeaponTypeConfig `yaml:"weapons"`
}

// LoadFile reads a YAML override file and applies it.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Load(data); err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return nil
}

// Load parses YAML override data and applies it. Nothing is applied when
// parsing or validation fails.
func Load(data []byte) error {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if err := f.validate(); err != nil {
		return err
	}
	f.apply()
	return nil
}

func (f *File) validate() error {
	if f.General != nil && f.General.TPS <= 0 {
		return fmt.Errorf("general.tps must be positive, got %d", f.General.TPS)
	}
	if f.RangedHit != nil && (f.RangedHit.HitProbability < 0 || f.RangedHit.HitProbability > 1) {
		return fmt.Errorf("ranged_hit.hit_probability out of range: %v", f.RangedHit.HitProbability)
	}
	if f.Reposition != nil && f.Reposition.MinRadius > f.Reposition.RandomRadius {
		return fmt.Errorf("reposition.min_radius %v exceeds random_radius %v",
			f.Reposition.MinRadius, f.Reposition.RandomRadius)
	}
	for name, t := range f.Enemies {
		if t.Health <= 0 {
			return fmt.Errorf("enemy %q: health must be positive", name)
		}
		if t.AvoidChance < 0 || t.AvoidChance > 1 {
			return fmt.Errorf("enemy %q: avoid_chance out of range: %v", name, t.AvoidChance)
		}
	}
	return nil
}

func (f *File) apply() {
	if f.General != nil {
		g := *f.General
		C = &g
	}
	if f.Physics != nil {
		Physics = *f.Physics
	}
	if f.Combat != nil {
		Combat = *f.Combat
	}
	if f.RangedHit != nil {
		RangedHit = *f.RangedHit
	}
	if f.Reposition != nil {
		Reposition = *f.Reposition
	}
	if f.Player != nil {
		Player = *f.Player
	}
	if f.Navigation != nil {
		Navigation = *f.Navigation
	}
	for name, t := range f.Enemies {
		if t.Name == "" {
			t.Name = name
		}
		Enemy.Types[name] = t
	}
	for name, t := range f.Loot {
		Loot.Tables[name] = t
	}
	for name, c := range f.Items {
		Item.Classes[name] = c
	}
	for name, w := range f.Weapons {
		Weapon.Types[name] = w
	}
}
