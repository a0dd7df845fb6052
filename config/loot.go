package config

import "github.com/automoto/xv-arena/shared/gamemath"

// ItemKind decides what happens when the player collects an item.
type ItemKind string

const (
	ItemPotion ItemKind = "potion" // adds to the potion count
	ItemEquip  ItemKind = "equip"  // becomes the current item
)

// LootEntry is one row of a loot table. An empty ItemClass is a valid
// "nothing dropped" row.
type LootEntry struct {
	Name      string `yaml:"name"`
	ItemClass string `yaml:"item_class"`
}

// LootTable is a flat list of equally likely entries.
type LootTable struct {
	Entries []LootEntry `yaml:"entries"`
}

// PickRandomEntry returns a uniformly chosen entry, or false for an empty
// table.
func (t LootTable) PickRandomEntry(r gamemath.Roller) (LootEntry, bool) {
	if len(t.Entries) == 0 {
		return LootEntry{}, false
	}
	return t.Entries[r.Intn(len(t.Entries))], true
}

// LootConfig maps table names to tables.
type LootConfig struct {
	Tables map[string]LootTable `yaml:"tables"`
}

// ItemClassConfig describes a pickup class.
type ItemClassConfig struct {
	Kind   ItemKind `yaml:"kind"`
	Radius float64  `yaml:"radius"`
}

// ItemConfig maps item classes to their definitions.
type ItemConfig struct {
	Classes map[string]ItemClassConfig `yaml:"classes"`
}

// WeaponTypeConfig holds socket offsets local to the owner's facing.
type WeaponTypeConfig struct {
	MuzzleOffset     [3]float64 `yaml:"muzzle_offset"`
	ShellEjectOffset [3]float64 `yaml:"shell_eject_offset"`
}

// WeaponConfig maps weapon names to their sockets.
type WeaponConfig struct {
	Types map[string]WeaponTypeConfig `yaml:"types"`
}

var (
	Loot   LootConfig
	Item   ItemConfig
	Weapon WeaponConfig
)

func defaultLoot() LootConfig {
	return LootConfig{
		Tables: map[string]LootTable{
			"grunt": {Entries: []LootEntry{
				{Name: "nothing"},
				{Name: "nothing"},
				{Name: "potion", ItemClass: "HealthPotion"},
				{Name: "ammo", ItemClass: "AmmoBox"},
			}},
			"boss": {Entries: []LootEntry{
				{Name: "potion", ItemClass: "HealthPotion"},
				{Name: "armor", ItemClass: "ArmorPlate"},
			}},
		},
	}
}

func defaultItems() ItemConfig {
	return ItemConfig{
		Classes: map[string]ItemClassConfig{
			"HealthPotion": {Kind: ItemPotion, Radius: 16},
			"AmmoBox":      {Kind: ItemEquip, Radius: 20},
			"ArmorPlate":   {Kind: ItemEquip, Radius: 24},
		},
	}
}

func defaultWeapons() WeaponConfig {
	return WeaponConfig{
		Types: map[string]WeaponTypeConfig{
			"rifle": {
				MuzzleOffset:     [3]float64{90, 12, 120},
				ShellEjectOffset: [3]float64{30, 18, 124},
			},
			"shotgun": {
				MuzzleOffset:     [3]float64{70, 14, 110},
				ShellEjectOffset: [3]float64{24, 20, 112},
			},
		},
	}
}
