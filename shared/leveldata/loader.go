package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names recognised in arena maps.
const (
	GroupBlockers    = "Blockers"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupEnemySpawn  = "EnemySpawn"
)

// DefaultBlockerHeight is used for blockers without a "height" property.
const DefaultBlockerHeight = 400

// LoadArena parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS (sandbox) or os.DirFS (server).
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupBlockers:
			for _, o := range og.Objects {
				h := float64(o.Properties.GetInt("height"))
				if h <= 0 {
					h = DefaultBlockerHeight
				}
				data.Blockers = append(data.Blockers, BlockerRect{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
					Height: h,
				})
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				data.PlayerSpawns = append(data.PlayerSpawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case GroupEnemySpawn:
			for _, o := range og.Objects {
				data.EnemySpawns = append(data.EnemySpawns, EnemySpawn{
					X:         o.X,
					Y:         o.Y,
					EnemyType: o.Properties.GetString("enemyType"),
					Yaw:       float64(o.Properties.GetInt("yaw")),
				})
			}
		}
	}

	if data.Width <= 0 || data.Height <= 0 {
		return nil, fmt.Errorf("arena %s has no extent", tmxPath)
	}
	if len(data.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("arena %s has no %s objects", tmxPath, GroupPlayerSpawn)
	}

	sort.Slice(data.PlayerSpawns, func(i, j int) bool {
		return data.PlayerSpawns[i].Index < data.PlayerSpawns[j].Index
	})

	return data, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
