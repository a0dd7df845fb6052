package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="32" height="16" tilewidth="64" tileheight="64" infinite="0" nextlayerid="4" nextobjectid="10">
 <objectgroup id="1" name="Blockers">
  <object id="1" x="100" y="200" width="64" height="32">
   <properties>
    <property name="height" type="int" value="150"/>
   </properties>
  </object>
  <object id="2" x="400" y="200" width="64" height="64"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="900" y="500">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="4" x="300" y="500"/>
 </objectgroup>
 <objectgroup id="3" name="EnemySpawn">
  <object id="5" x="600" y="300">
   <properties>
    <property name="enemyType" value="Warden"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(testMap)},
	}

	data, err := LoadArena(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, "test", data.Name)
	assert.Equal(t, 32*64, data.Width)
	assert.Equal(t, 16*64, data.Height)

	require.Len(t, data.Blockers, 2)
	assert.Equal(t, BlockerRect{X: 100, Y: 200, W: 64, H: 32, Height: 150}, data.Blockers[0])
	assert.Equal(t, float64(DefaultBlockerHeight), data.Blockers[1].Height)

	require.Len(t, data.PlayerSpawns, 2)
	assert.Equal(t, 0, data.PlayerSpawns[0].Index, "spawns sorted by index")
	assert.Equal(t, 300.0, data.PlayerSpawns[0].X)

	require.Len(t, data.EnemySpawns, 1)
	assert.Equal(t, "Warden", data.EnemySpawns[0].EnemyType)
}

func TestLoadArenaErrors(t *testing.T) {
	noSpawn := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="4" height="4" tilewidth="64" tileheight="64">
</map>
`
	fsys := fstest.MapFS{
		"levels/empty.tmx": &fstest.MapFile{Data: []byte(noSpawn)},
	}

	_, err := LoadArena(fsys, "levels/empty.tmx")
	assert.Error(t, err)

	_, err = LoadArena(fsys, "levels/missing.tmx")
	assert.Error(t, err)
}

func TestLoadAllArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": &fstest.MapFile{Data: []byte(testMap)},
		"levels/a.tmx": &fstest.MapFile{Data: []byte(testMap)},
	}

	arenas, names, err := LoadAllArenas(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, arenas, 2)

	_, _, err = LoadAllArenas(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}
