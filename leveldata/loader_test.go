package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="12" tilewidth="32" tileheight="32" infinite="0" nextlayerid="8" nextobjectid="20">
 <objectgroup id="1" name="Ground">
  <object id="1" x="0" y="320" width="1280" height="64"/>
  <object id="2" x="640" y="256" width="64" height="64"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="320" y="288"><point/></object>
  <object id="4" x="64" y="288"><point/></object>
 </objectgroup>
 <objectgroup id="3" name="Traps">
  <object id="5" x="480" y="304" width="64" height="16"/>
 </objectgroup>
 <objectgroup id="4" name="DeathZones">
  <object id="6" x="0" y="376" width="1280" height="8"/>
 </objectgroup>
 <objectgroup id="5" name="Items">
  <object id="7" x="192" y="224" width="16" height="16"/>
  <object id="8" class="melon" x="224" y="224" width="16" height="16"/>
 </objectgroup>
 <objectgroup id="6" name="Finish">
  <object id="9" x="1216" y="256" width="32" height="64"/>
 </objectgroup>
 <objectgroup id="7" name="Launchers">
  <object id="10" x="960" y="272">
   <properties>
    <property name="direction" value="Right"/>
    <property name="interval" type="float" value="1.5"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

const noSpawnLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="32" tileheight="32" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="Ground">
  <object id="1" x="0" y="96" width="128" height="32"/>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/02_second.tmx": {Data: []byte(testLevel)},
		"levels/01_first.tmx":  {Data: []byte(testLevel)},
		"broken/empty.tmx":     {Data: []byte(noSpawnLevel)},
	}
}

func TestLoad(t *testing.T) {
	level, err := Load(testFS(), "levels/01_first.tmx")
	require.NoError(t, err)

	assert.Equal(t, "01_first", level.Name)
	assert.Equal(t, 40.0, level.Width)
	assert.Equal(t, 12.0, level.Height)
	assert.Equal(t, 32.0, level.PixelsPerUnit)

	// Tiled y is flipped: the floor at the bottom of the map sits at y=0.
	require.Len(t, level.Ground, 2)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 40, H: 2}, level.Ground[0])
	assert.Equal(t, Rect{X: 20, Y: 2, W: 2, H: 2}, level.Ground[1])

	assert.Equal(t, Point{X: 2, Y: 3}, level.Spawn, "leftmost spawn is used")

	require.Len(t, level.Traps, 1)
	assert.Equal(t, Rect{X: 15, Y: 2, W: 2, H: 0.5}, level.Traps[0])

	require.Len(t, level.DeathZones, 1)
	assert.Equal(t, 0.0, level.DeathZones[0].Y)

	require.Len(t, level.Items, 2)
	assert.Equal(t, "cherry", level.Items[0].Kind)
	assert.Equal(t, "melon", level.Items[1].Kind)
	assert.Equal(t, Rect{X: 6, Y: 4.5, W: 0.5, H: 0.5}, level.Items[0].Rect)

	require.Len(t, level.Finish, 1)

	require.Len(t, level.Launchers, 1)
	l := level.Launchers[0]
	assert.Equal(t, Point{X: 30, Y: 3.5}, l.Point)
	assert.Equal(t, Right, l.Direction)
	assert.Equal(t, 1.5, l.Interval)
	assert.Equal(t, 6.0, l.Speed, "missing speed falls back to the default")
	assert.Equal(t, 4.0, l.ResetTime)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(testFS(), "broken/empty.tmx")
	assert.ErrorIs(t, err, ErrNoSpawn)

	_, err = Load(testFS(), "levels/missing.tmx")
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	levels, err := LoadAll(testFS(), "levels")
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "01_first", levels[0].Name)
	assert.Equal(t, "02_second", levels[1].Name)

	_, err = LoadAll(testFS(), "nothing")
	assert.Error(t, err)
}

func TestDirection_Vector(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy float64
	}{
		{Left, -1, 0},
		{Right, 1, 0},
		{Up, 0, 1},
		{Down, 0, -1},
		{"", -1, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.dir.Vector()
		assert.Equal(t, tt.dx, dx, string(tt.dir))
		assert.Equal(t, tt.dy, dy, string(tt.dir))
	}
}
