package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skypath/terrain"
)

// TestRegions_Split tests a 3×3 grid cut in two by a wall column.
//
//	S # 1
//	1 # 2
//	3 # G
//
// Expected: 2 regions of 3 cells each.
func TestRegions_Split(t *testing.T) {
	g, err := terrain.ParseText("S # 1\n1 # 2\n3 # G")
	require.NoError(t, err)

	regions := g.Regions()
	require.Len(t, regions, 2)
	assert.Len(t, regions[0], 3)
	assert.Len(t, regions[1], 3)
	assert.Equal(t, terrain.At(0, 0), regions[0][0])
	assert.Equal(t, terrain.At(0, 2), regions[1][0])

	assert.False(t, g.Reachable(g.Start(), g.Goal()))
	assert.True(t, g.Reachable(g.Goal(), terrain.At(0, 2)))
}

func TestReachable_DroneMap(t *testing.T) {
	g := mustParse(t, droneMap)
	assert.True(t, g.Reachable(g.Start(), g.Goal()))
	assert.True(t, g.Reachable(g.Start(), g.Start()))
	assert.False(t, g.Reachable(g.Start(), terrain.At(0, 4)), "wall target")
	assert.False(t, g.Reachable(terrain.At(-1, 0), g.Goal()), "off-grid origin")

	require.Len(t, g.Regions(), 1)
}

// TestReachable_EnclosedGoal walls the goal in on every side.
func TestReachable_EnclosedGoal(t *testing.T) {
	g, err := terrain.ParseText(`
		S 1 1 1 1
		1 1 # 1 1
		1 # G # 1
		1 1 # 1 1
	`)
	require.NoError(t, err)
	assert.False(t, g.Reachable(g.Start(), g.Goal()))
	assert.Len(t, g.Regions(), 2)
}
