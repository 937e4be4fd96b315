// File: terrain/example_test.go
package terrain_test

import (
	"fmt"

	"github.com/katalvlaran/skypath/terrain"
)

// ExampleParseText demonstrates building a grid from text and querying it.
func ExampleParseText() {
	g, err := terrain.ParseText(`
		S 1 2
		# 3 G
	`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("start:", g.Start(), "goal:", g.Goal())
	fmt.Println("passable (1,0):", g.IsPassable(terrain.At(1, 0)))
	fmt.Println("cost (1,1):", g.TraversalCost(terrain.At(1, 1)))
	fmt.Println("neighbors of (0,1):", g.Neighbors(terrain.At(0, 1)))
	// Output:
	// start: (0,0) goal: (1,2)
	// passable (1,0): false
	// cost (1,1): 3
	// neighbors of (0,1): [(1,1) (0,0) (0,2)]
}

// ExampleNewGrid_configError shows how marker violations surface.
func ExampleNewGrid_configError() {
	_, err := terrain.ParseText("S 1 S\n2 3 G")
	fmt.Println(err)
	// Output: terrain: grid has more than one start marker at (0,2)
}
