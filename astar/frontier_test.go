package astar

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skypath/terrain"
)

// TestFrontier_Order pushes entries out of order and checks the pop order
// follows (priority, cost, row, col, seq).
func TestFrontier_Order(t *testing.T) {
	want := []*entry{
		{priority: 3, cost: 1, cell: terrain.At(0, 0), seq: 7},
		{priority: 3, cost: 2, cell: terrain.At(0, 0), seq: 1},
		{priority: 3, cost: 2, cell: terrain.At(0, 5), seq: 2},
		{priority: 3, cost: 2, cell: terrain.At(1, 0), seq: 3},
		{priority: 3, cost: 2, cell: terrain.At(1, 0), seq: 4},
		{priority: 4, cost: 0, cell: terrain.At(0, 0), seq: 0},
	}
	pushOrder := []int{5, 3, 0, 4, 2, 1}

	var f frontier
	heap.Init(&f)
	for _, i := range pushOrder {
		heap.Push(&f, want[i])
	}

	for _, w := range want {
		got := heap.Pop(&f).(*entry)
		require.Same(t, w, got)
	}
	require.Zero(t, f.Len())
}
