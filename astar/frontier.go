package astar

import "github.com/katalvlaran/skypath/terrain"

// entry is one frontier record: a cell reached with accumulated cost, ordered
// by priority = cost + h(cell, goal).
type entry struct {
	priority int64        // f = g + h
	cost     int64        // g, accumulated from start
	cell     terrain.Cell // cell reached
	seq      uint64       // push order, last-resort tie-break
}

// before defines the frontier's total order: priority, then cost, then cell
// row, then column, then push order. All keys ascend.
func (e *entry) before(o *entry) bool {
	if e.priority != o.priority {
		return e.priority < o.priority
	}
	if e.cost != o.cost {
		return e.cost < o.cost
	}
	if e.cell != o.cell {
		return e.cell.Less(o.cell)
	}
	return e.seq < o.seq
}

// frontier is a min-heap of *entry.
// We use the “lazy-decrease-key” approach: when a cheaper route to a cell is
// found we push a fresh entry and leave the old one in place. Outdated
// entries are either re-expanded harmlessly or, with Settled, discarded.
type frontier []*entry

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less delegates to entry.before.
func (f frontier) Less(i, j int) bool { return f[i].before(f[j]) }

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *entry.
func (f *frontier) Push(x any) { *f = append(*f, x.(*entry)) }

// Pop removes and returns the last element.
// Called by heap.Pop; returns any that must be cast to *entry.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
