package geom

import "container/heap"

// Bounder is satisfied by anything a sweepline can order by a 1D interval:
// EntryValue and ExitValue give the item's extent along the sweep axis
// (typically an item's X-bounds, so the sweep advances left to right).
// This generalizes the teacher's bounding-box rejection idiom
// (IntersectionRectangleLine/Bezier.BoundingBox, which reject an O(n^2)
// pairwise test by interval overlap) into an O(n log n) active-list scan.
type Bounder[Item any] interface {
	EntryValue() float64
	ExitValue() float64
}

// SweepEvent is reported for every entry/exit transition plus the active
// set it was merged against.
type SweepEvent[Item any] struct {
	Index  int
	Item   Item
	Entry  bool
	Active []int
}

type sweepEvent struct {
	value   float64
	index   int
	isEntry bool
}

type eventHeap []sweepEvent

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	if h[i].value != h[j].value {
		return h[i].value < h[j].value
	}
	// Exits sort before entries at the same value, per the sweepline
	// invariant: a closing item should leave the active set before a
	// newly entering item at the identical boundary is tested against it.
	if h[i].isEntry != h[j].isEntry {
		return !h[i].isEntry
	}
	return h[i].index < h[j].index
}
func (h eventHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x any)        { *h = append(*h, x.(sweepEvent)) }
func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Sweep runs a generic sweepline over items, returning one SweepEvent per
// entry transition with the indices of every item simultaneously active at
// that point (including itself). Exit events update the active set but are
// not themselves reported, matching the entry-driven pairwise-candidate use
// the path/pathvector intersection layer needs.
func Sweep[Item any, B Bounder[Item]](items []Item, bound func(Item) B) []SweepEvent[Item] {
	h := make(eventHeap, 0, len(items)*2)
	for i, it := range items {
		b := bound(it)
		heap.Push(&h, sweepEvent{value: b.EntryValue(), index: i, isEntry: true})
		heap.Push(&h, sweepEvent{value: b.ExitValue(), index: i, isEntry: false})
	}

	active := make(map[int]bool)
	var out []SweepEvent[Item]
	for h.Len() > 0 {
		ev := heap.Pop(&h).(sweepEvent)
		if ev.isEntry {
			active[ev.index] = true
			actives := make([]int, 0, len(active))
			for idx := range active {
				actives = append(actives, idx)
			}
			out = append(out, SweepEvent[Item]{Index: ev.index, Item: items[ev.index], Entry: true, Active: actives})
		} else {
			delete(active, ev.index)
		}
	}
	return out
}

// CandidatePairs derives every pair of items whose sweep intervals overlap,
// using Sweep to avoid the O(n^2) all-pairs scan: two items are a candidate
// pair only if one was active when the other entered.
func CandidatePairs[Item any, B Bounder[Item]](items []Item, bound func(Item) B) [][2]int {
	events := Sweep(items, bound)
	seen := make(map[[2]int]bool)
	var out [][2]int
	for _, ev := range events {
		for _, other := range ev.Active {
			if other == ev.Index {
				continue
			}
			key := [2]int{ev.Index, other}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if !seen[key] {
				seen[key] = true
				out = append(out, key)
			}
		}
	}
	return out
}
