package geom

import "testing"

type boundedRange struct {
	id       int
	lo, hi   float64
}

func (b boundedRange) EntryValue() float64 { return b.lo }
func (b boundedRange) ExitValue() float64  { return b.hi }

func TestSweepOrdersEntriesByValue(t *testing.T) {
	items := []boundedRange{
		{id: 0, lo: 0, hi: 5},
		{id: 1, lo: 10, hi: 15},
		{id: 2, lo: 2, hi: 20},
	}
	events := Sweep(items, func(b boundedRange) boundedRange { return b })

	var entryOrder []int
	for _, ev := range events {
		if ev.Entry {
			entryOrder = append(entryOrder, ev.Item.id)
		}
	}
	want := []int{0, 2, 1}
	if len(entryOrder) != len(want) {
		t.Fatalf("Sweep entry count failed. got %v, want %v", entryOrder, want)
	}
	for i, id := range want {
		if entryOrder[i] != id {
			t.Errorf("Sweep entry order failed at %d. got %v, want %v", i, entryOrder, want)
		}
	}
}

func TestCandidatePairsFindsOverlapsOnly(t *testing.T) {
	items := []boundedRange{
		{id: 0, lo: 0, hi: 5},   // overlaps 1
		{id: 1, lo: 3, hi: 8},   // overlaps 0
		{id: 2, lo: 20, hi: 30}, // isolated
	}
	pairs := CandidatePairs(items, func(b boundedRange) boundedRange { return b })
	if len(pairs) != 1 {
		t.Fatalf("CandidatePairs found %d pairs, want 1: %v", len(pairs), pairs)
	}
	pair := pairs[0]
	if !(pair == [2]int{0, 1} || pair == [2]int{1, 0}) {
		t.Errorf("CandidatePairs returned wrong pair %v", pair)
	}
}

func TestCandidatePairsNoOverlaps(t *testing.T) {
	items := []boundedRange{
		{id: 0, lo: 0, hi: 1},
		{id: 1, lo: 2, hi: 3},
		{id: 2, lo: 4, hi: 5},
	}
	pairs := CandidatePairs(items, func(b boundedRange) boundedRange { return b })
	if len(pairs) != 0 {
		t.Errorf("CandidatePairs found %d pairs for disjoint intervals, want 0: %v", len(pairs), pairs)
	}
}
