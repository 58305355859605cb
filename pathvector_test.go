package geom

import "testing"

func TestPathVectorBoundsFast(t *testing.T) {
	square, err := NewClosedPath(
		NewLineSegment(PtXy(0, 0), PtXy(10, 0)),
		NewLineSegment(PtXy(10, 0), PtXy(10, 10)),
		NewLineSegment(PtXy(10, 10), PtXy(0, 10)),
		NewLineSegment(PtXy(0, 10), PtXy(0, 0)),
	)
	if err != nil {
		t.Fatalf("NewClosedPath failed: %v", err)
	}
	other, err := NewPath(NewLineSegment(PtXy(20, 20), PtXy(30, 30)))
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}

	pv := NewPathVector(square, other)
	r, ok := pv.BoundsFast().Get()
	if !ok {
		t.Fatalf("BoundsFast() returned empty for a non-empty PathVector")
	}
	if !IsEqual(Length(r.X.Max()), 30) || !IsEqual(Length(r.Y.Max()), 30) {
		t.Errorf("BoundsFast failed to union across paths. got %v", r)
	}
}

func TestPathVectorWinding(t *testing.T) {
	square, err := NewClosedPath(
		NewLineSegment(PtXy(0, 0), PtXy(10, 0)),
		NewLineSegment(PtXy(10, 0), PtXy(10, 10)),
		NewLineSegment(PtXy(10, 10), PtXy(0, 10)),
		NewLineSegment(PtXy(0, 10), PtXy(0, 0)),
	)
	if err != nil {
		t.Fatalf("NewClosedPath failed: %v", err)
	}
	pv := NewPathVector(square)
	if w := pv.Winding(PtXy(5, 5)); w == 0 {
		t.Errorf("Winding(interior) failed. got 0")
	}
}

func TestPathVectorIntersectCross(t *testing.T) {
	horizontal, err := NewPath(NewLineSegment(PtXy(-10, 0), PtXy(10, 0)))
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}
	vertical, err := NewPath(NewLineSegment(PtXy(0, -10), PtXy(0, 10)))
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}

	a := NewPathVector(horizontal)
	b := NewPathVector(vertical)
	hits := a.Intersect(b, Length(1e-3))
	if len(hits) != 1 {
		t.Fatalf("Intersect found %d intersections, want 1: %v", len(hits), hits)
	}
	if !IsEqualPair(hits[0].Point, PtOrig) {
		t.Errorf("Intersect point failed. got %v", hits[0].Point)
	}
}

func TestPathVectorIntersectNone(t *testing.T) {
	pa, paErr := NewPath(NewLineSegment(PtXy(0, 0), PtXy(10, 0)))
	pb, pbErr := NewPath(NewLineSegment(PtXy(0, 50), PtXy(10, 50)))
	a := NewPathVector(pathMust(t, pa, paErr))
	b := NewPathVector(pathMust(t, pb, pbErr))
	hits := a.Intersect(b, Length(1e-3))
	if len(hits) != 0 {
		t.Errorf("Intersect found %d intersections for disjoint paths, want 0", len(hits))
	}
}

func pathMust(t *testing.T, p Path, err error) Path {
	t.Helper()
	if err != nil {
		t.Fatalf("path construction failed: %v", err)
	}
	return p
}
