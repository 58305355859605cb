package geom

import (
	"math"
	"testing"
)

func TestEllipticalArcCenterEndpoints(t *testing.T) {
	arc := NewEllipticalArcCenter(PtOrig, 10, 10, 0, 0, Radians(math.Pi/2))
	p0 := arc.PointAt(0)
	p1 := arc.PointAt(1)
	if !IsEqualPair(p0, PtXy(10, 0)) {
		t.Errorf("PointAt(0) failed. got %v", p0)
	}
	if !IsEqual(p1.X(), 0) || !IsEqual(p1.Y(), 10) {
		t.Errorf("PointAt(1) failed. got %v", p1)
	}
}

func TestEllipticalArcEndpointZeroRadius(t *testing.T) {
	_, err := NewEllipticalArcEndpoint(PtXy(0, 0), PtXy(10, 0), 0, 5, 0, false, true)
	if err == nil {
		t.Fatalf("NewEllipticalArcEndpoint with zero radius should fail")
	}
}

func TestEllipticalArcEndpointRoundTrip(t *testing.T) {
	// A quarter circle of radius 10 from (10,0) to (0,10), centered at the
	// origin, matching the center-parameterized arc above.
	arc, err := NewEllipticalArcEndpoint(PtXy(10, 0), PtXy(0, 10), 10, 10, 0, false, true)
	if err != nil {
		t.Fatalf("NewEllipticalArcEndpoint failed: %v", err)
	}
	if !IsEqual(arc.Rx, 10) || !IsEqual(arc.Ry, 10) {
		t.Errorf("recovered radii failed. got rx=%f ry=%f", arc.Rx, arc.Ry)
	}
	if !IsEqualPair(arc.Center, PtOrig) {
		t.Errorf("recovered center failed. got %v", arc.Center)
	}
	got := arc.PointAt(0)
	if !IsEqualPair(got, PtXy(10, 0)) {
		t.Errorf("PointAt(0) after endpoint construction failed. got %v", got)
	}
	got = arc.PointAt(1)
	if !IsEqual(got.X(), 0) || !IsEqual(got.Y(), 10) {
		t.Errorf("PointAt(1) after endpoint construction failed. got %v", got)
	}
}

func TestEllipticalArcSubdivide(t *testing.T) {
	arc := NewEllipticalArcCenter(PtOrig, 10, 5, 0, 0, Radians(math.Pi))
	left, right := arc.Subdivide(0.5)
	mid := arc.PointAt(0.5)
	if !IsEqualPair(left.PointAt(1), mid) {
		t.Errorf("Subdivide left endpoint failed. %v != %v", left.PointAt(1), mid)
	}
	if !IsEqualPair(right.PointAt(0), mid) {
		t.Errorf("Subdivide right endpoint failed. %v != %v", right.PointAt(0), mid)
	}
}

func TestEllipticalArcReversed(t *testing.T) {
	arc := NewEllipticalArcCenter(PtOrig, 10, 5, 0, 0, Radians(math.Pi/2))
	rev := arc.Reversed()
	if !IsEqualPair(rev.PointAt(0), arc.PointAt(1)) {
		t.Errorf("Reversed PointAt(0) failed. %v != %v", rev.PointAt(0), arc.PointAt(1))
	}
	if !IsEqualPair(rev.PointAt(1), arc.PointAt(0)) {
		t.Errorf("Reversed PointAt(1) failed. %v != %v", rev.PointAt(1), arc.PointAt(0))
	}
}

func TestEllipticalArcBoundsFastContainsEndpoints(t *testing.T) {
	arc := NewEllipticalArcCenter(PtOrig, 10, 5, 0, 0, Radians(math.Pi))
	r := arc.BoundsFast()
	if !r.Contains(arc.PointAt(0)) || !r.Contains(arc.PointAt(1)) || !r.Contains(arc.PointAt(0.5)) {
		t.Errorf("BoundsFast failed to contain sampled arc points. bounds=%v", r)
	}
}
