package geom

import (
	"math"
	"testing"
)

// straightBezier returns a cubic whose four control points are collinear and
// evenly spaced, so the curve degenerates to the line segment from (0,0) to
// (30,0) parameterized as x(t)=30t, y(t)=0 — exact values we can check by
// hand rather than against golden floats.
func straightBezier() Bezier {
	return BezierPt(PtXy(0, 0), PtXy(10, 0), PtXy(20, 0), PtXy(30, 0))
}

// sCurveBezier is a typical S-shaped cubic (translated so p0 is the origin
// and p1 isn't on the x-axis), used for the methods whose canonical-form
// math divides by the second control point's y coordinate.
func sCurveBezier() Bezier {
	return BezierPt(PtXy(0, 0), PtXy(0, 50), PtXy(100, 50), PtXy(100, 100))
}

func TestBezierPtAndPoints(t *testing.T) {
	b := straightBezier()
	pts := b.Points()
	if len(pts) != 4 {
		t.Fatalf("Points() returned %d points, want 4", len(pts))
	}
	if !IsEqualPair(pts[0], PtXy(0, 0)) || !IsEqualPair(pts[3], PtXy(30, 0)) {
		t.Errorf("Points() endpoints = %v, %v; want (0,0), (30,0)", pts[0], pts[3])
	}
}

func TestBezierPtAtTStraightLine(t *testing.T) {
	b := straightBezier()
	cases := []struct {
		t    float64
		want Pt
	}{
		{0, PtXy(0, 0)},
		{0.5, PtXy(15, 0)},
		{1, PtXy(30, 0)},
	}
	for _, c := range cases {
		if got := b.PtAtT(c.t); !IsEqualPair(got, c.want) {
			t.Errorf("PtAtT(%v) = %v, want %v", c.t, got, c.want)
		}
	}
}

func TestBezierLengthStraightLine(t *testing.T) {
	b := straightBezier()
	if got := b.Length(); math.Abs(float64(got-30)) > 1e-6 {
		t.Errorf("Length() = %v, want 30", got)
	}
}

func TestBezierApproxLengthStraightLine(t *testing.T) {
	b := straightBezier()
	if got := b.ApproxLength(16); math.Abs(float64(got-30)) > 1e-6 {
		t.Errorf("ApproxLength(16) = %v, want 30", got)
	}
}

func TestBezierTangentAtTStraightLine(t *testing.T) {
	b := straightBezier()
	tangent, normal := b.TangentAtT(0.5)
	i, j := tangent.Units()
	if math.Abs(float64(i-30)) > 1e-6 || math.Abs(float64(j)) > 1e-6 {
		t.Errorf("TangentAtT(0.5) tangent = (%v, %v), want (30, 0)", i, j)
	}
	ni, nj := normal.Units()
	if math.Abs(float64(ni)) > 1e-6 || math.Abs(float64(nj-30)) > 1e-6 {
		t.Errorf("TangentAtT(0.5) normal = (%v, %v), want (0, 30)", ni, nj)
	}
}

func TestBezierRootsStraightLine(t *testing.T) {
	b := straightBezier()
	xroots, yroots := b.Roots()
	if len(xroots) != 1 || math.Abs(xroots[0]) > 1e-9 {
		t.Errorf("Roots() xroots = %v, want [0]", xroots)
	}
	if len(yroots) != 0 {
		t.Errorf("Roots() yroots = %v, want none (y is identically zero)", yroots)
	}
}

func TestBezierSplitAtTStraightLine(t *testing.T) {
	b := straightBezier()
	left, right := b.SplitAtT(0.5)
	if !IsEqualPair(left.PtAtT(0), PtXy(0, 0)) || !IsEqualPair(left.PtAtT(1), PtXy(15, 0)) {
		t.Errorf("left half = [%v, %v], want [(0,0), (15,0)]", left.PtAtT(0), left.PtAtT(1))
	}
	if !IsEqualPair(right.PtAtT(0), PtXy(15, 0)) || !IsEqualPair(right.PtAtT(1), PtXy(30, 0)) {
		t.Errorf("right half = [%v, %v], want [(15,0), (30,0)]", right.PtAtT(0), right.PtAtT(1))
	}
}

func TestBezierStringRoundTripsCoefficients(t *testing.T) {
	b := straightBezier()
	s := b.String()
	if len(s) == 0 {
		t.Fatal("String() returned empty string")
	}
	if s[:8] != "Bezier[ " {
		t.Errorf("String() = %q, want it to start with \"Bezier[ \"", s)
	}
}

func TestBezierBoundingBoxWithinControlHull(t *testing.T) {
	b := sCurveBezier()
	box := b.BoundingBox()
	lx, mx, ly, my := LimitsPts(b.Points())
	min, max := box.MinPt(), box.MaxPt()
	if min.X() < lx-1e-9 || max.X() > mx+1e-9 || min.Y() < ly-1e-9 || max.Y() > my+1e-9 {
		t.Errorf("BoundingBox() = %v..%v, falls outside control hull [%v,%v]x[%v,%v]",
			min, max, lx, mx, ly, my)
	}
}

func TestBezierInflectionPtsWithinRange(t *testing.T) {
	b := sCurveBezier()
	for _, it := range b.InflectionPts() {
		if it < 0 || it > 1 {
			t.Errorf("InflectionPts() returned %v, outside [0,1]", it)
		}
	}
}

func TestBezierCurveTypeIsValid(t *testing.T) {
	b := sCurveBezier()
	switch b.CurveType() {
	case BEZIER_CURVE_TYPE_PLAIN, BEZIER_CURVE_TYPE_LOOP, BEZIER_CURVE_TYPE_CUSP,
		BEZIER_CURVE_TYPE_LOOPEND, BEZIER_CURVE_TYPE_LOOPBEGIN,
		BEZIER_CURVE_TYPE_SINGLEINFLECTION, BEZIER_CURVE_TYPE_DOUBLEINFLECTION:
		// one of the documented classifications; the S-curve has no loop or
		// cusp, so this at minimum exercises AlignOnX without panicking.
	default:
		t.Errorf("CurveType() returned an undocumented value %v", b.CurveType())
	}
}

func TestBezierAlignOnXMapsEndpointsToAxis(t *testing.T) {
	b := sCurveBezier()
	_, _, _, aligned := b.AlignOnX()
	pts := aligned.Points()
	if !IsEqualPair(pts[0], PtOrig) {
		t.Errorf("AlignOnX() first point = %v, want origin", pts[0])
	}
	if y := pts[3].Y(); math.Abs(float64(y)) > 1e-6 {
		t.Errorf("AlignOnX() last point = %v, want y=0", pts[3])
	}
}

// The following exercise the Curve tagged-union dispatch (curvekind.go) for
// the cubic variant, which wraps Bezier rather than reimplementing it.

func TestCurveCubicPointAtMatchesBezier(t *testing.T) {
	c := NewCubicBezier(PtXy(0, 0), PtXy(10, 0), PtXy(20, 0), PtXy(30, 0))
	if got := c.PointAt(0); !IsEqualPair(got, PtXy(0, 0)) {
		t.Errorf("PointAt(0) = %v, want (0,0)", got)
	}
	if got := c.PointAt(1); !IsEqualPair(got, PtXy(30, 0)) {
		t.Errorf("PointAt(1) = %v, want (30,0)", got)
	}
	if got := c.PointAt(0.5); !IsEqualPair(got, PtXy(15, 0)) {
		t.Errorf("PointAt(0.5) = %v, want (15,0)", got)
	}
}

func TestCurveCubicSubdivideIsContinuous(t *testing.T) {
	c := NewCubicBezier(PtXy(0, 0), PtXy(0, 50), PtXy(100, 50), PtXy(100, 100))
	mid := c.PointAt(0.5)
	left, right := c.Subdivide(0.5)
	if !IsEqualPair(left.FinalPoint(), mid) {
		t.Errorf("left.FinalPoint() = %v, want %v", left.FinalPoint(), mid)
	}
	if !IsEqualPair(right.InitialPoint(), mid) {
		t.Errorf("right.InitialPoint() = %v, want %v", right.InitialPoint(), mid)
	}
	if !IsEqualPair(left.InitialPoint(), c.InitialPoint()) {
		t.Errorf("left.InitialPoint() = %v, want %v", left.InitialPoint(), c.InitialPoint())
	}
	if !IsEqualPair(right.FinalPoint(), c.FinalPoint()) {
		t.Errorf("right.FinalPoint() = %v, want %v", right.FinalPoint(), c.FinalPoint())
	}
}

func TestCurveCubicBoundsExactWithinControlHull(t *testing.T) {
	c := NewCubicBezier(PtXy(0, 0), PtXy(0, 50), PtXy(100, 50), PtXy(100, 100))
	box := c.BoundsExact()
	min, max := box.MinPt(), box.MaxPt()
	if min.X() < -1e-9 || max.X() > 100+1e-9 || min.Y() < -1e-9 || max.Y() > 100+1e-9 {
		t.Errorf("BoundsExact() = %v..%v, falls outside the control hull [0,100]x[0,100]", min, max)
	}
}

func TestCurveCubicApproxLengthBracketsChord(t *testing.T) {
	c := NewCubicBezier(PtXy(0, 0), PtXy(10, 0), PtXy(20, 0), PtXy(30, 0))
	chord := c.InitialPoint().VectorTo(c.FinalPoint()).Magnitude()
	got := c.ApproxLength(16)
	if got < chord-1e-6 {
		t.Errorf("ApproxLength(16) = %v, want >= chord length %v", got, chord)
	}
}

func TestCurveCubicAxisRootsMatchesBezier(t *testing.T) {
	c := NewCubicBezier(PtXy(0, 0), PtXy(10, 0), PtXy(20, 0), PtXy(30, 0))
	xroots, yroots := c.AxisRoots()
	if len(xroots) != 1 || math.Abs(xroots[0]) > 1e-9 {
		t.Errorf("AxisRoots() xroots = %v, want [0]", xroots)
	}
	if len(yroots) != 0 {
		t.Errorf("AxisRoots() yroots = %v, want none", yroots)
	}
}

func TestCurveCubicTangentAtMatchesDirection(t *testing.T) {
	c := NewCubicBezier(PtXy(0, 0), PtXy(10, 0), PtXy(20, 0), PtXy(30, 0))
	tangent, _ := c.TangentAt(0.5)
	i, j := tangent.Units()
	if math.Abs(float64(i-30)) > 1e-6 || math.Abs(float64(j)) > 1e-6 {
		t.Errorf("TangentAt(0.5) = (%v, %v), want (30, 0)", i, j)
	}
}

func TestCurveCubicClassifyBezierMatchesBezierCurveType(t *testing.T) {
	c := NewCubicBezier(PtXy(0, 0), PtXy(0, 50), PtXy(100, 50), PtXy(100, 100))
	want := BezierPt(PtXy(0, 0), PtXy(0, 50), PtXy(100, 50), PtXy(100, 100)).CurveType()
	if got := c.ClassifyBezier(); got != want {
		t.Errorf("ClassifyBezier() = %v, want %v", got, want)
	}
}

func TestCurveClassifyBezierOnNonCubicIsPlain(t *testing.T) {
	c := NewLineSegment(PtXy(0, 0), PtXy(10, 10))
	if got := c.ClassifyBezier(); got != BEZIER_CURVE_TYPE_PLAIN {
		t.Errorf("ClassifyBezier() on a line = %v, want BEZIER_CURVE_TYPE_PLAIN", got)
	}
	if got := c.InflectionTimes(); got != nil {
		t.Errorf("InflectionTimes() on a line = %v, want nil", got)
	}
}

func TestCurveStringIsNonEmptyPerKind(t *testing.T) {
	curves := []Curve{
		NewLineSegment(PtXy(0, 0), PtXy(1, 1)),
		NewQuadraticBezier(PtXy(0, 0), PtXy(1, 2), PtXy(2, 0)),
		NewCubicBezier(PtXy(0, 0), PtXy(0, 50), PtXy(100, 50), PtXy(100, 100)),
	}
	for i, c := range curves {
		if s := c.String(); len(s) == 0 {
			t.Errorf("curves[%d].String() returned an empty string", i)
		}
	}
}
