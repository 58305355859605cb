package geom

import "math"

// Rect is an axis-aligned rectangle expressed as independent X and Y
// intervals: the planar lift D2[Interval]. Unlike Rectangle (polygon.go),
// which stores corner Pts in Length units for the legacy polygon/circle
// math, Rect is the interval-algebra box used by the curve/path bounds and
// clipping machinery, built directly from ScalarBezier.BoundsFast /
// BoundsExact results.
type Rect struct {
	X, Y Interval
}

// RectFromIntervals builds a Rect from its X and Y extents.
func RectFromIntervals(x, y Interval) Rect { return Rect{X: x, Y: y} }

// RectFromPts builds the smallest Rect containing both points.
func RectFromPts(a, b Pt) Rect {
	ax, ay := a.Units()
	bx, by := b.Units()
	return Rect{
		X: IntervalMinMax(float64(ax), float64(bx)),
		Y: IntervalMinMax(float64(ay), float64(by)),
	}
}

// MinPt returns the rectangle's minimum corner.
func (r Rect) MinPt() Pt { return PtXy(Length(r.X.Min()), Length(r.Y.Min())) }

// MaxPt returns the rectangle's maximum corner.
func (r Rect) MaxPt() Pt { return PtXy(Length(r.X.Max()), Length(r.Y.Max())) }

// Width returns the X extent of the rectangle.
func (r Rect) Width() Length { return Length(r.X.Extent()) }

// Height returns the Y extent of the rectangle.
func (r Rect) Height() Length { return Length(r.Y.Extent()) }

// Midpoint returns the rectangle's center point.
func (r Rect) Midpoint() Pt { return PtXy(Length(r.X.Middle()), Length(r.Y.Middle())) }

// Contains reports whether p lies within the closed rectangle.
func (r Rect) Contains(p Pt) bool {
	x, y := p.Units()
	return r.X.Contains(float64(x)) && r.Y.Contains(float64(y))
}

// Intersects reports whether the two rectangles overlap.
func (a Rect) Intersects(b Rect) bool {
	return a.X.Intersects(b.X) && a.Y.Intersects(b.Y)
}

// Union returns the smallest rectangle containing both operands.
func (a Rect) Union(b Rect) Rect {
	return Rect{X: a.X.Union(b.X), Y: a.Y.Union(b.Y)}
}

// Intersection returns the overlapping sub-rectangle and whether one exists.
func (a Rect) Intersection(b Rect) (Rect, bool) {
	x, ok := a.X.Intersection(b.X)
	if !ok {
		return Rect{}, false
	}
	y, ok := a.Y.Intersection(b.Y)
	if !ok {
		return Rect{}, false
	}
	return Rect{X: x, Y: y}, true
}

// DistanceSq returns the squared distance from p to the nearest point of the
// rectangle, 0 if p is inside.
func (r Rect) DistanceSq(p Pt) Length {
	x, y := p.Units()
	dx := 0.0
	if float64(x) < r.X.Min() {
		dx = r.X.Min() - float64(x)
	} else if float64(x) > r.X.Max() {
		dx = float64(x) - r.X.Max()
	}
	dy := 0.0
	if float64(y) < r.Y.Min() {
		dy = r.Y.Min() - float64(y)
	} else if float64(y) > r.Y.Max() {
		dy = float64(y) - r.Y.Max()
	}
	return Length(dx*dx + dy*dy)
}

// Distance returns the distance from p to the nearest point of the
// rectangle.
func (r Rect) Distance(p Pt) Length {
	return Length(math.Sqrt(float64(r.DistanceSq(p))))
}

// ToRectangle converts to the legacy corner-point Rectangle representation.
func (r Rect) ToRectangle() Rectangle {
	return RectanglePt(r.MinPt(), r.MaxPt())
}

// RectFromRectangle converts a legacy Rectangle to a Rect.
func RectFromRectangle(r Rectangle) Rect {
	return RectFromPts(r.MinPt(), r.MaxPt())
}

// TransformTo computes the Affine mapping this rect onto dst, the transform
// an SVG viewBox/viewport pairing would apply under a uniform
// preserveAspectRatio="xMidYMid meet"-style fit: uniform scale chosen to fit
// dst without distortion, centered.
func (r Rect) TransformTo(dst Rect) Affine {
	sx := dst.Width() / r.Width()
	sy := dst.Height() / r.Height()
	s := float64(sx)
	if float64(sy) < s {
		s = float64(sy)
	}
	scaled := AffineScale(s, s)
	srcCenter := r.Midpoint()
	dstCenter := dst.Midpoint()
	toOrigin := AffineTranslate(srcCenter.VectorTo(PtOrig))
	fromOrigin := AffineTranslate(PtOrig.VectorTo(dstCenter))
	return toOrigin.Multiply(scaled).Multiply(fromOrigin)
}
