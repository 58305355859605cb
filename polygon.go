package geom

import "fmt"

// OrderedPtser is satisfied by any shape that can hand back its defining
// points in a fixed order; IsEqualPts uses it to compare a Rectangle against
// another point-ordered shape without caring which concrete type it is.
type OrderedPtser interface {
	Points() []Pt
}

// Rectangle is the corner-point form of an axis-aligned box: two opposite
// corners, min and max. It predates Rect's D2[Interval] representation and
// stays around as the return type for shapes (Circle.BoundingBox,
// Ellipse.BoundingBox) that only ever need a plain min/max box
// and never feed into interval arithmetic; RectFromRectangle and
// Rect.ToRectangle (rect.go) convert between the two where a curve's exact
// bounds need to cross from one world to the other.
type Rectangle struct {
	pts [2]Pt
}

func RectanglePt(p1, p2 Pt) Rectangle {
	lx, mx, ly, my := LimitsPts([]Pt{p1, p2})
	return Rectangle{
		pts: [2]Pt{PtXy(lx, ly), PtXy(mx, my)},
	}
}
func (r Rectangle) MinPt() Pt    { return r.pts[0] }
func (r Rectangle) MaxPt() Pt    { return r.pts[1] }
func (r Rectangle) Points() []Pt { return r.pts[:] }
func (r Rectangle) Dims() (Length, Length) {
	return r.pts[0].VectorTo(r.pts[1]).Units()
}
func (r Rectangle) Width() Length {
	w, _ := r.Dims()
	return w
}
func (r Rectangle) Height() Length {
	_, h := r.Dims()
	return h
}
func (r Rectangle) OrErr() (Rectangle, *FloatingPointError) {
	if _, err := r.pts[0].OrErr(); err != nil {
		return r, err
	} else if _, err = r.pts[1].OrErr(); err != nil {
		return r, err
	}
	return r, nil
}
func (r Rectangle) String() string {
	minmax, maxmin := PtXy(r.pts[0].X(), r.pts[1].Y()), PtXy(r.pts[1].X(), r.pts[0].Y())
	return fmt.Sprintf("rect=Polygon(%v, %v, %v, %v)",
		r.pts[0], minmax, r.pts[1], maxmin)
}
