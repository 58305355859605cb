package geom

import (
	"fmt"
	"math"
)

// Circle represents a geometric circle defined as a center point and a raidus.
type Circle struct {
	c Pt
	r Length
}

// CirclePt creates a circle at specific point.
func CirclePt(c Pt, r Length) Circle {
	if r < 0 {
		r = -r
	}
	return Circle{
		c: c,
		r: r,
	}
}

// BoundingBox returns the bounding box for the circle.
func (c Circle) BoundingBox() Rectangle {
	v := VectorIj(c.r, c.r)
	least, most := c.c.Add(v), c.c.Add(v.Invert())
	return RectanglePt(least, most)
}

// OrErr returns a floating point error if either the center or the radius are
// in error.
func (c Circle) OrErr() (Circle, *FloatingPointError) {
	_, cerr := c.c.OrErr()
	_, rerr := c.r.OrErr()
	if cerr != nil && cerr.IsNaN() {
		return c, cerr
	} else if rerr != nil && rerr.IsNaN() {
		return c, rerr
	} else if cerr != nil {
		return c, cerr
	} else if rerr != nil {
		return c, rerr
	}
	return c, nil
}

// AsArcs returns the circle as a closed pair of EllipticalArc halves,
// mirroring how CirclePt/PtAtTheta already expose the circle's implicit
// math without committing to a Curve representation at construction time.
func (c Circle) AsArcs() (EllipticalArc, EllipticalArc) {
	first := NewEllipticalArcCenter(c.c, c.r, c.r, 0, 0, Radians(math.Pi))
	second := NewEllipticalArcCenter(c.c, c.r, c.r, 0, Radians(math.Pi), Radians(math.Pi))
	return first, second
}

// Ellipse is a circle generalized to independent X/Y radii and a rotation,
// represented as a closed pair of EllipticalArc halves.
type Ellipse struct {
	c             Pt
	rx, ry        Length
	rotationAngle Radians
}

// EllipsePt creates an ellipse centered at c with the given radii and
// x-axis rotation.
func EllipsePt(c Pt, rx, ry Length, rotation Radians) Ellipse {
	if rx < 0 {
		rx = -rx
	}
	if ry < 0 {
		ry = -ry
	}
	return Ellipse{c: c, rx: rx, ry: ry, rotationAngle: rotation}
}

// AsArcs returns the ellipse as a closed pair of EllipticalArc halves.
func (e Ellipse) AsArcs() (EllipticalArc, EllipticalArc) {
	first := NewEllipticalArcCenter(e.c, e.rx, e.ry, e.rotationAngle, 0, Radians(math.Pi))
	second := NewEllipticalArcCenter(e.c, e.rx, e.ry, e.rotationAngle, Radians(math.Pi), Radians(math.Pi))
	return first, second
}

// BoundingBox returns the bounding box for the ellipse.
func (e Ellipse) BoundingBox() Rectangle {
	first, second := e.AsArcs()
	r := first.BoundsFast().Union(second.BoundsFast())
	return r.ToRectangle()
}

// PtAtTheta returns the point on the circle, at the provided angle.
func (c Circle) PtAtTheta(theta Radians) Pt {
	v := VectorFromTheta(theta).Scale(c.r)
	return c.c.Add(v)
}

// String returns the implicit formula of this circle.
func (c Circle) String() string {
	x, y := c.c.XY()
	r := c.r
	xop, yop := '-', '-'

	if x < 0 {
		xop = '+'
		x = -x
	}
	if y < 0 {
		yop = '+'
		y = -y
	}
	return fmt.Sprintf("(x%c%s)^2+(y%c%s)^2=%s^2",
		xop,
		HumanFormat(9, x),
		yop,
		HumanFormat(9, y),
		HumanFormat(9, r),
	)
}
