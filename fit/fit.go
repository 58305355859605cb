// Package fit provides least-squares geometric fitting helpers used by the
// elliptic-arc-from-points construction path and by general conic
// recovery, built over gonum's normal-equations solver rather than a
// hand-rolled Gaussian elimination.
package fit

import (
	"fmt"
	"math"

	geom "github.com/inkscape/geomkernel"
	"gonum.org/v1/gonum/mat"
)

// FitEllipse fits the general conic A*x^2+B*xy+C*y^2+D*x+E*y+F=0 to pts by
// least squares, using the F=-1 normalization (valid whenever the fitted
// conic doesn't pass through the origin, which a degenerate-at-origin
// dataset would signal anyway via a singular normal matrix).
func FitEllipse(pts []geom.Pt) (geom.XAx, error) {
	n := len(pts)
	if n < 5 {
		return geom.XAx{}, fmt.Errorf("fit: need at least 5 points, got %d", n)
	}

	design := mat.NewDense(n, 5, nil)
	rhs := mat.NewVecDense(n, nil)
	for i, p := range pts {
		x, y := p.XY()
		fx, fy := float64(x), float64(y)
		design.SetRow(i, []float64{fx * fx, fx * fy, fy * fy, fx, fy})
		rhs.SetVec(i, 1)
	}

	var dt mat.Dense
	dt.Mul(design.T(), design)
	var b mat.VecDense
	b.MulVec(design.T(), rhs)

	var coeffs mat.VecDense
	if err := coeffs.SolveVec(&dt, &b); err != nil {
		return geom.XAx{}, fmt.Errorf("fit: normal equations singular: %w", err)
	}

	return geom.XAx{
		A: coeffs.AtVec(0),
		B: coeffs.AtVec(1),
		C: coeffs.AtVec(2),
		D: coeffs.AtVec(3),
		E: coeffs.AtVec(4),
		F: -1,
	}, nil
}

// FitCircle fits a circle to pts by least squares over the linearized form
// x^2+y^2 = 2*cx*x + 2*cy*y + (r^2 - cx^2 - cy^2).
func FitCircle(pts []geom.Pt) (geom.Circle, error) {
	n := len(pts)
	if n < 3 {
		return geom.Circle{}, fmt.Errorf("fit: need at least 3 points, got %d", n)
	}

	design := mat.NewDense(n, 3, nil)
	rhs := mat.NewVecDense(n, nil)
	for i, p := range pts {
		x, y := p.XY()
		fx, fy := float64(x), float64(y)
		design.SetRow(i, []float64{2 * fx, 2 * fy, 1})
		rhs.SetVec(i, fx*fx+fy*fy)
	}

	var dt mat.Dense
	dt.Mul(design.T(), design)
	var b mat.VecDense
	b.MulVec(design.T(), rhs)

	var coeffs mat.VecDense
	if err := coeffs.SolveVec(&dt, &b); err != nil {
		return geom.Circle{}, fmt.Errorf("fit: normal equations singular: %w", err)
	}

	cx, cy, c := coeffs.AtVec(0), coeffs.AtVec(1), coeffs.AtVec(2)
	r2 := c + cx*cx + cy*cy
	if r2 < 0 {
		return geom.Circle{}, fmt.Errorf("fit: negative squared radius from fit")
	}
	center := geom.PtXy(geom.Length(cx), geom.Length(cy))
	return geom.CirclePt(center, geom.Length(math.Sqrt(r2))), nil
}

// FitEllipticalArcSBasis fits an elliptical arc through pts and returns it
// in center-parameterized form: it fits the implicit conic, recovers its
// center, radii and rotation, and takes the start and end angles as the
// ellipse parameters of the first and last sample. The sweep always runs
// counter-clockwise, in [0, 2*pi). Useful for turning digitized or sampled
// arc data back into an EllipticalArc.
func FitEllipticalArcSBasis(pts []geom.Pt) (geom.EllipticalArc, error) {
	xax, err := FitEllipse(pts)
	if err != nil {
		return geom.EllipticalArc{}, err
	}
	if xax.IsDegenerate() {
		return geom.EllipticalArc{}, fmt.Errorf("fit: fitted conic is degenerate, not an ellipse")
	}
	if xax.Discriminant() >= 0 {
		return geom.EllipticalArc{}, fmt.Errorf("fit: fitted conic is not an ellipse (discriminant %.6g)", xax.Discriminant())
	}
	center, rx, ry, rotation, err := ellipseParamsFromConic(xax)
	if err != nil {
		return geom.EllipticalArc{}, err
	}

	first, last := pts[0], pts[len(pts)-1]
	cosR, sinR := math.Cos(float64(rotation)), math.Sin(float64(rotation))
	paramAngle := func(p geom.Pt) geom.Radians {
		i, j := center.VectorTo(p).Units()
		u := (cosR*float64(i) + sinR*float64(j)) / float64(rx)
		w := (-sinR*float64(i) + cosR*float64(j)) / float64(ry)
		return geom.Radians(math.Atan2(w, u))
	}
	startAngle := paramAngle(first)
	endAngle := paramAngle(last)
	sweep := endAngle - startAngle
	if sweep < 0 {
		sweep += geom.Radians(2 * math.Pi)
	}
	return geom.NewEllipticalArcCenter(center, rx, ry, rotation, startAngle, sweep), nil
}

// ellipseParamsFromConic converts the implicit conic into center, radii,
// and rotation via its associated symmetric matrix's eigen-decomposition.
func ellipseParamsFromConic(xax geom.XAx) (geom.Pt, geom.Length, geom.Length, geom.Radians, error) {
	denom := 4*xax.A*xax.C - xax.B*xax.B
	if denom == 0 {
		return geom.Pt{}, 0, 0, 0, fmt.Errorf("fit: singular conic matrix")
	}
	cx := (xax.B*xax.E - 2*xax.C*xax.D) / denom
	cy := (xax.B*xax.D - 2*xax.A*xax.E) / denom

	m := mat.NewSymDense(2, []float64{xax.A, xax.B / 2, xax.B / 2, xax.C})
	var eig mat.EigenSym
	if ok := eig.Factorize(m, true); !ok {
		return geom.Pt{}, 0, 0, 0, fmt.Errorf("fit: eigendecomposition failed")
	}
	values := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	f0 := xax.A*cx*cx + xax.B*cx*cy + xax.C*cy*cy + xax.D*cx + xax.E*cy + xax.F
	axis0 := math.Sqrt(math.Max(0, -f0/values[0]))
	axis1 := math.Sqrt(math.Max(0, -f0/values[1]))
	rotation := geom.Radians(math.Atan2(vecs.At(1, 0), vecs.At(0, 0)))

	center := geom.PtXy(geom.Length(cx), geom.Length(cy))
	return center, geom.Length(axis0), geom.Length(axis1), rotation, nil
}
