package geom

import "math"

// EllipticalArc is a curve segment of an ellipse, carrying its five
// defining parameters directly (center parameterization) rather than the
// endpoint-plus-flags form SVG authors write paths in; NewEllipticalArcEndpoint
// builds one from SVG 1.1's endpoint parameterization (Appendix F.6).
type EllipticalArc struct {
	Center        Pt
	Rx, Ry        Length
	RotationAngle Radians
	StartAngle    Radians
	SweepAngle    Radians // EndAngle - StartAngle; signed, may exceed +-2*pi in magnitude is not allowed
	LargeArc      bool
	Sweep         bool
}

// NewEllipticalArcCenter builds an arc directly from its center
// parameterization.
func NewEllipticalArcCenter(center Pt, rx, ry Length, rotation, start, sweep Radians) EllipticalArc {
	if rx < 0 {
		rx = -rx
	}
	if ry < 0 {
		ry = -ry
	}
	return EllipticalArc{
		Center: center, Rx: rx, Ry: ry, RotationAngle: rotation,
		StartAngle: start, SweepAngle: sweep,
		LargeArc: math.Abs(float64(sweep)) > math.Pi,
		Sweep:    sweep > 0,
	}
}

// NewEllipticalArcEndpoint builds an arc from SVG 1.1's endpoint
// parameterization: the two endpoints, the radii (scaled up when too small
// to span the endpoints, per F.6.6), the x-axis rotation in radians, and the
// large-arc/sweep flags. Returns NotRepresentable if either radius is zero or
// the two endpoints coincide.
func NewEllipticalArcEndpoint(p0, p1 Pt, rx, ry Length, rotation Radians, largeArc, sweep bool) (EllipticalArc, error) {
	if rx == 0 || ry == 0 {
		return EllipticalArc{}, newError(NotRepresentable, "zero radius elliptical arc")
	}
	if IsEqualPair(p0, p1) {
		return EllipticalArc{}, newError(NotRepresentable, "elliptical arc with coincident endpoints")
	}
	if rx < 0 {
		rx = -rx
	}
	if ry < 0 {
		ry = -ry
	}

	cosPhi, sinPhi := math.Cos(float64(rotation)), math.Sin(float64(rotation))
	dx2 := float64(p0.X()-p1.X()) / 2
	dy2 := float64(p0.Y()-p1.Y()) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	rxf, ryf := float64(rx), float64(ry)
	lambda := (x1p*x1p)/(rxf*rxf) + (y1p*y1p)/(ryf*ryf)
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		rxf *= scale
		ryf *= scale
	}

	sign := 1.0
	if largeArc == sweep {
		sign = -1
	}
	num := rxf*rxf*ryf*ryf - rxf*rxf*y1p*y1p - ryf*ryf*x1p*x1p
	den := rxf*rxf*y1p*y1p + ryf*ryf*x1p*x1p
	co := 0.0
	if den != 0 && num > 0 {
		co = sign * math.Sqrt(num/den)
	}
	cxp := co * (rxf * y1p / ryf)
	cyp := co * -(ryf * x1p / rxf)

	mx, my := float64(p0.X()+p1.X())/2, float64(p0.Y()+p1.Y())/2
	cx := cosPhi*cxp - sinPhi*cyp + mx
	cy := sinPhi*cxp + cosPhi*cyp + my

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		a := math.Acos(Clamp(-1, dot/lenProd, 1))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta1 := angle(1, 0, (x1p-cxp)/rxf, (y1p-cyp)/ryf)
	dtheta := angle((x1p-cxp)/rxf, (y1p-cyp)/ryf, (-x1p-cxp)/rxf, (-y1p-cyp)/ryf)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	return EllipticalArc{
		Center:        PtXy(Length(cx), Length(cy)),
		Rx:            Length(rxf),
		Ry:            Length(ryf),
		RotationAngle: rotation,
		StartAngle:    Radians(theta1),
		SweepAngle:    Radians(dtheta),
		LargeArc:      largeArc,
		Sweep:         sweep,
	}, nil
}

func (e EllipticalArc) angleAt(t float64) float64 {
	return float64(e.StartAngle) + t*float64(e.SweepAngle)
}

// PointAt evaluates the arc's position at t in [0,1].
func (e EllipticalArc) PointAt(t float64) Pt {
	a := e.angleAt(t)
	cosPhi, sinPhi := math.Cos(float64(e.RotationAngle)), math.Sin(float64(e.RotationAngle))
	ex := float64(e.Rx) * math.Cos(a)
	ey := float64(e.Ry) * math.Sin(a)
	x := cosPhi*ex - sinPhi*ey
	y := sinPhi*ex + cosPhi*ey
	cx, cy := e.Center.Units()
	return PtXy(cx+Length(x), cy+Length(y))
}

// TangentAt returns the (non-unit) velocity vector at t.
func (e EllipticalArc) TangentAt(t float64) Vector {
	a := e.angleAt(t)
	cosPhi, sinPhi := math.Cos(float64(e.RotationAngle)), math.Sin(float64(e.RotationAngle))
	dex := -float64(e.Rx) * math.Sin(a) * float64(e.SweepAngle)
	dey := float64(e.Ry) * math.Cos(a) * float64(e.SweepAngle)
	dx := cosPhi*dex - sinPhi*dey
	dy := sinPhi*dex + cosPhi*dey
	return VectorIj(Length(dx), Length(dy))
}

// Subdivide splits the arc at t into two sub-arcs sharing the split point.
func (e EllipticalArc) Subdivide(t float64) (EllipticalArc, EllipticalArc) {
	split := e.angleAt(t)
	left := e
	left.SweepAngle = Radians(split - float64(e.StartAngle))
	right := e
	right.StartAngle = Radians(split)
	right.SweepAngle = Radians(float64(e.StartAngle) + float64(e.SweepAngle) - split)
	left.LargeArc = math.Abs(float64(left.SweepAngle)) > math.Pi
	right.LargeArc = math.Abs(float64(right.SweepAngle)) > math.Pi
	return left, right
}

// Portion restricts the arc to [t0, t1], reversing if t0 > t1.
func (e EllipticalArc) Portion(t0, t1 float64) EllipticalArc {
	reversed := t0 > t1
	if reversed {
		t0, t1 = t1, t0
	}
	a0, a1 := e.angleAt(t0), e.angleAt(t1)
	out := e
	out.StartAngle = Radians(a0)
	out.SweepAngle = Radians(a1 - a0)
	out.LargeArc = math.Abs(float64(out.SweepAngle)) > math.Pi
	if reversed {
		return out.Reversed()
	}
	return out
}

// Reversed reparameterizes the arc t -> 1-t.
func (e EllipticalArc) Reversed() EllipticalArc {
	out := e
	out.StartAngle = Radians(float64(e.StartAngle) + float64(e.SweepAngle))
	out.SweepAngle = -e.SweepAngle
	out.Sweep = !e.Sweep
	return out
}

// Transformed applies an affine transform by resampling the arc's endpoints
// and radii through the transform and refitting the endpoint
// parameterization; exact for similarity transforms (rotate/scale/translate),
// an approximation under general shear.
func (e EllipticalArc) Transformed(m Affine) EllipticalArc {
	p0, p1 := e.PointAt(0), e.PointAt(1)
	rv := m.TransformVector(VectorIj(e.Rx, 0))
	scale := rv.Magnitude() / e.Rx
	if e.Rx == 0 {
		scale = 1
	}
	np0, np1 := m.TransformPt(p0), m.TransformPt(p1)
	rotDelta := rv.Angle()
	arc, err := NewEllipticalArcEndpoint(np0, np1, e.Rx*scale, e.Ry*scale, e.RotationAngle+rotDelta, e.LargeArc, e.Sweep != !m.PreservesAreaSign())
	if err != nil {
		return e
	}
	return arc
}

// BoundsFast returns the bounding rectangle of the arc: the axis-aligned
// box of the full ellipse, clipped to practical purposes by sampling the
// endpoints and the axis-crossing extrema that fall within [StartAngle,
// StartAngle+SweepAngle].
func (e EllipticalArc) BoundsFast() Rect {
	pts := []Pt{e.PointAt(0), e.PointAt(1)}
	cosPhi, sinPhi := math.Cos(float64(e.RotationAngle)), math.Sin(float64(e.RotationAngle))
	// Extremal angles solve tan(theta) = -Ry*tan(phi)/Rx (x-extrema) and its
	// y counterpart; test all four quadrant solutions.
	candidates := []float64{
		math.Atan2(-float64(e.Ry)*sinPhi, float64(e.Rx)*cosPhi),
		math.Atan2(float64(e.Ry)*cosPhi, float64(e.Rx)*sinPhi),
	}
	for _, base := range candidates {
		for _, a := range []float64{base, base + math.Pi} {
			if angleInSweep(a, float64(e.StartAngle), float64(e.SweepAngle)) {
				t := (a - float64(e.StartAngle)) / float64(e.SweepAngle)
				pts = append(pts, e.PointAt(t))
			}
		}
	}
	lx, mx, ly, my := LimitsPts(pts)
	return RectFromPts(PtXy(lx, ly), PtXy(mx, my))
}

func angleInSweep(a, start, sweep float64) bool {
	end := start + sweep
	lo, hi := start, end
	if sweep < 0 {
		lo, hi = end, start
	}
	for a < lo {
		a += 2 * math.Pi
	}
	for a > hi {
		a -= 2 * math.Pi
	}
	return a >= lo && a <= hi
}
