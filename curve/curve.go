package curve

import "curve-engine/math"

// TangentMarker is a sparse tangent sample used for visualization:
// a point on the curve plus the normalized derivative direction there.
type TangentMarker struct {
	Point     math.Vec2
	Direction math.Vec2
}

// Curve is a cubic Bézier over exactly four control points. The endpoints
// P0 and P3 are fixed; P1 and P2 are free interior points under physics.
// Samples and Markers are derived state, overwritten by every Resample.
type Curve struct {
	Points  [4]*ControlPoint
	Samples []math.Vec2
	Markers []TangentMarker
}

// Canonical layout as fractions of the canvas size. Reset and New both
// place the four points at these offsets.
var defaultLayout = [4]math.Vec2{
	{X: 0.2, Y: 0.5},
	{X: 0.4, Y: 0.3},
	{X: 0.6, Y: 0.7},
	{X: 0.8, Y: 0.5},
}

// New creates a curve with the canonical control-point layout for a
// width×height canvas. The first and last points are fixed endpoints.
func New(width, height float64) *Curve {
	c := &Curve{}
	for i, f := range defaultLayout {
		fixed := i == 0 || i == 3
		c.Points[i] = NewControlPoint(math.NewVec2(f.X*width, f.Y*height), fixed)
	}
	c.Resample(DefaultSegments, DefaultTangentStride)
	return c
}

// Reset moves the two interior points back to their canonical rest
// positions and zeroes their velocity. The points are reused, not
// recreated, so references held elsewhere stay valid.
func (c *Curve) Reset(width, height float64) {
	for _, i := range []int{1, 2} {
		p := c.Points[i]
		pos := math.NewVec2(defaultLayout[i].X*width, defaultLayout[i].Y*height)
		p.Position = pos
		p.Target = pos
		p.Velocity = math.Vec2Zero
		p.Dragging = false
	}
}

// Evaluate returns the curve position at parameter t.
// Precondition: t in [0,1]; out-of-range values are not clamped.
func (c *Curve) Evaluate(t float64) math.Vec2 {
	mt := 1.0 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t

	p0, p1, p2, p3 := c.Points[0].Position, c.Points[1].Position, c.Points[2].Position, c.Points[3].Position
	return math.Vec2{
		X: a*p0.X + b*p1.X + d*p2.X + e*p3.X,
		Y: a*p0.Y + b*p1.Y + d*p2.Y + e*p3.Y,
	}
}

// Tangent returns the unnormalized derivative B'(t).
// Precondition: t in [0,1]; out-of-range values are not clamped.
func (c *Curve) Tangent(t float64) math.Vec2 {
	mt := 1.0 - t
	p0, p1, p2, p3 := c.Points[0].Position, c.Points[1].Position, c.Points[2].Position, c.Points[3].Position

	d0 := p1.Sub(p0).Mul(3 * mt * mt)
	d1 := p2.Sub(p1).Mul(6 * mt * t)
	d2 := p3.Sub(p2).Mul(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// Resample recomputes Samples as segments+1 evenly spaced points and
// Markers at every tangentStride-th sample index, with the tangent
// direction normalized (zero when the curve degenerates to a point).
// Pure function of the current control-point positions; call once per
// frame after physics, before drawing.
func (c *Curve) Resample(segments, tangentStride int) {
	if cap(c.Samples) < segments+1 {
		c.Samples = make([]math.Vec2, 0, segments+1)
	}
	c.Samples = c.Samples[:0]
	c.Markers = c.Markers[:0]

	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		p := c.Evaluate(t)
		c.Samples = append(c.Samples, p)

		if i%tangentStride == 0 {
			c.Markers = append(c.Markers, TangentMarker{
				Point:     p,
				Direction: c.Tangent(t).Normalize(),
			})
		}
	}
}
