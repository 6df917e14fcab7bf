package curve

import (
	stdmath "math"
	"testing"

	"curve-engine/math"
)

// testCurve builds the canonical 800x500 layout:
// (160,250) fixed, (320,150), (480,350), (640,250) fixed.
func testCurve() *Curve {
	return New(800, 500)
}

func TestNewCanonicalLayout(t *testing.T) {
	c := testCurve()

	want := [4]math.Vec2{
		{X: 160, Y: 250},
		{X: 320, Y: 150},
		{X: 480, Y: 350},
		{X: 640, Y: 250},
	}
	for i, w := range want {
		if c.Points[i].Position != w {
			t.Errorf("point %d: expected %v, got %v", i, w, c.Points[i].Position)
		}
	}
	if !c.Points[0].Fixed || !c.Points[3].Fixed {
		t.Error("endpoints must be fixed")
	}
	if c.Points[1].Fixed || c.Points[2].Fixed {
		t.Error("interior points must be free")
	}
}

func TestEvaluateEndpoints(t *testing.T) {
	c := testCurve()

	if d := c.Evaluate(0).Distance(c.Points[0].Position); d > 1e-9 {
		t.Errorf("Evaluate(0): %v units from P0", d)
	}
	if d := c.Evaluate(1).Distance(c.Points[3].Position); d > 1e-9 {
		t.Errorf("Evaluate(1): %v units from P3", d)
	}
}

func TestEvaluateContinuity(t *testing.T) {
	c := testCurve()

	// Adjacent fine samples must not jump. The derivative magnitude is
	// bounded by 3*max|P(i+1)-P(i)| (~900 here), so at dt=1e-3 any jump
	// beyond ~1 unit would indicate a discontinuity.
	const n = 1000
	prev := c.Evaluate(0)
	for i := 1; i <= n; i++ {
		p := c.Evaluate(float64(i) / n)
		if d := p.Distance(prev); d > 2.0 {
			t.Fatalf("discontinuity at t=%v: jump of %v units", float64(i)/n, d)
		}
		prev = p
	}
}

func TestTangentMatchesNumericalDerivative(t *testing.T) {
	c := testCurve()

	const h = 1e-6
	for _, tv := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		analytic := c.Tangent(tv)
		numeric := c.Evaluate(tv + h).Sub(c.Evaluate(tv - h)).Mul(1.0 / (2 * h))

		if d := analytic.Distance(numeric); d > 1e-3 {
			t.Errorf("t=%v: analytic %v vs central difference %v (off by %v)",
				tv, analytic, numeric, d)
		}
	}
}

func TestResampleCounts(t *testing.T) {
	c := testCurve()
	c.Resample(DefaultSegments, DefaultTangentStride)

	if len(c.Samples) != DefaultSegments+1 {
		t.Errorf("samples: expected %d, got %d", DefaultSegments+1, len(c.Samples))
	}
	// markers at indices 0, 10, ..., 100
	if len(c.Markers) != DefaultSegments/DefaultTangentStride+1 {
		t.Errorf("markers: expected %d, got %d",
			DefaultSegments/DefaultTangentStride+1, len(c.Markers))
	}

	for i, m := range c.Markers {
		if l := m.Direction.Length(); stdmath.Abs(l-1) > 1e-9 {
			t.Errorf("marker %d: direction length %v, expected 1", i, l)
		}
	}
}

func TestResampleIdempotent(t *testing.T) {
	c := testCurve()
	c.Resample(DefaultSegments, DefaultTangentStride)
	first := append([]math.Vec2(nil), c.Samples...)

	c.Resample(DefaultSegments, DefaultTangentStride)
	for i := range first {
		if c.Samples[i] != first[i] {
			t.Fatalf("sample %d changed between identical resamples", i)
		}
	}
}

func TestTangentDegenerateCurve(t *testing.T) {
	// All control points coincident: the derivative is zero everywhere and
	// the marker direction degenerates to the zero vector, not NaN.
	c := testCurve()
	for _, p := range c.Points {
		p.Position = math.NewVec2(100, 100)
	}
	c.Resample(DefaultSegments, DefaultTangentStride)

	for i, m := range c.Markers {
		if m.Direction != math.Vec2Zero {
			t.Errorf("marker %d: expected zero direction, got %v", i, m.Direction)
		}
		if stdmath.IsNaN(m.Point.X) || stdmath.IsNaN(m.Point.Y) {
			t.Errorf("marker %d: NaN point", i)
		}
	}
}

func TestResampleFollowsControlPoints(t *testing.T) {
	c := testCurve()
	c.Resample(DefaultSegments, DefaultTangentStride)
	mid := c.Samples[50]

	c.Points[1].Position = math.NewVec2(320, 400)
	c.Resample(DefaultSegments, DefaultTangentStride)

	if c.Samples[50] == mid {
		t.Error("resample did not pick up moved control point")
	}
}

func TestReset(t *testing.T) {
	c := testCurve()

	c.Points[1].Position = math.NewVec2(10, 10)
	c.Points[1].Velocity = math.NewVec2(3, 3)
	c.Points[1].Target = math.NewVec2(20, 20)
	c.Points[1].Dragging = true
	p1 := c.Points[1]

	c.Reset(800, 500)

	if c.Points[1] != p1 {
		t.Fatal("reset must reuse the existing control point")
	}
	if p1.Position != math.NewVec2(320, 150) || p1.Target != math.NewVec2(320, 150) {
		t.Errorf("reset: position %v target %v", p1.Position, p1.Target)
	}
	if p1.Velocity != math.Vec2Zero {
		t.Errorf("reset: velocity %v", p1.Velocity)
	}
	if p1.Dragging {
		t.Error("reset: dragging flag not cleared")
	}
	if c.Points[0].Position != math.NewVec2(160, 250) {
		t.Errorf("reset moved a fixed endpoint to %v", c.Points[0].Position)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	c := testCurve()
	for i := 0; i < b.N; i++ {
		_ = c.Evaluate(0.37)
	}
}

func BenchmarkResample(b *testing.B) {
	c := testCurve()
	for i := 0; i < b.N; i++ {
		c.Resample(DefaultSegments, DefaultTangentStride)
	}
}
