package app

import (
	"time"

	"curve-engine/curve"
)

// Frame timing bounds. The first frame has no previous timestamp and
// assumes a nominal 60 Hz step; slow frames (or a resumed window) are
// clamped so the integrator never sees an oversized dt.
const (
	DefaultDT = 1.0 / 60.0
	MaxDT     = 1.0 / 30.0
)

// App is the explicit per-frame state of the simulation: the curve, the
// live spring parameters and the frame clock. Keeping it in one struct
// (rather than package globals) lets the loop run deterministically in
// tests without a window or a render context.
type App struct {
	Curve  *curve.Curve
	Params curve.Params

	Segments      int
	TangentStride int

	Width, Height float64

	lastTime time.Time
	started  bool
}

func New(width, height float64) *App {
	return &App{
		Curve:         curve.New(width, height),
		Params:        curve.DefaultParams(),
		Segments:      curve.DefaultSegments,
		TangentStride: curve.DefaultTangentStride,
		Width:         width,
		Height:        height,
	}
}

// Frame advances the simulation by the wall-clock time elapsed since the
// previous call and returns the dt actually used.
func (a *App) Frame(now time.Time) float64 {
	dt := DefaultDT
	if a.started {
		dt = now.Sub(a.lastTime).Seconds()
		if dt > MaxDT {
			dt = MaxDT
		}
	}
	a.lastTime = now
	a.started = true

	a.Advance(dt)
	return dt
}

// Advance runs one physics step at an explicit dt and resamples the
// curve. Split out from Frame so tests can drive exact timesteps.
func (a *App) Advance(dt float64) {
	for _, p := range a.Curve.Points {
		p.Step(a.Params.Stiffness, a.Params.Damping, dt)
	}
	a.Curve.Resample(a.Segments, a.TangentStride)
}

// Reset returns the interior control points to their rest layout.
func (a *App) Reset() {
	a.Curve.Reset(a.Width, a.Height)
	a.Curve.Resample(a.Segments, a.TangentStride)
}
