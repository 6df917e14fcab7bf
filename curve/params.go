package curve

// Params are the spring coefficients read by the integrator every step.
// They are mutated live by the UI; changes take effect on the next Step.
type Params struct {
	Stiffness float64 // spring constant, useful range 0.01–0.3
	Damping   float64 // velocity damping, useful range 0.0–1.0
}

const (
	DefaultStiffness = 0.08
	DefaultDamping   = 0.92

	// VelocityDecay is an extra per-step decay applied after integration,
	// independent of Params.Damping. It guarantees settling even at low
	// damping values and must not be folded into the damping term.
	VelocityDecay = 0.99

	// HandleRadius is the hit-test radius of a control point in pixels.
	// UI-only; it plays no part in the physics.
	HandleRadius = 12.0

	DefaultSegments      = 100
	DefaultTangentStride = 10
)

func DefaultParams() Params {
	return Params{Stiffness: DefaultStiffness, Damping: DefaultDamping}
}
