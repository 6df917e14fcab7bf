package curve

import "curve-engine/math"

// ControlPoint is a physical point with a spring pulling it toward Target.
// Fixed points (the curve endpoints) never move after construction.
// Dragging points are driven externally; physics is suspended while set.
type ControlPoint struct {
	Position math.Vec2
	Velocity math.Vec2
	Target   math.Vec2
	Fixed    bool
	Dragging bool
	Radius   float64
}

func NewControlPoint(position math.Vec2, fixed bool) *ControlPoint {
	return &ControlPoint{
		Position: position,
		Target:   position,
		Fixed:    fixed,
		Radius:   HandleRadius,
	}
}

// Step advances the point by one semi-implicit Euler step.
// Safe to call unconditionally: fixed and dragged points are left untouched.
func (cp *ControlPoint) Step(stiffness, damping, dt float64) {
	if cp.Fixed || cp.Dragging {
		return
	}

	spring := cp.Target.Sub(cp.Position).Mul(stiffness)
	drag := cp.Velocity.Mul(-damping)
	accel := spring.Add(drag)

	cp.Velocity = cp.Velocity.Add(accel.Mul(dt))
	cp.Position = cp.Position.Add(cp.Velocity.Mul(dt))
	cp.Velocity = cp.Velocity.Mul(VelocityDecay)
}

// Contains reports whether p falls within the point's hit-test radius.
func (cp *ControlPoint) Contains(p math.Vec2) bool {
	return cp.Position.Distance(p) <= cp.Radius
}
