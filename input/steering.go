package input

import (
	"curve-engine/curve"
	"curve-engine/math"
)

// Mode selects the ambient steering signal used when nothing is dragged.
type Mode int

const (
	ModePointer Mode = iota
	ModeRotation
)

func (m Mode) String() string {
	if m == ModeRotation {
		return "rotation"
	}
	return "pointer"
}

// Steering default tuning. Sensitivities are tunable, not invariants.
const (
	DefaultPointerSensitivity  = 0.6  // target px per px of cursor offset
	DefaultRotationSensitivity = 2.0  // target px per deg/s of rotation
	DefaultMargin              = 40.0 // keep-on-canvas clamp, px
)

// Steering turns pointer and rotation input into control-point writes:
// direct manipulation while a handle is dragged, ambient target steering
// otherwise. It only ever touches the externally sanctioned fields
// (Position, Target, Velocity, Dragging).
type Steering struct {
	Mode                Mode
	PointerSensitivity  float64
	RotationSensitivity float64
	Margin              float64

	// rest positions the interior targets steer around
	rest [2]math.Vec2

	dragged *curve.ControlPoint
}

// NewSteering builds a controller steering around the interior points'
// current targets.
func NewSteering(c *curve.Curve) *Steering {
	s := &Steering{
		PointerSensitivity:  DefaultPointerSensitivity,
		RotationSensitivity: DefaultRotationSensitivity,
		Margin:              DefaultMargin,
	}
	s.CaptureRest(c)
	return s
}

// CaptureRest re-reads the interior rest positions, e.g. after a reset.
func (s *Steering) CaptureRest(c *curve.Curve) {
	s.rest[0] = c.Points[1].Target
	s.rest[1] = c.Points[2].Target
}

// Dragging reports whether a handle is currently under direct manipulation.
func (s *Steering) Dragging() bool {
	return s.dragged != nil
}

// Update applies one frame of input. cursor is in canvas coordinates,
// down/pressed are the current and edge state of the drag button, rot is
// the current rotation sample (ignored unless Mode is ModeRotation), and
// width/height are the canvas dimensions used for centering and clamping.
func (s *Steering) Update(c *curve.Curve, cursor math.Vec2, down, pressed bool, rot RotationRates, width, height float64) {
	if s.dragged != nil {
		if !down {
			// release: physics resumes from wherever the drag left off
			s.dragged.Dragging = false
			s.dragged = nil
		} else {
			s.dragged.Position = cursor
			s.dragged.Target = cursor
			s.dragged.Velocity = math.Vec2Zero
			return
		}
	}

	if pressed {
		for _, p := range c.Points {
			if p.Fixed || !p.Contains(cursor) {
				continue
			}
			s.dragged = p
			p.Dragging = true
			p.Position = cursor
			p.Target = cursor
			p.Velocity = math.Vec2Zero
			return
		}
	}

	// Ambient steering: offset applied with opposite sign to P1 vs P2
	// so the curve answers with an S shape.
	var offset math.Vec2
	switch s.Mode {
	case ModeRotation:
		offset = math.NewVec2(rot.Y, rot.X).Mul(s.RotationSensitivity)
	default:
		center := math.NewVec2(width/2, height/2)
		offset = cursor.Sub(center).Mul(s.PointerSensitivity)
	}

	c.Points[1].Target = s.clamp(s.rest[0].Add(offset), width, height)
	c.Points[2].Target = s.clamp(s.rest[1].Sub(offset), width, height)
}

func (s *Steering) clamp(p math.Vec2, width, height float64) math.Vec2 {
	if p.X < s.Margin {
		p.X = s.Margin
	}
	if p.X > width-s.Margin {
		p.X = width - s.Margin
	}
	if p.Y < s.Margin {
		p.Y = s.Margin
	}
	if p.Y > height-s.Margin {
		p.Y = height - s.Margin
	}
	return p
}
