package input

// RotationRates are device rotation speeds in degrees per second.
// X is rotation about the horizontal axis (tilting forward/back),
// Y about the vertical axis (turning left/right).
type RotationRates struct {
	X, Y float64
}

// RotationSource supplies rotation-rate samples for rotation steering.
// Desktop machines usually have no motion sensor; callers must check
// Available and fall back to pointer steering when it reports false.
type RotationSource interface {
	Available() bool
	Rates() RotationRates
}

// NullRotationSource is the degraded, no-sensor case.
type NullRotationSource struct{}

func (NullRotationSource) Available() bool      { return false }
func (NullRotationSource) Rates() RotationRates { return RotationRates{} }

// KeyRotationSource emulates a motion sensor from held arrow keys.
// Held keys ramp the rate toward ±MaxRate; released axes decay back to
// zero, so steering eases in and out like a real sensor signal would.
type KeyRotationSource struct {
	MaxRate float64 // deg/s at full deflection
	Ramp    float64 // approach speed, 1/s

	rates RotationRates
}

func NewKeyRotationSource() *KeyRotationSource {
	return &KeyRotationSource{MaxRate: 90, Ramp: 6}
}

func (s *KeyRotationSource) Available() bool      { return true }
func (s *KeyRotationSource) Rates() RotationRates { return s.rates }

// Update integrates the held-key state over dt.
// up/down drive the X rate, left/right the Y rate.
func (s *KeyRotationSource) Update(up, down, left, right bool, dt float64) {
	targetX := 0.0
	if up {
		targetX -= s.MaxRate
	}
	if down {
		targetX += s.MaxRate
	}
	targetY := 0.0
	if left {
		targetY -= s.MaxRate
	}
	if right {
		targetY += s.MaxRate
	}

	k := s.Ramp * dt
	if k > 1 {
		k = 1
	}
	s.rates.X += (targetX - s.rates.X) * k
	s.rates.Y += (targetY - s.rates.Y) * k
}
