package math

import (
	"math"
	"testing"
)

func TestVec2Operations(t *testing.T) {
	v1 := NewVec2(1, 2)
	v2 := NewVec2(4, 6)

	// Addition
	result := v1.Add(v2)
	expected := NewVec2(5, 8)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	// Subtraction
	result = v2.Sub(v1)
	expected = NewVec2(3, 4)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	// Scalar multiplication
	result = v1.Mul(2)
	expected = NewVec2(2, 4)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}

	// Dot product
	dot := v1.Dot(v2)
	expectedDot := 16.0 // 1*4 + 2*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}
}

func TestVec2Length(t *testing.T) {
	v := NewVec2(3, 4)

	if length := v.Length(); length != 5 {
		t.Errorf("Length: expected 5, got %v", length)
	}
	if sq := v.LengthSquared(); sq != 25 {
		t.Errorf("LengthSquared: expected 25, got %v", sq)
	}
	if d := v.Distance(NewVec2(3, 0)); d != 4 {
		t.Errorf("Distance: expected 4, got %v", d)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := NewVec2(3, 0)
	normalized := v.Normalize()
	expected := NewVec2(1, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	// Check length is 1
	length := NewVec2(-7, 11).Normalize().Length()
	if math.Abs(length-1) > 1e-12 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}
}

func TestVec2NormalizeZero(t *testing.T) {
	// The zero vector has no direction; it must normalize to itself
	// rather than produce NaN components.
	normalized := Vec2Zero.Normalize()
	if normalized != Vec2Zero {
		t.Errorf("Normalize zero: expected %v, got %v", Vec2Zero, normalized)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := NewVec2(0, 0)
	b := NewVec2(10, 20)

	if mid := a.Lerp(b, 0.5); mid != NewVec2(5, 10) {
		t.Errorf("Lerp: expected (5,10), got %v", mid)
	}
	if start := a.Lerp(b, 0); start != a {
		t.Errorf("Lerp: expected %v, got %v", a, start)
	}
	if end := a.Lerp(b, 1); end != b {
		t.Errorf("Lerp: expected %v, got %v", b, end)
	}
}

func BenchmarkVec2Add(b *testing.B) {
	v1 := NewVec2(1, 2)
	v2 := NewVec2(4, 6)

	for i := 0; i < b.N; i++ {
		_ = v1.Add(v2)
	}
}

func BenchmarkVec2Normalize(b *testing.B) {
	v := NewVec2(3, 4)

	for i := 0; i < b.N; i++ {
		_ = v.Normalize()
	}
}
