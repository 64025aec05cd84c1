package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); got != (Vec3{5, -3, 9}) {
		t.Errorf("Add: expected {5 -3 9}, got %v", got)
	}
	if got := a.Subtract(b); got != (Vec3{-3, 7, -3}) {
		t.Errorf("Subtract: expected {-3 7 -3}, got %v", got)
	}
	if got := a.Multiply(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Multiply: expected {2 4 6}, got %v", got)
	}
	if got := a.Divide(2); got != (Vec3{0.5, 1, 1.5}) {
		t.Errorf("Divide: expected {0.5 1 1.5}, got %v", got)
	}
	if got := a.MultiplyVec(b); got != (Vec3{4, -10, 18}) {
		t.Errorf("MultiplyVec: expected {4 -10 18}, got %v", got)
	}
	if got := a.Negate(); got != (Vec3{-1, -2, -3}) {
		t.Errorf("Negate: expected {-1 -2 -3}, got %v", got)
	}
}

func TestVec3_DotCross(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)

	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot of orthogonal vectors: expected 0, got %f", got)
	}
	if got := NewVec3(1, 2, 3).Dot(NewVec3(4, 5, 6)); got != 32 {
		t.Errorf("Dot: expected 32, got %f", got)
	}

	cross := a.Cross(b)
	if cross != (Vec3{0, 0, 1}) {
		t.Errorf("Cross: expected {0 0 1}, got %v", cross)
	}
	// Cross product is perpendicular to both inputs
	if cross.Dot(a) != 0 || cross.Dot(b) != 0 {
		t.Errorf("Cross result not perpendicular to inputs: %v", cross)
	}
}

func TestVec3_Length(t *testing.T) {
	v := NewVec3(3, 4, 0)
	if got := v.Length(); got != 5 {
		t.Errorf("Length: expected 5, got %f", got)
	}
	if got := v.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared: expected 25, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(0, 3, 4).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Normalize: expected unit length, got %f", v.Length())
	}
	expected := NewVec3(0, 0.6, 0.8)
	if math.Abs(v.Y-expected.Y) > 1e-12 || math.Abs(v.Z-expected.Z) > 1e-12 {
		t.Errorf("Normalize: expected %v, got %v", expected, v)
	}
}

func TestVec3_NormalizeZeroLength(t *testing.T) {
	// Zero-length input comes back unchanged rather than as NaN components
	zero := NewVec3(0, 0, 0)
	got := zero.Normalize()
	if got != zero {
		t.Errorf("Normalize of zero vector: expected %v, got %v", zero, got)
	}
	if math.IsNaN(got.X) || math.IsNaN(got.Y) || math.IsNaN(got.Z) {
		t.Errorf("Normalize of zero vector produced NaN: %v", got)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if v != (Vec3{0, 0.5, 1}) {
		t.Errorf("Clamp: expected {0 0.5 1}, got %v", v)
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		n        Vec3
		expected Vec3
	}{
		{
			name:     "45 degree bounce off ground",
			v:        NewVec3(1, -1, 0),
			n:        NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0),
		},
		{
			name:     "head-on reversal",
			v:        NewVec3(0, 0, -1),
			n:        NewVec3(0, 0, 1),
			expected: NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflect(tt.v, tt.n)
			if math.Abs(got.X-tt.expected.X) > 1e-12 ||
				math.Abs(got.Y-tt.expected.Y) > 1e-12 ||
				math.Abs(got.Z-tt.expected.Z) > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	got := ray.At(1.5)
	expected := NewVec3(1, 2, 0)
	if got != expected {
		t.Errorf("At: expected %v, got %v", expected, got)
	}
	if ray.At(0) != ray.Origin {
		t.Errorf("At(0): expected ray origin %v, got %v", ray.Origin, ray.At(0))
	}
}
