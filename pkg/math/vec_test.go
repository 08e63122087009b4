package math

import (
	"math"
	"testing"
)

func TestVec3Normalize(t *testing.T) {
	v := Vec3{X: 3, Y: 4, Z: 0}
	n := v.Normalize()

	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("normalized length: got %f, want 1", n.Length())
	}
	if n.X != 0.6 || n.Y != 0.8 {
		t.Errorf("normalize: got %v, want (0.6, 0.8, 0)", n)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	n := Vec3{}.Normalize()
	if n != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %v", n)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := Vec2{X: 0, Y: 10}
	b := Vec2{X: 4, Y: -10}

	mid := a.Lerp(b, 0.5)
	if mid.X != 2 || mid.Y != 0 {
		t.Errorf("Lerp midpoint: got %v, want (2, 0)", mid)
	}
	if a.Lerp(b, 0) != a || a.Lerp(b, 1) != b {
		t.Error("Lerp endpoints should equal inputs")
	}
}

func TestVec2Scale(t *testing.T) {
	v := Vec2{X: 1.5, Y: -2}.Scale(2)
	if v.X != 3 || v.Y != -4 {
		t.Errorf("Scale: got %v, want (3, -4)", v)
	}
}
