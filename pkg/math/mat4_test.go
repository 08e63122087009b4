package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 || m[PerspectiveCell] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := RotateAxis(Vec3{X: 1}, 0.5)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestRotateAxisY90(t *testing.T) {
	m := RotateAxis(Vec3{Y: 1}, math.Pi/2) // 90 degrees
	p := Vec3{X: 1}                        // Point on X axis
	result := m.TransformPoint(p)

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if math.Abs(result.X) > 1e-9 || math.Abs(result.Y) > 1e-9 || math.Abs(result.Z+1) > 1e-9 {
		t.Errorf("RotateAxis Y 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateAxisMatchesNegativeAngle(t *testing.T) {
	axis := Vec3{X: 1, Y: 1}.Normalize()
	fwd := RotateAxis(axis, 0.7)
	back := RotateAxis(axis, -0.7)
	p := Vec3{X: 0.3, Y: -0.2, Z: 0.9}

	round := back.TransformPoint(fwd.TransformPoint(p))
	if math.Abs(round.X-p.X) > 1e-9 || math.Abs(round.Y-p.Y) > 1e-9 || math.Abs(round.Z-p.Z) > 1e-9 {
		t.Errorf("rotate then unrotate: got %v, want %v", round, p)
	}
}

func TestTransformPointPerspectiveDivide(t *testing.T) {
	m := Identity()
	m[PerspectiveCell] = 0.5 // w = 1 + z/2

	result := m.TransformPoint(Vec3{X: 2, Y: 4, Z: 2})
	// w = 2, so all components halve
	if result.X != 1 || result.Y != 2 || result.Z != 1 {
		t.Errorf("perspective divide: got %v, want (1, 2, 1)", result)
	}
}

func TestMulVec4(t *testing.T) {
	m := Identity()
	m[PerspectiveCell] = 1

	v := m.MulVec4(Vec4{0, 0, 1, 1})
	if v[3] != 2 {
		t.Errorf("MulVec4 w: got %f, want 2", v[3])
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := Identity()
	b := RotateAxis(Vec3{Z: 1}, math.Pi/4)

	if a.Lerp(b, 0) != a {
		t.Error("Lerp at t=0 should equal start")
	}
	if a.Lerp(b, 1) != b {
		t.Error("Lerp at t=1 should equal end")
	}

	mid := a.Lerp(b, 0.5)
	for i := range mid {
		want := (a[i] + b[i]) / 2
		if math.Abs(mid[i]-want) > 1e-12 {
			t.Errorf("Lerp midpoint element %d: got %f, want %f", i, mid[i], want)
		}
	}
}
