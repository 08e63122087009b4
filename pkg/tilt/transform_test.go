package tilt

import (
	stdmath "math"
	"testing"

	"github.com/Faultbox/tiltkit/pkg/math"
)

func TestBuildTransformPerspectiveTerm(t *testing.T) {
	m := BuildTransform(2, 0, math.Vec3{X: 1})

	if m[math.PerspectiveCell] != 0.5 {
		t.Errorf("perspective cell: got %f, want 0.5", m[math.PerspectiveCell])
	}

	// Zero angle leaves the rotation component at identity.
	id := math.Identity()
	for i := range m {
		if i == math.PerspectiveCell {
			continue
		}
		if m[i] != id[i] {
			t.Errorf("element %d: got %f, want %f", i, m[i], id[i])
		}
	}
}

func TestBuildTransformHalfTurnAboutY(t *testing.T) {
	m := BuildTransform(1, 180, math.Vec3{Y: 1})

	// A 180 degree rotation about y sends (0,0,1) to (0,0,-1); the
	// perspective term of 1.0 must not disturb that.
	got := m.TransformPoint(math.Vec3{Z: 1})
	if stdmath.Abs(got.X) > 1e-9 || stdmath.Abs(got.Y) > 1e-9 || stdmath.Abs(got.Z+1) > 1e-9 {
		t.Errorf("(0,0,1) under 180deg y rotation: got %v, want (0, 0, -1)", got)
	}

	// The perspective term rides along with the rotation, so check it
	// through w: (0,0,1) rotates to z=-1 and picks up w = 1 - 1/1 = 0.
	v := m.MulVec4(math.Vec4{0, 0, 1, 1})
	if stdmath.Abs(v[3]) > 1e-9 {
		t.Errorf("w after divide term: got %f, want 0", v[3])
	}
}

func TestBuildTransformNormalizesAxis(t *testing.T) {
	a := BuildTransform(1.5, 30, math.Vec3{X: 1, Y: 1})
	b := BuildTransform(1.5, 30, math.Vec3{X: 10, Y: 10})

	for i := range a {
		if stdmath.Abs(a[i]-b[i]) > 1e-12 {
			t.Fatalf("axis magnitude should not change the transform, element %d: %f vs %f",
				i, a[i], b[i])
		}
	}
}

func TestBuildTransformRotatesBeforeDivide(t *testing.T) {
	// With distortion d and a 90 degree rotation about y, (1,0,0) rotates
	// to (0,0,-1) and then picks up w = 1 - 1/d.
	const d = 4.0
	m := BuildTransform(d, 90, math.Vec3{Y: 1})

	v := m.MulVec4(math.Vec4{1, 0, 0, 1})
	if stdmath.Abs(v[2]+1) > 1e-9 {
		t.Errorf("rotated z: got %f, want -1", v[2])
	}
	if stdmath.Abs(v[3]-(1-1/d)) > 1e-9 {
		t.Errorf("w after divide term: got %f, want %f", v[3], 1-1/d)
	}
}

func TestBuildCornerTransformComposesVector(t *testing.T) {
	for c := Corner(0); c < NumCorners; c++ {
		direct := BuildTransform(2, 25, VectorFor(c, 0.1))
		composed := BuildCornerTransform(c, 2, 25, 0.1)
		if direct != composed {
			t.Errorf("BuildCornerTransform(%v) should match BuildTransform over VectorFor", c)
		}
	}
}
