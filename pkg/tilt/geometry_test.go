package tilt

import (
	"testing"

	"github.com/Faultbox/tiltkit/pkg/math"
)

func TestVectorForDiamond(t *testing.T) {
	const step = 0.5
	want := map[Corner]math.Vec3{
		TopMedium:    {X: 2 * step},
		TopRight:     {X: step, Y: step},
		MediumRight:  {Y: 2 * step},
		BottomRight:  {X: -step, Y: step},
		BottomMedium: {X: -2 * step},
		BottomLeft:   {X: -step, Y: -step},
		MediumLeft:   {Y: -2 * step},
		TopLeft:      {X: step, Y: -step},
	}

	for c := Corner(0); c < NumCorners; c++ {
		got := VectorFor(c, step)
		if got != want[c] {
			t.Errorf("VectorFor(%v): got %v, want %v", c, got, want[c])
		}
		if got.Z != 0 {
			t.Errorf("VectorFor(%v): axis should stay in the x/y plane, got Z=%f", c, got.Z)
		}
	}
}

func TestVectorForScalesLinearly(t *testing.T) {
	for c := Corner(0); c < NumCorners; c++ {
		one := VectorFor(c, 1)
		three := VectorFor(c, 3)
		if three != one.Scale(3) {
			t.Errorf("VectorFor(%v) should scale linearly with step: got %v, want %v",
				c, three, one.Scale(3))
		}
	}
}

func TestShadowOffsetForTable(t *testing.T) {
	style := ShadowStyle{
		MaxHorizontalOffset:       20,
		MaxVerticalOffset:         14,
		CornerVerticalOffset:      10,
		StartVerticalOffset:       6,
		StartCornerVerticalMedian: 8,
	}

	want := map[Corner]math.Vec2{
		TopMedium:    {X: 0, Y: 6},
		TopRight:     {X: 10, Y: 8},
		MediumRight:  {X: 20, Y: 10},
		BottomRight:  {X: 10, Y: 10},
		BottomMedium: {X: 0, Y: 14},
		BottomLeft:   {X: -10, Y: 10},
		MediumLeft:   {X: -20, Y: 10},
		TopLeft:      {X: -10, Y: 8},
	}

	for c := Corner(0); c < NumCorners; c++ {
		got := ShadowOffsetFor(c, style)
		if got != want[c] {
			t.Errorf("ShadowOffsetFor(%v): got %v, want %v", c, got, want[c])
		}
	}
}

func TestShadowOffsetLeftRightSymmetry(t *testing.T) {
	style := ShadowStyle{
		MaxHorizontalOffset:       16,
		CornerVerticalOffset:      5,
		StartCornerVerticalMedian: 3,
	}

	pairs := [][2]Corner{
		{TopRight, TopLeft},
		{MediumRight, MediumLeft},
		{BottomRight, BottomLeft},
	}
	for _, pair := range pairs {
		right := ShadowOffsetFor(pair[0], style)
		left := ShadowOffsetFor(pair[1], style)
		if left.X != -right.X || left.Y != right.Y {
			t.Errorf("%v/%v: want mirrored horizontal offsets, got %v and %v",
				pair[0], pair[1], right, left)
		}
	}
}
