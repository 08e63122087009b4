package tilt

import "github.com/Faultbox/tiltkit/pkg/math"

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// ShadowStyle describes the drop shadow cast by a tilted surface. The five
// offset fields feed ShadowOffsetFor; blur, opacity and color are passed
// through to the rendering layer untouched.
type ShadowStyle struct {
	MaxHorizontalOffset       float64
	MaxVerticalOffset         float64
	CornerVerticalOffset      float64
	StartVerticalOffset       float64
	StartCornerVerticalMedian float64
	BlurRadius                float64
	Opacity                   float64
	Color                     Color
}

// VectorFor maps a corner to the rotation axis that tips the surface toward
// it. Axes lie in the x/y plane: cardinal corners get magnitude 2*step on
// one axis, diagonal corners magnitude step on both, so the axis sweeps the
// ring in equal 45 degree increments and the tilt keeps equal visual weight
// at every stop.
func VectorFor(corner Corner, step float64) math.Vec3 {
	switch corner {
	case TopMedium:
		return math.Vec3{X: 2 * step}
	case TopRight:
		return math.Vec3{X: step, Y: step}
	case MediumRight:
		return math.Vec3{Y: 2 * step}
	case BottomRight:
		return math.Vec3{X: -step, Y: step}
	case BottomMedium:
		return math.Vec3{X: -2 * step}
	case BottomLeft:
		return math.Vec3{X: -step, Y: -step}
	case MediumLeft:
		return math.Vec3{Y: -2 * step}
	case TopLeft:
		return math.Vec3{X: step, Y: -step}
	}
	return math.Vec3{}
}

// ShadowOffsetFor maps a corner to the shadow translation consistent with
// light coming from the opposite side of the tilt. Left-side corners flip
// the horizontal sign; diagonal corners use half the maximum horizontal
// magnitude.
func ShadowOffsetFor(corner Corner, style ShadowStyle) math.Vec2 {
	switch corner {
	case TopMedium:
		return math.Vec2{Y: style.StartVerticalOffset}
	case TopRight:
		return math.Vec2{X: style.MaxHorizontalOffset / 2, Y: style.StartCornerVerticalMedian}
	case MediumRight:
		return math.Vec2{X: style.MaxHorizontalOffset, Y: style.CornerVerticalOffset}
	case BottomRight:
		return math.Vec2{X: style.MaxHorizontalOffset / 2, Y: style.CornerVerticalOffset}
	case BottomMedium:
		return math.Vec2{Y: style.MaxVerticalOffset}
	case BottomLeft:
		return math.Vec2{X: -style.MaxHorizontalOffset / 2, Y: style.CornerVerticalOffset}
	case MediumLeft:
		return math.Vec2{X: -style.MaxHorizontalOffset, Y: style.CornerVerticalOffset}
	case TopLeft:
		return math.Vec2{X: -style.MaxHorizontalOffset / 2, Y: style.StartCornerVerticalMedian}
	}
	return math.Vec2{}
}
