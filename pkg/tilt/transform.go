package tilt

import (
	stdmath "math"

	"github.com/Faultbox/tiltkit/pkg/math"
)

// BuildTransform combines a perspective-divide term with a rotation around
// axis into a single matrix. The perspective term is 1/distortion in the
// z-to-w cell; distortion must be non-zero, or the term divides by zero.
// That is a precondition, not a checked error. angleDegrees is converted
// to radians and applied around the normalized axis, composed so that the
// perspective divide acts on rotated points.
//
// The result depends only on the arguments; concurrent calls are safe.
func BuildTransform(distortion, angleDegrees float64, axis math.Vec3) math.Mat4 {
	perspective := math.Identity()
	perspective[math.PerspectiveCell] = 1 / distortion

	unit := axis.Normalize()
	if unit == (math.Vec3{}) {
		return perspective
	}

	radians := angleDegrees * stdmath.Pi / 180
	return perspective.Mul(math.RotateAxis(unit, radians))
}

// BuildCornerTransform is BuildTransform with the axis taken from
// VectorFor(corner, step).
func BuildCornerTransform(corner Corner, distortion, angleDegrees, step float64) math.Mat4 {
	return BuildTransform(distortion, angleDegrees, VectorFor(corner, step))
}
