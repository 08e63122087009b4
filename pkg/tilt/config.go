package tilt

import (
	"time"

	"github.com/Faultbox/tiltkit/pkg/math"
)

// Config is a tilt configuration for one surface: either a fixed pose or a
// repeating cycle through all corners. It is a closed sum type: the only
// implementations are StaticPose and AnimatedCycle, and appliers switch
// over them exhaustively.
type Config interface {
	isConfig()
}

// StaticPose is one fixed tilt toward a single corner.
type StaticPose struct {
	Corner       Corner
	Distortion   float64 // must be non-zero
	AngleDegrees float64
	Step         float64
	Shadow       *ShadowStyle // nil skips shadow output
}

func (StaticPose) isConfig() {}

// Transform returns the pose's perspective transform.
func (p StaticPose) Transform() math.Mat4 {
	return BuildCornerTransform(p.Corner, p.Distortion, p.AngleDegrees, p.Step)
}

// AnimatedCycle is a repeating tour of all 8 corners starting at From.
type AnimatedCycle struct {
	From         Corner
	Direction    Direction
	Distortion   float64 // must be non-zero
	AngleDegrees float64
	Step         float64
	Duration     time.Duration // one full loop; must be positive
	Shadow       *ShadowStyle  // nil skips shadow keyframes
}

func (AnimatedCycle) isConfig() {}

// Applier attaches tilt configurations to a rendering surface. Apply fully
// resets prior state before installing the new configuration; configs are
// never additive. Reset clears transform, shadow and any registered
// animations, and calling it twice is the same as calling it once.
//
// Appliers are stateful: calls targeting the same surface must be
// serialized by the caller, matching rendering-thread affinity.
type Applier interface {
	Apply(cfg Config) error
	Reset()
}
