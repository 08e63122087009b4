package tilt

import (
	"time"

	"github.com/Faultbox/tiltkit/pkg/math"
)

// KeyTimes returns n evenly spaced keyframe times across [0, 1]:
// i/(n-1) for index i. n < 2 yields a single 0 entry.
func KeyTimes(n int) []float64 {
	if n < 1 {
		return nil
	}
	times := make([]float64, n)
	if n == 1 {
		return times
	}
	for i := range times {
		times[i] = float64(i) / float64(n-1)
	}
	return times
}

// KeyframeAnimation holds the ordered keyframe values for one full cycle
// around the corner ring. Transforms and KeyTimes always have the same
// length; ShadowOffsets is parallel to Transforms when the cycle carries a
// shadow style and nil otherwise. The first and last entries are equal, so
// the loop repeats seamlessly.
type KeyframeAnimation struct {
	Transforms    []math.Mat4
	ShadowOffsets []math.Vec2
	KeyTimes      []float64
	Duration      time.Duration
}

// BuildCycle maps the closed corner sequence of cfg through the corner
// geometry and transform builder, producing the keyframe arrays an applier
// registers as a repeating animation with linear timing.
func BuildCycle(cfg AnimatedCycle) KeyframeAnimation {
	corners := ClosedSequence(cfg.From, cfg.Direction)

	anim := KeyframeAnimation{
		Transforms: make([]math.Mat4, len(corners)),
		KeyTimes:   KeyTimes(len(corners)),
		Duration:   cfg.Duration,
	}
	if cfg.Shadow != nil {
		anim.ShadowOffsets = make([]math.Vec2, len(corners))
	}

	for i, corner := range corners {
		anim.Transforms[i] = BuildCornerTransform(corner, cfg.Distortion, cfg.AngleDegrees, cfg.Step)
		if cfg.Shadow != nil {
			anim.ShadowOffsets[i] = ShadowOffsetFor(corner, *cfg.Shadow)
		}
	}
	return anim
}

// Animator samples a KeyframeAnimation at an elapsed wall-clock time,
// repeating forever. Interpolation is linear within each keyframe segment,
// matching the animation's linear timing functions.
type Animator struct {
	anim KeyframeAnimation
}

// NewAnimator wraps an animation for sampling. The animation must have at
// least one keyframe.
func NewAnimator(anim KeyframeAnimation) *Animator {
	return &Animator{anim: anim}
}

// At returns the interpolated transform and shadow offset at the given
// elapsed time. The shadow offset is zero when the animation carries no
// shadow keyframes.
func (a *Animator) At(elapsed time.Duration) (math.Mat4, math.Vec2) {
	anim := &a.anim
	if len(anim.Transforms) == 1 || anim.Duration <= 0 {
		return anim.Transforms[0], a.shadowAt(0, 0, 0)
	}

	t := float64(elapsed%anim.Duration) / float64(anim.Duration)
	if t < 0 {
		t += 1
	}

	// Find the segment containing t. Key times are sorted and span [0, 1].
	i := 0
	for i < len(anim.KeyTimes)-2 && anim.KeyTimes[i+1] <= t {
		i++
	}
	span := anim.KeyTimes[i+1] - anim.KeyTimes[i]
	frac := 0.0
	if span > 0 {
		frac = (t - anim.KeyTimes[i]) / span
	}

	transform := anim.Transforms[i].Lerp(anim.Transforms[i+1], frac)
	return transform, a.shadowAt(i, i+1, frac)
}

func (a *Animator) shadowAt(i, j int, frac float64) math.Vec2 {
	if a.anim.ShadowOffsets == nil {
		return math.Vec2{}
	}
	return a.anim.ShadowOffsets[i].Lerp(a.anim.ShadowOffsets[j], frac)
}
