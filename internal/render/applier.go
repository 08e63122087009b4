package render

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/tiltkit/internal/logger"
	"github.com/Faultbox/tiltkit/pkg/math"
	"github.com/Faultbox/tiltkit/pkg/tilt"
)

// Animation keys identify the cycling animations registered on a surface.
// Apply and Reset share them, so a new configuration can find and remove a
// prior animation of the same kind.
const (
	transformAnimationKey = "tilt.transform"
	shadowAnimationKey    = "tilt.shadow"
)

var _ tilt.Applier = (*GLApplier)(nil)

type runningAnimation struct {
	animator *tilt.Animator
	start    time.Time
}

// GLApplier drives one rectangular OpenGL surface with tilt configurations.
// It implements tilt.Applier. All methods must be called from the thread
// owning the GL context; applying configurations is not safe to interleave
// from concurrent callers.
type GLApplier struct {
	width  int
	height int

	program    uint32
	quadVAO    uint32
	quadVBO    uint32
	uTransform int32
	uOffset    int32
	uScale     int32
	uColor     int32

	surfaceColor tilt.Color

	// Per-surface state, replaced wholesale on Apply and cleared on Reset.
	transform    math.Mat4
	shadow       *tilt.ShadowStyle
	shadowOffset math.Vec2
	animations   map[string]*runningAnimation
}

const vertexShaderSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uTransform;
uniform vec2 uOffset;
uniform float uScale;

void main() {
	gl_Position = uTransform * vec4(aPos * uScale, 1.0);
	gl_Position.xy += uOffset * gl_Position.w;
}
`

const fragmentShaderSrc = `
#version 410 core

uniform vec4 uColor;
out vec4 FragColor;

void main() {
	FragColor = uColor;
}
`

// NewGLApplier creates the applier for a window of the given size.
// Must be called AFTER the OpenGL context is created.
func NewGLApplier(width, height int) (*GLApplier, error) {
	a := &GLApplier{
		width:        width,
		height:       height,
		surfaceColor: tilt.Color{R: 0.93, G: 0.93, B: 0.96, A: 1},
		transform:    math.Identity(),
		animations:   make(map[string]*runningAnimation),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Alpha blending for the shadow quad
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.11, 0.11, 0.14, 1.0)

	var err error
	a.program, err = compileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	a.uTransform = getUniform(a.program, "uTransform")
	a.uOffset = getUniform(a.program, "uOffset")
	a.uScale = getUniform(a.program, "uScale")
	a.uColor = getUniform(a.program, "uColor")

	a.createQuad()

	return a, nil
}

// Close cleans up GL resources.
func (a *GLApplier) Close() {
	logger.Info("closing applier")
	if a.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &a.quadVAO)
	}
	if a.quadVBO != 0 {
		gl.DeleteBuffers(1, &a.quadVBO)
	}
	if a.program != 0 {
		gl.DeleteProgram(a.program)
	}
}

// Resize handles window resize.
func (a *GLApplier) Resize(width, height int) {
	a.width = width
	a.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Apply installs a new tilt configuration, fully replacing any prior state.
// An invalid config is rejected before the prior state is touched.
func (a *GLApplier) Apply(cfg tilt.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil tilt config")
	}
	a.Reset()

	switch c := cfg.(type) {
	case tilt.StaticPose:
		a.transform = c.Transform()
		a.shadow = c.Shadow
		if c.Shadow != nil {
			a.shadowOffset = tilt.ShadowOffsetFor(c.Corner, *c.Shadow)
		}
		logger.Info("applied static pose",
			zap.Stringer("corner", c.Corner),
			zap.Float64("distortion", c.Distortion),
			zap.Float64("angle", c.AngleDegrees),
		)
	case tilt.AnimatedCycle:
		anim := tilt.BuildCycle(c)
		now := time.Now()
		a.animations[transformAnimationKey] = &runningAnimation{
			animator: tilt.NewAnimator(anim),
			start:    now,
		}
		if c.Shadow != nil {
			a.shadow = c.Shadow
			a.animations[shadowAnimationKey] = &runningAnimation{
				animator: tilt.NewAnimator(anim),
				start:    now,
			}
		}
		logger.Info("applied animated cycle",
			zap.Stringer("from", c.From),
			zap.Stringer("direction", c.Direction),
			zap.Duration("duration", c.Duration),
		)
	}
	return nil
}

// Reset clears the transform, the shadow, and any registered animations.
// Calling it twice leaves the same state as calling it once.
func (a *GLApplier) Reset() {
	a.transform = math.Identity()
	a.shadow = nil
	a.shadowOffset = math.Vec2{}
	delete(a.animations, transformAnimationKey)
	delete(a.animations, shadowAnimationKey)
}

// Draw renders the shadow and surface quads for the current frame.
func (a *GLApplier) Draw(now time.Time) {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	transform := a.transform
	offset := a.shadowOffset
	if anim, ok := a.animations[transformAnimationKey]; ok {
		transform, _ = anim.animator.At(now.Sub(anim.start))
	}
	if anim, ok := a.animations[shadowAnimationKey]; ok {
		_, offset = anim.animator.At(now.Sub(anim.start))
	}

	gl.UseProgram(a.program)
	gl.BindVertexArray(a.quadVAO)

	if a.shadow != nil {
		a.drawQuad(transform, a.ndcOffset(offset), a.shadowScale(), tilt.Color{
			R: a.shadow.Color.R,
			G: a.shadow.Color.G,
			B: a.shadow.Color.B,
			A: a.shadow.Color.A * a.shadow.Opacity,
		})
	}
	a.drawQuad(transform, math.Vec2{}, 1, a.surfaceColor)

	gl.BindVertexArray(0)
}

// drawQuad issues one quad draw with the given uniforms.
func (a *GLApplier) drawQuad(transform math.Mat4, offset math.Vec2, scale float64, color tilt.Color) {
	m := transform.Float32()
	gl.UniformMatrix4fv(a.uTransform, 1, false, &m[0])
	gl.Uniform2f(a.uOffset, float32(offset.X), float32(offset.Y))
	gl.Uniform1f(a.uScale, float32(scale))
	gl.Uniform4f(a.uColor, float32(color.R), float32(color.G), float32(color.B), float32(color.A))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// ndcOffset converts a pixel shadow offset to normalized device
// coordinates. Screen y grows downward, NDC y upward.
func (a *GLApplier) ndcOffset(px math.Vec2) math.Vec2 {
	return math.Vec2{
		X: px.X / (float64(a.width) / 2),
		Y: -px.Y / (float64(a.height) / 2),
	}
}

// shadowScale grows the shadow quad by the blur radius; the demo has no
// blur pass, so the penumbra is approximated by size alone.
func (a *GLApplier) shadowScale() float64 {
	size := a.height
	if a.width < a.height {
		size = a.width
	}
	if size == 0 {
		return 1
	}
	return 1 + a.shadow.BlurRadius/float64(size)
}

// createQuad creates the unit quad geometry shared by surface and shadow.
func (a *GLApplier) createQuad() {
	// Two triangles covering a centered square, z=0
	vertices := []float32{
		-0.5, 0.5, 0,
		-0.5, -0.5, 0,
		0.5, -0.5, 0,

		-0.5, 0.5, 0,
		0.5, -0.5, 0,
		0.5, 0.5, 0,
	}

	gl.GenVertexArrays(1, &a.quadVAO)
	gl.BindVertexArray(a.quadVAO)

	gl.GenBuffers(1, &a.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, a.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("surface quad created",
		zap.Uint32("vao", a.quadVAO),
		zap.Uint32("vbo", a.quadVBO),
	)
}
