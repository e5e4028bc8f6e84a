// Package render runs the per-frame loop: poll input, build the view from
// the camera, upload the matrices, draw the scene and present.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-flycam/pkg/camera"
	"github.com/leterax/go-flycam/pkg/config"
	"github.com/leterax/go-flycam/pkg/scene"
)

// Uniform names expected by the shader program
const (
	UniformModel      = "model"
	UniformView       = "view"
	UniformProjection = "projection"
)

// Surface is the window the loop renders into
type Surface interface {
	PollEvents()
	ShouldClose() bool
	SetShouldClose(bool)
	Clear(color mgl32.Vec4)
	SwapBuffers()
	FramebufferSize() (width, height int)
}

// Program is a linked shader program
type Program interface {
	Use()
	SetMat4(name string, mat mgl32.Mat4)
}

// Drawable is geometry uploaded to the GPU
type Drawable interface {
	Draw()
}

// Loop owns the per-frame sequence. All methods must be called from the
// thread that owns the GL context.
type Loop struct {
	surface    Surface
	program    Program
	mesh       Drawable
	controller *camera.Controller

	projection Projection
	background mgl32.Vec4
	model      mgl32.Mat4

	updates <-chan config.Config
	frames  uint64
}

// NewLoop creates a loop drawing mesh with program into surface
func NewLoop(surface Surface, program Program, mesh Drawable, controller *camera.Controller, cfg config.Config) *Loop {
	width, height := surface.FramebufferSize()
	return &Loop{
		surface:    surface,
		program:    program,
		mesh:       mesh,
		controller: controller,
		projection: Projection{
			FOV:    cfg.Render.FOV,
			Near:   cfg.Render.Near,
			Far:    cfg.Render.Far,
			Width:  width,
			Height: height,
		},
		background: cfg.Render.Background,
		model:      scene.ModelMatrix(),
	}
}

// WatchConfig makes the loop apply configs received on updates between
// polling input and drawing
func (l *Loop) WatchConfig(updates <-chan config.Config) {
	l.updates = updates
}

// Projection returns the current projection parameters
func (l *Loop) Projection() Projection {
	return l.projection
}

// Background returns the current clear color
func (l *Loop) Background() mgl32.Vec4 {
	return l.background
}

// Frames returns the number of frames presented so far
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Resize updates the projection for a new framebuffer size
func (l *Loop) Resize(width, height int) {
	l.projection.Width = width
	l.projection.Height = height
}

// ApplyConfig applies the tunable parts of cfg. The camera pose and the
// window size are startup-only and are left alone.
func (l *Loop) ApplyConfig(cfg config.Config) {
	l.background = cfg.Render.Background
	l.projection.FOV = cfg.Render.FOV
	l.projection.Near = cfg.Render.Near
	l.projection.Far = cfg.Render.Far

	cam := l.controller.Camera()
	cam.SetMoveSpeed(cfg.Camera.MoveSpeed)
	cam.SetSensitivity(cfg.Camera.Sensitivity)
	l.controller.Rebind(cfg.Bindings, cfg.Presets)
}

// drainUpdates applies every pending config without blocking
func (l *Loop) drainUpdates() {
	for l.updates != nil {
		select {
		case cfg, ok := <-l.updates:
			if !ok {
				l.updates = nil
				return
			}
			l.ApplyConfig(cfg)
		default:
			return
		}
	}
}

// Frame runs one iteration of the loop
func (l *Loop) Frame() {
	// Input callbacks fire synchronously in here
	l.surface.PollEvents()
	l.drainUpdates()

	if l.controller.QuitRequested() {
		l.surface.SetShouldClose(true)
	}

	l.surface.Clear(l.background)

	l.program.Use()
	l.program.SetMat4(UniformModel, l.model)
	l.program.SetMat4(UniformView, l.controller.Camera().ViewMatrix())
	l.program.SetMat4(UniformProjection, l.projection.Matrix())

	l.mesh.Draw()

	l.surface.SwapBuffers()
	l.frames++
}

// Run renders frames until the surface is asked to close
func (l *Loop) Run() {
	for !l.surface.ShouldClose() {
		l.Frame()
	}
}
