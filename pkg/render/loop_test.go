package render

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-flycam/pkg/camera"
	"github.com/leterax/go-flycam/pkg/config"
)

type recorder struct {
	calls []string
}

func (r *recorder) record(call string) {
	r.calls = append(r.calls, call)
}

type fakeSurface struct {
	*recorder
	onPoll      func(poll int)
	polls       int
	shouldClose bool
	clearColors []mgl32.Vec4
	width       int
	height      int
}

func (s *fakeSurface) PollEvents() {
	s.polls++
	s.record("poll")
	if s.onPoll != nil {
		s.onPoll(s.polls)
	}
}

func (s *fakeSurface) ShouldClose() bool { return s.shouldClose }

func (s *fakeSurface) SetShouldClose(v bool) { s.shouldClose = v }

func (s *fakeSurface) Clear(color mgl32.Vec4) {
	s.record("clear")
	s.clearColors = append(s.clearColors, color)
}

func (s *fakeSurface) SwapBuffers() { s.record("swap") }

func (s *fakeSurface) FramebufferSize() (int, int) { return s.width, s.height }

type fakeProgram struct {
	*recorder
	uniforms map[string]mgl32.Mat4
}

func (p *fakeProgram) Use() { p.record("use") }

func (p *fakeProgram) SetMat4(name string, mat mgl32.Mat4) {
	p.record("set " + name)
	p.uniforms[name] = mat
}

type fakeMesh struct {
	*recorder
}

func (m *fakeMesh) Draw() { m.record("draw") }

type fixture struct {
	rec     *recorder
	surface *fakeSurface
	program *fakeProgram
	ctrl    *camera.Controller
	loop    *Loop
}

func newFixture() *fixture {
	rec := &recorder{}
	f := &fixture{
		rec:     rec,
		surface: &fakeSurface{recorder: rec, width: 1000, height: 800},
		program: &fakeProgram{recorder: rec, uniforms: map[string]mgl32.Mat4{}},
		ctrl:    camera.NewController(camera.NewCamera(camera.DefaultPose()), nil, nil),
	}
	f.loop = NewLoop(f.surface, f.program, &fakeMesh{recorder: rec}, f.ctrl, config.Default())
	return f
}

func TestFrameOrder(t *testing.T) {
	f := newFixture()
	f.loop.Frame()

	want := "poll clear use set model set view set projection draw swap"
	if got := strings.Join(f.rec.calls, " "); got != want {
		t.Errorf("Frame calls\n got: %s\nwant: %s", got, want)
	}
	if f.loop.Frames() != 1 {
		t.Errorf("Expected 1 frame, got %d", f.loop.Frames())
	}
}

func TestFrameUploadsMatrices(t *testing.T) {
	f := newFixture()
	f.loop.Frame()

	if f.program.uniforms[UniformModel] != mgl32.Ident4() {
		t.Errorf("Model should be identity, got %v", f.program.uniforms[UniformModel])
	}
	if f.program.uniforms[UniformView] != f.ctrl.Camera().ViewMatrix() {
		t.Errorf("View does not match the camera")
	}
	wantProj := mgl32.Perspective(mgl32.DegToRad(45), 1000.0/800.0, 0.1, 100)
	if f.program.uniforms[UniformProjection] != wantProj {
		t.Errorf("Projection %v, want %v", f.program.uniforms[UniformProjection], wantProj)
	}
	if f.surface.clearColors[0] != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Errorf("Expected white clear color, got %v", f.surface.clearColors[0])
	}
}

func TestInputDuringPollIsVisibleInSameFrame(t *testing.T) {
	f := newFixture()
	f.surface.onPoll = func(int) {
		f.ctrl.OnKey(camera.KeyW, camera.Press)
	}
	f.loop.Frame()

	view := f.program.uniforms[UniformView]
	eye := view.Mul4x1(mgl32.Vec4{0, 0, 2.95, 1})
	if eye.Vec3().Len() > 1e-5 {
		t.Errorf("View was not built from the moved camera, eye maps to %v", eye)
	}
}

func TestRunStopsAfterQuitFrame(t *testing.T) {
	f := newFixture()
	f.surface.onPoll = func(poll int) {
		if poll == 3 {
			f.ctrl.OnKey(camera.KeyEscape, camera.Press)
		}
	}
	f.loop.Run()

	if f.loop.Frames() != 3 {
		t.Errorf("Expected 3 frames, got %d", f.loop.Frames())
	}
	if !f.surface.shouldClose {
		t.Error("Quit should ask the surface to close")
	}
	if last := f.rec.calls[len(f.rec.calls)-1]; last != "swap" {
		t.Errorf("The quit frame should still be presented, last call %q", last)
	}
}

func TestRunDoesNothingWhenAlreadyClosed(t *testing.T) {
	f := newFixture()
	f.surface.shouldClose = true
	f.loop.Run()
	if len(f.rec.calls) != 0 {
		t.Errorf("Expected no calls, got %v", f.rec.calls)
	}
}

func TestConfigUpdatesApplyBeforeDraw(t *testing.T) {
	f := newFixture()
	updates := make(chan config.Config, 2)
	f.loop.WatchConfig(updates)

	first := config.Default()
	first.Render.Background = mgl32.Vec4{0, 0, 0, 1}
	second := config.Default()
	second.Render.Background = mgl32.Vec4{0.2, 0.3, 0.4, 1}
	second.Render.FOV = 60
	second.Camera.MoveSpeed = 1
	second.Camera.Sensitivity = 0.5
	second.Bindings = camera.Bindings{camera.KeyUp: camera.CommandMoveForward}
	updates <- first
	updates <- second

	f.loop.Frame()

	if f.surface.clearColors[0] != second.Render.Background {
		t.Errorf("Expected latest background %v, got %v", second.Render.Background, f.surface.clearColors[0])
	}
	if f.loop.Projection().FOV != 60 {
		t.Errorf("Expected fov 60, got %v", f.loop.Projection().FOV)
	}
	cam := f.ctrl.Camera()
	if cam.MoveSpeed() != 1 || cam.Sensitivity() != 0.5 {
		t.Errorf("Speeds not applied: %v %v", cam.MoveSpeed(), cam.Sensitivity())
	}
	if cam.Position() != camera.DefaultPosition {
		t.Error("Config reload should not move the camera")
	}

	f.ctrl.OnKey(camera.KeyUp, camera.Press)
	if cam.Position() != (mgl32.Vec3{0, 0, 2}) {
		t.Errorf("Rebound key with new speed should move to (0,0,2), got %v", cam.Position())
	}
}

func TestClosedUpdatesChannel(t *testing.T) {
	f := newFixture()
	updates := make(chan config.Config)
	close(updates)
	f.loop.WatchConfig(updates)

	f.loop.Frame()
	f.loop.Frame()
	if f.loop.Frames() != 2 {
		t.Errorf("Expected 2 frames, got %d", f.loop.Frames())
	}
}

func TestResizeUpdatesProjection(t *testing.T) {
	f := newFixture()
	f.loop.Resize(1920, 1080)
	f.loop.Frame()

	want := mgl32.Perspective(mgl32.DegToRad(45), 1920.0/1080.0, 0.1, 100)
	if f.program.uniforms[UniformProjection] != want {
		t.Errorf("Projection not updated after resize")
	}
}

func TestProjectionAspect(t *testing.T) {
	tests := []struct {
		w, h int
		want float32
	}{
		{1000, 800, 1.25},
		{800, 600, 800.0 / 600.0},
		{0, 600, 1},
		{600, 0, 1},
	}
	for _, tt := range tests {
		p := Projection{FOV: 45, Near: 0.1, Far: 100, Width: tt.w, Height: tt.h}
		if got := p.Aspect(); math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("Aspect(%dx%d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
		if m := p.Matrix(); m.At(3, 2) != -1 {
			t.Errorf("Perspective matrix should have -1 at (3,2), got %v", m.At(3, 2))
		}
	}
}
