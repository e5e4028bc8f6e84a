package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestController() *Controller {
	return NewController(NewCamera(DefaultPose()), nil, nil)
}

func TestControllerEndToEnd(t *testing.T) {
	ctrl := newTestController()
	cam := ctrl.Camera()

	ctrl.OnKey(KeyW, Press)
	if !vecNear(cam.Position(), mgl32.Vec3{0, 0, 2.95}) {
		t.Fatalf("Expected (0,0,2.95) after forward, got %v", cam.Position())
	}

	ctrl.OnKey(Key2, Press)
	if cam.Position() != (mgl32.Vec3{0, 0, -3}) {
		t.Errorf("Expected exactly (0,0,-3) after preset 2, got %v", cam.Position())
	}
	if cam.FrontVector() != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Expected exactly (0,0,1) after preset 2, got %v", cam.FrontVector())
	}
	if ctrl.QuitRequested() {
		t.Error("Quit should not be requested")
	}
}

func TestControllerMovementKeys(t *testing.T) {
	tests := []struct {
		key  Key
		want mgl32.Vec3
	}{
		{KeyW, mgl32.Vec3{0, 0, 2.95}},
		{KeyS, mgl32.Vec3{0, 0, 3.05}},
		{KeyA, mgl32.Vec3{-0.05, 0, 3}},
		{KeyD, mgl32.Vec3{0.05, 0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			ctrl := newTestController()
			ctrl.OnKey(tt.key, Press)
			if got := ctrl.Camera().Position(); !vecNear(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestControllerIgnoresReleaseAndRepeat(t *testing.T) {
	keys := []Key{KeyW, KeyS, KeyA, KeyD, Key1, Key2, Key3, Key4, Key5, KeyEscape}
	for _, action := range []Action{Release, Repeat} {
		for _, key := range keys {
			ctrl := newTestController()
			ctrl.OnKey(key, action)
			cam := ctrl.Camera()
			if cam.Position() != DefaultPosition || cam.FrontVector() != DefaultFront || cam.UpVector() != DefaultUp {
				t.Errorf("%v %v changed the camera", key, action)
			}
			if ctrl.QuitRequested() {
				t.Errorf("%v %v requested quit", key, action)
			}
		}
	}
}

func TestControllerUnknownKeyIsNoop(t *testing.T) {
	ctrl := newTestController()
	for _, key := range []Key{KeyUnknown, KeyQ, Key9, KeySpace, Key(9999)} {
		ctrl.OnKey(key, Press)
	}
	cam := ctrl.Camera()
	if cam.Position() != DefaultPosition || cam.FrontVector() != DefaultFront {
		t.Errorf("Unknown keys changed the camera: %v %v", cam.Position(), cam.FrontVector())
	}
	if ctrl.QuitRequested() {
		t.Error("Unknown key requested quit")
	}
}

func TestControllerQuit(t *testing.T) {
	ctrl := newTestController()
	ctrl.OnKey(KeyEscape, Press)

	if !ctrl.QuitRequested() {
		t.Fatal("Escape should request quit")
	}
	cam := ctrl.Camera()
	if cam.Position() != DefaultPosition || cam.FrontVector() != DefaultFront {
		t.Error("Quit should not touch the camera")
	}
}

func TestControllerPresetsOverridePriorState(t *testing.T) {
	want := map[Key][3]mgl32.Vec3{
		Key1: {{0, 0, 3}, {0, 0, -1}, {0.2, 0.8, 0}},
		Key2: {{0, 0, -3}, {0, 0, 1}, {0.2, 0.8, 0}},
		Key3: {{-3, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Key4: {{3, 0, 0}, {-1, 0, 0}, {0, 1, 0}},
		Key5: {{0, 3, 0}, {0, -1, 0}, {-1, 0, 0}},
	}
	for key, w := range want {
		ctrl := newTestController()
		ctrl.Camera().up = mgl32.Vec3{0.2, 0.8, 0}
		ctrl.OnMouseMove(0, 0)
		ctrl.OnMouseMove(90, -45)
		ctrl.OnKey(KeyD, Press)

		ctrl.OnKey(key, Press)
		// Pressing twice must land on the same pose
		ctrl.OnKey(key, Press)

		cam := ctrl.Camera()
		if cam.Position() != w[0] || cam.FrontVector() != w[1] || cam.UpVector() != w[2] {
			t.Errorf("Preset %v: got %v %v %v, want %v", key, cam.Position(), cam.FrontVector(), cam.UpVector(), w)
		}
	}
}

func TestControllerMouseMoveDrivesCamera(t *testing.T) {
	ctrl := newTestController()
	ctrl.OnMouseMove(10, 10)
	if yaw, pitch := ctrl.Camera().Orientation(); yaw != DefaultYaw || pitch != DefaultPitch {
		t.Fatalf("Baseline sample rotated the camera to %v %v", yaw, pitch)
	}
	ctrl.OnMouseMove(30, 10)
	if yaw, _ := ctrl.Camera().Orientation(); yaw != DefaultYaw+1 {
		t.Errorf("Expected yaw %v, got %v", DefaultYaw+1, yaw)
	}
}

func TestControllerCustomBindings(t *testing.T) {
	bindings := Bindings{KeyQ: CommandQuit, KeyUp: CommandMoveForward}
	presets := map[Key]Preset{KeyP: {Position: mgl32.Vec3{7, 7, 7}, Front: mgl32.Vec3{0, 0, -1}}}
	ctrl := NewController(NewCamera(DefaultPose()), bindings, presets)

	ctrl.OnKey(KeyW, Press)
	ctrl.OnKey(KeyEscape, Press)
	ctrl.OnKey(Key1, Press)
	if ctrl.Camera().Position() != DefaultPosition || ctrl.QuitRequested() {
		t.Fatal("Default bindings should not be active")
	}

	ctrl.OnKey(KeyUp, Press)
	if !vecNear(ctrl.Camera().Position(), mgl32.Vec3{0, 0, 2.95}) {
		t.Errorf("Rebound forward did not move, got %v", ctrl.Camera().Position())
	}
	ctrl.OnKey(KeyP, Press)
	if ctrl.Camera().Position() != (mgl32.Vec3{7, 7, 7}) {
		t.Errorf("Custom preset not applied, got %v", ctrl.Camera().Position())
	}
	ctrl.OnKey(KeyQ, Press)
	if !ctrl.QuitRequested() {
		t.Error("Rebound quit did not request quit")
	}
}

func TestParseKeyRoundTrip(t *testing.T) {
	for k := KeyEscape; k < keyCount; k++ {
		got, err := ParseKey(k.String())
		if err != nil {
			t.Errorf("ParseKey(%q): %v", k.String(), err)
			continue
		}
		if got != k {
			t.Errorf("ParseKey(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if k, err := ParseKey(" escape "); err != nil || k != KeyEscape {
		t.Errorf("ParseKey is not case-insensitive: %v %v", k, err)
	}
	for _, bad := range []string{"", "UNKNOWN", "F13", "ww"} {
		if _, err := ParseKey(bad); err == nil {
			t.Errorf("ParseKey(%q) should fail", bad)
		}
	}
}

func TestParseCommand(t *testing.T) {
	for c := CommandQuit; c <= CommandStrafeRight; c++ {
		got, err := ParseCommand(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCommand(%q) = %v, %v", c.String(), got, err)
		}
	}
	for _, bad := range []string{"", "none", "jump"} {
		if _, err := ParseCommand(bad); err == nil {
			t.Errorf("ParseCommand(%q) should fail", bad)
		}
	}
}
