// Package camera implements the free-fly camera model: camera state, mouse
// look, per-press movement, preset viewpoints and the key bindings that
// drive them.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pose is a complete camera placement
type Pose struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Yaw      float32
	Pitch    float32
}

// DefaultPose returns the startup pose: three units back on +Z, looking at the origin
func DefaultPose() Pose {
	return Pose{
		Position: DefaultPosition,
		Front:    DefaultFront,
		Up:       DefaultUp,
		Yaw:      DefaultYaw,
		Pitch:    DefaultPitch,
	}
}

// Camera holds the state of a first-person camera.
// It is not safe for concurrent use; input handlers and the render loop
// must run on the same goroutine.
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3

	// Euler angles in degrees, accumulated without wrapping or clamping
	yaw   float32
	pitch float32

	// Camera options
	moveSpeed   float32
	sensitivity float32

	// Mouse state
	lastX      float64
	lastY      float64
	firstMouse bool
}

// NewCamera creates a camera at the given pose with default speeds
func NewCamera(pose Pose) *Camera {
	return &Camera{
		position:    pose.Position,
		front:       pose.Front,
		up:          pose.Up,
		yaw:         pose.Yaw,
		pitch:       pose.Pitch,
		moveSpeed:   DefaultMoveSpeed,
		sensitivity: DefaultSensitivity,
		firstMouse:  true,
	}
}

// ViewMatrix returns the look-at transform for the current state
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// FrontVector returns the camera's view direction
func (c *Camera) FrontVector() mgl32.Vec3 {
	return c.front
}

// UpVector returns the camera's up vector
func (c *Camera) UpVector() mgl32.Vec3 {
	return c.up
}

// Orientation returns the accumulated yaw and pitch in degrees
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// HasCursorBaseline reports whether a first cursor sample has been recorded
func (c *Camera) HasCursorBaseline() bool {
	return !c.firstMouse
}

// MoveSpeed returns the distance covered by one movement step
func (c *Camera) MoveSpeed() float32 {
	return c.moveSpeed
}

// SetMoveSpeed sets the distance covered by one movement step
func (c *Camera) SetMoveSpeed(speed float32) {
	c.moveSpeed = speed
}

// Sensitivity returns the mouse look scale in degrees per pixel
func (c *Camera) Sensitivity() float32 {
	return c.sensitivity
}

// SetSensitivity sets the mouse look scale in degrees per pixel
func (c *Camera) SetSensitivity(sensitivity float32) {
	c.sensitivity = sensitivity
}

// RightVector returns the unit strafe direction, front x up.
// ok is false when front and up are parallel and no strafe axis exists.
func (c *Camera) RightVector() (right mgl32.Vec3, ok bool) {
	cross := c.front.Cross(c.up)
	if cross.LenSqr() < degenerateEpsilon {
		return mgl32.Vec3{}, false
	}
	return cross.Normalize(), true
}

// MoveForward steps along the view direction
func (c *Camera) MoveForward() {
	c.position = c.position.Add(c.front.Mul(c.moveSpeed))
}

// MoveBackward steps against the view direction
func (c *Camera) MoveBackward() {
	c.position = c.position.Sub(c.front.Mul(c.moveSpeed))
}

// StrafeLeft steps against the right vector
func (c *Camera) StrafeLeft() {
	if right, ok := c.RightVector(); ok {
		c.position = c.position.Sub(right.Mul(c.moveSpeed))
	}
}

// StrafeRight steps along the right vector
func (c *Camera) StrafeRight() {
	if right, ok := c.RightVector(); ok {
		c.position = c.position.Add(right.Mul(c.moveSpeed))
	}
}

// ApplyPreset snaps the camera to a preset viewpoint.
// Yaw and pitch are left untouched, so the next mouse look rotates from
// the angles in effect before the preset.
func (c *Camera) ApplyPreset(p Preset) {
	c.position = p.Position
	c.front = p.Front
	if p.Up != nil {
		c.up = *p.Up
	}
}

// HandleMouseMovement updates the camera orientation from a cursor sample.
// The first sample only records the baseline.
func (c *Camera) HandleMouseMovement(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
		return
	}

	xoffset := float32(xpos - c.lastX)
	yoffset := float32(c.lastY - ypos) // Reversed: y ranges bottom to top

	c.lastX = xpos
	c.lastY = ypos

	xoffset *= c.sensitivity
	yoffset *= c.sensitivity

	c.yaw += xoffset
	c.pitch += yoffset

	c.updateFrontVector()
}

// updateFrontVector recalculates front from the Euler angles
func (c *Camera) updateFrontVector() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()
}
