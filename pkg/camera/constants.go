package camera

import "github.com/go-gl/mathgl/mgl32"

// Action is the kind of key transition delivered by the input backend
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// String returns the lowercase name of the action
func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	}
	return "unknown"
}

// Camera constants
const (
	// Distance travelled by a single movement key press
	DefaultMoveSpeed = 0.05
	// Degrees of rotation per pixel of cursor movement
	DefaultSensitivity = 0.05

	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0
)

// Default pose vectors
var (
	DefaultPosition = mgl32.Vec3{0, 0, 3}
	DefaultFront    = mgl32.Vec3{0, 0, -1}
	DefaultUp       = mgl32.Vec3{0, 1, 0}
)

// degenerateEpsilon is the squared length below which front x up is treated as zero
const degenerateEpsilon = 1e-12
