package camera

import "github.com/go-gl/mathgl/mgl32"

// Preset is a fixed viewpoint the camera can snap to.
// A nil Up keeps whatever up vector the camera already has.
type Preset struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       *mgl32.Vec3
}

func vec3(x, y, z float32) *mgl32.Vec3 {
	return &mgl32.Vec3{x, y, z}
}

// DefaultPresets returns the five axis-aligned views bound to keys 1-5:
// from +Z, from -Z, from -X, from +X and from above.
func DefaultPresets() map[Key]Preset {
	return map[Key]Preset{
		Key1: {Position: mgl32.Vec3{0, 0, 3}, Front: mgl32.Vec3{0, 0, -1}},
		Key2: {Position: mgl32.Vec3{0, 0, -3}, Front: mgl32.Vec3{0, 0, 1}},
		Key3: {Position: mgl32.Vec3{-3, 0, 0}, Front: mgl32.Vec3{1, 0, 0}, Up: vec3(0, 1, 0)},
		Key4: {Position: mgl32.Vec3{3, 0, 0}, Front: mgl32.Vec3{-1, 0, 0}, Up: vec3(0, 1, 0)},
		// Looking straight down needs an up vector that is not +Y
		Key5: {Position: mgl32.Vec3{0, 3, 0}, Front: mgl32.Vec3{0, -1, 0}, Up: vec3(-1, 0, 0)},
	}
}
