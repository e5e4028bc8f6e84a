// Package scene holds the static demo geometry: a colored box sitting on a
// grey ground quad.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Vertex layout: x, y, z, r, g, b
const (
	PositionComponents = 3
	ColorComponents    = 3
	FloatsPerVertex    = PositionComponents + ColorComponents
	// Stride is the size of one vertex in bytes
	Stride = FloatsPerVertex * 4
	// ColorOffset is the byte offset of the color attribute
	ColorOffset = PositionComponents * 4
)

// GroundLevel is the height of the ground quad and of the box's bottom face
const GroundLevel = -0.5

// GroundHalfExtent is half the side length of the ground quad
const GroundHalfExtent = 5.0

var vertices = []float32{
	// Bottom - blue
	-0.5, -0.5, -0.5, 0.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 0.0, 1.0,

	0.5, -0.5, -0.5, 0.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
	0.5, -0.5, 0.5, 0.0, 0.0, 1.0,

	// +X side - red
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 0.0, 0.0,

	0.5, 0.5, -0.5, 1.0, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0,

	// +Z side - green
	-0.5, -0.5, 0.5, 0.0, 1.0, 0.0,
	0.5, -0.5, 0.5, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0,

	0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, 1.0, 0.0,

	// -X side - yellow
	-0.5, -0.5, 0.5, 1.0, 1.0, 0.0,
	-0.5, -0.5, -0.5, 1.0, 1.0, 0.0,
	-0.5, 0.5, -0.5, 1.0, 1.0, 0.0,

	-0.5, 0.5, -0.5, 1.0, 1.0, 0.0,
	-0.5, 0.5, 0.5, 1.0, 1.0, 0.0,
	-0.5, -0.5, 0.5, 1.0, 1.0, 0.0,

	// -Z side - purple
	-0.5, -0.5, -0.5, 1.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 0.0, 1.0,

	0.5, 0.5, -0.5, 1.0, 0.0, 1.0,
	-0.5, 0.5, -0.5, 1.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, 1.0, 0.0, 1.0,

	// Ground - grey
	-5.0, -0.5, -5.0, 0.5, 0.5, 0.5,
	-5.0, -0.5, 5.0, 0.5, 0.5, 0.5,
	5.0, -0.5, -5.0, 0.5, 0.5, 0.5,

	5.0, -0.5, -5.0, 0.5, 0.5, 0.5,
	-5.0, -0.5, 5.0, 0.5, 0.5, 0.5,
	5.0, -0.5, 5.0, 0.5, 0.5, 0.5,
}

// Vertices returns a copy of the interleaved vertex data
func Vertices() []float32 {
	out := make([]float32, len(vertices))
	copy(out, vertices)
	return out
}

// VertexCount is the number of vertices submitted per draw call
func VertexCount() int {
	return len(vertices) / FloatsPerVertex
}

// ModelMatrix returns the transform applied to the whole scene
func ModelMatrix() mgl32.Mat4 {
	return mgl32.Ident4()
}
