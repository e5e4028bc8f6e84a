package render

import "github.com/go-gl/mathgl/mgl32"

// Projection describes a perspective projection
type Projection struct {
	FOV    float32 // vertical field of view in degrees
	Near   float32
	Far    float32
	Width  int
	Height int
}

// Aspect returns the width/height ratio, 1 for a zero-sized framebuffer
func (p Projection) Aspect() float32 {
	if p.Width <= 0 || p.Height <= 0 {
		return 1
	}
	return float32(p.Width) / float32(p.Height)
}

// Matrix returns the projection matrix
func (p Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FOV), p.Aspect(), p.Near, p.Far)
}
