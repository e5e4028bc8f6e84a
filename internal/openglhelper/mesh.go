package openglhelper

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Attribute describes one float vertex attribute inside an interleaved vertex
type Attribute struct {
	Index      uint32
	Components int32
	Offset     int // in bytes
}

// Mesh is non-indexed interleaved float geometry drawn as triangles
type Mesh struct {
	vao         *VertexArrayObject
	vbo         *BufferObject
	vertexCount int32
}

// NewMesh uploads vertices once and records the attribute layout.
// floatsPerVertex is the number of floats in one interleaved vertex.
func NewMesh(vertices []float32, floatsPerVertex int, attributes ...Attribute) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)

	stride := int32(floatsPerVertex * 4)
	for _, attr := range attributes {
		vao.SetVertexAttribPointer(attr.Index, attr.Components, gl.FLOAT, false, stride, attr.Offset)
	}

	// Unbind VAO before the VBO so the VAO keeps its binding
	vao.Unbind()
	vbo.Unbind()

	return &Mesh{
		vao:         vao,
		vbo:         vbo,
		vertexCount: int32(len(vertices) / floatsPerVertex),
	}
}

// VertexCount returns the number of vertices submitted per draw
func (m *Mesh) VertexCount() int {
	return int(m.vertexCount)
}

// Draw renders the mesh with the currently bound program
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
}
