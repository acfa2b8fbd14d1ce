package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/kjkrol/gokt/pkg/scene"
)

// glMesh is a VAO over an interleaved position/normal VBO and a uint32 EBO.
type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

const vertexStride = 6 * 4 // position vec3 + normal vec3, float32

// AllocMesh uploads m into newly generated buffer objects and records the
// vertex layout in a vertex array object. Pure factory; the caller owns
// the returned handles.
func (d *GLDevice) AllocMesh(m *scene.Mesh) (RenderableMesh, error) {
	vertices := m.Interleave()
	indices := m.Indices()

	mesh := &glMesh{indexCount: int32(len(indices))}
	gl.GenVertexArrays(1, &mesh.vao)
	gl.GenBuffers(1, &mesh.vbo)
	gl.GenBuffers(1, &mesh.ebo)

	gl.BindVertexArray(mesh.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(3*4))

	gl.BindVertexArray(0)

	if errno := gl.GetError(); errno != gl.NO_ERROR {
		mesh.Delete()
		return nil, fmt.Errorf("render: mesh allocation failed: GL error 0x%04x", errno)
	}
	return mesh, nil
}

func (m *glMesh) Bind() {
	gl.BindVertexArray(m.vao)
}

func (m *glMesh) Unbind() {
	gl.BindVertexArray(0)
}

func (m *glMesh) Draw() {
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
}

func (m *glMesh) IndexCount() int { return int(m.indexCount) }

func (m *glMesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
