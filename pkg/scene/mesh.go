package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a single mesh vertex: position plus unit normal.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Face indexes three vertices forming a triangle. Winding is clockwise
// when viewed from the front side.
type Face [3]uint32

// Mesh is CPU-side geometry. It is immutable once constructed and may be
// shared between any number of objects.
type Mesh struct {
	vertices []Vertex
	faces    []Face
}

// NewMesh validates face indices against the vertex slice and returns the
// mesh. The input slices are retained, not copied; callers must not mutate
// them afterwards.
func NewMesh(vertices []Vertex, faces []Face) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("scene: mesh has no vertices")
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("scene: mesh has no faces")
	}
	n := uint32(len(vertices))
	for i, f := range faces {
		for _, idx := range f {
			if idx >= n {
				return nil, fmt.Errorf("scene: face %d references vertex %d, mesh has %d", i, idx, n)
			}
		}
	}
	return &Mesh{vertices: vertices, faces: faces}, nil
}

// MustMesh is NewMesh for statically known geometry; it panics on invalid input.
func MustMesh(vertices []Vertex, faces []Face) *Mesh {
	m, err := NewMesh(vertices, faces)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Mesh) VertexCount() int { return len(m.vertices) }

func (m *Mesh) FaceCount() int { return len(m.faces) }

// IndexCount is the number of indices an indexed triangle draw consumes.
func (m *Mesh) IndexCount() int { return 3 * len(m.faces) }

// Interleave lays the vertices out the way the vertex buffer expects them:
// position xyz followed by normal xyz, six floats per vertex.
func (m *Mesh) Interleave() []float32 {
	out := make([]float32, 0, 6*len(m.vertices))
	for _, v := range m.vertices {
		out = append(out,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Normal.X(), v.Normal.Y(), v.Normal.Z(),
		)
	}
	return out
}

// Indices flattens the faces into the element buffer layout.
func (m *Mesh) Indices() []uint32 {
	out := make([]uint32, 0, 3*len(m.faces))
	for _, f := range m.faces {
		out = append(out, f[0], f[1], f[2])
	}
	return out
}
