package scene

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Object is an identity-bearing renderable entity. Two objects sharing the
// same mesh are still distinct: resource caches key on the object, not the
// geometry.
type Object struct {
	id    ObjectID
	mesh  *Mesh
	scene *Scene

	Model mgl32.Mat4
	Color mgl32.Vec4

	// Update, when set, runs once per Scene.Update with the frame delta.
	Update func(o *Object, dt time.Duration)
}

// NewObject wraps mesh with an identity model matrix and the given color.
func NewObject(mesh *Mesh, color mgl32.Vec4) *Object {
	return &Object{
		id:    NextObjectID(),
		mesh:  mesh,
		Model: mgl32.Ident4(),
		Color: color,
	}
}

func (o *Object) ID() ObjectID { return o.id }

func (o *Object) Mesh() *Mesh { return o.mesh }

func (o *Object) attach(s *Scene) { o.scene = s }

func (o *Object) detach() { o.scene = nil }
