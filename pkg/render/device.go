package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/gokt/pkg/scene"
)

// Device isolates every GPU entry point the renderer needs. The GL
// implementation lives in device_gl.go; tests substitute counting fakes.
//
// All methods must be called from the thread owning the graphics context.
type Device interface {
	// AllocMesh uploads the mesh into freshly allocated GPU buffers.
	// Pure factory: no caching, no side effects beyond the allocation.
	AllocMesh(m *scene.Mesh) (RenderableMesh, error)

	// CompileProgram compiles and links the given stages. Compile or link
	// failure is fatal for the program and carries the compiler log.
	CompileProgram(spec ProgramSpec) (Program, error)

	// BeginFrame sets the viewport and clears the color buffer to opaque
	// white and the depth buffer to its maximum.
	BeginFrame(width, height int)

	// ApplyDrawState enables depth testing and back-face culling with
	// clockwise front-face winding.
	ApplyDrawState()
}

// RenderableMesh is the GPU-resident counterpart of a scene.Mesh: a vertex
// array object over an interleaved position/normal buffer plus an index
// buffer. Delete must be called explicitly; nothing reclaims GPU handles
// on scope exit.
type RenderableMesh interface {
	Bindable

	// Draw issues one indexed triangle draw over IndexCount indices.
	// The mesh and a program must be bound.
	Draw()

	IndexCount() int

	Delete()
}

// Program is a linked shader program exposing its uniforms as typed
// handles. Locations are resolved once at creation; Uniform returns an
// inactive no-op handle for names the linker discarded.
type Program interface {
	Bindable

	Uniform(name string) Uniform

	// Delete releases the program object. Exactly once; Set calls on its
	// uniforms are invalid afterwards.
	Delete()
}

// Uniform is a named, typed slot on a program. Setting uploads the value
// immediately to the bound program, never deferred or batched.
type Uniform interface {
	SetMat4(m mgl32.Mat4)
	SetVec4(v mgl32.Vec4)
	SetVec2(v mgl32.Vec2)
	SetFloat(f float32)
	SetInt(i int32)
}

// ProgramSpec names the shader stages and the uniforms a program exposes.
// Geometry is optional; Vertex and Fragment are required.
type ProgramSpec struct {
	Name     string
	Vertex   string
	Geometry string
	Fragment string
	Uniforms []string
}
