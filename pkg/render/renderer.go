package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/kjkrol/gokt/pkg/scene"
)

// meshResources bundles everything GPU-resident an object owns: its mesh
// buffers plus the primary and overlay programs. Entries are exclusively
// owned by the renderer's cache and released explicitly.
type meshResources struct {
	mesh    RenderableMesh
	solid   Program
	normals Program
}

func (r *meshResources) release() {
	r.normals.Delete()
	r.solid.Delete()
	r.mesh.Delete()
}

// frameState is the per-frame render context: resolved once at the top of
// Render and passed down by value, never written into the scene.
type frameState struct {
	view        mgl32.Mat4
	projection  mgl32.Mat4
	windowScale mgl32.Vec2
}

// Renderer draws a scene under a camera. It owns the per-object resource
// cache and the projection state.
//
// A renderer is single-threaded: every method must run on the thread that
// owns the graphics context, one Render call per displayed frame.
type Renderer struct {
	dev Device
	log *zap.Logger

	mode        ProjectionMode
	width       int
	height      int
	projection  mgl32.Mat4
	windowScale mgl32.Vec2

	overlay bool

	cache map[scene.ObjectID]*meshResources
}

// Option configures a Renderer at construction.
type Option func(*Renderer)

// WithLogger attaches a logger; the default is a nop.
func WithLogger(log *zap.Logger) Option {
	return func(r *Renderer) { r.log = log }
}

// WithProjectionMode sets the initial projection mode.
func WithProjectionMode(mode ProjectionMode) Option {
	return func(r *Renderer) { r.mode = mode }
}

// NewRenderer creates a renderer over dev with an initial viewport.
// Supplying the dimensions up front keeps the projection state consistent
// from the first frame; there is no zero-sized interim state. Non-positive
// initial dimensions are clamped to 1x1 so the projection matrix is always
// finite.
func NewRenderer(dev Device, width, height int, opts ...Option) *Renderer {
	r := &Renderer{
		dev:     dev,
		log:     zap.NewNop(),
		mode:    ProjectionPerspective,
		overlay: true,
		cache:   make(map[scene.ObjectID]*meshResources),
	}
	for _, opt := range opts {
		opt(r)
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	r.Resize(width, height)
	return r
}

// Resize recomputes the projection matrix for the current mode and updates
// the window scale. Non-positive dimensions are ignored: a minimized window
// reports a 0x0 framebuffer, and a zero aspect ratio would poison the
// perspective matrix with NaN. The last valid projection stays in effect.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width = width
	r.height = height
	r.projection = r.mode.Matrix(width, height)
	r.windowScale = mgl32.Vec2{float32(width), float32(height)}
}

// SetProjectionMode swaps the mode and recomputes the projection matrix
// immediately from the last known window size.
func (r *Renderer) SetProjectionMode(mode ProjectionMode) {
	r.mode = mode
	r.projection = r.mode.Matrix(r.width, r.height)
}

func (r *Renderer) ProjectionMode() ProjectionMode { return r.mode }

// ProjectionMatrix is always consistent with the last (mode, width, height)
// triple; there is no lazily recomputed state.
func (r *Renderer) ProjectionMatrix() mgl32.Mat4 { return r.projection }

// SetNormalsOverlay toggles the per-object normal visualization pass.
func (r *Renderer) SetNormalsOverlay(on bool) { r.overlay = on }

func (r *Renderer) NormalsOverlay() bool { return r.overlay }

// Render draws every scene object in insertion order: clear, then per
// object a primary pass and a normals overlay pass over the same vertex
// array. No sorting or culling beyond the GPU depth test and back-face
// culling.
func (r *Renderer) Render(sc *scene.Scene, cam scene.Camera) error {
	frame := frameState{
		view:        mat4To32(cam.ViewMatrix()),
		projection:  r.projection,
		windowScale: r.windowScale,
	}

	r.dev.BeginFrame(r.width, r.height)
	r.dev.ApplyDrawState()

	for _, obj := range sc.Objects() {
		res, err := r.resources(obj)
		if err != nil {
			return fmt.Errorf("render: object %d: %w", obj.ID(), err)
		}
		if err := drawSolid(res, obj, frame); err != nil {
			return err
		}
		if r.overlay {
			if err := drawNormals(res, obj, frame); err != nil {
				return err
			}
		}
	}
	return nil
}

// resources returns the cached GPU resources for obj, allocating on first
// sight. Hits return the existing entry untouched: resources are never
// re-allocated for an object. Invalidation is remove-and-re-add.
func (r *Renderer) resources(obj *scene.Object) (*meshResources, error) {
	if res, ok := r.cache[obj.ID()]; ok {
		return res, nil
	}

	mesh, err := r.dev.AllocMesh(obj.Mesh())
	if err != nil {
		return nil, err
	}
	solid, err := r.dev.CompileProgram(SolidProgramSpec())
	if err != nil {
		mesh.Delete()
		return nil, err
	}
	normals, err := r.dev.CompileProgram(NormalsProgramSpec())
	if err != nil {
		solid.Delete()
		mesh.Delete()
		return nil, err
	}

	res := &meshResources{mesh: mesh, solid: solid, normals: normals}
	r.cache[obj.ID()] = res
	r.log.Debug("allocated mesh resources",
		zap.Uint64("object", uint64(obj.ID())),
		zap.Int("faces", obj.Mesh().FaceCount()))
	return res, nil
}

// Release deletes the GPU resources cached for obj. Must be called before
// an object is dropped for good; the cache never finalizes entries itself.
func (r *Renderer) Release(obj *scene.Object) {
	if obj == nil {
		return
	}
	if res, ok := r.cache[obj.ID()]; ok {
		res.release()
		delete(r.cache, obj.ID())
	}
}

// Close releases every cached resource. The renderer is unusable afterwards.
func (r *Renderer) Close() {
	for id, res := range r.cache {
		res.release()
		delete(r.cache, id)
	}
}

func drawSolid(res *meshResources, obj *scene.Object, frame frameState) error {
	return Bound(func() error {
		p := res.solid
		p.Uniform(UniformProjection).SetMat4(frame.projection)
		p.Uniform(UniformView).SetMat4(frame.view)
		p.Uniform(UniformModel).SetMat4(obj.Model)
		p.Uniform(UniformColor).SetVec4(obj.Color)
		p.Uniform(UniformWindowScale).SetVec2(frame.windowScale)
		res.mesh.Draw()
		return nil
	}, res.mesh, res.solid)
}

func drawNormals(res *meshResources, obj *scene.Object, frame frameState) error {
	return Bound(func() error {
		p := res.normals
		p.Uniform(UniformProjection).SetMat4(frame.projection)
		p.Uniform(UniformView).SetMat4(frame.view)
		p.Uniform(UniformModel).SetMat4(obj.Model)
		res.mesh.Draw()
		return nil
	}, res.mesh, res.normals)
}

func mat4To32(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}
