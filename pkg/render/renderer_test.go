package render

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/gokt/pkg/scene"
)

// fakes recording every GPU interaction

type fakeUniform struct {
	sets int
	last any
}

func (u *fakeUniform) SetMat4(m mgl32.Mat4) { u.sets++; u.last = m }
func (u *fakeUniform) SetVec4(v mgl32.Vec4) { u.sets++; u.last = v }
func (u *fakeUniform) SetVec2(v mgl32.Vec2) { u.sets++; u.last = v }
func (u *fakeUniform) SetFloat(f float32)   { u.sets++; u.last = f }
func (u *fakeUniform) SetInt(i int32)       { u.sets++; u.last = i }

type fakeMesh struct {
	indexCount int
	log        *[]string
	draws      []int
	binds      int
	unbinds    int
	deleted    bool
}

func (m *fakeMesh) Bind()          { m.binds++; *m.log = append(*m.log, "mesh+") }
func (m *fakeMesh) Unbind()        { m.unbinds++; *m.log = append(*m.log, "mesh-") }
func (m *fakeMesh) Draw()          { m.draws = append(m.draws, m.indexCount) }
func (m *fakeMesh) IndexCount() int { return m.indexCount }
func (m *fakeMesh) Delete()        { m.deleted = true }

type fakeProgram struct {
	name     string
	log      *[]string
	uniforms map[string]*fakeUniform
	binds    int
	unbinds  int
	deleted  bool
}

func (p *fakeProgram) Bind()   { p.binds++; *p.log = append(*p.log, p.name+"+") }
func (p *fakeProgram) Unbind() { p.unbinds++; *p.log = append(*p.log, p.name+"-") }
func (p *fakeProgram) Delete() { p.deleted = true }

func (p *fakeProgram) Uniform(name string) Uniform {
	u, ok := p.uniforms[name]
	if !ok {
		u = &fakeUniform{}
		p.uniforms[name] = u
	}
	return u
}

type fakeDevice struct {
	log         []string
	meshes      []*fakeMesh
	programs    []*fakeProgram
	beginFrames [][2]int
	applyStates int

	failAlloc   error
	failProgram string
}

func newFakeDevice() *fakeDevice { return &fakeDevice{} }

func (d *fakeDevice) AllocMesh(m *scene.Mesh) (RenderableMesh, error) {
	if d.failAlloc != nil {
		return nil, d.failAlloc
	}
	mesh := &fakeMesh{indexCount: m.IndexCount(), log: &d.log}
	d.meshes = append(d.meshes, mesh)
	return mesh, nil
}

func (d *fakeDevice) CompileProgram(spec ProgramSpec) (Program, error) {
	if d.failProgram == spec.Name {
		return nil, errors.New("compile error: " + spec.Name)
	}
	p := &fakeProgram{name: spec.Name, log: &d.log, uniforms: make(map[string]*fakeUniform)}
	d.programs = append(d.programs, p)
	return p, nil
}

func (d *fakeDevice) BeginFrame(width, height int) {
	d.beginFrames = append(d.beginFrames, [2]int{width, height})
}

func (d *fakeDevice) ApplyDrawState() { d.applyStates++ }

type identityCamera struct{}

func (identityCamera) ViewMatrix() mgl64.Mat4 { return mgl64.Ident4() }

func unitCube(t *testing.T) *scene.Mesh {
	t.Helper()
	corners := []mgl32.Vec3{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
	}
	vertices := make([]scene.Vertex, len(corners))
	for i, c := range corners {
		vertices[i] = scene.Vertex{Position: c, Normal: c.Normalize()}
	}
	faces := []scene.Face{
		{7, 5, 4}, {7, 6, 5},
		{3, 1, 2}, {3, 0, 1},
		{2, 5, 6}, {2, 1, 5},
		{7, 0, 3}, {7, 4, 0},
		{3, 6, 7}, {3, 2, 6},
		{4, 1, 0}, {4, 5, 1},
	}
	m, err := scene.NewMesh(vertices, faces)
	require.NoError(t, err)
	return m
}

// Under FrontFace(CW) with back-face culling, a face visible from outside a
// closed solid must wind clockwise for that viewer, which puts the
// right-handed edge cross product on the inside. The cube is centered on
// the origin, so each face centroid is the outward direction.
func TestUnitCubeWindsClockwiseFromOutside(t *testing.T) {
	mesh := unitCube(t)
	data := mesh.Interleave()
	indices := mesh.Indices()

	pos := func(i uint32) mgl32.Vec3 {
		base := int(i) * 6
		return mgl32.Vec3{data[base], data[base+1], data[base+2]}
	}
	for f := 0; f < len(indices); f += 3 {
		a, b, c := pos(indices[f]), pos(indices[f+1]), pos(indices[f+2])
		normal := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3.0)
		assert.Negative(t, normal.Dot(centroid), "face %d winds counter-clockwise from outside", f/3)
	}
}

func TestResourcesAreCreatedOnceAndReused(t *testing.T) {
	dev := newFakeDevice()
	r := NewRenderer(dev, 800, 600)
	obj := scene.NewObject(unitCube(t), mgl32.Vec4{1, 0, 0, 1})

	first, err := r.resources(obj)
	require.NoError(t, err)
	second, err := r.resources(obj)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Len(t, dev.meshes, 1, "one allocation for repeated lookups")
	assert.Len(t, dev.programs, 2, "solid and normals compiled once")
}

func TestIdenticalMeshesCacheIndependentlyPerObject(t *testing.T) {
	dev := newFakeDevice()
	r := NewRenderer(dev, 800, 600)
	mesh := unitCube(t)
	a := scene.NewObject(mesh, mgl32.Vec4{1, 0, 0, 1})
	b := scene.NewObject(mesh, mgl32.Vec4{0, 1, 0, 1})

	ra, err := r.resources(a)
	require.NoError(t, err)
	rb, err := r.resources(b)
	require.NoError(t, err)

	assert.NotSame(t, ra, rb)
	assert.Len(t, dev.meshes, 2)
}

func TestRenderUnitCubeScenario(t *testing.T) {
	dev := newFakeDevice()
	r := NewRenderer(dev, 800, 600)
	sc := scene.NewScene(nil)
	sc.Add(scene.NewObject(unitCube(t), mgl32.Vec4{0.5, 0.5, 0.5, 1}))

	r.Resize(1024, 768)
	require.NoError(t, r.Render(sc, identityCamera{}))

	require.Len(t, dev.meshes, 1, "exactly one resource allocation")
	mesh := dev.meshes[0]
	assert.Equal(t, []int{36, 36}, mesh.draws, "primary and overlay draws over 12 faces")
	assert.Equal(t, [][2]int{{1024, 768}}, dev.beginFrames)
	assert.Equal(t, 1, dev.applyStates)

	// bind/unbind symmetry across both passes
	assert.Equal(t, 2, mesh.binds)
	assert.Equal(t, 2, mesh.unbinds)
	for _, p := range dev.programs {
		assert.Equal(t, 1, p.binds, p.name)
		assert.Equal(t, 1, p.unbinds, p.name)
	}
	assert.Equal(t, []string{
		"mesh+", "solid+", "solid-", "mesh-",
		"mesh+", "normals+", "normals-", "mesh-",
	}, dev.log)

	// second frame reuses the cache
	require.NoError(t, r.Render(sc, identityCamera{}))
	assert.Len(t, dev.meshes, 1)
}

func TestRenderUploadsFrameUniforms(t *testing.T) {
	dev := newFakeDevice()
	r := NewRenderer(dev, 800, 600)
	sc := scene.NewScene(nil)
	obj := scene.NewObject(unitCube(t), mgl32.Vec4{0.2, 0.4, 0.6, 1})
	sc.Add(obj)

	require.NoError(t, r.Render(sc, identityCamera{}))

	var solid, normals *fakeProgram
	for _, p := range dev.programs {
		switch p.name {
		case "solid":
			solid = p
		case "normals":
			normals = p
		}
	}
	require.NotNil(t, solid)
	require.NotNil(t, normals)

	assert.Equal(t, r.ProjectionMatrix(), solid.uniforms[UniformProjection].last)
	assert.Equal(t, mgl32.Ident4(), solid.uniforms[UniformView].last)
	assert.Equal(t, obj.Model, solid.uniforms[UniformModel].last)
	assert.Equal(t, obj.Color, solid.uniforms[UniformColor].last)
	assert.Equal(t, mgl32.Vec2{800, 600}, solid.uniforms[UniformWindowScale].last)

	assert.Equal(t, r.ProjectionMatrix(), normals.uniforms[UniformProjection].last)
	assert.NotContains(t, normals.uniforms, UniformColor)
}

func TestOverlayToggleSkipsSecondPass(t *testing.T) {
	dev := newFakeDevice()
	r := NewRenderer(dev, 800, 600)
	r.SetNormalsOverlay(false)
	sc := scene.NewScene(nil)
	sc.Add(scene.NewObject(unitCube(t), mgl32.Vec4{1, 1, 1, 1}))

	require.NoError(t, r.Render(sc, identityCamera{}))
	assert.Equal(t, []int{36}, dev.meshes[0].draws)
}

func TestRenderDrawsInInsertionOrder(t *testing.T) {
	dev := newFakeDevice()
	r := NewRenderer(dev, 800, 600)
	r.SetNormalsOverlay(false)
	sc := scene.NewScene(nil)
	sc.Add(scene.NewObject(unitCube(t), mgl32.Vec4{1, 0, 0, 1}))
	sc.Add(scene.NewObject(unitCube(t), mgl32.Vec4{0, 1, 0, 1}))

	require.NoError(t, r.Render(sc, identityCamera{}))

	require.Len(t, dev.meshes, 2)
	assert.Len(t, dev.meshes[0].draws, 1)
	assert.Len(t, dev.meshes[1].draws, 1)
}

func TestAllocationFailurePropagatesAndCachesNothing(t *testing.T) {
	dev := newFakeDevice()
	dev.failAlloc = errors.New("out of GPU memory")
	r := NewRenderer(dev, 800, 600)
	sc := scene.NewScene(nil)
	sc.Add(scene.NewObject(unitCube(t), mgl32.Vec4{1, 1, 1, 1}))

	err := r.Render(sc, identityCamera{})
	require.ErrorContains(t, err, "out of GPU memory")
	assert.Empty(t, r.cache)
}

func TestProgramFailureReleasesPartialResources(t *testing.T) {
	dev := newFakeDevice()
	dev.failProgram = "normals"
	r := NewRenderer(dev, 800, 600)
	obj := scene.NewObject(unitCube(t), mgl32.Vec4{1, 1, 1, 1})

	_, err := r.resources(obj)
	require.ErrorContains(t, err, "normals")
	assert.Empty(t, r.cache)
	require.Len(t, dev.meshes, 1)
	assert.True(t, dev.meshes[0].deleted, "mesh released after program failure")
	require.Len(t, dev.programs, 1)
	assert.True(t, dev.programs[0].deleted, "solid program released after normals failure")
}

func TestReleaseDeletesResources(t *testing.T) {
	dev := newFakeDevice()
	r := NewRenderer(dev, 800, 600)
	obj := scene.NewObject(unitCube(t), mgl32.Vec4{1, 1, 1, 1})

	_, err := r.resources(obj)
	require.NoError(t, err)
	r.Release(obj)

	assert.True(t, dev.meshes[0].deleted)
	for _, p := range dev.programs {
		assert.True(t, p.deleted, p.name)
	}
	assert.Empty(t, r.cache)

	// releasing again is a no-op
	r.Release(obj)
	r.Release(nil)
}

func TestCloseReleasesEverything(t *testing.T) {
	dev := newFakeDevice()
	r := NewRenderer(dev, 800, 600)
	for i := 0; i < 3; i++ {
		_, err := r.resources(scene.NewObject(unitCube(t), mgl32.Vec4{1, 1, 1, 1}))
		require.NoError(t, err)
	}

	r.Close()

	assert.Empty(t, r.cache)
	for _, m := range dev.meshes {
		assert.True(t, m.deleted)
	}
	for _, p := range dev.programs {
		assert.True(t, p.deleted, p.name)
	}
}
