// Package terrain builds renderable terrain meshes from sampled height
// fields and carries the height-map shader variant of the mesh pipeline.
// Noise generation itself is the caller's business: anything satisfying
// HeightFunc works.
package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/gokt/pkg/scene"
)

// HeightFunc samples terrain height at a world-space XZ position.
// Implementations are expected to be pure and return values in [-1, 1].
type HeightFunc func(x, z float64) float64

// Heightmap is a regular grid of sampled heights, width columns by depth
// rows, row-major.
type Heightmap struct {
	width   int
	depth   int
	heights []float32
}

// Sample evaluates fn over a width×depth grid with the given cell size,
// centered on the origin.
func Sample(width, depth int, cellSize float64, fn HeightFunc) (*Heightmap, error) {
	if width < 2 || depth < 2 {
		return nil, fmt.Errorf("terrain: grid must be at least 2x2, got %dx%d", width, depth)
	}
	hm := &Heightmap{
		width:   width,
		depth:   depth,
		heights: make([]float32, width*depth),
	}
	halfW := float64(width-1) / 2
	halfD := float64(depth-1) / 2
	for j := 0; j < depth; j++ {
		for i := 0; i < width; i++ {
			x := (float64(i) - halfW) * cellSize
			z := (float64(j) - halfD) * cellSize
			hm.heights[j*width+i] = float32(fn(x, z))
		}
	}
	return hm, nil
}

func (h *Heightmap) Width() int { return h.width }

func (h *Heightmap) Depth() int { return h.depth }

// At returns the sampled height at grid cell (i, j), clamping out-of-range
// coordinates to the border.
func (h *Heightmap) At(i, j int) float32 {
	i = clamp(i, 0, h.width-1)
	j = clamp(j, 0, h.depth-1)
	return h.heights[j*h.width+i]
}

// Heights exposes the raw row-major samples, e.g. for texture upload.
func (h *Heightmap) Heights() []float32 { return h.heights }

// BuildMesh turns the height field into a triangle mesh: grid spacing
// cellSize, heights scaled by amplitude, normals from central differences.
// Triangles wind clockwise seen from above, matching the renderer's
// front-face convention.
func BuildMesh(hm *Heightmap, cellSize, amplitude float32) *scene.Mesh {
	w, d := hm.width, hm.depth
	halfW := float32(w-1) / 2 * cellSize
	halfD := float32(d-1) / 2 * cellSize

	vertices := make([]scene.Vertex, 0, w*d)
	for j := 0; j < d; j++ {
		for i := 0; i < w; i++ {
			vertices = append(vertices, scene.Vertex{
				Position: mgl32.Vec3{
					float32(i)*cellSize - halfW,
					hm.At(i, j) * amplitude,
					float32(j)*cellSize - halfD,
				},
				Normal: normalAt(hm, i, j, cellSize, amplitude),
			})
		}
	}

	faces := make([]scene.Face, 0, 2*(w-1)*(d-1))
	idx := func(i, j int) uint32 { return uint32(j*w + i) }
	for j := 0; j < d-1; j++ {
		for i := 0; i < w-1; i++ {
			a := idx(i, j)
			b := idx(i+1, j)
			c := idx(i+1, j+1)
			e := idx(i, j+1)
			faces = append(faces, scene.Face{a, b, c}, scene.Face{a, c, e})
		}
	}

	return scene.MustMesh(vertices, faces)
}

func normalAt(hm *Heightmap, i, j int, cellSize, amplitude float32) mgl32.Vec3 {
	left := hm.At(i-1, j) * amplitude
	right := hm.At(i+1, j) * amplitude
	near := hm.At(i, j-1) * amplitude
	far := hm.At(i, j+1) * amplitude
	return mgl32.Vec3{left - right, 2 * cellSize, near - far}.Normalize()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
