package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionMode selects how the projection matrix is derived from the
// window dimensions.
type ProjectionMode int

const (
	ProjectionPerspective ProjectionMode = iota
	ProjectionOrthographic
)

const (
	fovY      = float32(math.Pi / 4)
	nearPlane = float32(1)
	farPlane  = float32(100)

	// Orthographic framing is a fixed 2x2 camera box independent of the
	// viewport. Constant framing regardless of window size is deliberate.
	orthoCameraWidth  = float32(2)
	orthoCameraHeight = float32(2)
)

func (m ProjectionMode) String() string {
	switch m {
	case ProjectionOrthographic:
		return "orthographic"
	default:
		return "perspective"
	}
}

// Matrix computes the projection matrix for the given window dimensions.
// Pure function: same inputs, same matrix.
func (m ProjectionMode) Matrix(width, height int) mgl32.Mat4 {
	switch m {
	case ProjectionOrthographic:
		return mgl32.Ortho(
			-orthoCameraWidth/2, orthoCameraWidth/2,
			-orthoCameraHeight/2, orthoCameraHeight/2,
			nearPlane, farPlane,
		)
	default:
		return mgl32.Perspective(fovY, float32(width)/float32(height), nearPlane, farPlane)
	}
}
