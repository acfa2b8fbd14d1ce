package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	cam := LookAt{Eye: mgl64.Vec3{3, 4, 5}, Target: mgl64.Vec3{0, 0, 0}}
	view := cam.ViewMatrix()

	eye := view.Mul4x1(mgl64.Vec4{3, 4, 5, 1})
	assert.InDelta(t, 0, eye.X(), 1e-9)
	assert.InDelta(t, 0, eye.Y(), 1e-9)
	assert.InDelta(t, 0, eye.Z(), 1e-9)

	// the target lies on the negative view-space Z axis
	target := view.Mul4x1(mgl64.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, target.X(), 1e-9)
	assert.InDelta(t, 0, target.Y(), 1e-9)
	assert.Less(t, target.Z(), 0.0)
}

func TestLookAtDefaultsUpVector(t *testing.T) {
	a := LookAt{Eye: mgl64.Vec3{0, 0, 5}}
	b := LookAt{Eye: mgl64.Vec3{0, 0, 5}, Up: mgl64.Vec3{0, 1, 0}}
	assert.Equal(t, b.ViewMatrix(), a.ViewMatrix())
}

func TestOrbitEyePosition(t *testing.T) {
	cam := &Orbit{Target: mgl64.Vec3{1, 2, 3}, Distance: 10}

	eye := cam.Eye()
	assert.InDelta(t, 1, eye.X(), 1e-9)
	assert.InDelta(t, 2, eye.Y(), 1e-9)
	assert.InDelta(t, 13, eye.Z(), 1e-9)

	cam.Yaw = math.Pi / 2
	eye = cam.Eye()
	assert.InDelta(t, 11, eye.X(), 1e-9)
	assert.InDelta(t, 3, eye.Z(), 1e-9)
}

func TestOrbitPitchClamped(t *testing.T) {
	cam := &Orbit{Distance: 10}
	cam.Rotate(0, 10)
	assert.Less(t, cam.Pitch, math.Pi/2)
	cam.Rotate(0, -20)
	assert.Greater(t, cam.Pitch, -math.Pi/2)
}

func TestOrbitZoomClamped(t *testing.T) {
	cam := &Orbit{Distance: 2}
	for i := 0; i < 20; i++ {
		cam.Zoom(0.5)
	}
	assert.GreaterOrEqual(t, cam.Distance, 1.5)
}
