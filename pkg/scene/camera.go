package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera yields the view matrix for a frame. Matrices are double precision;
// the renderer narrows to float32 at upload time.
type Camera interface {
	ViewMatrix() mgl64.Mat4
}

// LookAt is a fixed camera looking from Eye towards Target.
type LookAt struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
}

func (c LookAt) ViewMatrix() mgl64.Mat4 {
	up := c.Up
	if up == (mgl64.Vec3{}) {
		up = mgl64.Vec3{0, 1, 0}
	}
	return mgl64.LookAtV(c.Eye, c.Target, up)
}

// Orbit is a trackball-style camera circling Target at Distance. Yaw and
// Pitch are in radians; pitch is clamped short of the poles so the up
// vector never degenerates.
type Orbit struct {
	Target   mgl64.Vec3
	Distance float64
	Yaw      float64
	Pitch    float64
}

const maxPitch = math.Pi/2 - 0.01

// Rotate adjusts yaw and pitch by the given deltas.
func (c *Orbit) Rotate(dyaw, dpitch float64) {
	c.Yaw += dyaw
	c.Pitch += dpitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// Zoom scales the orbit distance, clamped to stay in front of the near plane.
func (c *Orbit) Zoom(factor float64) {
	c.Distance *= factor
	if c.Distance < 1.5 {
		c.Distance = 1.5
	}
}

func (c *Orbit) Eye() mgl64.Vec3 {
	cp := math.Cos(c.Pitch)
	return c.Target.Add(mgl64.Vec3{
		c.Distance * cp * math.Sin(c.Yaw),
		c.Distance * math.Sin(c.Pitch),
		c.Distance * cp * math.Cos(c.Yaw),
	})
}

func (c *Orbit) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye(), c.Target, mgl64.Vec3{0, 1, 0})
}
