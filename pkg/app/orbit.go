package app

import "github.com/kjkrol/gokt/pkg/scene"

// OrbitController drives an orbit camera from mouse input: dragging with
// the left button rotates, the scroll wheel zooms.
type OrbitController struct {
	Camera *scene.Orbit

	// Sensitivity converts pixels of drag to radians. Zero picks a default.
	Sensitivity float64

	dragging     bool
	lastX, lastY float64
}

const defaultOrbitSensitivity = 0.01

func NewOrbitController(cam *scene.Orbit) *OrbitController {
	return &OrbitController{Camera: cam, Sensitivity: defaultOrbitSensitivity}
}

func (c *OrbitController) OnMouseButton(ev MouseButtonEvent) {
	if ev.Button != 0 {
		return
	}
	c.dragging = ev.Pressed
	c.lastX, c.lastY = ev.X, ev.Y
}

func (c *OrbitController) OnMouseMove(ev MouseMoveEvent) {
	if !c.dragging {
		return
	}
	sens := c.Sensitivity
	if sens == 0 {
		sens = defaultOrbitSensitivity
	}
	c.Camera.Rotate(-(ev.X-c.lastX)*sens, (ev.Y-c.lastY)*sens)
	c.lastX, c.lastY = ev.X, ev.Y
}

func (c *OrbitController) OnScroll(ev ScrollEvent) {
	if ev.DY > 0 {
		c.Camera.Zoom(0.9)
	} else if ev.DY < 0 {
		c.Camera.Zoom(1.0 / 0.9)
	}
}
