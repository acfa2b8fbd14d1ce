package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjkrol/gokt/pkg/scene"
)

func newTestController() (*OrbitController, *scene.Orbit) {
	cam := &scene.Orbit{Distance: 10}
	return NewOrbitController(cam), cam
}

func TestOrbitControllerDragRotates(t *testing.T) {
	ctrl, cam := newTestController()

	ctrl.OnMouseButton(MouseButtonEvent{Button: 0, Pressed: true, X: 100, Y: 100})
	ctrl.OnMouseMove(MouseMoveEvent{X: 110, Y: 105})

	assert.InDelta(t, -10*defaultOrbitSensitivity, cam.Yaw, 1e-12)
	assert.InDelta(t, 5*defaultOrbitSensitivity, cam.Pitch, 1e-12)

	// deltas accumulate from the last position, not the press position
	ctrl.OnMouseMove(MouseMoveEvent{X: 110, Y: 105})
	assert.InDelta(t, -10*defaultOrbitSensitivity, cam.Yaw, 1e-12)
}

func TestOrbitControllerIgnoresMoveWithoutDrag(t *testing.T) {
	ctrl, cam := newTestController()

	ctrl.OnMouseMove(MouseMoveEvent{X: 50, Y: 50})
	assert.Zero(t, cam.Yaw)
	assert.Zero(t, cam.Pitch)

	ctrl.OnMouseButton(MouseButtonEvent{Button: 0, Pressed: true, X: 0, Y: 0})
	ctrl.OnMouseButton(MouseButtonEvent{Button: 0, Pressed: false, X: 0, Y: 0})
	ctrl.OnMouseMove(MouseMoveEvent{X: 50, Y: 50})
	assert.Zero(t, cam.Yaw)
}

func TestOrbitControllerIgnoresOtherButtons(t *testing.T) {
	ctrl, cam := newTestController()

	ctrl.OnMouseButton(MouseButtonEvent{Button: 1, Pressed: true})
	ctrl.OnMouseMove(MouseMoveEvent{X: 30, Y: 30})
	assert.Zero(t, cam.Yaw)
}

func TestOrbitControllerScrollZooms(t *testing.T) {
	ctrl, cam := newTestController()

	ctrl.OnScroll(ScrollEvent{DY: 1})
	assert.InDelta(t, 9, cam.Distance, 1e-12)

	ctrl.OnScroll(ScrollEvent{DY: -1})
	assert.InDelta(t, 10, cam.Distance, 1e-12)

	ctrl.OnScroll(ScrollEvent{DY: 0})
	assert.InDelta(t, 10, cam.Distance, 1e-12)
}

func TestOrbitControllerCustomSensitivity(t *testing.T) {
	ctrl, cam := newTestController()
	ctrl.Sensitivity = 0.1

	ctrl.OnMouseButton(MouseButtonEvent{Button: 0, Pressed: true, X: 0, Y: 0})
	ctrl.OnMouseMove(MouseMoveEvent{X: 1, Y: 0})
	assert.InDelta(t, -0.1, cam.Yaw, 1e-12)
}
