package scene

import "time"

// Scene holds an ordered list of objects. Iteration order is insertion
// order; the renderer draws it as-is without sorting.
//
// A scene is owned by the rendering thread. Mutating it from anywhere else
// is not supported.
type Scene struct {
	objects []*Object
	build   func(*Scene)
	release func(*Object)
}

// NewScene returns an empty scene. build, when non-nil, populates the scene
// and is re-run by Reload.
func NewScene(build func(*Scene)) *Scene {
	s := &Scene{build: build}
	if build != nil {
		build(s)
	}
	return s
}

// OnRelease registers a hook invoked for every object leaving the scene,
// before it is dropped. Wire this to Renderer.Release so GPU resources are
// returned; nothing reclaims them automatically.
func (s *Scene) OnRelease(fn func(*Object)) {
	s.release = fn
}

// Add appends obj to the scene. Adding an object twice is a no-op.
func (s *Scene) Add(obj *Object) {
	if obj == nil || obj.scene == s {
		return
	}
	if obj.scene != nil {
		obj.scene.Remove(obj)
	}
	obj.attach(s)
	s.objects = append(s.objects, obj)
}

// Remove drops obj from the scene and runs the release hook.
func (s *Scene) Remove(obj *Object) {
	if obj == nil || obj.scene != s {
		return
	}
	for i, o := range s.objects {
		if o == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			break
		}
	}
	obj.detach()
	if s.release != nil {
		s.release(obj)
	}
}

// Objects returns a snapshot of the object list in insertion order.
func (s *Scene) Objects() []*Object {
	out := make([]*Object, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *Scene) Len() int { return len(s.objects) }

// Update runs the per-object update funcs with the frame delta.
func (s *Scene) Update(dt time.Duration) {
	for _, o := range s.objects {
		if o.Update != nil {
			o.Update(o, dt)
		}
	}
}

// Reload unloads the scene and re-runs its builder.
func (s *Scene) Reload() {
	s.Unload()
	if s.build != nil {
		s.build(s)
	}
}

// Unload removes every object, releasing resources through the hook.
func (s *Scene) Unload() {
	objs := s.objects
	s.objects = nil
	for _, o := range objs {
		o.detach()
		if s.release != nil {
			s.release(o)
		}
	}
}
