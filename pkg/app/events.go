package app

// Key identifies a keyboard key, numerically compatible with GLFW key
// codes. Only the keys the viewer binds are named here.
type Key int

const (
	KeyEscape Key = 256
	KeyTab    Key = 258
	KeyN      Key = 78
	KeyO      Key = 79
	KeyP      Key = 80
	KeyR      Key = 82
)

type KeyEvent struct {
	Code    Key
	Pressed bool
}

type MouseButtonEvent struct {
	Button  int
	Pressed bool
	X, Y    float64
}

type MouseMoveEvent struct {
	X, Y float64
}

type ScrollEvent struct {
	DX, DY float64
}

// KeyObserver receives keyboard events from the window.
type KeyObserver interface {
	OnKey(ev KeyEvent)
}

// MouseObserver receives pointer events from the window.
type MouseObserver interface {
	OnMouseButton(ev MouseButtonEvent)
	OnMouseMove(ev MouseMoveEvent)
	OnScroll(ev ScrollEvent)
}

// ResizeObserver receives framebuffer size changes.
type ResizeObserver interface {
	OnResize(width, height int)
}

// KeyFunc adapts a plain function to KeyObserver.
type KeyFunc func(ev KeyEvent)

func (f KeyFunc) OnKey(ev KeyEvent) { f(ev) }

// ResizeFunc adapts a plain function to ResizeObserver.
type ResizeFunc func(width, height int)

func (f ResizeFunc) OnResize(width, height int) { f(width, height) }
