package app

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

func init() {
	// GLFW and the GL context are bound to the main thread.
	runtime.LockOSThread()
}

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	Samples   int
}

// Window owns the GLFW window and its OpenGL 4.1 core context, and fans
// input callbacks out to registered observers. All methods must be called
// from the main thread.
type Window struct {
	win          *glfw.Window
	log          *zap.Logger
	refreshDelay time.Duration
	width        int
	height       int

	keyObservers    []KeyObserver
	mouseObservers  []MouseObserver
	resizeObservers []ResizeObserver
}

// NewWindow initializes GLFW, opens the window and makes its GL context
// current.
func NewWindow(conf WindowConfig, log *zap.Logger) (*Window, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("app: GLFW init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if conf.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	if conf.Samples > 0 {
		glfw.WindowHint(glfw.Samples, conf.Samples)
	}

	win, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("app: create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	w := &Window{
		win:          win,
		log:          log,
		refreshDelay: time.Second / 60,
		width:        conf.Width,
		height:       conf.Height,
	}
	w.installCallbacks()
	log.Info("window ready", zap.Int("width", conf.Width), zap.Int("height", conf.Height))
	return w, nil
}

func (w *Window) installCallbacks() {
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		ev := KeyEvent{Code: Key(key), Pressed: action == glfw.Press}
		for _, o := range w.keyObservers {
			o.OnKey(ev)
		}
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := w.win.GetCursorPos()
		ev := MouseButtonEvent{Button: int(button), Pressed: action == glfw.Press, X: x, Y: y}
		for _, o := range w.mouseObservers {
			o.OnMouseButton(ev)
		}
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		ev := MouseMoveEvent{X: x, Y: y}
		for _, o := range w.mouseObservers {
			o.OnMouseMove(ev)
		}
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		ev := ScrollEvent{DX: dx, DY: dy}
		for _, o := range w.mouseObservers {
			o.OnScroll(ev)
		}
	})
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		for _, o := range w.resizeObservers {
			o.OnResize(width, height)
		}
	})
}

func (w *Window) AddKeyObserver(o KeyObserver) {
	w.keyObservers = append(w.keyObservers, o)
}

func (w *Window) AddMouseObserver(o MouseObserver) {
	w.mouseObservers = append(w.mouseObservers, o)
}

func (w *Window) AddResizeObserver(o ResizeObserver) {
	w.resizeObservers = append(w.resizeObservers, o)
}

func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// RefreshRate caps the frame loop at fps frames per second.
func (w *Window) RefreshRate(fps int) {
	if fps <= 0 {
		fps = 60
	}
	w.refreshDelay = time.Second / time.Duration(fps)
}

// RequestClose asks the frame loop to exit after the current frame.
func (w *Window) RequestClose() {
	w.win.SetShouldClose(true)
}

// Run drives the frame loop: poll events, invoke frame with the elapsed
// time, swap buffers, pace to the refresh rate. Returns when the window
// is closed.
func (w *Window) Run(frame func(dt time.Duration)) {
	last := time.Now()
	for !w.win.ShouldClose() {
		glfw.PollEvents()

		now := time.Now()
		dt := now.Sub(last)
		last = now

		frame(dt)
		w.win.SwapBuffers()

		if spare := w.refreshDelay - time.Since(now); spare > 0 {
			time.Sleep(spare)
		}
	}
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	glfw.Terminate()
}
