package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// GLDevice is the OpenGL 4.1 core implementation of Device. It must be
// created on the thread owning a current GL context; using it without one
// fails at initialization rather than corrupting driver state later.
type GLDevice struct {
	log *zap.Logger
}

// NewGLDevice initializes the GL function pointers against the current
// context.
func NewGLDevice(log *zap.Logger) (*GLDevice, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("render: OpenGL init: %w", err)
	}
	log.Info("OpenGL context ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))
	return &GLDevice{log: log}, nil
}

func (d *GLDevice) BeginFrame(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(1, 1, 1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *GLDevice) ApplyDrawState() {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CW)
}
