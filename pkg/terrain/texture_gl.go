package terrain

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// HeightTexture is a single-channel float texture holding a heightmap,
// sampled by the terrain vertex stage.
type HeightTexture struct {
	handle uint32
}

// NewHeightTexture uploads hm as an R32F texture with clamped, linearly
// filtered sampling. Requires a current GL context.
func NewHeightTexture(hm *Heightmap) (*HeightTexture, error) {
	t := &HeightTexture{}
	gl.GenTextures(1, &t.handle)
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R32F,
		int32(hm.Width()), int32(hm.Depth()), 0,
		gl.RED, gl.FLOAT, gl.Ptr(hm.Heights()))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if errno := gl.GetError(); errno != gl.NO_ERROR {
		t.Delete()
		return nil, fmt.Errorf("terrain: height texture upload failed: GL error 0x%04x", errno)
	}
	return t, nil
}

// Bind activates the texture on unit 0.
func (t *HeightTexture) Bind() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
}

func (t *HeightTexture) Unbind() {
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (t *HeightTexture) Delete() {
	if t.handle != 0 {
		gl.DeleteTextures(1, &t.handle)
		t.handle = 0
	}
}
