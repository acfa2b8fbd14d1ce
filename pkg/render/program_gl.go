package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// glProgram wraps a linked GL program with its uniform locations resolved
// up front.
type glProgram struct {
	name     string
	handle   uint32
	uniforms map[string]*glUniform
}

// glUniform is a resolved uniform slot. A negative location means the
// linker discarded the uniform; sets on it are silent no-ops.
type glUniform struct {
	loc int32
}

var inactiveUniform = &glUniform{loc: -1}

// CompileProgram compiles the stages in spec, links them, and resolves
// every listed uniform. Compile and link failures surface the GL info log.
func (d *GLDevice) CompileProgram(spec ProgramSpec) (Program, error) {
	stages := []struct {
		kind   uint32
		label  string
		source string
	}{
		{gl.VERTEX_SHADER, "vertex", spec.Vertex},
		{gl.GEOMETRY_SHADER, "geometry", spec.Geometry},
		{gl.FRAGMENT_SHADER, "fragment", spec.Fragment},
	}

	program := gl.CreateProgram()
	var shaders []uint32
	for _, stage := range stages {
		if stage.source == "" {
			continue
		}
		shader, err := compileShader(stage.kind, stage.source)
		if err != nil {
			deleteShaders(program, shaders)
			gl.DeleteProgram(program)
			return nil, fmt.Errorf("render: program %q %s stage: %w", spec.Name, stage.label, err)
		}
		gl.AttachShader(program, shader)
		shaders = append(shaders, shader)
	}

	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programInfoLog(program)
		deleteShaders(program, shaders)
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("render: program %q link: %s", spec.Name, log)
	}
	deleteShaders(program, shaders)

	p := &glProgram{
		name:     spec.Name,
		handle:   program,
		uniforms: make(map[string]*glUniform, len(spec.Uniforms)),
	}
	for _, name := range spec.Uniforms {
		loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
		if loc < 0 {
			d.log.Warn("uniform not active", zap.String("program", spec.Name), zap.String("uniform", name))
		}
		p.uniforms[name] = &glUniform{loc: loc}
	}
	return p, nil
}

func (p *glProgram) Bind() {
	gl.UseProgram(p.handle)
}

func (p *glProgram) Unbind() {
	gl.UseProgram(0)
}

func (p *glProgram) Uniform(name string) Uniform {
	if u, ok := p.uniforms[name]; ok {
		return u
	}
	return inactiveUniform
}

func (p *glProgram) Delete() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}

func (u *glUniform) SetMat4(m mgl32.Mat4) {
	if u.loc < 0 {
		return
	}
	gl.UniformMatrix4fv(u.loc, 1, false, &m[0])
}

func (u *glUniform) SetVec4(v mgl32.Vec4) {
	if u.loc < 0 {
		return
	}
	gl.Uniform4f(u.loc, v.X(), v.Y(), v.Z(), v.W())
}

func (u *glUniform) SetVec2(v mgl32.Vec2) {
	if u.loc < 0 {
		return
	}
	gl.Uniform2f(u.loc, v.X(), v.Y())
}

func (u *glUniform) SetFloat(f float32) {
	if u.loc < 0 {
		return
	}
	gl.Uniform1f(u.loc, f)
}

func (u *glUniform) SetInt(i int32) {
	if u.loc < 0 {
		return
	}
	gl.Uniform1i(u.loc, i)
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func deleteShaders(program uint32, shaders []uint32) {
	for _, shader := range shaders {
		gl.DetachShader(program, shader)
		gl.DeleteShader(shader)
	}
}
