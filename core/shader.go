package core

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader is a linked vertex + fragment program.
type Shader struct {
	id       uint32
	uniforms map[string]int32
}

// NewShader compiles and links a program from GLSL sources.
func NewShader(vertexSource, fragmentSource string) (*Shader, error) {
	vertexShader, err := compileStage(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileStage(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	if err := checkProgramLinkStatus(program); err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}

	return &Shader{id: program, uniforms: make(map[string]int32)}, nil
}

// Use makes the program current.
func (s *Shader) Use() {
	gl.UseProgram(s.id)
}

// Delete frees the program.
func (s *Shader) Delete() {
	if s.id != 0 {
		gl.DeleteProgram(s.id)
		s.id = 0
	}
}

// Reload rebuilds the program from new sources. When compiling or linking
// fails the current program stays in place.
func (s *Shader) Reload(vertexSource, fragmentSource string) error {
	next, err := NewShader(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	s.Delete()
	s.id, s.uniforms = next.id, next.uniforms
	return nil
}

// location looks up a uniform once and caches it. Missing uniforms resolve
// to -1, which GL silently ignores.
func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.id, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

func (s *Shader) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	gl.Uniform1i(s.location(name), v)
}

func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

func (s *Shader) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2fv(s.location(name), 1, &v[0])
}

func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(s.location(name), 1, &v[0])
}

func (s *Shader) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4fv(s.location(name), 1, &v[0])
}

func (s *Shader) SetMat2(name string, m mgl32.Mat2) {
	gl.UniformMatrix2fv(s.location(name), 1, false, &m[0])
}

func (s *Shader) SetMat3(name string, m mgl32.Mat3) {
	gl.UniformMatrix3fv(s.location(name), 1, false, &m[0])
}

func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &m[0])
}

// compileStage compiles a single shader stage.
func compileStage(stage uint32, source string) (uint32, error) {
	shader := gl.CreateShader(stage)
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
		return 0, fmt.Errorf("failed to compile %s shader: %s", stageName(stage), trimInfoLog(log))
	}
	return shader, nil
}

// checkProgramLinkStatus checks if a shader program linked successfully.
func checkProgramLinkStatus(program uint32) error {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return fmt.Errorf("failed to link program: %s", trimInfoLog(log))
	}
	return nil
}

func stageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return "unrecognized"
	}
}

// trimInfoLog drops the NUL padding and trailing whitespace of a GL info log.
func trimInfoLog(log string) string {
	return strings.TrimRight(log, "\x00 \t\r\n")
}
