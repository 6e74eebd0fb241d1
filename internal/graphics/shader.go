package graphics

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader represents an OpenGL shader program
type Shader struct {
	ID uint32

	vertexPath   string
	fragmentPath string
	locations    map[string]int32
}

// NewShader creates a new shader program from vertex and fragment shader source files
func NewShader(vertexPath, fragmentPath string) (*Shader, error) {
	program, err := buildProgram(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	return &Shader{
		ID:           program,
		vertexPath:   vertexPath,
		fragmentPath: fragmentPath,
		locations:    make(map[string]int32),
	}, nil
}

// Paths returns the vertex and fragment source files.
func (s *Shader) Paths() (string, string) {
	return s.vertexPath, s.fragmentPath
}

// Reload recompiles the program from its source files. On failure the
// previous program stays in use.
func (s *Shader) Reload() error {
	program, err := buildProgram(s.vertexPath, s.fragmentPath)
	if err != nil {
		return err
	}
	gl.DeleteProgram(s.ID)
	s.ID = program
	clear(s.locations)
	gl.UseProgram(s.ID)
	return nil
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the program.
func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
}

func (s *Shader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.locations[name] = loc
	return loc
}

// SetBool sets a boolean uniform
func (s *Shader) SetBool(name string, value bool) {
	var intValue int32
	if value {
		intValue = 1
	}
	gl.Uniform1i(s.location(name), intValue)
}

// SetInt sets an integer uniform
func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

// SetFloat sets a float uniform
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

func (s *Shader) SetVec2(name string, value mgl32.Vec2) {
	gl.Uniform2f(s.location(name), value[0], value[1])
}

func (s *Shader) SetVec3(name string, value mgl32.Vec3) {
	gl.Uniform3f(s.location(name), value[0], value[1], value[2])
}

func (s *Shader) SetVec4(name string, value mgl32.Vec4) {
	gl.Uniform4f(s.location(name), value[0], value[1], value[2], value[3])
}

func (s *Shader) SetMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &value[0])
}

// SetSampler2D points a sampler uniform at a texture unit. A negative unit
// (an unknown texture) is forwarded as is and rejected by GL, which leaves
// the sampler unchanged.
func (s *Shader) SetSampler2D(name string, unit int32) {
	gl.Uniform1i(s.location(name), unit)
}

func buildProgram(vertexPath, fragmentPath string) (uint32, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return 0, fmt.Errorf("could not read vertex shader file: %w", err)
	}
	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return 0, fmt.Errorf("could not read fragment shader file: %w", err)
	}
	return compileProgram(string(vertexSource), string(fragmentSource))
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", log)
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
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

		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}
	return shader, nil
}

// CheckError logs any pending GL error under label.
func CheckError(label string) bool {
	if err := gl.GetError(); err != gl.NO_ERROR {
		log.Printf("gl error %s: 0x%x", label, err)
		return false
	}
	return true
}
