package opengl

import (
	"fmt"
	"os"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

type ShaderType uint32

const (
	VertexShader   ShaderType = gl.VERTEX_SHADER
	FragmentShader ShaderType = gl.FRAGMENT_SHADER
)

func (t ShaderType) String() string {
	switch t {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("shader(0x%X)", uint32(t))
}

// Shader is one compiled stage, not yet linked.
type Shader struct {
	ID   uint32
	Type ShaderType
	Name string
}

// LoadShader reads GLSL source from path and compiles it.
func LoadShader(path string, shaderType ShaderType) (*Shader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s shader: %w", shaderType, err)
	}
	return NewShader(path, string(src), shaderType)
}

func NewShader(name, src string, shaderType ShaderType) (*Shader, error) {
	id, err := compileShader(src, uint32(shaderType))
	if err != nil {
		return nil, fmt.Errorf("%s shader %q: %w", shaderType, name, err)
	}
	return &Shader{ID: id, Type: shaderType, Name: name}, nil
}

func (s *Shader) Destroy() {
	if s.ID != 0 {
		gl.DeleteShader(s.ID)
		s.ID = 0
	}
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
