package opengl

import (
	"errors"
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"brdf-demo/core"
	"brdf-demo/math"
)

var ErrUniformNotFound = errors.New("opengl: uniform not found")

type CompareMode int

const (
	CompareAlways CompareMode = iota
	CompareLess
	CompareLessEqual
)

func (c CompareMode) glFunc() uint32 {
	switch c {
	case CompareLess:
		return gl.LESS
	case CompareLessEqual:
		return gl.LEQUAL
	}
	return gl.ALWAYS
}

type CullMode int

const (
	CullNone CullMode = iota
	CullBack
	CullFront
)

// ParseCullMode accepts "none", "back" or "front".
func ParseCullMode(s string) (CullMode, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return CullNone, nil
	case "back":
		return CullBack, nil
	case "front":
		return CullFront, nil
	}
	return CullNone, fmt.Errorf("unknown cull mode %q", s)
}

func (c CullMode) String() string {
	return [...]string{"none", "back", "front"}[c]
}

// ConstantLocation is a resolved uniform location.
type ConstantLocation int32

// TextureUnit is the sampler slot a named sampler uniform is bound to.
type TextureUnit int32

// Pipeline is a linked program plus the fixed-function state it draws with.
// Fields are read by Compile and Set; change them before Compile.
type Pipeline struct {
	VertexShader   *Shader
	FragmentShader *Shader
	InputLayout    core.VertexStructure
	DepthWrite     bool
	DepthMode      CompareMode
	CullMode       CullMode

	program    uint32
	units      map[string]TextureUnit
	addressing map[TextureUnit][2]Addressing
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		DepthMode:  CompareAlways,
		units:      make(map[string]TextureUnit),
		addressing: make(map[TextureUnit][2]Addressing),
	}
}

// Compile links both shaders. Vertex attributes are bound to locations in
// the order of InputLayout, by name.
func (p *Pipeline) Compile() error {
	if p.VertexShader == nil || p.FragmentShader == nil {
		return fmt.Errorf("pipeline: both shader stages are required")
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, p.VertexShader.ID)
	gl.AttachShader(prog, p.FragmentShader.ID)
	for i, el := range p.InputLayout {
		gl.BindAttribLocation(prog, uint32(i), gl.Str(el.Name+"\x00"))
	}
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return fmt.Errorf("pipeline: link failed: %v", strings.TrimRight(log, "\x00"))
	}

	gl.DetachShader(prog, p.VertexShader.ID)
	gl.DetachShader(prog, p.FragmentShader.ID)
	p.program = prog
	return nil
}

// ConstantLocation resolves a uniform. GLSL compilers drop uniforms the
// shader never reads, so callers may treat ErrUniformNotFound as a warning;
// setting a value at the returned location -1 is a no-op.
func (p *Pipeline) ConstantLocation(name string) (ConstantLocation, error) {
	loc := gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
	if loc < 0 {
		return ConstantLocation(-1), fmt.Errorf("%w: %q", ErrUniformNotFound, name)
	}
	return ConstantLocation(loc), nil
}

// TextureUnit assigns the next free unit to the sampler uniform name.
func (p *Pipeline) TextureUnit(name string) (TextureUnit, error) {
	if unit, ok := p.units[name]; ok {
		return unit, nil
	}
	loc, err := p.ConstantLocation(name)
	unit := TextureUnit(len(p.units))
	p.units[name] = unit
	if err != nil {
		return unit, err
	}
	gl.UseProgram(p.program)
	gl.Uniform1i(int32(loc), int32(unit))
	return unit, nil
}

// SetTextureAddressing sets the wrap mode applied to textures bound on unit.
func (p *Pipeline) SetTextureAddressing(unit TextureUnit, u, v Addressing) {
	p.addressing[unit] = [2]Addressing{u, v}
}

// Set makes the pipeline current and applies its depth and cull state.
func (p *Pipeline) Set() {
	gl.UseProgram(p.program)

	if p.DepthMode == CompareAlways && !p.DepthWrite {
		gl.Disable(gl.DEPTH_TEST)
	} else {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(p.DepthMode.glFunc())
	}
	gl.DepthMask(p.DepthWrite)

	switch p.CullMode {
	case CullNone:
		gl.Disable(gl.CULL_FACE)
	case CullBack:
		gl.Enable(gl.CULL_FACE)
		gl.FrontFace(gl.CCW)
		gl.CullFace(gl.BACK)
	case CullFront:
		gl.Enable(gl.CULL_FACE)
		gl.FrontFace(gl.CCW)
		gl.CullFace(gl.FRONT)
	}
}

// SetTexture binds tex to unit and applies the unit's addressing.
func (p *Pipeline) SetTexture(unit TextureUnit, tex *Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, tex.ID)
	if a, ok := p.addressing[unit]; ok {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, a[0].glWrap())
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, a[1].glWrap())
	}
}

func (p *Pipeline) SetMatrix(loc ConstantLocation, m math.Mat4) {
	gl.UniformMatrix4fv(int32(loc), 1, false, m.Ptr())
}

func (p *Pipeline) SetFloat3(loc ConstantLocation, v math.Vec3) {
	gl.Uniform3f(int32(loc), v.X, v.Y, v.Z)
}

func (p *Pipeline) SetFloat(loc ConstantLocation, f float32) {
	gl.Uniform1f(int32(loc), f)
}

func (p *Pipeline) SetInt(loc ConstantLocation, i int32) {
	gl.Uniform1i(int32(loc), i)
}

func (p *Pipeline) Destroy() {
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}
