package renderer

import (
	"errors"
	"fmt"

	"brdf-demo/core"
	"brdf-demo/internal/opengl"
	"brdf-demo/log"
	"brdf-demo/math"
	"brdf-demo/scene"
)

var logger = log.New("renderer")

// Uniforms are the per-frame shading inputs.
type Uniforms struct {
	Light     math.Vec3
	Eye       math.Vec3
	Specular  float32
	Roughness float32
	Mode      int32
}

type PipelineConfig struct {
	VertexShader   string
	FragmentShader string
	Structure      core.VertexStructure
	CullMode       opengl.CullMode
	// TextureName is the sampler uniform objects are bound to.
	TextureName string
}

type constantLocations struct {
	p, v, m, light, eye, spec, roughness, mode opengl.ConstantLocation
}

// RenderEngine draws a Scene through a single BRDF pipeline.
type RenderEngine struct {
	window   *core.Window
	pipeline *opengl.Pipeline
	texUnit  opengl.TextureUnit
	loc      constantLocations

	Scene  *Scene
	Camera *scene.Camera
	Clear  core.ClearValue

	// Per-frame stats (populated during Render)
	lastObjects   int
	lastVertices  int
	lastTriangles int
}

func NewRenderEngine(window *core.Window, cfg PipelineConfig) (*RenderEngine, error) {
	version, err := opengl.Init()
	if err != nil {
		return nil, err
	}
	logger.Infof("OpenGL version: %s", version)

	vert, err := opengl.LoadShader(cfg.VertexShader, opengl.VertexShader)
	if err != nil {
		return nil, err
	}
	defer vert.Destroy()
	frag, err := opengl.LoadShader(cfg.FragmentShader, opengl.FragmentShader)
	if err != nil {
		return nil, err
	}
	defer frag.Destroy()

	pipeline := opengl.NewPipeline()
	pipeline.VertexShader = vert
	pipeline.FragmentShader = frag
	pipeline.InputLayout = cfg.Structure
	pipeline.DepthWrite = true
	pipeline.DepthMode = opengl.CompareLess
	pipeline.CullMode = cfg.CullMode
	if err := pipeline.Compile(); err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	re := &RenderEngine{
		window:   window,
		pipeline: pipeline,
		Scene:    NewScene(),
		Clear:    core.ClearValue{Color: core.ColorBlack, Depth: 1},
	}

	textureName := cfg.TextureName
	if textureName == "" {
		textureName = "tex"
	}
	re.texUnit, err = pipeline.TextureUnit(textureName)
	warnMissing(err)

	for name, dst := range map[string]*opengl.ConstantLocation{
		"P": &re.loc.p, "V": &re.loc.v, "M": &re.loc.m,
		"light": &re.loc.light, "eye": &re.loc.eye,
		"spec": &re.loc.spec, "roughness": &re.loc.roughness, "mode": &re.loc.mode,
	} {
		*dst, err = pipeline.ConstantLocation(name)
		warnMissing(err)
	}

	w, h := window.GetFramebufferSize()
	opengl.SetViewport(w, h)

	logger.Debugf("pipeline ready: cull=%s texture unit %d", cfg.CullMode, re.texUnit)
	return re, nil
}

func warnMissing(err error) {
	if errors.Is(err, opengl.ErrUniformNotFound) {
		logger.Warningf("%v", err)
	}
}

// SetTextureAddressing sets the wrap mode of the object texture unit.
func (re *RenderEngine) SetTextureAddressing(u, v opengl.Addressing) {
	re.pipeline.SetTextureAddressing(re.texUnit, u, v)
}

// Render clears the frame and draws every scene object with u.
func (re *RenderEngine) Render(u Uniforms) error {
	if re.Scene == nil || re.Camera == nil {
		return fmt.Errorf("no scene or camera")
	}

	opengl.Clear(re.Clear)
	re.pipeline.Set()

	p := re.pipeline
	p.SetFloat3(re.loc.light, u.Light)
	p.SetFloat3(re.loc.eye, u.Eye)
	p.SetFloat(re.loc.spec, u.Specular)
	p.SetFloat(re.loc.roughness, u.Roughness)
	p.SetInt(re.loc.mode, u.Mode)

	p.SetMatrix(re.loc.v, re.Camera.GetViewMatrix())
	p.SetMatrix(re.loc.p, re.Camera.GetProjectionMatrix())

	objects, vertices, triangles := 0, 0, 0
	for _, obj := range re.Scene.Objects {
		p.SetMatrix(re.loc.m, obj.M)
		obj.Render(p, re.texUnit)

		objects++
		vertices += obj.Vertices
		triangles += obj.Triangles
	}

	re.lastObjects = objects
	re.lastVertices = vertices
	re.lastTriangles = triangles
	return nil
}

// Present ends the frame and swaps buffers.
func (re *RenderEngine) Present() {
	re.window.SwapBuffers()
}

func (re *RenderEngine) Resize(width, height int) {
	opengl.SetViewport(width, height)
	if re.Camera != nil {
		re.Camera.UpdateAspectRatio(float32(width), float32(height))
	}
}

// DrawStats returns stats from the most recent Render call.
func (re *RenderEngine) DrawStats() (objects, vertices, triangles int) {
	return re.lastObjects, re.lastVertices, re.lastTriangles
}

func (re *RenderEngine) Destroy() {
	if re.Scene != nil {
		re.Scene.Destroy()
	}
	re.pipeline.Destroy()
}
