package demo

import (
	"errors"
	"fmt"
	stdmath "math"

	"brdf-demo/config"
	"brdf-demo/core"
	"brdf-demo/internal/opengl"
	"brdf-demo/math"
	"brdf-demo/renderer"
	"brdf-demo/scene"
)

// Demo owns the window callbacks, the render engine and the state they share.
type Demo struct {
	State *State

	cfg    config.Config
	window *core.Window
	engine *renderer.RenderEngine
	camera *scene.Camera

	frameCount int
	lastTitle  float64
}

// New builds the pipeline and the two scene objects and hooks up input.
// The window's GL context must be current.
func New(cfg config.Config, window *core.Window) (*Demo, error) {
	keys := DefaultKeymap()
	if err := keys.Rebind(cfg.Keys); err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	cull, err := opengl.ParseCullMode(cfg.Cull)
	if err != nil {
		return nil, err
	}
	structure := core.MeshVertexStructure
	engine, err := renderer.NewRenderEngine(window, renderer.PipelineConfig{
		VertexShader:   cfg.Path(cfg.Shaders.Vertex),
		FragmentShader: cfg.Path(cfg.Shaders.Fragment),
		Structure:      structure,
		CullMode:       cull,
		TextureName:    "tex",
	})
	if err != nil {
		return nil, err
	}

	d := &Demo{
		State:  NewState(cfg, keys),
		cfg:    cfg,
		window: window,
		engine: engine,
	}

	ball, err := renderer.NewMeshObject(cfg.Path(cfg.Objects.Ball.Mesh), cfg.Path(cfg.Objects.Ball.Texture), structure, cfg.Objects.Ball.Scale)
	if err != nil {
		engine.Destroy()
		return nil, fmt.Errorf("ball: %w", err)
	}
	engine.Scene.Add(ball)

	light, err := renderer.NewMeshObject(cfg.Path(cfg.Objects.Light.Mesh), cfg.Path(cfg.Objects.Light.Texture), structure, cfg.Objects.Light.Scale)
	if err != nil {
		engine.Destroy()
		return nil, fmt.Errorf("light: %w", err)
	}
	engine.Scene.Add(light)

	ball.M, light.M = ObjectTransforms(d.State.Globe, d.State.Light)

	engine.SetTextureAddressing(opengl.Repeat, opengl.Repeat)

	w, h := window.GetFramebufferSize()
	d.camera = scene.NewCamera(d.State.Eye, cfg.Camera.FOV, float32(w)/float32(max(h, 1)), cfg.Camera.Near, cfg.Camera.Far)
	engine.Camera = d.camera

	window.KeyDown = d.State.KeyDown
	window.KeyUp = d.State.KeyUp
	window.MouseMove = func(x, y, movementX, movementY int) {}
	window.MousePress = func(button, x, y int) {}
	window.MouseRelease = func(button, x, y int) {}
	window.Resize = engine.Resize

	logger.Info("Showing complete BRDF")
	logger.Infof("Roughness: %f", d.State.Roughness)
	logger.Infof("Specular: %f", d.State.Specular)
	for _, line := range HelpLines(keys) {
		logger.Debug(line)
	}

	return d, nil
}

// ObjectTransforms returns the model matrices of the ball, turned half a
// turn about Y and placed at globe, and of the light marker at light.
func ObjectTransforms(globe, light math.Vec3) (ball, marker math.Mat4) {
	ball = math.Mat4RotationY(stdmath.Pi).Mul(math.Mat4Translation(globe))
	marker = math.Mat4Translation(light)
	return ball, marker
}

// Update advances one frame and draws it. It returns core.ErrWindowClosed
// once the window has been asked to close.
func (d *Demo) Update() error {
	if d.State.QuitRequested() {
		d.window.Close()
	}
	if d.window.ShouldClose() {
		return core.ErrWindowClosed
	}

	d.State.Step()
	d.camera.SetPosition(d.State.Eye)

	if err := d.engine.Render(d.Uniforms()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	d.engine.Present()

	d.frameCount++
	now := d.window.Time()
	if elapsed := now - d.lastTitle; elapsed >= 1 {
		_, _, tris := d.engine.DrawStats()
		d.window.SetTitle(fmt.Sprintf("%s | FPS: %.0f", d.cfg.Window.Title, float64(d.frameCount)/elapsed))
		logger.Debugf("eye (%.2f, %.2f, %.2f) | tris %d | mode %d",
			d.State.Eye.X, d.State.Eye.Y, d.State.Eye.Z, tris, d.State.Mode)
		d.frameCount = 0
		d.lastTitle = now
	}
	return nil
}

// Uniforms returns the shading inputs for the current state.
func (d *Demo) Uniforms() renderer.Uniforms {
	return UniformsFor(d.State)
}

func UniformsFor(s *State) renderer.Uniforms {
	return renderer.Uniforms{
		Light:     s.Light,
		Eye:       s.Eye,
		Specular:  s.Specular,
		Roughness: s.Roughness,
		Mode:      int32(s.Mode),
	}
}

// Run polls events and renders until the window closes.
func (d *Demo) Run() error {
	d.lastTitle = d.window.Time()
	for {
		d.window.PollEvents()
		if err := d.Update(); err != nil {
			if errors.Is(err, core.ErrWindowClosed) {
				return nil
			}
			return err
		}
	}
}

// Destroy releases every GPU resource the demo created.
func (d *Demo) Destroy() {
	d.engine.Destroy()
}
