package config

import (
	"errors"
	"fmt"
	stdmath "math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"brdf-demo/math"
	"brdf-demo/scene"
)

// BuiltinSphere can be used as an object's mesh path to get a generated UV
// sphere instead of reading a file.
const BuiltinSphere = scene.BuiltinSphere

var ErrInvalidConfig = errors.New("config: invalid")

// Vec3 is a YAML-friendly three-component vector written as [x, y, z].
type Vec3 [3]float32

func (v Vec3) Vec() math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Config is the complete description of the demo scene and its window.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	AssetDir string         `yaml:"asset_dir"`
	Shaders  ShaderConfig   `yaml:"shaders"`
	Objects  ObjectsConfig  `yaml:"objects"`
	Camera   CameraConfig   `yaml:"camera"`
	Lighting LightingConfig `yaml:"lighting"`
	// Cull is one of "back", "front" or "none".
	Cull string `yaml:"cull"`
	// Keys optionally rebinds actions to key names, e.g. {mode_fresnel: "1"}.
	Keys map[string]string `yaml:"keys,omitempty"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

type ShaderConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type ObjectConfig struct {
	Mesh    string  `yaml:"mesh"`
	Texture string  `yaml:"texture"`
	Scale   float32 `yaml:"scale"`
}

type ObjectsConfig struct {
	Ball  ObjectConfig `yaml:"ball"`
	Light ObjectConfig `yaml:"light"`
}

type CameraConfig struct {
	Eye Vec3 `yaml:"eye"`
	// FOV is the vertical field of view in radians.
	FOV   float32 `yaml:"fov"`
	Near  float32 `yaml:"near"`
	Far   float32 `yaml:"far"`
	Speed float32 `yaml:"speed"`
}

type LightingConfig struct {
	Light     Vec3    `yaml:"light"`
	Globe     Vec3    `yaml:"globe"`
	Roughness float32 `yaml:"roughness"`
	Specular  float32 `yaml:"specular"`
	Mode      int     `yaml:"mode"`
}

// Default returns the scene the demo ships with.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Solution 7",
			Width:  1024,
			Height: 768,
			VSync:  true,
		},
		AssetDir: ".",
		Shaders: ShaderConfig{
			Vertex:   "shader.vert",
			Fragment: "shader.frag",
		},
		Objects: ObjectsConfig{
			Ball:  ObjectConfig{Mesh: "ball.obj", Texture: "ball_tex.png", Scale: 1},
			Light: ObjectConfig{Mesh: "ball.obj", Texture: "light_tex.png", Scale: 0.3},
		},
		Camera: CameraConfig{
			Eye:   Vec3{0, 2, -3},
			FOV:   float32(stdmath.Pi * 2 / 3),
			Near:  0.1,
			Far:   100,
			Speed: 0.05,
		},
		Lighting: LightingConfig{
			Light:     Vec3{0, 1.5, -3},
			Globe:     Vec3{0, 0, 0},
			Roughness: 0.9,
			Specular:  0.1,
			Mode:      0,
		},
		Cull: "back",
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep
// their default values. Relative asset_dir values resolve against the
// directory that holds the file.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if !filepath.IsAbs(cfg.AssetDir) {
		cfg.AssetDir = filepath.Join(filepath.Dir(path), cfg.AssetDir)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting the demo cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Shaders.Vertex == "" || c.Shaders.Fragment == "":
		return fmt.Errorf("%w: both shader paths are required", ErrInvalidConfig)
	case c.Lighting.Roughness < 0 || c.Lighting.Roughness > 1:
		return fmt.Errorf("%w: roughness %v outside [0,1]", ErrInvalidConfig, c.Lighting.Roughness)
	case c.Lighting.Specular < 0 || c.Lighting.Specular > 1:
		return fmt.Errorf("%w: specular %v outside [0,1]", ErrInvalidConfig, c.Lighting.Specular)
	case c.Lighting.Mode < 0 || c.Lighting.Mode > 3:
		return fmt.Errorf("%w: mode %d outside 0-3", ErrInvalidConfig, c.Lighting.Mode)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	case c.Objects.Ball.Scale <= 0 || c.Objects.Light.Scale <= 0:
		return fmt.Errorf("%w: object scale must be positive", ErrInvalidConfig)
	}
	switch c.Cull {
	case "back", "front", "none":
	default:
		return fmt.Errorf("%w: unknown cull mode %q", ErrInvalidConfig, c.Cull)
	}
	return nil
}

// Path resolves an asset path against AssetDir. Built-in and empty paths are
// returned unchanged.
func (c *Config) Path(p string) string {
	if p == "" || p == BuiltinSphere || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.AssetDir, p)
}

// Aspect returns the window aspect ratio used by the projection.
func (c *Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}
