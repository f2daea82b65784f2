package demo

import (
	"brdf-demo/config"
	"brdf-demo/log"
	"brdf-demo/math"
)

var logger = log.New("demo")

// Mode selects which part of the BRDF the fragment shader outputs.
type Mode int32

const (
	ModeComplete Mode = iota
	ModeFresnel
	ModeDistribution
	ModeGeometry
)

var modeNames = [...]string{
	ModeComplete:     "Complete BRDF",
	ModeFresnel:      "Schlick's Fresnel approximation",
	ModeDistribution: "Trowbridge-Reitz normal distribution term",
	ModeGeometry:     "Cook and Torrance's geometry factor",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown mode"
	}
	return modeNames[m]
}

const parameterStep = 0.1

// State is everything the keyboard can change.
type State struct {
	Left, Right       bool
	Forward, Backward bool
	Up, Down          bool

	Eye   math.Vec3
	Light math.Vec3
	Globe math.Vec3
	Speed float32

	Roughness float32
	Specular  float32
	Mode      Mode
	// Toggle makes R and E decrease instead of increase.
	Toggle bool

	Keys *Keymap

	quit bool
}

func NewState(cfg config.Config, keys *Keymap) *State {
	return &State{
		Eye:       cfg.Camera.Eye.Vec(),
		Light:     cfg.Lighting.Light.Vec(),
		Globe:     cfg.Lighting.Globe.Vec(),
		Speed:     cfg.Camera.Speed,
		Roughness: cfg.Lighting.Roughness,
		Specular:  cfg.Lighting.Specular,
		Mode:      Mode(cfg.Lighting.Mode),
		Keys:      keys,
	}
}

func (s *State) KeyDown(key int) {
	action, ok := s.Keys.Lookup(key)
	if !ok {
		return
	}

	switch action {
	case ActionLeft:
		s.Left = true
	case ActionRight:
		s.Right = true
	case ActionForward:
		s.Forward = true
	case ActionBackward:
		s.Backward = true
	case ActionUp:
		s.Up = true
	case ActionDown:
		s.Down = true
	case ActionModeComplete:
		s.setMode(ModeComplete)
	case ActionModeFresnel:
		s.setMode(ModeFresnel)
	case ActionModeDistribution:
		s.setMode(ModeDistribution)
	case ActionModeGeometry:
		s.setMode(ModeGeometry)
	case ActionToggle:
		s.Toggle = !s.Toggle
		logger.Debugf("decrease parameters: %v", s.Toggle)
	case ActionRoughness:
		s.Roughness = s.stepParameter(s.Roughness)
		logger.Infof("Roughness: %f", s.Roughness)
	case ActionSpecular:
		s.Specular = s.stepParameter(s.Specular)
		logger.Infof("Specular: %f", s.Specular)
	case ActionHello:
		logger.Info("hi")
	case ActionQuit:
		s.quit = true
	}
}

// KeyUp clears movement flags. Every other key is ignored.
func (s *State) KeyUp(key int) {
	action, ok := s.Keys.Lookup(key)
	if !ok {
		return
	}

	switch action {
	case ActionLeft:
		s.Left = false
	case ActionRight:
		s.Right = false
	case ActionForward:
		s.Forward = false
	case ActionBackward:
		s.Backward = false
	case ActionUp:
		s.Up = false
	case ActionDown:
		s.Down = false
	}
}

func (s *State) setMode(m Mode) {
	s.Mode = m
	logger.Info(m.String())
}

func (s *State) stepParameter(v float32) float32 {
	if s.Toggle {
		return max(v-parameterStep, 0)
	}
	return min(v+parameterStep, 1)
}

// Step moves the eye one frame's worth for every held movement key.
func (s *State) Step() {
	if s.Left {
		s.Eye.X -= s.Speed
	}
	if s.Right {
		s.Eye.X += s.Speed
	}
	if s.Forward {
		s.Eye.Z += s.Speed
	}
	if s.Backward {
		s.Eye.Z -= s.Speed
	}
	if s.Up {
		s.Eye.Y += s.Speed
	}
	if s.Down {
		s.Eye.Y -= s.Speed
	}
}

func (s *State) QuitRequested() bool {
	return s.quit
}
