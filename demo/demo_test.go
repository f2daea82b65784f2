package demo

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brdf-demo/config"
	"brdf-demo/core"
	"brdf-demo/log"
	"brdf-demo/math"
)

func newState() *State {
	return NewState(config.Default(), DefaultKeymap())
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetSink(&buf)
	t.Cleanup(func() { log.SetSink(os.Stdout) })
	return &buf
}

func TestNewStateFromDefaults(t *testing.T) {
	s := newState()

	assert.Equal(t, math.NewVec3(0, 2, -3), s.Eye)
	assert.Equal(t, math.NewVec3(0, 1.5, -3), s.Light)
	assert.InDelta(t, 0.9, s.Roughness, 1e-6)
	assert.InDelta(t, 0.1, s.Specular, 1e-6)
	assert.Equal(t, ModeComplete, s.Mode)
	assert.False(t, s.Toggle)
}

func TestRoughnessClampsAtOne(t *testing.T) {
	s := newState()

	s.KeyDown(core.KeyR)
	assert.InDelta(t, 1.0, s.Roughness, 1e-6)
	s.KeyDown(core.KeyR)
	assert.InDelta(t, 1.0, s.Roughness, 1e-6)
}

func TestToggleReversesSteps(t *testing.T) {
	s := newState()

	s.KeyDown(core.KeyT)
	require.True(t, s.Toggle)
	s.KeyDown(core.KeyE)
	assert.InDelta(t, 0.0, s.Specular, 1e-6)
	s.KeyDown(core.KeyE)
	assert.InDelta(t, 0.0, s.Specular, 1e-6, "specular stays at the floor")

	s.KeyDown(core.KeyR)
	assert.InDelta(t, 0.8, s.Roughness, 1e-6)

	s.KeyDown(core.KeyT)
	assert.False(t, s.Toggle)
	s.KeyDown(core.KeyE)
	assert.InDelta(t, 0.1, s.Specular, 1e-6)
}

func TestParametersStayInRange(t *testing.T) {
	s := newState()
	for i := 0; i < 40; i++ {
		if i%7 == 0 {
			s.KeyDown(core.KeyT)
		}
		s.KeyDown(core.KeyR)
		s.KeyDown(core.KeyE)
		assert.GreaterOrEqual(t, s.Roughness, float32(0))
		assert.LessOrEqual(t, s.Roughness, float32(1))
		assert.GreaterOrEqual(t, s.Specular, float32(0))
		assert.LessOrEqual(t, s.Specular, float32(1))
	}
}

func TestParameterLogging(t *testing.T) {
	buf := captureLog(t)
	s := newState()

	s.KeyDown(core.KeyR)
	s.KeyDown(core.KeySpace)
	assert.Contains(t, buf.String(), "Roughness: 1.000000")
	assert.Contains(t, buf.String(), "hi")
}

func TestModeKeys(t *testing.T) {
	buf := captureLog(t)
	s := newState()

	tests := []struct {
		key  int
		mode Mode
		name string
	}{
		{core.KeyF, ModeFresnel, "Schlick's Fresnel approximation"},
		{core.KeyD, ModeDistribution, "Trowbridge-Reitz normal distribution term"},
		{core.KeyG, ModeGeometry, "Cook and Torrance's geometry factor"},
		{core.KeyB, ModeComplete, "Complete BRDF"},
	}
	for _, tt := range tests {
		s.KeyDown(tt.key)
		assert.Equal(t, tt.mode, s.Mode)
		assert.Equal(t, tt.name, tt.mode.String())
		assert.Contains(t, buf.String(), tt.name)
	}
	assert.Equal(t, int32(3), UniformsFor(&State{Mode: ModeGeometry}).Mode)
}

func TestMovementFlags(t *testing.T) {
	s := newState()

	for _, key := range []int{core.KeyLeft, core.KeyRight, core.KeyUp, core.KeyDown, core.KeyW, core.KeyS} {
		s.KeyDown(key)
	}
	assert.True(t, s.Left && s.Right && s.Forward && s.Backward && s.Up && s.Down)

	s.KeyDown(core.KeyT)
	for _, key := range []int{core.KeyLeft, core.KeyRight, core.KeyUp, core.KeyDown, core.KeyW, core.KeyS, core.KeyT, core.KeyR} {
		s.KeyUp(key)
	}
	assert.False(t, s.Left || s.Right || s.Forward || s.Backward || s.Up || s.Down)
	assert.True(t, s.Toggle, "key up only clears movement flags")
}

func TestStepMovesEye(t *testing.T) {
	s := newState()
	start := s.Eye

	s.Step()
	assert.Equal(t, start, s.Eye, "no flags, no movement")

	s.KeyDown(core.KeyRight)
	s.KeyDown(core.KeyUp)
	s.KeyDown(core.KeyW)
	s.Step()
	assert.InDelta(t, start.X+0.05, s.Eye.X, 1e-6)
	assert.InDelta(t, start.Y+0.05, s.Eye.Y, 1e-6)
	assert.InDelta(t, start.Z+0.05, s.Eye.Z, 1e-6)

	s.KeyUp(core.KeyRight)
	s.KeyUp(core.KeyUp)
	s.KeyUp(core.KeyW)
	s.KeyDown(core.KeyLeft)
	s.KeyDown(core.KeyDown)
	s.KeyDown(core.KeyS)
	s.Step()
	s.Step()
	assert.InDelta(t, start.X-0.05, s.Eye.X, 1e-6)
	assert.InDelta(t, start.Y-0.05, s.Eye.Y, 1e-6)
	assert.InDelta(t, start.Z-0.05, s.Eye.Z, 1e-6)

	// Opposite flags cancel.
	s.KeyDown(core.KeyRight)
	before := s.Eye.X
	s.Step()
	assert.InDelta(t, before, s.Eye.X, 1e-6)
}

func TestEscapeRequestsQuit(t *testing.T) {
	s := newState()
	assert.False(t, s.QuitRequested())
	s.KeyDown(core.KeyEscape)
	assert.True(t, s.QuitRequested())
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	s := newState()
	before := *s
	s.KeyDown(core.KeyZ)
	s.KeyUp(core.KeyZ)
	assert.Equal(t, before, *s)
}

func TestKeymapRebind(t *testing.T) {
	keys := DefaultKeymap()
	require.NoError(t, keys.Rebind(map[string]string{
		"mode_fresnel": "1",
		"up":           "PageUp",
	}))

	a, ok := keys.Lookup(core.Key1)
	require.True(t, ok)
	assert.Equal(t, ActionModeFresnel, a)
	_, ok = keys.Lookup(core.KeyF)
	assert.False(t, ok, "old key is released")

	key, ok := keys.KeyFor(ActionUp)
	require.True(t, ok)
	assert.Equal(t, core.KeyPageUp, key)

	// Taking a key from another action leaves that action unbound.
	keys.Bind(core.KeyB, ActionQuit)
	_, ok = keys.KeyFor(ActionModeComplete)
	assert.False(t, ok)
	assert.Equal(t, 14, keys.Len())
}

func TestKeymapRebindErrors(t *testing.T) {
	keys := DefaultKeymap()
	assert.ErrorContains(t, keys.Rebind(map[string]string{"jump": "j"}), "unknown action")
	assert.ErrorContains(t, keys.Rebind(map[string]string{"quit": "f13"}), "unknown key")
}

func TestHelpLinesFollowBindings(t *testing.T) {
	keys := DefaultKeymap()
	keys.Bind(core.KeyQ, ActionQuit)

	lines := HelpLines(keys)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "LEFT / RIGHT")
	assert.Contains(t, lines[len(lines)-1], "Q")
}

func TestObjectTransforms(t *testing.T) {
	ball, marker := ObjectTransforms(math.Vec3Zero, math.NewVec3(0, 1.5, -3))

	got := ball.MulVec3(math.Vec3Right)
	assert.InDelta(t, -1, got.X, 1e-5)
	assert.InDelta(t, 0, got.Z, 1e-5)

	assert.Equal(t, math.NewVec3(0, 1.5, -3), marker.MulVec3(math.Vec3Zero))
}
