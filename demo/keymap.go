package demo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kamstrup/intmap"

	"brdf-demo/core"
)

// Action is something a key press can trigger.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionForward
	ActionBackward
	ActionUp
	ActionDown
	ActionModeComplete
	ActionModeFresnel
	ActionModeDistribution
	ActionModeGeometry
	ActionToggle
	ActionRoughness
	ActionSpecular
	ActionHello
	ActionQuit
)

var actionNames = map[Action]string{
	ActionLeft:             "left",
	ActionRight:            "right",
	ActionForward:          "forward",
	ActionBackward:         "backward",
	ActionUp:               "up",
	ActionDown:             "down",
	ActionModeComplete:     "mode_brdf",
	ActionModeFresnel:      "mode_fresnel",
	ActionModeDistribution: "mode_distribution",
	ActionModeGeometry:     "mode_geometry",
	ActionToggle:           "toggle",
	ActionRoughness:        "roughness",
	ActionSpecular:         "specular",
	ActionHello:            "hello",
	ActionQuit:             "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction looks an action up by its config name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// Keymap maps key codes to actions. Every action has at most one key.
type Keymap struct {
	keys  *intmap.Map[int, Action]
	bound map[Action]int
}

func NewKeymap() *Keymap {
	return &Keymap{
		keys:  intmap.New[int, Action](len(actionNames)),
		bound: make(map[Action]int, len(actionNames)),
	}
}

// DefaultKeymap returns the stock bindings.
func DefaultKeymap() *Keymap {
	k := NewKeymap()
	k.Bind(core.KeyLeft, ActionLeft)
	k.Bind(core.KeyRight, ActionRight)
	k.Bind(core.KeyUp, ActionForward)
	k.Bind(core.KeyDown, ActionBackward)
	k.Bind(core.KeyW, ActionUp)
	k.Bind(core.KeyS, ActionDown)
	k.Bind(core.KeyB, ActionModeComplete)
	k.Bind(core.KeyF, ActionModeFresnel)
	k.Bind(core.KeyD, ActionModeDistribution)
	k.Bind(core.KeyG, ActionModeGeometry)
	k.Bind(core.KeyT, ActionToggle)
	k.Bind(core.KeyR, ActionRoughness)
	k.Bind(core.KeyE, ActionSpecular)
	k.Bind(core.KeySpace, ActionHello)
	k.Bind(core.KeyEscape, ActionQuit)
	return k
}

// Bind assigns key to a. The action's previous key and the key's previous
// action are both unbound.
func (k *Keymap) Bind(key int, a Action) {
	if old, ok := k.bound[a]; ok {
		k.keys.Del(old)
	}
	if prev, ok := k.keys.Get(key); ok {
		delete(k.bound, prev)
	}
	k.keys.Put(key, a)
	k.bound[a] = key
}

func (k *Keymap) Lookup(key int) (Action, bool) {
	return k.keys.Get(key)
}

func (k *Keymap) KeyFor(a Action) (int, bool) {
	key, ok := k.bound[a]
	return key, ok
}

func (k *Keymap) Len() int {
	return k.keys.Len()
}

// Rebind applies action-name to key-name bindings, as read from config.
func (k *Keymap) Rebind(bindings map[string]string) error {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a, err := ParseAction(name)
		if err != nil {
			return err
		}
		keyName := bindings[name]
		key, ok := core.KeyNames[strings.ToLower(keyName)]
		if !ok {
			return fmt.Errorf("action %s: unknown key %q", name, keyName)
		}
		k.Bind(key, a)
	}
	return nil
}

// KeyName returns the config name of a key code.
func KeyName(key int) string {
	for name, code := range core.KeyNames {
		if code == key {
			return name
		}
	}
	return fmt.Sprintf("key(%d)", key)
}
