package demo

import (
	"fmt"
	"strings"
)

var helpOrder = []struct {
	actions []Action
	text    string
}{
	{[]Action{ActionLeft, ActionRight}, "Move eye left / right"},
	{[]Action{ActionForward, ActionBackward}, "Move eye forward / backward"},
	{[]Action{ActionUp, ActionDown}, "Move eye up / down"},
	{[]Action{ActionModeComplete}, ModeComplete.String()},
	{[]Action{ActionModeFresnel}, ModeFresnel.String()},
	{[]Action{ActionModeDistribution}, ModeDistribution.String()},
	{[]Action{ActionModeGeometry}, ModeGeometry.String()},
	{[]Action{ActionToggle}, "Switch R / E between increase and decrease"},
	{[]Action{ActionRoughness}, "Step roughness by 0.1"},
	{[]Action{ActionSpecular}, "Step specular by 0.1"},
	{[]Action{ActionQuit}, "Exit"},
}

// HelpLines describes the current bindings, one line per control.
func HelpLines(keys *Keymap) []string {
	lines := make([]string, 0, len(helpOrder))
	for _, h := range helpOrder {
		names := make([]string, 0, len(h.actions))
		for _, a := range h.actions {
			if key, ok := keys.KeyFor(a); ok {
				names = append(names, strings.ToUpper(KeyName(key)))
			}
		}
		if len(names) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-16s - %s", strings.Join(names, " / "), h.text))
	}
	return lines
}
