package opengl

import (
	"testing"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

func TestParseCullMode(t *testing.T) {
	tests := []struct {
		in   string
		want CullMode
	}{
		{"back", CullBack},
		{"Front", CullFront},
		{"none", CullNone},
		{"", CullNone},
	}
	for _, tt := range tests {
		got, err := ParseCullMode(tt.in)
		if err != nil {
			t.Fatalf("ParseCullMode(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseCullMode(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
	if _, err := ParseCullMode("sideways"); err == nil {
		t.Error("ParseCullMode: expected error for unknown mode")
	}
}

func TestAddressingWrapModes(t *testing.T) {
	if Repeat.glWrap() != gl.REPEAT {
		t.Errorf("Repeat: expected GL_REPEAT, got 0x%X", Repeat.glWrap())
	}
	if Mirror.glWrap() != gl.MIRRORED_REPEAT {
		t.Errorf("Mirror: expected GL_MIRRORED_REPEAT, got 0x%X", Mirror.glWrap())
	}
	if Clamp.glWrap() != gl.CLAMP_TO_EDGE {
		t.Errorf("Clamp: expected GL_CLAMP_TO_EDGE, got 0x%X", Clamp.glWrap())
	}
}

func TestCompareModeFuncs(t *testing.T) {
	if CompareLess.glFunc() != gl.LESS {
		t.Errorf("CompareLess: expected GL_LESS, got 0x%X", CompareLess.glFunc())
	}
	if CompareAlways.glFunc() != gl.ALWAYS {
		t.Errorf("CompareAlways: expected GL_ALWAYS, got 0x%X", CompareAlways.glFunc())
	}
}

func TestShaderTypeString(t *testing.T) {
	if VertexShader.String() != "vertex" || FragmentShader.String() != "fragment" {
		t.Errorf("unexpected names %q %q", VertexShader, FragmentShader)
	}
}
