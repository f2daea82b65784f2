package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"brdf-demo/core"
)

// Init loads the OpenGL function pointers for the current context and
// returns the driver's version string.
func Init() (string, error) {
	if err := gl.Init(); err != nil {
		return "", fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	return gl.GoStr(gl.GetString(gl.VERSION)), nil
}

func SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears colour and depth. Depth writes must be enabled for the depth
// clear to take effect, so the mask is turned on first.
func Clear(clear core.ClearValue) {
	gl.DepthMask(true)
	gl.ClearColor(clear.Color.R, clear.Color.G, clear.Color.B, clear.Color.A)
	gl.ClearDepth(float64(clear.Depth))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
