package core

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFW and OpenGL calls must all come from the thread that created the context.
func init() {
	runtime.LockOSThread()
}

var ErrWindowClosed = errors.New("core: window closed")

type (
	KeyHandler         func(key int)
	MouseMoveHandler   func(x, y, movementX, movementY int)
	MouseButtonHandler func(button, x, y int)
	ResizeHandler      func(width, height int)
)

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	// Input callbacks. nil handlers are skipped.
	KeyDown      KeyHandler
	KeyUp        KeyHandler
	MouseMove    MouseMoveHandler
	MousePress   MouseButtonHandler
	MouseRelease MouseButtonHandler
	Resize       ResizeHandler

	lastX, lastY int
	haveCursor   bool
}

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1024,
		Height:    768,
		Title:     "Solution 7",
		Resizable: true,
		VSync:     true,
	}
}

// NewWindow opens a window with a current OpenGL 4.1 core context.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	glfw.SwapInterval(boolToInt(config.VSync))

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}

	handle.SetKeyCallback(window.onKey)
	handle.SetCursorPosCallback(window.onCursorPos)
	handle.SetMouseButtonCallback(window.onMouseButton)
	handle.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
		if window.Resize != nil {
			window.Resize(width, height)
		}
	})

	return window, nil
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		if w.KeyDown != nil {
			w.KeyDown(int(key))
		}
	case glfw.Release:
		if w.KeyUp != nil {
			w.KeyUp(int(key))
		}
	}
}

func (w *Window) onCursorPos(_ *glfw.Window, xPos, yPos float64) {
	x, y := int(xPos), int(yPos)
	if !w.haveCursor {
		w.lastX, w.lastY = x, y
		w.haveCursor = true
	}
	dx, dy := x-w.lastX, y-w.lastY
	w.lastX, w.lastY = x, y
	if w.MouseMove != nil {
		w.MouseMove(x, y, dx, dy)
	}
}

func (w *Window) onMouseButton(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	xPos, yPos := win.GetCursorPos()
	switch action {
	case glfw.Press:
		if w.MousePress != nil {
			w.MousePress(int(button), int(xPos), int(yPos))
		}
	case glfw.Release:
		if w.MouseRelease != nil {
			w.MouseRelease(int(button), int(xPos), int(yPos))
		}
	}
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) Close() {
	w.Handle.SetShouldClose(true)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

// Time returns seconds since GLFW was initialised.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

const (
	KeySpace  = int(glfw.KeySpace)
	Key0      = int(glfw.Key0)
	Key1      = int(glfw.Key1)
	Key2      = int(glfw.Key2)
	Key3      = int(glfw.Key3)
	Key4      = int(glfw.Key4)
	Key5      = int(glfw.Key5)
	Key6      = int(glfw.Key6)
	Key7      = int(glfw.Key7)
	Key8      = int(glfw.Key8)
	Key9      = int(glfw.Key9)
	KeyA      = int(glfw.KeyA)
	KeyB      = int(glfw.KeyB)
	KeyC      = int(glfw.KeyC)
	KeyD      = int(glfw.KeyD)
	KeyE      = int(glfw.KeyE)
	KeyF      = int(glfw.KeyF)
	KeyG      = int(glfw.KeyG)
	KeyH      = int(glfw.KeyH)
	KeyI      = int(glfw.KeyI)
	KeyJ      = int(glfw.KeyJ)
	KeyK      = int(glfw.KeyK)
	KeyL      = int(glfw.KeyL)
	KeyM      = int(glfw.KeyM)
	KeyN      = int(glfw.KeyN)
	KeyO      = int(glfw.KeyO)
	KeyP      = int(glfw.KeyP)
	KeyQ      = int(glfw.KeyQ)
	KeyR      = int(glfw.KeyR)
	KeyS      = int(glfw.KeyS)
	KeyT      = int(glfw.KeyT)
	KeyU      = int(glfw.KeyU)
	KeyV      = int(glfw.KeyV)
	KeyW      = int(glfw.KeyW)
	KeyX      = int(glfw.KeyX)
	KeyY      = int(glfw.KeyY)
	KeyZ      = int(glfw.KeyZ)
	KeyEscape = int(glfw.KeyEscape)
	KeyEnter  = int(glfw.KeyEnter)
	KeyTab    = int(glfw.KeyTab)
	KeyRight  = int(glfw.KeyRight)
	KeyLeft   = int(glfw.KeyLeft)
	KeyDown   = int(glfw.KeyDown)
	KeyUp     = int(glfw.KeyUp)
	KeyPageUp = int(glfw.KeyPageUp)
	KeyPageDn = int(glfw.KeyPageDown)
)

// KeyNames maps the names accepted in config files to key codes.
var KeyNames = map[string]int{
	"space": KeySpace, "escape": KeyEscape, "enter": KeyEnter, "tab": KeyTab,
	"left": KeyLeft, "right": KeyRight, "up": KeyUp, "down": KeyDown,
	"pageup": KeyPageUp, "pagedown": KeyPageDn,
	"0": Key0, "1": Key1, "2": Key2, "3": Key3, "4": Key4,
	"5": Key5, "6": Key6, "7": Key7, "8": Key8, "9": Key9,
	"a": KeyA, "b": KeyB, "c": KeyC, "d": KeyD, "e": KeyE, "f": KeyF,
	"g": KeyG, "h": KeyH, "i": KeyI, "j": KeyJ, "k": KeyK, "l": KeyL,
	"m": KeyM, "n": KeyN, "o": KeyO, "p": KeyP, "q": KeyQ, "r": KeyR,
	"s": KeyS, "t": KeyT, "u": KeyU, "v": KeyV, "w": KeyW, "x": KeyX,
	"y": KeyY, "z": KeyZ,
}
