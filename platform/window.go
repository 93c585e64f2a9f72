package platform

import (
	"fmt"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Handler receives the window lifecycle. OnLoad runs once before the first
// frame; a non-nil error stops Run before the loop is entered.
type Handler interface {
	OnLoad() error
	OnUpdate(dt time.Duration)
	OnRender()
	OnResize(width, height int)
	OnScroll(dy float64)
	ShouldExit() bool
}

// Window is a glfw window without a client API, rendered to through wgpu.
// All methods must be called from the thread that called Init.
type Window struct {
	win *glfw.Window
}

// Init must run on the main, locked OS thread.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to init glfw: %w", err)
	}
	return nil
}

func Terminate() {
	glfw.Terminate()
}

func NewWindow(width, height int, title string) (*Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	return &Window{win: win}, nil
}

func (w *Window) Destroy() {
	w.win.Destroy()
}

func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *Window) KeyDown(k Key) bool {
	gk, ok := keyToGlfw[k]
	if !ok {
		return false
	}
	return w.win.GetKey(gk) == glfw.Press
}

func (w *Window) CursorPos() (float64, float64) {
	return w.win.GetCursorPos()
}

func (w *Window) Focused() bool {
	return w.win.GetAttrib(glfw.Focused) == glfw.True
}

func (w *Window) SetCursorCaptured(captured bool) {
	if captured {
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (w *Window) Close() {
	w.win.SetShouldClose(true)
}

// Run drives h until the window is closed or h asks to exit.
func (w *Window) Run(h Handler) error {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		h.OnResize(width, height)
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		h.OnScroll(yoff)
	})

	if err := h.OnLoad(); err != nil {
		return err
	}

	last := time.Now()
	for !w.win.ShouldClose() {
		glfw.PollEvents()

		now := time.Now()
		h.OnUpdate(now.Sub(last))
		last = now

		if h.ShouldExit() {
			w.Close()
			break
		}
		h.OnRender()
	}
	return nil
}
