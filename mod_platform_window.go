package bubbles

import (
	"github.com/gekko3d/bubbles/platform"
)

// WindowState exposes the shared window to the renderer.
type WindowState struct {
	Window *platform.Window
}

// Viewport is the framebuffer size in pixels. Resized is set by OnResize and
// cleared by whoever reconfigures the surface.
type Viewport struct {
	Width, Height int
	Resized       bool
}

func (vp *Viewport) resize(width, height int) {
	if vp.Width == width && vp.Height == height {
		return
	}
	vp.Width = width
	vp.Height = height
	vp.Resized = true
}

// Minimized reports a zero-area framebuffer.
func (vp *Viewport) Minimized() bool {
	return vp.Width <= 0 || vp.Height <= 0
}

type PlatformWindowModule struct {
	Window *platform.Window
}

// Install is idempotent: an existing WindowState or Viewport is kept.
func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	if _, ok := Resource[WindowState](app); !ok {
		cmd.AddResources(&WindowState{Window: m.Window})
	}
	if _, ok := Resource[Viewport](app); !ok {
		w, h := m.Window.FramebufferSize()
		cmd.AddResources(&Viewport{Width: w, Height: h})
	}
}

// ViewportModule provides a fixed-size Viewport when no window is installed.
type ViewportModule struct {
	Width, Height int
}

func (m ViewportModule) Install(app *App, cmd *Commands) {
	if _, ok := Resource[Viewport](app); ok {
		return
	}
	cmd.AddResources(&Viewport{Width: m.Width, Height: m.Height})
}
