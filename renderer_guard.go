package bubbles

import (
	"fmt"
)

// RendererTag records which renderer owns the window surface.
type RendererTag struct {
	Name string
}

// ensureSingleRenderer keeps a second pass owner from configuring the window
// surface. It panics if a renderer with a different name is already
// installed; installing the same renderer twice is a no-op.
func ensureSingleRenderer(app *App, name string) {
	if app == nil {
		panic("ensureSingleRenderer: app is nil")
	}
	if tag, ok := Resource[RendererTag](app); ok {
		if tag.Name != name {
			app.Logger().Errorf("Multiple renderers installed: %s and %s", tag.Name, name)
			panic(fmt.Sprintf("Multiple renderers installed: %s and %s", tag.Name, name))
		}
		return
	}
	app.addResources(&RendererTag{Name: name})
}
