package bubbles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureSingleRenderer(t *testing.T) {
	app := newApp()

	ensureSingleRenderer(app, "mesh")
	assert.NotPanics(t, func() { ensureSingleRenderer(app, "mesh") })
	assert.PanicsWithValue(t, "Multiple renderers installed: mesh and voxel", func() {
		ensureSingleRenderer(app, "voxel")
	})
	assert.Panics(t, func() { ensureSingleRenderer(nil, "mesh") })
}

func TestMeshRendererModule_InstallsOverlayOnce(t *testing.T) {
	app := NewAppBuilder().
		UseModule(HudModule{Visible: true}).
		UseModule(MeshRendererModule{}).
		Build()

	overlay := mustResource[Overlay](t, app)
	assert.True(t, overlay.Visible)
	tag := mustResource[RendererTag](t, app)
	assert.Equal(t, meshRendererName, tag.Name)
}
