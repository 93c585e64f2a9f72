package bubbles

import (
	"fmt"

	"github.com/gekko3d/bubbles/meshrt/rt/core"
	"github.com/gekko3d/bubbles/meshrt/rt/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

const meshRendererName = "mesh"

// MeshRendererModule draws the scene mesh once per orbit instance, then the
// overlay. Install it after MeshModule, HudModule and ProfilerModule.
type MeshRendererModule struct {
	FontSize float64
}

type meshRenderState struct {
	fontSize float64

	ctx  *gpu.Context
	mesh *gpu.MeshPass
	text *gpu.TextPass

	frame      gpu.FrameUniforms
	models     []mgl32.Mat4
	clearColor mgl32.Vec4
}

func (m MeshRendererModule) Install(app *App, cmd *Commands) {
	ensureSingleRenderer(app, meshRendererName)

	fontSize := m.FontSize
	if fontSize <= 0 {
		fontSize = 16
	}
	cmd.AddResources(&meshRenderState{
		fontSize: fontSize,
		frame: gpu.FrameUniforms{
			ObjectColor: core.DefaultObjectColor,
			Light:       core.DefaultLight(),
			Material:    core.DefaultMaterial(),
		},
		clearColor: core.DefaultClearColor,
	})
	if _, ok := Resource[Overlay](app); !ok {
		cmd.AddResources(&Overlay{})
	}

	app.UseSystem(System(meshRendererStartupSystem).InStage(Startup))
	app.UseSystem(System(meshRendererResizeSystem).InStage(PreRender))
	app.UseSystem(System(meshRendererRenderSystem).InStage(Render))
	app.UseSystem(System(meshRendererShutdownSystem).InStage(Shutdown))
}

func meshRendererStartupSystem(rs *meshRenderState, ws *WindowState, vp *Viewport, assets *AssetServer, scene *SceneMesh, log Logger) error {
	mesh, ok := assets.Mesh(scene.Id)
	if !ok {
		return fmt.Errorf("scene mesh %q is not loaded", scene.Path)
	}

	ctx, err := gpu.NewContext(ws.Window.SurfaceDescriptor(), vp.Width, vp.Height)
	if err != nil {
		return err
	}
	rs.ctx = ctx
	vp.Resized = false

	rs.mesh, err = gpu.NewMeshPass(ctx.Device, ctx.Config.Format, mesh)
	if err != nil {
		return err
	}

	tr, err := core.NewDefaultTextRenderer(rs.fontSize)
	if err != nil {
		log.Warnf("Failed to initialize text renderer: %v", err)
	} else if rs.text, err = gpu.NewTextPass(ctx.Device, ctx.Queue, ctx.Config.Format, tr); err != nil {
		log.Warnf("Failed to initialize text pass: %v", err)
		rs.text = nil
	}

	log.Infof("Renderer ready: %dx%d, %d vertices per instance", ctx.Config.Width, ctx.Config.Height, rs.mesh.VertexCount)
	return nil
}

func meshRendererResizeSystem(rs *meshRenderState, vp *Viewport, log Logger) {
	if rs.ctx == nil || !vp.Resized || vp.Minimized() {
		return
	}
	if err := rs.ctx.Resize(vp.Width, vp.Height); err != nil {
		log.Errorf("Resize to %dx%d failed: %v", vp.Width, vp.Height, err)
		return
	}
	vp.Resized = false
	log.Debugf("Surface resized to %dx%d", vp.Width, vp.Height)
}

func meshRendererRenderSystem(rs *meshRenderState, cam *core.CameraState, orbit *core.Orbit, vp *Viewport, overlay *Overlay, prof *Profiler, log Logger) {
	if rs.ctx == nil || vp.Minimized() {
		return
	}

	rs.models = rs.models[:0]
	for i := 0; i < orbit.Len(); i++ {
		rs.models = append(rs.models, orbit.ModelMatrix(i))
	}

	rs.frame.View = cam.GetViewMatrix()
	rs.frame.Proj = cam.GetProjectionMatrix()
	rs.frame.ViewPos = cam.Position

	if err := rs.mesh.Update(rs.ctx.Queue, &rs.frame, rs.models); err != nil {
		log.Errorf("Mesh pass update failed: %v", err)
		return
	}

	drawers := []gpu.Drawer{rs.mesh}
	if rs.text != nil && overlay.Visible && len(overlay.Items) > 0 {
		if err := rs.text.Update(rs.ctx.Queue, overlay.Items, vp.Width, vp.Height); err != nil {
			log.Errorf("Text pass update failed: %v", err)
		} else {
			drawers = append(drawers, rs.text)
		}
	}

	if err := rs.ctx.RenderFrame(rs.clearColor, drawers...); err != nil {
		log.Errorf("Frame skipped: %v", err)
		return
	}

	prof.SetCount("Instances", len(rs.models))
	prof.SetCount("Vertices", int(rs.mesh.VertexCount))
	prof.SetCount("Draws", len(rs.models))
}

func meshRendererShutdownSystem(rs *meshRenderState) {
	if rs.text != nil {
		rs.text.Release()
		rs.text = nil
	}
	if rs.mesh != nil {
		rs.mesh.Release()
		rs.mesh = nil
	}
	if rs.ctx != nil {
		rs.ctx.Release()
		rs.ctx = nil
	}
}
