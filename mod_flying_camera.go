package bubbles

import (
	"github.com/gekko3d/bubbles/meshrt/rt/core"
	"github.com/gekko3d/bubbles/platform"
)

// FlyingCameraModule installs the free-fly camera. Zero fields keep the
// camera defaults.
type FlyingCameraModule struct {
	Speed       float32
	Sensitivity float32
	Fov         float32
	Near, Far   float32
}

func (m FlyingCameraModule) Install(app *App, cmd *Commands) {
	cam := core.NewCameraState()
	if m.Speed != 0 {
		cam.Speed = m.Speed
	}
	if m.Sensitivity != 0 {
		cam.Sensitivity = m.Sensitivity
	}
	if m.Fov != 0 {
		cam.Fov = m.Fov
	}
	if m.Near != 0 {
		cam.Near = m.Near
	}
	if m.Far != 0 {
		cam.Far = m.Far
	}
	cmd.AddResources(cam)

	app.UseSystem(
		System(FlyingCameraControlSystem).
			InStage(Update),
	)
	app.UseSystem(
		System(cameraAspectSystem).
			InStage(PostUpdate),
	)
}

var cameraMoves = []struct {
	key platform.Key
	dir core.Direction
}{
	{platform.KeyW, core.Forward},
	{platform.KeyS, core.Backward},
	{platform.KeyA, core.Left},
	{platform.KeyD, core.Right},
	{platform.KeySpace, core.Up},
	{platform.KeyLeftShift, core.Down},
}

func FlyingCameraControlSystem(input *Input, t *Time, cam *core.CameraState, cmd *Commands) {
	if input.JustPressed[platform.KeyEscape] {
		cmd.Exit()
		return
	}
	if !input.Focused {
		return
	}

	if input.JustPressed[platform.KeyTab] {
		input.MouseCaptured = !input.MouseCaptured
	}

	dt := t.DtSeconds()
	for _, m := range cameraMoves {
		if input.Pressed[m.key] {
			cam.Move(m.dir, dt)
		}
	}

	if input.MouseCaptured {
		cam.Look(float32(input.MouseDeltaX), float32(input.MouseDeltaY))
	}
	if input.ScrollY != 0 {
		cam.Zoom(float32(input.ScrollY))
	}
}

func cameraAspectSystem(vp *Viewport, cam *core.CameraState) {
	cam.SetAspect(vp.Width, vp.Height)
}
