package bubbles

import (
	"fmt"
	"strings"

	"github.com/gekko3d/bubbles/meshrt/rt/core"
	"github.com/gekko3d/bubbles/platform"
)

var (
	hudColor  = [4]float32{1, 1, 0, 1}
	hudDim    = [4]float32{0.8, 0.8, 0.8, 1}
	hudMargin = float32(10)
	// Room for one line of the help row at 0.75 scale of the 16px face.
	hudHelpHeight = float32(16)
	hudHelpRow    = "WASD/Space/Shift move  P pause  F1 overlay  F3 stats  Tab cursor  Esc exit"
)

// Overlay is the text drawn over the scene. Items is rebuilt every frame.
type Overlay struct {
	Visible   bool
	ShowStats bool
	Items     []core.TextItem
}

type HudModule struct {
	Visible bool
}

func (m HudModule) Install(app *App, cmd *Commands) {
	if overlay, ok := Resource[Overlay](app); ok {
		overlay.Visible = m.Visible
	} else {
		cmd.AddResources(&Overlay{Visible: m.Visible})
	}
	app.UseSystem(
		System(hudSystem).
			InStage(PostUpdate),
	)
}

func hudSystem(input *Input, overlay *Overlay, orbit *core.Orbit, cam *core.CameraState, prof *Profiler, vp *Viewport) {
	if input.JustPressed[platform.KeyF1] {
		overlay.Visible = !overlay.Visible
	}
	if input.JustPressed[platform.KeyF3] {
		overlay.ShowStats = !overlay.ShowStats
	}

	overlay.Items = overlay.Items[:0]
	if !overlay.Visible {
		return
	}

	state := "orbiting"
	if orbit.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("FPS: %.1f", prof.FPS),
		fmt.Sprintf("Bubbles: %d (%s)", orbit.Len(), state),
		fmt.Sprintf("FOV: %.0f  Pos: %.1f %.1f %.1f", cam.Fov, cam.Position.X(), cam.Position.Y(), cam.Position.Z()),
	}
	overlay.Items = append(overlay.Items, core.TextItem{
		Text:  strings.Join(lines, "\n"),
		X:     hudMargin,
		Y:     hudMargin,
		Scale: 1,
		Color: hudColor,
	})

	if overlay.ShowStats {
		overlay.Items = append(overlay.Items, core.TextItem{
			Text:  prof.GetStatsString(),
			X:     hudMargin,
			Y:     hudMargin + 80,
			Scale: 0.75,
			Color: hudDim,
		})
	}

	overlay.Items = append(overlay.Items, core.TextItem{
		Text:  hudHelpRow,
		X:     hudMargin,
		Y:     float32(vp.Height) - hudMargin - hudHelpHeight,
		Scale: 0.75,
		Color: hudDim,
	})
}
