package bubbles

import (
	"github.com/gekko3d/bubbles/platform"
)

// InputSource is the polled side of a window. *platform.Window implements it.
type InputSource interface {
	KeyDown(k platform.Key) bool
	CursorPos() (float64, float64)
	Focused() bool
	SetCursorCaptured(captured bool)
}

type Input struct {
	Pressed      [platform.KeyCount]bool
	JustPressed  [platform.KeyCount]bool
	JustReleased [platform.KeyCount]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	MouseCaptured            bool

	// ScrollY is the wheel movement received since the previous frame.
	ScrollY float64
	Focused bool

	source        InputSource
	cursorApplied bool
	firstMove     bool
	pendingScroll float64
}

type InputModule struct {
	Source InputSource
	// Captured grabs the cursor from the first frame.
	Captured bool
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{
		MouseCaptured: mod.Captured,
		source:        mod.Source,
		firstMove:     true,
	})
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate),
	)
}

func inputSystem(input *Input) {
	input.poll()
}

func (in *Input) poll() {
	if in.source == nil {
		return
	}

	if in.MouseCaptured != in.cursorApplied {
		in.source.SetCursorCaptured(in.MouseCaptured)
		in.cursorApplied = in.MouseCaptured
		in.firstMove = true
	}

	focused := in.source.Focused()
	if !focused {
		in.firstMove = true
	}
	in.Focused = focused

	for k := platform.Key(0); k < platform.KeyCount; k++ {
		in.JustPressed[k] = false
		in.JustReleased[k] = false

		down := focused && in.source.KeyDown(k)
		if down {
			if !in.Pressed[k] {
				in.JustPressed[k] = true
			}
		} else if in.Pressed[k] {
			in.JustReleased[k] = true
		}
		in.Pressed[k] = down
	}

	mx, my := in.source.CursorPos()
	if in.firstMove || !in.MouseCaptured || !focused {
		in.MouseDeltaX = 0
		in.MouseDeltaY = 0
		if focused {
			in.firstMove = false
		}
	} else {
		in.MouseDeltaX = mx - in.MouseX
		in.MouseDeltaY = my - in.MouseY
	}
	in.MouseX = mx
	in.MouseY = my

	in.ScrollY = in.pendingScroll
	in.pendingScroll = 0
	if !focused {
		in.ScrollY = 0
	}
}
