package bubbles

import (
	"time"
)

// Time holds the duration of the current frame as reported by the window loop.
type Time struct {
	Dt      time.Duration
	Elapsed time.Duration
	Frame   uint64

	next time.Duration
}

// DtSeconds is the frame time in seconds, the unit every animation uses.
func (t *Time) DtSeconds() float32 {
	return float32(t.Dt.Seconds())
}

type TimeModule struct{}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{})
	app.UseSystem(
		System(timeSystem).
			InStage(Prelude),
	)
}

func timeSystem(t *Time) {
	dt := t.next
	if dt < 0 {
		dt = 0
	}
	t.next = 0

	t.Dt = dt
	t.Elapsed += dt
	t.Frame++
}
