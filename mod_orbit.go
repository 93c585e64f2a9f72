package bubbles

import (
	"math/rand/v2"

	"github.com/gekko3d/bubbles/meshrt/rt/core"
	"github.com/gekko3d/bubbles/platform"
)

// OrbitModule places Count instances on a circle and animates them.
// Rand must be set; phases are drawn from it once at install time.
type OrbitModule struct {
	Count  int
	Radius float32
	Speed  float32
	Spread float32
	Rand   *rand.Rand
	// Phases, when set, replaces the random draw.
	Phases []float32
}

func (m OrbitModule) Install(app *App, cmd *Commands) {
	var orbit *core.Orbit
	if m.Phases != nil {
		orbit = core.NewOrbitWithPhases(m.Phases, m.Radius, m.Speed)
	} else {
		if m.Rand == nil {
			panic("OrbitModule: Rand is nil")
		}
		orbit = core.NewOrbit(m.Count, m.Radius, m.Speed, m.Spread, m.Rand)
	}
	cmd.AddResources(orbit)

	app.UseSystem(
		System(orbitSystem).
			InStage(Update),
	)
}

func orbitSystem(input *Input, t *Time, orbit *core.Orbit, log Logger) {
	if input.JustPressed[platform.KeyP] {
		orbit.Toggle()
		log.Debugf("orbit paused=%v", orbit.Paused)
	}
	orbit.Advance(t.DtSeconds())
}
