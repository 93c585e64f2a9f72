package bubbles

import (
	"math/rand/v2"
)

// SimulationModules are the window-independent modules, in install order.
// A window (PlatformWindowModule) or a ViewportModule must be installed first,
// and a renderer after. log may be nil, in which case a fresh logger is made.
func (c Config) SimulationModules(log *DefaultLogger, input InputSource, rng *rand.Rand) []Module {
	return []Module{
		LoggingModule{Prefix: LogPrefix, Debug: c.Debug, Logger: log},
		TimeModule{},
		ProfilerModule{},
		InputModule{Source: input, Captured: true},
		MeshModule{Path: c.Mesh.Path, Scale: c.Mesh.Scale},
		FlyingCameraModule{
			Speed:       c.Camera.Speed,
			Sensitivity: c.Camera.Sensitivity,
			Fov:         c.Camera.Fov,
			Near:        c.Camera.Near,
			Far:         c.Camera.Far,
		},
		OrbitModule{
			Count:  c.Orbit.Count,
			Radius: c.Orbit.Radius,
			Speed:  c.Orbit.Speed,
			Spread: c.Orbit.Spread,
			Rand:   rng,
		},
		HudModule{Visible: c.Overlay},
	}
}
