package core

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultOrbitRadius = float32(2.0)
	DefaultOrbitSpeed  = float32(1.5)
	DefaultPhaseSpread = float32(8.0)
)

// Instance is one copy of the mesh travelling along the orbit circle.
type Instance struct {
	Phase    float32
	Position mgl32.Vec3
}

// Orbit animates a fixed set of instances around a circle in the XZ plane.
type Orbit struct {
	Radius    float32
	Speed     float32
	Paused    bool
	Instances []Instance
}

// NewOrbit spawns count instances with phases drawn uniformly from [0, spread).
func NewOrbit(count int, radius, speed, spread float32, rng *rand.Rand) *Orbit {
	phases := make([]float32, count)
	for i := range phases {
		phases[i] = rng.Float32() * spread
	}
	return NewOrbitWithPhases(phases, radius, speed)
}

func NewOrbitWithPhases(phases []float32, radius, speed float32) *Orbit {
	o := &Orbit{
		Radius:    radius,
		Speed:     speed,
		Instances: make([]Instance, len(phases)),
	}
	for i, p := range phases {
		o.Instances[i].Phase = p
		o.Instances[i].Position = o.positionAt(p)
	}
	return o
}

func (o *Orbit) positionAt(phase float32) mgl32.Vec3 {
	s, c := math.Sincos(float64(phase))
	return mgl32.Vec3{float32(s) * o.Radius, 0, float32(c) * o.Radius}
}

// CurrentSpeed is the angular speed in radians per second, zero while paused.
func (o *Orbit) CurrentSpeed() float32 {
	if o.Paused {
		return 0
	}
	return o.Speed
}

func (o *Orbit) Toggle() {
	o.Paused = !o.Paused
}

// Advance moves every instance along the circle by dt seconds.
func (o *Orbit) Advance(dt float32) {
	if dt < 0 {
		dt = 0
	}
	step := o.CurrentSpeed() * dt
	for i := range o.Instances {
		inst := &o.Instances[i]
		inst.Phase += step
		inst.Position = o.positionAt(inst.Phase)
	}
}

func (o *Orbit) Len() int {
	return len(o.Instances)
}

func (o *Orbit) Instance(i int) Instance {
	return o.Instances[i]
}

func (o *Orbit) ModelMatrix(i int) mgl32.Mat4 {
	p := o.Instances[i].Position
	return mgl32.Translate3D(p.X(), p.Y(), p.Z())
}
