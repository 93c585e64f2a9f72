package core

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrbit_SeededPhases(t *testing.T) {
	a := NewOrbit(100, DefaultOrbitRadius, DefaultOrbitSpeed, DefaultPhaseSpread, rand.New(rand.NewPCG(1, 2)))
	b := NewOrbit(100, DefaultOrbitRadius, DefaultOrbitSpeed, DefaultPhaseSpread, rand.New(rand.NewPCG(1, 2)))

	require.Equal(t, 100, a.Len())
	assert.Equal(t, a.Instances, b.Instances, "same seed should give the same phases")

	for i, inst := range a.Instances {
		assert.GreaterOrEqual(t, inst.Phase, float32(0), "instance %d", i)
		assert.Less(t, inst.Phase, DefaultPhaseSpread, "instance %d", i)
	}
}

func TestOrbit_StaysOnCircle(t *testing.T) {
	o := NewOrbit(50, DefaultOrbitRadius, DefaultOrbitSpeed, DefaultPhaseSpread, rand.New(rand.NewPCG(7, 7)))
	r2 := float64(DefaultOrbitRadius * DefaultOrbitRadius)

	for _, dt := range []float32{0, 0.001, 0.016, 0.5, 3, 120} {
		o.Advance(dt)
		for i := 0; i < o.Len(); i++ {
			p := o.Instance(i).Position
			assert.InDelta(t, r2, float64(p.X()*p.X()+p.Z()*p.Z()), 1e-4, "dt=%v instance %d", dt, i)
			assert.Equal(t, float32(0), p.Y())
		}
	}
}

func TestOrbit_PauseAndResume(t *testing.T) {
	o := NewOrbitWithPhases([]float32{0.25, 1}, DefaultOrbitRadius, DefaultOrbitSpeed)

	o.Toggle()
	assert.True(t, o.Paused)
	assert.Equal(t, float32(0), o.CurrentSpeed())

	o.Advance(2)
	assert.Equal(t, float32(0.25), o.Instance(0).Phase)
	assert.Equal(t, float32(1), o.Instance(1).Phase)

	o.Toggle()
	assert.False(t, o.Paused)
	assert.Equal(t, DefaultOrbitSpeed, o.CurrentSpeed())

	o.Advance(0.5)
	assert.InDelta(t, 0.25+1.5*0.5, o.Instance(0).Phase, 1e-6)
	assert.InDelta(t, 1+1.5*0.5, o.Instance(1).Phase, 1e-6)
}

func TestOrbit_NegativeDtIsIgnored(t *testing.T) {
	o := NewOrbitWithPhases([]float32{1}, DefaultOrbitRadius, DefaultOrbitSpeed)
	o.Advance(-1)
	assert.Equal(t, float32(1), o.Instance(0).Phase)
}

func TestOrbit_OutOfRangePanics(t *testing.T) {
	o := NewOrbitWithPhases([]float32{0}, DefaultOrbitRadius, DefaultOrbitSpeed)
	assert.Panics(t, func() { o.Instance(1) })
	assert.Panics(t, func() { o.ModelMatrix(-1) })
}

func TestOrbit_ModelMatrixIsTranslation(t *testing.T) {
	o := NewOrbitWithPhases([]float32{math.Pi / 2}, DefaultOrbitRadius, DefaultOrbitSpeed)
	m := o.ModelMatrix(0)

	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 2, origin.X(), 1e-5)
	assert.InDelta(t, 0, origin.Y(), 1e-5)
	assert.InDelta(t, 0, origin.Z(), 1e-5)

	// Rotation/scale block stays identity.
	assert.True(t, m.Mat3().ApproxEqual(mgl32.Ident3()))
}

// A one-vertex fixture is loaded, two instances spawned half a turn apart,
// and one simulated second advanced at the default speed.
func TestOrbit_EndToEndWithFixtureMesh(t *testing.T) {
	fixture := "1\n0\n0\n0\n0\n1\n0\n1\n0\n0\n0\n1\n0\n0\n1\n0\n0\n1\n0\n"
	mesh, err := ParseMesh(strings.NewReader(fixture), "fixture", DefaultMeshScale)
	require.NoError(t, err)
	require.Len(t, mesh.Data, 6)
	assert.InDelta(t, 1.0/7.0, mesh.Data[4], 1e-7)

	o := NewOrbitWithPhases([]float32{0, math.Pi}, DefaultOrbitRadius, DefaultOrbitSpeed)
	o.Advance(1)

	r := float64(DefaultOrbitRadius)
	p0 := o.Instance(0).Position
	assert.InDelta(t, r*math.Sin(1.5), p0.X(), 1e-5)
	assert.Equal(t, float32(0), p0.Y())
	assert.InDelta(t, r*math.Cos(1.5), p0.Z(), 1e-5)

	p1 := o.Instance(1).Position
	assert.InDelta(t, r*math.Sin(math.Pi+1.5), p1.X(), 1e-5)
	assert.Equal(t, float32(0), p1.Y())
	assert.InDelta(t, r*math.Cos(math.Pi+1.5), p1.Z(), 1e-5)
}
