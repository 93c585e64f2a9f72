package gpu

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/gekko3d/bubbles/meshrt/rt/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFloat(buf []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}

func TestFrameUniforms_Layout(t *testing.T) {
	cam := core.NewCameraState()
	f := FrameUniforms{
		View:        cam.GetViewMatrix(),
		Proj:        cam.GetProjectionMatrix(),
		ViewPos:     cam.Position,
		ObjectColor: core.DefaultObjectColor,
		Light:       core.DefaultLight(),
		Material:    core.DefaultMaterial(),
	}

	buf := f.Bytes()
	require.Len(t, buf, FrameUniformSize)

	for i := 0; i < 16; i++ {
		assert.Equal(t, f.View[i], readFloat(buf, i*4), "view[%d]", i)
	}

	assert.Equal(t, float32(5), readFloat(buf, 128+4), "view_pos.y")
	assert.Equal(t, float32(1), readFloat(buf, 128+12), "view_pos.w")
	assert.InDelta(t, 170.0/255.0, readFloat(buf, 144+4), 1e-6, "object_color.g")
	assert.Equal(t, float32(-3), readFloat(buf, 160), "light_dir.x")
	assert.Equal(t, float32(-1), readFloat(buf, 160+8), "light_dir.z")
	assert.InDelta(t, 0.2, readFloat(buf, 224), 1e-6, "mat_ambient.r")
	assert.InDelta(t, 0.6, readFloat(buf, 240), 1e-6, "mat_diffuse.r")
	assert.Equal(t, float32(16), readFloat(buf, 256+12), "shininess")
}

func TestDepthRemap(t *testing.T) {
	proj := DepthRemap.Mul4(mgl32.Perspective(mgl32.DegToRad(90), 1, 0.5, 50))

	near := proj.Mul4x1(mgl32.Vec4{0, 0, -0.5, 1})
	far := proj.Mul4x1(mgl32.Vec4{0, 0, -50, 1})

	assert.InDelta(t, 0, near.Z()/near.W(), 1e-5)
	assert.InDelta(t, 1, far.Z()/far.W(), 1e-5)
}

func TestInstanceDataStride(t *testing.T) {
	assert.Equal(t, uintptr(64), unsafe.Sizeof(InstanceData{}))
}
