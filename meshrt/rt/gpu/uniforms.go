package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gekko3d/bubbles/meshrt/rt/core"
	"github.com/go-gl/mathgl/mgl32"
)

// FrameUniformSize matches the Frame struct in mesh.wgsl:
// two mat4x4 (128 bytes) followed by nine vec4 (144 bytes).
const FrameUniformSize = 272

// DepthRemap converts OpenGL clip depth [-w, w] into the WebGPU range [0, w].
var DepthRemap = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// FrameUniforms is shared by every draw in a frame.
type FrameUniforms struct {
	View        mgl32.Mat4
	Proj        mgl32.Mat4
	ViewPos     mgl32.Vec3
	ObjectColor mgl32.Vec3
	Light       core.DirectionalLight
	Material    core.Material
}

// InstanceData matches the per-instance vertex attributes (locations 2..5).
type InstanceData struct {
	Model mgl32.Mat4
}

// Bytes packs the uniforms little-endian in WGSL uniform layout.
// Proj is expected in OpenGL convention and is depth-remapped here.
func (f *FrameUniforms) Bytes() []byte {
	buf := make([]byte, FrameUniformSize)

	writeMat := func(offset int, m mgl32.Mat4) {
		for i, v := range m {
			binary.LittleEndian.PutUint32(buf[offset+i*4:], math.Float32bits(v))
		}
	}
	writeVec := func(offset int, v mgl32.Vec3, w float32) {
		binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(v[0]))
		binary.LittleEndian.PutUint32(buf[offset+4:], math.Float32bits(v[1]))
		binary.LittleEndian.PutUint32(buf[offset+8:], math.Float32bits(v[2]))
		binary.LittleEndian.PutUint32(buf[offset+12:], math.Float32bits(w))
	}

	writeMat(0, f.View)
	writeMat(64, DepthRemap.Mul4(f.Proj))
	writeVec(128, f.ViewPos, 1)
	writeVec(144, f.ObjectColor, 1)
	writeVec(160, f.Light.Direction, 0)
	writeVec(176, f.Light.Ambient, 0)
	writeVec(192, f.Light.Diffuse, 0)
	writeVec(208, f.Light.Specular, 0)
	writeVec(224, f.Material.Ambient, 0)
	writeVec(240, f.Material.Diffuse, 0)
	writeVec(256, f.Material.Specular, f.Material.Shininess)

	return buf
}
