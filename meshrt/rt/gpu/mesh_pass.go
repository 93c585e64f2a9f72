package gpu

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/bubbles/meshrt/rt/core"
	"github.com/gekko3d/bubbles/meshrt/rt/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

// MeshPass draws every orbit instance of one static mesh with Phong lighting.
type MeshPass struct {
	Pipeline       *wgpu.RenderPipeline
	BindGroup      *wgpu.BindGroup
	UniformBuffer  *wgpu.Buffer
	VertexBuffer   *wgpu.Buffer
	VertexCount    uint32
	InstanceBuffer *wgpu.Buffer
	InstanceCap    uint32
	InstanceCount  uint32
	Device         *wgpu.Device

	instances []InstanceData
}

func NewMeshPass(device *wgpu.Device, format wgpu.TextureFormat, mesh *core.Mesh) (*MeshPass, error) {
	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "MeshShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.MeshWGSL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mesh shader: %w", err)
	}
	defer shaderModule.Release()

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "MeshPipeline",
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(core.Vertex{})),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
					},
				},
				{
					ArrayStride: uint64(unsafe.Sizeof(InstanceData{})),
					StepMode:    wgpu.VertexStepModeInstance,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 2},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 3},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 4},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 5},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mesh pipeline: %w", err)
	}

	p := &MeshPass{
		Pipeline:    pipeline,
		Device:      device,
		VertexCount: uint32(mesh.VertexCount()),
	}

	p.UniformBuffer, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "MeshFrameUniforms",
		Size:  FrameUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		p.Release()
		return nil, fmt.Errorf("failed to create uniform buffer: %w", err)
	}

	layout := pipeline.GetBindGroupLayout(0)
	defer layout.Release()
	p.BindGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "MeshFrameBG",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: p.UniformBuffer, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		p.Release()
		return nil, fmt.Errorf("failed to create mesh bind group: %w", err)
	}

	// An empty mesh still needs a bindable buffer; draws then cover zero vertices.
	contents := wgpu.ToBytes(mesh.Data)
	if len(contents) == 0 {
		contents = make([]byte, unsafe.Sizeof(core.Vertex{}))
	}
	p.VertexBuffer, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "MeshVertexBuffer",
		Contents: contents,
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		p.Release()
		return nil, fmt.Errorf("failed to upload mesh vertices: %w", err)
	}

	return p, nil
}

// Update writes the frame uniforms and one model matrix per instance.
func (p *MeshPass) Update(queue *wgpu.Queue, frame *FrameUniforms, models []mgl32.Mat4) error {
	if err := queue.WriteBuffer(p.UniformBuffer, 0, frame.Bytes()); err != nil {
		return fmt.Errorf("failed to write frame uniforms: %w", err)
	}

	p.instances = p.instances[:0]
	for _, m := range models {
		p.instances = append(p.instances, InstanceData{Model: m})
	}
	p.InstanceCount = uint32(len(p.instances))
	if p.InstanceCount == 0 {
		return nil
	}

	if p.InstanceBuffer == nil || p.InstanceCap < p.InstanceCount {
		if p.InstanceBuffer != nil {
			p.InstanceBuffer.Release()
		}
		p.InstanceCap = p.InstanceCount
		var err error
		p.InstanceBuffer, err = p.Device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "MeshInstanceBuffer",
			Size:  uint64(p.InstanceCap) * uint64(unsafe.Sizeof(InstanceData{})),
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("failed to create instance buffer: %w", err)
		}
	}

	if err := queue.WriteBuffer(p.InstanceBuffer, 0, wgpu.ToBytes(p.instances)); err != nil {
		return fmt.Errorf("failed to write instances: %w", err)
	}
	return nil
}

// Draw issues one draw call per instance.
func (p *MeshPass) Draw(pass *wgpu.RenderPassEncoder) {
	if p.InstanceBuffer == nil || p.InstanceCount == 0 {
		return
	}

	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, p.BindGroup, nil)
	pass.SetVertexBuffer(0, p.VertexBuffer, 0, wgpu.WholeSize)
	pass.SetVertexBuffer(1, p.InstanceBuffer, 0, wgpu.WholeSize)

	for i := uint32(0); i < p.InstanceCount; i++ {
		pass.Draw(p.VertexCount, 1, 0, i)
	}
}

func (p *MeshPass) Release() {
	for _, b := range []*wgpu.Buffer{p.InstanceBuffer, p.VertexBuffer, p.UniformBuffer} {
		if b != nil {
			b.Release()
		}
	}
	if p.BindGroup != nil {
		p.BindGroup.Release()
	}
	if p.Pipeline != nil {
		p.Pipeline.Release()
	}
}
