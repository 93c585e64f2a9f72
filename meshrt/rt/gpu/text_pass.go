package gpu

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/bubbles/meshrt/rt/core"
	"github.com/gekko3d/bubbles/meshrt/rt/shaders"
)

// TextPass draws screen-space text over the scene from a glyph atlas.
type TextPass struct {
	Renderer     *core.TextRenderer
	Pipeline     *wgpu.RenderPipeline
	BindGroup    *wgpu.BindGroup
	AtlasTexture *wgpu.Texture
	AtlasView    *wgpu.TextureView
	Sampler      *wgpu.Sampler
	VertexBuffer *wgpu.Buffer
	VertexCount  uint32
	Device       *wgpu.Device
}

func NewTextPass(device *wgpu.Device, queue *wgpu.Queue, format wgpu.TextureFormat, tr *core.TextRenderer) (*TextPass, error) {
	p := &TextPass{Renderer: tr, Device: device}

	w, h := tr.Atlas.Bounds().Dx(), tr.Atlas.Bounds().Dy()
	var err error
	p.AtlasTexture, err = device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "Text Atlas",
		Size:          wgpu.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
		Format:        wgpu.TextureFormatR8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension:     wgpu.TextureDimension2D,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create text atlas: %w", err)
	}
	err = queue.WriteTexture(p.AtlasTexture.AsImageCopy(), tr.Atlas.Pix, &wgpu.TextureDataLayout{
		Offset:       0,
		BytesPerRow:  uint32(tr.Atlas.Stride),
		RowsPerImage: uint32(h),
	}, &wgpu.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1})
	if err != nil {
		p.Release()
		return nil, fmt.Errorf("failed to upload text atlas: %w", err)
	}

	p.AtlasView, err = p.AtlasTexture.CreateView(nil)
	if err != nil {
		p.Release()
		return nil, fmt.Errorf("failed to create atlas view: %w", err)
	}

	p.Sampler, err = device.CreateSampler(&wgpu.SamplerDescriptor{
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		MaxAnisotropy: 1,
	})
	if err != nil {
		p.Release()
		return nil, fmt.Errorf("failed to create text sampler: %w", err)
	}

	textMod, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Text Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.TextWGSL},
	})
	if err != nil {
		p.Release()
		return nil, fmt.Errorf("failed to create text shader: %w", err)
	}
	defer textMod.Release()

	p.Pipeline, err = device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "Text Pipeline",
		Vertex: wgpu.VertexState{
			Module:     textMod,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{{
				ArrayStride: uint64(unsafe.Sizeof(core.TextVertex{})),
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
					{Format: wgpu.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
					{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},
				},
			}},
		},
		Fragment: &wgpu.FragmentState{
			Module:     textMod,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format: format,
				Blend: &wgpu.BlendState{
					Color: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorSrcAlpha,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
					Alpha: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorOne,
						DstFactor: wgpu.BlendFactorOne,
						Operation: wgpu.BlendOperationAdd,
					},
				},
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleList,
		},
		// Shares the scene pass, so it must declare the depth attachment it ignores.
		DepthStencil: &wgpu.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: false,
			DepthCompare:      wgpu.CompareFunctionAlways,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		p.Release()
		return nil, fmt.Errorf("failed to create text pipeline: %w", err)
	}

	layout := p.Pipeline.GetBindGroupLayout(0)
	defer layout.Release()
	p.BindGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Text BG",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: p.AtlasView},
			{Binding: 1, Sampler: p.Sampler},
		},
	})
	if err != nil {
		p.Release()
		return nil, fmt.Errorf("failed to create text bind group: %w", err)
	}

	return p, nil
}

// Update lays out items for a screen of the given size and uploads the quads.
func (p *TextPass) Update(queue *wgpu.Queue, items []core.TextItem, screenW, screenH int) error {
	vertices := p.Renderer.BuildVertices(items, screenW, screenH)
	p.VertexCount = uint32(len(vertices))
	if len(vertices) == 0 {
		return nil
	}

	size := uint64(len(vertices)) * uint64(unsafe.Sizeof(core.TextVertex{}))
	if p.VertexBuffer == nil || p.VertexBuffer.GetSize() < size {
		if p.VertexBuffer != nil {
			p.VertexBuffer.Release()
		}
		var err error
		p.VertexBuffer, err = p.Device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "Text VB",
			Size:  size,
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			p.VertexCount = 0
			return fmt.Errorf("failed to create text vertex buffer: %w", err)
		}
	}

	return queue.WriteBuffer(p.VertexBuffer, 0, wgpu.ToBytes(vertices))
}

func (p *TextPass) Draw(pass *wgpu.RenderPassEncoder) {
	if p.VertexCount == 0 || p.VertexBuffer == nil {
		return
	}
	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, p.BindGroup, nil)
	pass.SetVertexBuffer(0, p.VertexBuffer, 0, wgpu.WholeSize)
	pass.Draw(p.VertexCount, 1, 0, 0)
}

func (p *TextPass) Release() {
	if p.VertexBuffer != nil {
		p.VertexBuffer.Release()
	}
	if p.BindGroup != nil {
		p.BindGroup.Release()
	}
	if p.Pipeline != nil {
		p.Pipeline.Release()
	}
	if p.Sampler != nil {
		p.Sampler.Release()
	}
	if p.AtlasView != nil {
		p.AtlasView.Release()
	}
	if p.AtlasTexture != nil {
		p.AtlasTexture.Release()
	}
}
