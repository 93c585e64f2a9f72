package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

const DepthFormat = wgpu.TextureFormatDepth24Plus

// Context owns the device, the swapchain surface and the depth target.
type Context struct {
	Instance *wgpu.Instance
	Surface  *wgpu.Surface
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
	Config   *wgpu.SurfaceConfiguration

	DepthTexture *wgpu.Texture
	DepthView    *wgpu.TextureView
}

func NewContext(surfaceDesc *wgpu.SurfaceDescriptor, width, height int) (*Context, error) {
	if surfaceDesc == nil {
		return nil, fmt.Errorf("no surface descriptor for window")
	}

	c := &Context{}
	c.Instance = wgpu.CreateInstance(nil)
	c.Surface = c.Instance.CreateSurface(surfaceDesc)

	adapter, err := c.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: c.Surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		c.Release()
		return nil, fmt.Errorf("failed to request adapter: %w", err)
	}
	c.Adapter = adapter

	c.Device, err = adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Bubbles Device",
	})
	if err != nil {
		c.Release()
		return nil, fmt.Errorf("failed to request device: %w", err)
	}
	c.Queue = c.Device.GetQueue()

	caps := c.Surface.GetCapabilities(adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		c.Release()
		return nil, fmt.Errorf("surface reports no supported formats")
	}

	c.Config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(max(width, 1)),
		Height:      uint32(max(height, 1)),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	c.Surface.Configure(c.Adapter, c.Device, c.Config)

	if err := c.createDepth(); err != nil {
		c.Release()
		return nil, err
	}
	return c, nil
}

func (c *Context) createDepth() error {
	if c.DepthView != nil {
		c.DepthView.Release()
		c.DepthView = nil
	}
	if c.DepthTexture != nil {
		c.DepthTexture.Release()
		c.DepthTexture = nil
	}

	tex, err := c.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              c.Config.Width,
			Height:             c.Config.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        DepthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("failed to create depth texture: %w", err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return fmt.Errorf("failed to create depth view: %w", err)
	}

	c.DepthTexture = tex
	c.DepthView = view
	return nil
}

// Resize reconfigures the swapchain and depth target. Zero sizes are ignored.
func (c *Context) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if c.Config.Width == uint32(width) && c.Config.Height == uint32(height) {
		return nil
	}
	c.Config.Width = uint32(width)
	c.Config.Height = uint32(height)
	c.Surface.Configure(c.Adapter, c.Device, c.Config)
	return c.createDepth()
}

func (c *Context) Release() {
	if c.DepthView != nil {
		c.DepthView.Release()
	}
	if c.DepthTexture != nil {
		c.DepthTexture.Release()
	}
	if c.Queue != nil {
		c.Queue.Release()
	}
	if c.Device != nil {
		c.Device.Release()
	}
	if c.Adapter != nil {
		c.Adapter.Release()
	}
	if c.Surface != nil {
		c.Surface.Release()
	}
	if c.Instance != nil {
		c.Instance.Release()
	}
}
