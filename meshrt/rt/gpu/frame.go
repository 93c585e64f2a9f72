package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Drawer records draw commands into the shared scene pass.
type Drawer interface {
	Draw(pass *wgpu.RenderPassEncoder)
}

// RenderFrame clears color and depth, lets every drawer record in order,
// then submits and presents. On error nothing has been presented and the
// caller may simply skip the frame.
func (c *Context) RenderFrame(clear mgl32.Vec4, drawers ...Drawer) error {
	nextTexture, err := c.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("GetCurrentTexture failed: %w", err)
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("CreateView failed: %w", err)
	}
	defer view.Release()

	encoder, err := c.Device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("CreateCommandEncoder failed: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  wgpu.LoadOpClear,
			StoreOp: wgpu.StoreOpStore,
			ClearValue: wgpu.Color{
				R: float64(clear[0]),
				G: float64(clear[1]),
				B: float64(clear[2]),
				A: float64(clear[3]),
			},
		}},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            c.DepthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	})
	for _, d := range drawers {
		d.Draw(pass)
	}
	if err := pass.End(); err != nil {
		return fmt.Errorf("render pass End failed: %w", err)
	}
	pass.Release()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("encoder Finish failed: %w", err)
	}
	defer cmd.Release()

	c.Queue.Submit(cmd)
	c.Surface.Present()
	return nil
}
