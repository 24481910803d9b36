package renderer

import (
	"fmt"

	"github.com/spaghettifunk/motion/engine/core"
)

// Renderer is the front end the engine talks to. It forwards a packet to the
// backend one primitive at a time between BeginFrame and EndFrame.
type Renderer struct {
	backend RendererBackend
	width   uint32
	height  uint32
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{backend: backend}
}

func (r *Renderer) Initialize(appName string, width, height uint32) error {
	if r.backend == nil {
		return fmt.Errorf("renderer has no backend")
	}
	r.width, r.height = width, height
	if err := r.backend.Initialize(appName, width, height); err != nil {
		core.LogError("renderer backend failed to initialize: %s", err)
		return err
	}
	core.LogInfo("renderer initialized (%dx%d)", width, height)
	return nil
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *Renderer) OnResize(width, height uint32) error {
	r.width, r.height = width, height
	return r.backend.Resized(width, height)
}

func (r *Renderer) Size() (uint32, uint32) {
	return r.width, r.height
}

func (r *Renderer) DrawFrame(packet *RenderPacket) error {
	if err := r.backend.BeginFrame(packet); err != nil {
		return err
	}
	for i := range packet.Lines {
		if err := r.backend.DrawLine(&packet.Lines[i]); err != nil {
			return err
		}
	}
	for i := range packet.Cones {
		if err := r.backend.DrawCone(&packet.Cones[i]); err != nil {
			return err
		}
	}
	return r.backend.EndFrame(packet)
}
