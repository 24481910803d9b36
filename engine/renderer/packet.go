package renderer

import (
	"github.com/spaghettifunk/motion/engine/math"
	"github.com/spaghettifunk/motion/engine/object"
	"github.com/spaghettifunk/motion/engine/renderer/components"
)

type LineDrawData struct {
	Layer        string
	Length       float32
	Thickness    float32
	Color        math.Color
	CFrame       math.CFrame
	Transparency float32
}

type ConeDrawData struct {
	Layer        string
	Radius       float32
	Height       float32
	Color        math.Color
	CFrame       math.CFrame
	Transparency float32
}

// RenderPacket is everything a backend needs to draw one frame.
type RenderPacket struct {
	FrameNumber uint64
	DeltaTime   float64
	Camera      components.Camera
	Lines       []LineDrawData
	Cones       []ConeDrawData
}

// BuildPacket walks the roots depth-first and collects the visible primitives
// attached to a live output target. Destroyed subtrees are skipped.
func BuildPacket(frame uint64, deltaTime float64, camera *components.Camera, roots ...object.Object) *RenderPacket {
	packet := &RenderPacket{
		FrameNumber: frame,
		DeltaTime:   deltaTime,
	}
	if camera != nil {
		packet.Camera = *camera
	} else {
		packet.Camera = *components.NewCamera()
	}
	for _, root := range roots {
		collect(packet, root)
	}
	return packet
}

func collect(packet *RenderPacket, obj object.Object) {
	if obj == nil || obj.AsNode().State() != object.StateLive {
		return
	}
	switch o := obj.(type) {
	case *object.Line:
		if a := o.Adornment(); a != nil && a.Visible && attached(a.Adornee) {
			packet.Lines = append(packet.Lines, LineDrawData{
				Layer:        a.Adornee.Name(),
				Length:       a.Length,
				Thickness:    a.Thickness,
				Color:        a.Color3,
				CFrame:       a.CFrame,
				Transparency: a.Transparency,
			})
		}
	case *object.Cone:
		if a := o.Adornment(); a != nil && a.Visible && attached(a.Adornee) {
			packet.Cones = append(packet.Cones, ConeDrawData{
				Layer:        a.Adornee.Name(),
				Radius:       a.Radius,
				Height:       a.Height,
				Color:        a.Color3,
				CFrame:       a.CFrame,
				Transparency: a.Transparency,
			})
		}
	}
	for _, child := range obj.AsNode().Children() {
		collect(packet, child)
	}
}

func attached(target object.OutputTarget) bool {
	if target == nil {
		return false
	}
	if l, ok := target.(*Layer); ok {
		return !l.Destroyed()
	}
	return true
}
