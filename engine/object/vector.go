package object

import (
	"fmt"

	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/math"
)

// Vector draws an arrow as a Line child ("line") and a Cone child ("cone").
// Its Tick positions both children itself and never ticks them.
type Vector struct {
	Node
	Params VectorAttributes
	line   *Line
	cone   *Cone
}

func NewVector(params VectorAttributes) *Vector {
	v := &Vector{Params: params.clone()}
	v.Init(v, "Vector")
	return v
}

func (v *Vector) SetParam(key string, value any) error {
	return setParam(&v.Params, key, value)
}

func (v *Vector) Construct() {
	v.line = NewLine(LineAttributes{
		Attributes: v.Params.Attributes.clone(),
		Length:     0,
		Color:      clonePtr(v.Params.Color),
		CFrame:     core.Ptr(v.Params.CFrame),
	})
	v.cone = NewCone(ConeAttributes{
		Attributes: v.Params.Attributes.clone(),
		Color:      clonePtr(v.Params.Color),
		CFrame:     core.Ptr(v.Params.CFrame),
	})
	if err := v.AddChild("line", v.line); err != nil {
		core.LogError("%s.Construct(): %s", v, err)
	}
	if err := v.AddChild("cone", v.cone); err != nil {
		core.LogError("%s.Construct(): %s", v, err)
	}
}

// Tail is the start of the arrow: Origin's position, or the world origin.
func (v *Vector) Tail() math.Vec3 {
	if v.Params.Origin != nil {
		return v.Params.Origin.Position
	}
	return math.NewVec3Zero()
}

// Head is the tip of the arrow.
func (v *Vector) Head() math.Vec3 {
	return v.Params.CFrame.Position
}

func (v *Vector) Length() float32 {
	return v.Head().Sub(v.Tail()).Length()
}

func (v *Vector) Tick(dt float64) {
	if v.line == nil || v.cone == nil {
		return
	}
	tail := v.Tail()
	head := v.Head()
	direction := head.Sub(tail)
	length := direction.Length()

	mid := tail.Add(direction)
	if v.Policy().TrueMidpoint {
		mid = tail.Add(direction.MulScalar(0.5))
	}
	orientation := math.NewVec3Zero()

	color := math.White
	if v.Params.Color != nil {
		color = *v.Params.Color
	}
	visible := v.Params.IsVisible()

	v.line.Params.Length = length
	v.line.Params.CFrame = &math.CFrame{
		Position: mid,
		Rotation: math.NewVec3(orientation.X-math.K_PI, orientation.Y, orientation.Z),
	}
	v.line.Params.Color = core.Ptr(color)
	v.line.Params.Visible = core.Ptr(visible)
	if a := v.line.adornment; a != nil {
		a.Length = length
		a.CFrame = *v.line.Params.CFrame
		a.Color3 = color
		a.Visible = visible
		a.Adornee = v.line.OutputInstance()
	}

	v.cone.Params.CFrame = &math.CFrame{Position: head, Rotation: orientation}
	v.cone.Params.Color = core.Ptr(color)
	v.cone.Params.Visible = core.Ptr(visible)
	if a := v.cone.adornment; a != nil {
		a.CFrame = *v.cone.Params.CFrame
		a.Color3 = color
		a.Visible = visible
		a.Adornee = v.cone.OutputInstance()
	}
}

func (v *Vector) Line() *Line {
	return v.line
}

func (v *Vector) Cone() *Cone {
	return v.cone
}

// SetNativeLine forwards to the line child's native descriptor.
func (v *Vector) SetNativeLine(prop Property, value any) error {
	if v.line == nil {
		return fmt.Errorf("%s: %w", v, core.ErrNotConstructed)
	}
	return v.line.SetNative(prop, value)
}

// SetNativeCone forwards to the cone child's native descriptor.
func (v *Vector) SetNativeCone(prop Property, value any) error {
	if v.cone == nil {
		return fmt.Errorf("%s: %w", v, core.ErrNotConstructed)
	}
	return v.cone.SetNative(prop, value)
}
