package object

import (
	"fmt"

	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/math"
)

// Cone is a primitive backed by a ConeAdornment attached to the resolved
// output target.
type Cone struct {
	Node
	Params    ConeAttributes
	adornment *ConeAdornment
}

func NewCone(params ConeAttributes) *Cone {
	c := &Cone{Params: params.clone()}
	c.Init(c, "Cone")
	return c
}

func (c *Cone) SetParam(key string, value any) error {
	return setParam(&c.Params, key, value)
}

func (c *Cone) Construct() {
	target := c.OutputInstance()
	if target == nil {
		core.LogDebug("%s.Construct(): no output target, the cone will not be attached", c)
	}
	c.adornment = &ConeAdornment{Name: "Cone"}
	c.sync(target)
}

func (c *Cone) Tick(dt float64) {
	if c.adornment == nil {
		return
	}
	c.sync(c.OutputInstance())
}

func (c *Cone) sync(target OutputTarget) {
	a := c.adornment
	a.Radius = DefaultConeRadius
	if c.Params.Radius != nil {
		a.Radius = *c.Params.Radius
	}
	a.Height = DefaultConeHeight
	if c.Params.Height != nil {
		a.Height = *c.Params.Height
	}
	a.Color3 = math.White
	if c.Params.Color != nil {
		a.Color3 = *c.Params.Color
	}
	a.CFrame = math.NewCFrameIdentity()
	if c.Params.CFrame != nil {
		a.CFrame = *c.Params.CFrame
	}
	a.Visible = c.Params.IsVisible()
	a.Adornee = target
}

func (c *Cone) SetNative(prop Property, value any) error {
	if c.adornment == nil {
		core.LogWarn("%s.SetNative(%s): %s", c, prop, core.ErrNotConstructed)
		return fmt.Errorf("%s: %w", c, core.ErrNotConstructed)
	}
	return c.adornment.SetNative(prop, value)
}

// Adornment returns the native descriptor, or nil before construction.
func (c *Cone) Adornment() *ConeAdornment {
	return c.adornment
}

func (c *Cone) Destroy() error {
	if err := c.Node.Destroy(); err != nil {
		return err
	}
	if c.adornment != nil {
		c.adornment.Visible = false
		c.adornment.Adornee = nil
	}
	return nil
}
