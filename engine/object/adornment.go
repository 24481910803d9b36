package object

import (
	"fmt"

	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/math"
)

// Property names a field of a native descriptor.
type Property string

const (
	PropertyLength       Property = "Length"
	PropertyThickness    Property = "Thickness"
	PropertyRadius       Property = "Radius"
	PropertyHeight       Property = "Height"
	PropertyColor3       Property = "Color3"
	PropertyCFrame       Property = "CFrame"
	PropertyVisible      Property = "Visible"
	PropertyTransparency Property = "Transparency"
)

const (
	DefaultLineThickness float32 = 8
	DefaultConeRadius    float32 = 0.25
	DefaultConeHeight    float32 = 1
)

// LineAdornment is the backend-facing descriptor of a Line.
type LineAdornment struct {
	Name         string
	Length       float32
	Thickness    float32
	Color3       math.Color
	CFrame       math.CFrame
	Transparency float32
	Visible      bool
	Adornee      OutputTarget
}

// SetNative writes a single property of the descriptor.
func (a *LineAdornment) SetNative(prop Property, value any) error {
	switch prop {
	case PropertyLength:
		return assignFloat(&a.Length, prop, value)
	case PropertyThickness:
		return assignFloat(&a.Thickness, prop, value)
	}
	return setCommon(&a.Color3, &a.CFrame, &a.Visible, &a.Transparency, prop, value)
}

// ConeAdornment is the backend-facing descriptor of a Cone.
type ConeAdornment struct {
	Name         string
	Radius       float32
	Height       float32
	Color3       math.Color
	CFrame       math.CFrame
	Transparency float32
	Visible      bool
	Adornee      OutputTarget
}

func (a *ConeAdornment) SetNative(prop Property, value any) error {
	switch prop {
	case PropertyRadius:
		return assignFloat(&a.Radius, prop, value)
	case PropertyHeight:
		return assignFloat(&a.Height, prop, value)
	}
	return setCommon(&a.Color3, &a.CFrame, &a.Visible, &a.Transparency, prop, value)
}

func setCommon(color *math.Color, cframe *math.CFrame, visible *bool, transparency *float32, prop Property, value any) error {
	switch prop {
	case PropertyColor3:
		return assign(color, prop, value)
	case PropertyCFrame:
		return assign(cframe, prop, value)
	case PropertyVisible:
		return assign(visible, prop, value)
	case PropertyTransparency:
		return assignFloat(transparency, prop, value)
	}
	return fmt.Errorf("%q: %w", prop, core.ErrUnknownProperty)
}

func assign[T any](dst *T, prop Property, value any) error {
	switch v := value.(type) {
	case T:
		*dst = v
	case *T:
		if v == nil {
			return fmt.Errorf("%q: nil value: %w", prop, core.ErrPropertyType)
		}
		*dst = *v
	default:
		return fmt.Errorf("%q expects %T, got %T: %w", prop, *dst, value, core.ErrPropertyType)
	}
	return nil
}

func assignFloat(dst *float32, prop Property, value any) error {
	switch v := value.(type) {
	case float32:
		*dst = v
	case float64:
		*dst = float32(v)
	case int:
		*dst = float32(v)
	default:
		return fmt.Errorf("%q expects a number, got %T: %w", prop, value, core.ErrPropertyType)
	}
	return nil
}
