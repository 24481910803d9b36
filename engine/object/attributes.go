package object

import (
	"fmt"
	"reflect"

	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/math"
)

// Attributes holds the parameters shared by every visual object.
type Attributes struct {
	Visible *bool
}

// IsVisible defaults to true when Visible is unset.
func (a Attributes) IsVisible() bool {
	return a.Visible == nil || *a.Visible
}

func (a Attributes) clone() Attributes {
	return Attributes{Visible: clonePtr(a.Visible)}
}

type LineAttributes struct {
	Attributes
	Length    float32
	Thickness *float32
	Color     *math.Color
	CFrame    *math.CFrame
}

func (a LineAttributes) clone() LineAttributes {
	return LineAttributes{
		Attributes: a.Attributes.clone(),
		Length:     a.Length,
		Thickness:  clonePtr(a.Thickness),
		Color:      clonePtr(a.Color),
		CFrame:     clonePtr(a.CFrame),
	}
}

type ConeAttributes struct {
	Attributes
	Radius *float32
	Height *float32
	Color  *math.Color
	CFrame *math.CFrame
}

func (a ConeAttributes) clone() ConeAttributes {
	return ConeAttributes{
		Attributes: a.Attributes.clone(),
		Radius:     clonePtr(a.Radius),
		Height:     clonePtr(a.Height),
		Color:      clonePtr(a.Color),
		CFrame:     clonePtr(a.CFrame),
	}
}

// VectorAttributes describes an arrow from Origin (the tail, world origin when
// unset) to CFrame (the head).
type VectorAttributes struct {
	Attributes
	Origin *math.CFrame
	CFrame math.CFrame
	Color  *math.Color
}

func (a VectorAttributes) clone() VectorAttributes {
	return VectorAttributes{
		Attributes: a.Attributes.clone(),
		Origin:     clonePtr(a.Origin),
		CFrame:     a.CFrame,
		Color:      clonePtr(a.Color),
	}
}

// AxesAttributes describes three axis vectors of the given sizes along X, Y
// and Z, rooted at Origin.
type AxesAttributes struct {
	Attributes
	Sizes  [3]float32
	Colors *[3]math.Color
	Origin *math.Vec3
}

func (a AxesAttributes) clone() AxesAttributes {
	return AxesAttributes{
		Attributes: a.Attributes.clone(),
		Sizes:      a.Sizes,
		Colors:     clonePtr(a.Colors),
		Origin:     clonePtr(a.Origin),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// setParam assigns value to the exported field named key of the struct params
// points to. Pointer fields accept either a pointer or a plain value, and nil
// clears them. Numeric values are converted between numeric kinds.
func setParam(params any, key string, value any) error {
	rv := reflect.ValueOf(params)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("setParam: %T is not a pointer to a struct", params)
	}
	field := rv.Elem().FieldByName(key)
	if !field.IsValid() || !field.CanSet() {
		return fmt.Errorf("%q: %w", key, core.ErrUnknownParam)
	}

	if value == nil {
		switch field.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
			field.SetZero()
			return nil
		}
		return fmt.Errorf("%q cannot be nil: %w", key, core.ErrParamType)
	}

	val := reflect.ValueOf(value)
	if v, ok := coerce(val, field.Type()); ok {
		field.Set(v)
		return nil
	}
	if field.Kind() == reflect.Pointer {
		if v, ok := coerce(val, field.Type().Elem()); ok {
			ptr := reflect.New(field.Type().Elem())
			ptr.Elem().Set(v)
			field.Set(ptr)
			return nil
		}
	}
	return fmt.Errorf("%q expects %s, got %T: %w", key, field.Type(), value, core.ErrParamType)
}

func coerce(val reflect.Value, to reflect.Type) (reflect.Value, bool) {
	if val.Type().AssignableTo(to) {
		return val, true
	}
	if isNumeric(val.Kind()) && isNumeric(to.Kind()) {
		return val.Convert(to), true
	}
	return reflect.Value{}, false
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
