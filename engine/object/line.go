package object

import (
	"fmt"

	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/math"
)

// Line is a primitive backed by a LineAdornment attached to the resolved
// output target.
type Line struct {
	Node
	Params    LineAttributes
	adornment *LineAdornment
}

func NewLine(params LineAttributes) *Line {
	l := &Line{Params: params.clone()}
	l.Init(l, "Line")
	return l
}

func (l *Line) SetParam(key string, value any) error {
	return setParam(&l.Params, key, value)
}

func (l *Line) Construct() {
	target := l.OutputInstance()
	if target == nil {
		core.LogDebug("%s.Construct(): no output target, the line will not be attached", l)
	}
	l.adornment = &LineAdornment{Name: "Line"}
	l.sync(target)
}

func (l *Line) Tick(dt float64) {
	if l.adornment == nil {
		return
	}
	l.sync(l.OutputInstance())
}

func (l *Line) sync(target OutputTarget) {
	a := l.adornment
	a.Length = l.Params.Length
	a.Thickness = DefaultLineThickness
	if l.Params.Thickness != nil {
		a.Thickness = *l.Params.Thickness
	}
	a.Color3 = math.White
	if l.Params.Color != nil {
		a.Color3 = *l.Params.Color
	}
	a.CFrame = math.NewCFrameIdentity()
	if l.Params.CFrame != nil {
		a.CFrame = *l.Params.CFrame
	}
	a.Visible = l.Params.IsVisible()
	a.Adornee = target
}

// SetNative writes straight to the native descriptor, bypassing Params. The
// next Tick overwrites the fields it derives from Params.
func (l *Line) SetNative(prop Property, value any) error {
	if l.adornment == nil {
		core.LogWarn("%s.SetNative(%s): %s", l, prop, core.ErrNotConstructed)
		return fmt.Errorf("%s: %w", l, core.ErrNotConstructed)
	}
	return l.adornment.SetNative(prop, value)
}

// Adornment returns the native descriptor, or nil before construction.
func (l *Line) Adornment() *LineAdornment {
	return l.adornment
}

func (l *Line) Destroy() error {
	if err := l.Node.Destroy(); err != nil {
		return err
	}
	if l.adornment != nil {
		l.adornment.Visible = false
		l.adornment.Adornee = nil
	}
	return nil
}
