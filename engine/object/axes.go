package object

import (
	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/math"
)

var axisNames = [3]string{"xAxis", "yAxis", "zAxis"}

// Axes is three Vectors rooted at a common origin, one per world axis.
type Axes struct {
	Node
	Params AxesAttributes
	axes   [3]*Vector
}

func NewAxes(params AxesAttributes) *Axes {
	a := &Axes{Params: params.clone()}
	a.Init(a, "Axes")
	return a
}

func (a *Axes) SetParam(key string, value any) error {
	return setParam(&a.Params, key, value)
}

func (a *Axes) Construct() {
	origin := math.NewVec3Zero()
	if a.Params.Origin != nil {
		origin = *a.Params.Origin
	}
	colors := [3]math.Color{math.White, math.White, math.White}
	if a.Params.Colors != nil {
		colors = *a.Params.Colors
	}
	units := [3]math.Vec3{math.NewVec3(1, 0, 0), math.NewVec3(0, 1, 0), math.NewVec3(0, 0, 1)}

	for i := range axisNames {
		a.axes[i] = NewVector(VectorAttributes{
			Attributes: Attributes{Visible: core.Ptr(a.Params.IsVisible())},
			Origin:     core.Ptr(math.NewCFrame(origin)),
			CFrame:     math.NewCFrame(origin.Add(units[i].MulScalar(a.Params.Sizes[i]))),
			Color:      core.Ptr(colors[i]),
		})
		if err := a.AddChild(axisNames[i], a.axes[i]); err != nil {
			core.LogError("%s.Construct(): %s", a, err)
		}
	}
}

func (a *Axes) Tick(dt float64) {
	a.TickChildren(dt)
}

// Axis returns the vector for axis 0 (X), 1 (Y) or 2 (Z), or nil before
// construction.
func (a *Axes) Axis(i int) *Vector {
	if i < 0 || i >= len(a.axes) {
		return nil
	}
	return a.axes[i]
}
