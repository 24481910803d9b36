package object

import (
	"testing"

	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

func TestLineDefaults(t *testing.T) {
	target := &fakeTarget{name: "layer"}
	line := NewLine(LineAttributes{Length: 2})
	line.SetOutputTarget(target)

	require.ErrorIs(t, line.SetNative(PropertyLength, 1), core.ErrNotConstructed)
	line.Build()

	a := line.Adornment()
	require.NotNil(t, a)
	assert.Equal(t, float32(2), a.Length)
	assert.Equal(t, DefaultLineThickness, a.Thickness)
	assert.Equal(t, math.White, a.Color3)
	assert.True(t, a.Visible)
	assert.Same(t, target, a.Adornee)
}

func TestLineTickPushesParams(t *testing.T) {
	line := NewLine(LineAttributes{})
	line.Build()

	require.NoError(t, line.SetParam("Length", 3))
	require.NoError(t, line.SetParam("Thickness", float32(2)))
	require.NoError(t, line.SetParam("Color", math.Red))
	require.NoError(t, line.SetParam("Visible", false))
	line.Update(0.016)

	a := line.Adornment()
	assert.Equal(t, float32(3), a.Length)
	assert.Equal(t, float32(2), a.Thickness)
	assert.Equal(t, math.Red, a.Color3)
	assert.False(t, a.Visible)
}

func TestSetParamErrors(t *testing.T) {
	line := NewLine(LineAttributes{})
	assert.ErrorIs(t, line.SetParam("Nope", 1), core.ErrUnknownParam)
	assert.ErrorIs(t, line.SetParam("Length", "long"), core.ErrParamType)
	assert.ErrorIs(t, line.SetParam("Length", nil), core.ErrParamType)

	require.NoError(t, line.SetParam("Color", core.Ptr(math.Blue)))
	assert.Equal(t, math.Blue, *line.Params.Color)
	require.NoError(t, line.SetParam("Color", nil))
	assert.Nil(t, line.Params.Color)
}

func TestConstructorCopiesParams(t *testing.T) {
	color := math.Green
	params := ConeAttributes{Color: &color}
	cone := NewCone(params)
	color = math.Red
	assert.Equal(t, math.Green, *cone.Params.Color)
}

func TestConeNative(t *testing.T) {
	cone := NewCone(ConeAttributes{})
	cone.Build()

	a := cone.Adornment()
	assert.Equal(t, DefaultConeRadius, a.Radius)
	assert.Equal(t, DefaultConeHeight, a.Height)
	assert.Nil(t, a.Adornee)

	require.NoError(t, cone.SetNative(PropertyRadius, 0.5))
	require.NoError(t, cone.SetNative(PropertyTransparency, float32(0.25)))
	assert.Equal(t, float32(0.5), a.Radius)
	assert.Equal(t, float32(0.25), a.Transparency)
	assert.ErrorIs(t, cone.SetNative(PropertyLength, 1), core.ErrUnknownProperty)
	assert.ErrorIs(t, cone.SetNative(PropertyColor3, "red"), core.ErrPropertyType)
}

func TestVectorGeometry(t *testing.T) {
	v := NewVector(VectorAttributes{CFrame: math.NewCFrame(math.NewVec3(3, 4, 0))})
	v.Build()
	require.NotNil(t, v.Line())
	require.NotNil(t, v.Cone())
	assert.Same(t, v.Line(), v.GetChild("line"))
	assert.Same(t, v.Cone(), v.GetChild("cone"))
	assert.Equal(t, float32(0), v.Line().Adornment().Length)

	v.Update(0.016)

	line := v.Line().Adornment()
	cone := v.Cone().Adornment()
	assert.InDelta(t, 5, line.Length, tolerance)
	assert.True(t, cone.CFrame.Position.Compare(math.NewVec3(3, 4, 0), tolerance))
	assert.True(t, line.CFrame.Position.Compare(math.NewVec3(3, 4, 0), tolerance))
	assert.InDelta(t, -math.K_PI, line.CFrame.Rotation.X, tolerance)
	assert.Equal(t, math.White, line.Color3)
}

func TestVectorTrueMidpoint(t *testing.T) {
	v := NewVector(VectorAttributes{
		Origin: core.Ptr(math.NewCFrame(math.NewVec3(1, 1, 0))),
		CFrame: math.NewCFrame(math.NewVec3(4, 5, 0)),
	})
	v.SetPolicy(Policy{TrueMidpoint: true})
	v.Build()
	v.Update(0.016)

	line := v.Line().Adornment()
	assert.InDelta(t, 5, line.Length, tolerance)
	assert.True(t, line.CFrame.Position.Compare(math.NewVec3(2.5, 3, 0), tolerance))
}

func TestVectorDoesNotTickChildren(t *testing.T) {
	v := NewVector(VectorAttributes{CFrame: math.NewCFrame(math.NewVec3(1, 0, 0))})
	v.Build()
	require.NoError(t, v.SetNativeLine(PropertyThickness, 3))
	v.Update(0.016)
	assert.Equal(t, float32(3), v.Line().Adornment().Thickness)
}

func TestVectorPassthroughBeforeConstruct(t *testing.T) {
	v := NewVector(VectorAttributes{})
	assert.ErrorIs(t, v.SetNativeLine(PropertyLength, 1), core.ErrNotConstructed)
	assert.ErrorIs(t, v.SetNativeCone(PropertyRadius, 1), core.ErrNotConstructed)
	v.Update(0.016)
}

func TestAxesHeads(t *testing.T) {
	axes := NewAxes(AxesAttributes{
		Sizes:  [3]float32{5, 4, 3},
		Colors: &[3]math.Color{math.Red, math.Green, math.Blue},
	})
	axes.Build()

	assert.Equal(t, []string{"xAxis", "yAxis", "zAxis"}, axes.ChildNames())
	heads := []math.Vec3{math.NewVec3(5, 0, 0), math.NewVec3(0, 4, 0), math.NewVec3(0, 0, 3)}
	colors := []math.Color{math.Red, math.Green, math.Blue}
	for i, head := range heads {
		v := axes.Axis(i)
		require.NotNil(t, v)
		assert.True(t, v.Head().Compare(head, tolerance), "axis %d head %v", i, v.Head())
		assert.Equal(t, colors[i], *v.Params.Color)
	}
	assert.Nil(t, axes.Axis(3))

	axes.Update(0.016)
	assert.InDelta(t, 4, axes.Axis(1).Line().Adornment().Length, tolerance)
}

func TestAxesDestroyHidesPrimitives(t *testing.T) {
	target := &fakeTarget{name: "layer"}
	axes := NewAxes(AxesAttributes{Sizes: [3]float32{1, 1, 1}})
	axes.SetOutputTarget(target)
	axes.Build()
	axes.Update(0.016)
	line := axes.Axis(0).Line()
	assert.Same(t, target, line.Adornment().Adornee)

	require.NoError(t, axes.Destroy())
	assert.False(t, line.Adornment().Visible)
	assert.Nil(t, line.Adornment().Adornee)
	assert.Equal(t, StateDestroyed, axes.Axis(2).Cone().State())
}
