package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Length(t *testing.T) {
	assert.Equal(t, float32(5), NewVec3(3, 4, 0).Length())
	assert.Equal(t, NewVec3Zero(), NewVec3Zero().Normalized())
}

func TestVec3Lerp(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(10, -4, 2)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.True(t, NewVec3(5, -2, 1).Compare(a.Lerp(b, 0.5), K_FLOAT_EPSILON))
}

func TestCFrameLerp(t *testing.T) {
	from := NewCFrame(NewVec3(0, 0, 0))
	to := CFrame{Position: NewVec3(2, 2, 2), Rotation: NewVec3(0, K_PI, 0)}
	mid := from.Lerp(to, 0.5)
	assert.True(t, mid.Compare(CFrame{Position: NewVec3(1, 1, 1), Rotation: NewVec3(0, K_HALF_PI, 0)}, 1e-6))
}

func TestCFrameMatrixTranslates(t *testing.T) {
	c := NewCFrame(NewVec3(1, 2, 3))
	p := NewVec3Zero().Transform(c.Matrix())
	assert.True(t, p.Compare(NewVec3(1, 2, 3), 1e-6))
}

func TestMat4InverseRoundTrip(t *testing.T) {
	c := CFrame{Position: NewVec3(4, -1, 2), Rotation: NewVec3(0.3, 0.2, -0.5)}
	mat := c.Matrix()
	id := mat.Mul(mat.Inverse())
	for i, v := range NewMat4Identity().Data {
		assert.InDelta(t, v, id.Data[i], 1e-4)
	}
}

func TestEase(t *testing.T) {
	for _, style := range []EasingStyle{EasingLinear, EasingSine, EasingQuad, EasingCubic, EasingQuart, EasingQuint} {
		for _, dir := range []EasingDirection{EasingIn, EasingOut, EasingInOut} {
			assert.InDelta(t, 0, Ease(style, dir, 0), 1e-9, "%s %s at 0", style, dir)
			assert.InDelta(t, 1, Ease(style, dir, 1), 1e-9, "%s %s at 1", style, dir)
		}
	}
	assert.Equal(t, 0.25, Ease(EasingLinear, EasingOut, 0.25))
	assert.Equal(t, 0.25, Ease("Wobbly", EasingOut, 0.25))
	assert.Equal(t, 1.0, Ease(EasingQuad, EasingIn, 3))
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, Red, c)
	_, err = ParseHex("nope")
	assert.Error(t, err)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(12.5, 0, 10))
	assert.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))
}
