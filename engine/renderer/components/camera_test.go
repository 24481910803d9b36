package components

import (
	"testing"

	"github.com/spaghettifunk/motion/engine/math"
	"github.com/stretchr/testify/assert"
)

func TestCameraReset(t *testing.T) {
	c := NewCamera()
	c.SetCFrame(math.NewCFrame(math.NewVec3(1, 2, 3)))
	c.FieldOfView = 30
	c.Reset()

	assert.Equal(t, math.NewCFrameIdentity(), c.GetCFrame())
	assert.Equal(t, DEFAULT_FIELD_OF_VIEW, c.FieldOfView)
	assert.False(t, c.IsDirty)
}

func TestCameraViewFollowsPosition(t *testing.T) {
	c := NewCamera()
	c.SetPosition(math.NewVec3(0, 0, 10))
	assert.True(t, c.IsDirty)

	view := c.GetView()
	assert.False(t, c.IsDirty)
	p := math.NewVec3(0, 0, 10).Transform(view)
	assert.True(t, p.Compare(math.NewVec3Zero(), 1e-4), "got %v", p)
}

func TestCameraMoveAndPitch(t *testing.T) {
	c := NewCamera()
	c.MoveUp(2)
	c.MoveDown(0.5)
	assert.InDelta(t, 1.5, c.GetPosition().Y, 1e-5)

	c.Pitch(10)
	assert.InDelta(t, 1.55334306, c.GetEulerRotation().X, 1e-5)
}
