package scene

import (
	"testing"

	"github.com/spaghettifunk/motion/engine/math"
	"github.com/spaghettifunk/motion/engine/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	object.Node
	ticks int
}

func newCounter() *counter {
	c := &counter{}
	c.Init(c, "Counter")
	return c
}

func (c *counter) Construct() {}

func (c *counter) Tick(dt float64) {
	c.ticks++
}

func TestSceneAddAndGet(t *testing.T) {
	s := NewScene(SceneAttributes{Name: "main"})
	a, b := newCounter(), newCounter()
	require.NoError(t, s.Add(map[string]object.Object{"b": b, "a": a}))

	assert.Equal(t, "main", s.Name())
	assert.Equal(t, []string{"a", "b"}, s.ChildNames())

	got := s.Get("b", "missing", "a")
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].Name)
	assert.Same(t, b, got[0].Object)
	assert.Nil(t, got[1].Object)
	assert.Same(t, a, got[2].Object)
}

func TestSceneTicksChildren(t *testing.T) {
	s := NewScene(SceneAttributes{})
	c := newCounter()
	require.NoError(t, s.AddChild("c", c))
	s.Build()

	s.Update(0.1)
	s.Update(0.1)
	assert.Equal(t, 2, c.ticks)
}

func TestSceneBuildsVectors(t *testing.T) {
	s := NewScene(SceneAttributes{})
	v := object.NewVector(object.VectorAttributes{CFrame: math.NewCFrame(math.NewVec3(0, 2, 0))})
	require.NoError(t, s.Add(map[string]object.Object{"v": v}))
	s.Build()
	s.Update(0.1)

	require.NotNil(t, v.Line())
	assert.InDelta(t, 2, v.Line().Adornment().Length, 1e-5)
}

type demo struct {
	SceneWithCamera
	built bool
}

func (d *demo) Construct() {
	d.built = true
}

func TestEmbeddedSceneOverridesConstruct(t *testing.T) {
	d := &demo{}
	d.InitScene(d, SceneAttributes{Name: "demo"})
	d.Build()
	assert.True(t, d.built)
}
