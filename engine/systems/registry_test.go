package systems

import (
	"testing"

	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/object"
	"github.com/spaghettifunk/motion/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterScenesInOrder(t *testing.T) {
	r := NewRegistry()
	first := scene.NewScene(scene.SceneAttributes{Name: "first"})
	second := scene.NewScene(scene.SceneAttributes{Name: "second"})

	require.NoError(t, r.RegisterScene("b", first))
	require.NoError(t, r.RegisterScene("a", second))
	assert.Equal(t, []string{"b", "a"}, r.SceneNames())

	got, ok := r.Scene("a")
	require.True(t, ok)
	assert.Same(t, second, got)

	assert.True(t, r.RemoveScene("b"))
	assert.Equal(t, []string{"a"}, r.SceneNames())
}

func TestRegisterRejectsMisuse(t *testing.T) {
	r := NewRegistry()
	s := scene.NewScene(scene.SceneAttributes{})

	assert.ErrorIs(t, r.RegisterScene("", s), core.ErrInvalidRegistration)
	assert.ErrorIs(t, r.RegisterScene("x", nil), core.ErrInvalidRegistration)
	assert.ErrorIs(t, r.RegisterTicker("x", nil), core.ErrInvalidRegistration)
	assert.ErrorIs(t, r.RegisterScene("typed", (*scene.Scene)(nil)), core.ErrInvalidRegistration)
	assert.ErrorIs(t, r.RegisterTicker("typed", (*object.Vector)(nil)), core.ErrInvalidRegistration)
	assert.ErrorIs(t, r.RegisterTicker("", (*scene.SceneWithCamera)(nil)), core.ErrInvalidRegistration)
	assert.Empty(t, r.SceneNames())
	assert.Empty(t, r.Tickers())

	require.NoError(t, r.RegisterScene("x", s))
	assert.ErrorIs(t, r.RegisterScene("x", s), core.ErrDuplicateRegistration)
	assert.Len(t, r.Scenes(), 1)
}

func TestRegisterTickerDefaultsToID(t *testing.T) {
	r := NewRegistry()
	v := object.NewVector(object.VectorAttributes{})

	require.NoError(t, r.RegisterTicker("", v))
	got, ok := r.Ticker(v.ID())
	require.True(t, ok)
	assert.Same(t, v, got)
	assert.ErrorIs(t, r.RegisterTicker(v.ID(), v), core.ErrDuplicateRegistration)
}

func TestDisable(t *testing.T) {
	r := NewRegistry()
	s := scene.NewScene(scene.SceneAttributes{})
	r.Disable(s)
	r.Disable(nil)
	assert.False(t, s.IsEnabled())
}
