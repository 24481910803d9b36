package testbed

import (
	"testing"

	"github.com/spaghettifunk/motion/engine"
	"github.com/spaghettifunk/motion/engine/assets"
	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestGameRuns(t *testing.T) {
	config := core.DefaultConfig()
	config.Render.Width = 64
	config.Render.Height = 64
	config.Render.OutputDir = ""
	config.Frame.Rate = 10
	config.Frame.Duration = 1

	game := NewTestGame()
	e, err := engine.New(game.Game, config)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())

	demo := game.state().scene.(*DemoScene)
	require.NotNil(t, demo.Orbit())
	assert.Equal(t, []string{"axes", "orbit"}, demo.ChildNames())

	require.NoError(t, e.RenderFrames(e.FrameCount(), nil))
	assert.Equal(t, uint64(10), game.state().frames)
	assert.InDelta(t, 2.5, demo.Orbit().Length(), 1e-4)
	assert.True(t, demo.CameraTweenPlaying())

	require.NoError(t, e.Shutdown())
	assert.Equal(t, object.StateDestroyed, demo.State())
	assert.True(t, game.state().layer.Destroyed())
}

func TestTestGameWithDescribedScene(t *testing.T) {
	desc := &assets.SceneDescription{
		Name: "described",
		Objects: []assets.ObjectDescription{
			{Name: "arrow", Kind: assets.KindVector, Position: [3]float32{0, 2, 0}},
		},
		Camera: &assets.CameraMove{To: [3]float32{1, 0, 0}, Duration: 0.5},
	}
	described, err := desc.Build()
	require.NoError(t, err)

	config := core.DefaultConfig()
	config.Render.Width = 32
	config.Render.Height = 32
	config.Render.OutputDir = ""
	game := NewTestGameWithScene(described)
	e, err := engine.New(game.Game, config)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.RenderFrames(30, nil))

	camera := e.SystemManager().CameraSystem.GetDefault()
	assert.InDelta(t, 1, camera.GetPosition().X, 1e-4)
	require.NoError(t, e.Shutdown())
}
