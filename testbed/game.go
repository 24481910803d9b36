package testbed

import (
	"github.com/spaghettifunk/motion/engine"
	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/renderer"
	"github.com/spaghettifunk/motion/engine/renderer/components"
	"github.com/spaghettifunk/motion/engine/systems"
)

type TestGame struct {
	*engine.Game
}

// CameraScene is a scene root that can be handed the default camera.
type CameraScene interface {
	systems.SceneRoot
	SetCamera(camera *components.Camera)
}

type gameState struct {
	scene  CameraScene
	layer  *renderer.Layer
	frames uint64
}

// NewTestGame runs the built-in demo scene.
func NewTestGame() *TestGame {
	return NewTestGameWithScene(NewDemoScene())
}

// NewTestGameWithScene runs s instead of the demo.
func NewTestGameWithScene(s CameraScene) *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			State: &gameState{scene: s},
		},
	}

	tg.FnBoot = tg.Boot
	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *TestGame) Boot() error {
	core.LogInfo("booting testbed...")
	state := g.state()

	state.layer = renderer.NewLayer("testbed")
	state.scene.AsNode().SetOutputTarget(state.layer)
	state.scene.SetCamera(g.SystemManager.CameraSystem.GetDefault())

	registry := g.SystemManager.Registry
	if err := registry.RegisterScene("demo", state.scene); err != nil {
		return err
	}
	return registry.RegisterTicker("demo", state.scene)
}

func (g *TestGame) Initialize() error {
	state := g.state()
	core.LogDebug("testbed scene %s has %d objects", state.scene.AsNode(), state.scene.AsNode().NumChildren())
	return nil
}

func (g *TestGame) Update(deltaTime float64) error {
	g.state().frames++
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogInfo("testbed ran %d frames", g.state().frames)
	return nil
}
