package testbed

import (
	stdmath "math"

	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/math"
	"github.com/spaghettifunk/motion/engine/object"
	"github.com/spaghettifunk/motion/engine/scene"
)

const orbitRadius float32 = 2.5

// DemoScene shows a set of axes with a vector orbiting the origin while the
// camera pans back and forth.
type DemoScene struct {
	scene.SceneWithCamera
	axes  *object.Axes
	orbit *object.Vector
	angle float64
	moved bool
}

func NewDemoScene() *DemoScene {
	s := &DemoScene{}
	s.InitScene(s, scene.SceneAttributes{Name: "demo", DestroyOnCompleted: true})
	return s
}

func (s *DemoScene) Construct() {
	s.axes = object.NewAxes(object.AxesAttributes{
		Sizes:  [3]float32{4, 3, 2},
		Colors: &[3]math.Color{math.Red, math.Green, math.Blue},
	})
	s.orbit = object.NewVector(object.VectorAttributes{
		CFrame: math.NewCFrame(math.NewVec3(orbitRadius, 0, 0)),
		Color:  core.Ptr(math.Yellow),
	})
	if err := s.AddChild("axes", s.axes); err != nil {
		core.LogError("demo: %s", err)
	}
	if err := s.AddChild("orbit", s.orbit); err != nil {
		core.LogError("demo: %s", err)
	}
}

func (s *DemoScene) Tick(dt float64) {
	s.angle += dt
	head := math.NewVec3(
		orbitRadius*float32(stdmath.Cos(s.angle)),
		orbitRadius*float32(stdmath.Sin(s.angle)),
		0,
	)
	if err := s.orbit.SetParam("CFrame", math.NewCFrame(head)); err != nil {
		core.LogError("demo: %s", err)
	}

	if !s.moved {
		s.moved = true
		target := math.NewCFrame(math.NewVec3(1, 1, 0))
		tween, err := s.MoveCameraTo(target, 2, scene.WithEasing(math.EasingSine, math.EasingInOut), scene.WithReverses())
		if err == nil {
			tween.Completed.Once(func() {
				core.LogInfo("demo: camera pan finished")
			})
		}
	}

	s.SceneWithCamera.Tick(dt)
}

func (s *DemoScene) Orbit() *object.Vector {
	return s.orbit
}
