package scene

import (
	"fmt"

	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/math"
	"github.com/spaghettifunk/motion/engine/object"
	"github.com/spaghettifunk/motion/engine/renderer/components"
)

// SceneWithCamera is a Scene that can animate a camera. At most one camera
// tween is in flight at a time. Types embedding it and overriding Tick must
// call SceneWithCamera.Tick to keep the tween running.
type SceneWithCamera struct {
	Scene
	camera *components.Camera
	tween  *Tween
}

func NewSceneWithCamera(params SceneAttributes) *SceneWithCamera {
	s := &SceneWithCamera{}
	s.InitScene(s, params)
	return s
}

func (s *SceneWithCamera) SetCamera(camera *components.Camera) {
	s.camera = camera
}

func (s *SceneWithCamera) Camera() *components.Camera {
	return s.camera
}

// CameraTweenPlaying reports whether a camera tween is in flight, paused ones
// included.
func (s *SceneWithCamera) CameraTweenPlaying() bool {
	return s.tween != nil
}

// CameraTween returns the tween in flight, or nil.
func (s *SceneWithCamera) CameraTween() *Tween {
	return s.tween
}

// MoveCameraTo starts tweening the camera to target over duration seconds. It
// fails if the scene is destroyed, a tween is already in flight or no camera
// is set.
func (s *SceneWithCamera) MoveCameraTo(target math.CFrame, duration float64, opts ...TweenOption) (*Tween, error) {
	if s.State() != object.StateLive {
		core.LogWarn("%s.MoveCameraTo(): %s", s, core.ErrAlreadyDestroyed)
		return nil, fmt.Errorf("%s: %w", s, core.ErrAlreadyDestroyed)
	}
	if s.camera == nil {
		core.LogWarn("%s.MoveCameraTo(): %s", s, core.ErrNoCamera)
		return nil, fmt.Errorf("%s: %w", s, core.ErrNoCamera)
	}
	if s.tween != nil {
		core.LogWarn("%s.MoveCameraTo(): %s", s, core.ErrTweenInFlight)
		return nil, fmt.Errorf("%s: %w", s, core.ErrTweenInFlight)
	}

	t := newTween(s.camera, target, duration, opts...)
	t.release = func() {
		if s.tween == t {
			s.tween = nil
		}
	}
	s.tween = t
	core.LogDebug("%s.MoveCameraTo(): tweening camera to %v over %.2fs", s, target.Position, duration)
	return t, nil
}

func (s *SceneWithCamera) Tick(dt float64) {
	if s.tween != nil {
		s.tween.advance(dt)
	}
	s.TickChildren(dt)
}

// Destroy cancels any camera tween before tearing the scene down.
func (s *SceneWithCamera) Destroy() error {
	if s.tween != nil && s.State() == object.StateLive {
		s.tween.Cancel()
	}
	return s.Scene.Destroy()
}
