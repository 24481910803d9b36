package scene

import (
	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/math"
	"github.com/spaghettifunk/motion/engine/renderer/components"
)

type TweenState uint8

const (
	TweenPlaying TweenState = iota
	TweenPaused
	TweenCompleted
	TweenCancelled
)

func (s TweenState) String() string {
	switch s {
	case TweenPlaying:
		return "playing"
	case TweenPaused:
		return "paused"
	case TweenCompleted:
		return "completed"
	case TweenCancelled:
		return "cancelled"
	}
	return "unknown"
}

type TweenInfo struct {
	// Time is the length of one leg in seconds.
	Time            float64
	EasingStyle     math.EasingStyle
	EasingDirection math.EasingDirection
	// RepeatCount is the number of extra runs after the first.
	RepeatCount int
	// Reverses plays every run forward then backward.
	Reverses  bool
	DelayTime float64
}

// legs is the number of Time-long segments the tween plays.
func (i TweenInfo) legs() int {
	n := i.RepeatCount + 1
	if n < 1 {
		n = 1
	}
	if i.Reverses {
		n *= 2
	}
	return n
}

// CameraProperties are applied to the camera when the tween completes.
type CameraProperties struct {
	FieldOfView *float32
	Focus       *math.Vec3
}

type TweenOption func(*Tween)

func WithEasing(style math.EasingStyle, direction math.EasingDirection) TweenOption {
	return func(t *Tween) {
		t.info.EasingStyle = style
		t.info.EasingDirection = direction
	}
}

func WithRepeat(count int) TweenOption {
	return func(t *Tween) {
		t.info.RepeatCount = count
	}
}

func WithReverses() TweenOption {
	return func(t *Tween) {
		t.info.Reverses = true
	}
}

func WithDelay(seconds float64) TweenOption {
	return func(t *Tween) {
		t.info.DelayTime = seconds
	}
}

func WithProperties(props CameraProperties) TweenOption {
	return func(t *Tween) {
		t.props = props
	}
}

// Tween moves a camera from its CFrame at creation to a target CFrame. It is
// advanced by the owning scene's Tick.
type Tween struct {
	info    TweenInfo
	camera  *components.Camera
	start   math.CFrame
	target  math.CFrame
	props   CameraProperties
	elapsed float64
	state   TweenState
	release func()

	// Completed fires once when the tween runs to its end. Cancelled tweens
	// never fire it.
	Completed core.Signal
}

func newTween(camera *components.Camera, target math.CFrame, duration float64, opts ...TweenOption) *Tween {
	if duration < 0 {
		duration = 0
	}
	t := &Tween{
		info: TweenInfo{
			Time:            duration,
			EasingStyle:     math.EasingLinear,
			EasingDirection: math.EasingOut,
		},
		camera: camera,
		start:  camera.GetCFrame(),
		target: target,
		state:  TweenPlaying,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tween) Info() TweenInfo {
	return t.info
}

func (t *Tween) State() TweenState {
	return t.state
}

func (t *Tween) Elapsed() float64 {
	return t.elapsed
}

func (t *Tween) Duration() float64 {
	return t.info.DelayTime + t.info.Time*float64(t.info.legs())
}

func (t *Tween) Pause() {
	if t.state == TweenPlaying {
		t.state = TweenPaused
	}
}

// Play resumes a paused tween.
func (t *Tween) Play() {
	if t.state == TweenPaused {
		t.state = TweenPlaying
	}
}

// Cancel stops the tween and puts the camera back where it started.
func (t *Tween) Cancel() {
	if t.state != TweenPlaying && t.state != TweenPaused {
		return
	}
	t.camera.SetCFrame(t.start)
	t.state = TweenCancelled
	t.finish()
}

func (t *Tween) finish() {
	if t.release != nil {
		t.release()
		t.release = nil
	}
}

func (t *Tween) advance(dt float64) {
	if t.state != TweenPlaying {
		return
	}
	t.elapsed += dt
	local := t.elapsed - t.info.DelayTime
	if local < 0 {
		return
	}

	legs := t.info.legs()
	if t.info.Time <= 0 || local >= t.info.Time*float64(legs) {
		t.complete()
		return
	}

	leg := int(local / t.info.Time)
	alpha := (local - float64(leg)*t.info.Time) / t.info.Time
	if t.info.Reverses && leg%2 == 1 {
		alpha = 1 - alpha
	}
	eased := math.Ease(t.info.EasingStyle, t.info.EasingDirection, alpha)
	t.camera.SetCFrame(t.start.Lerp(t.target, float32(eased)))
}

func (t *Tween) complete() {
	final := t.target
	if t.info.Reverses {
		final = t.start
	}
	t.camera.SetCFrame(final)
	if t.props.FieldOfView != nil {
		t.camera.FieldOfView = *t.props.FieldOfView
	}
	if t.props.Focus != nil {
		t.camera.Focus = *t.props.Focus
	}
	t.state = TweenCompleted
	t.finish()
	t.Completed.Fire()
}
