package engine

import (
	"context"
	"errors"
	"fmt"
	stdmath "math"
	"time"

	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/math"
	"github.com/spaghettifunk/motion/engine/object"
	"github.com/spaghettifunk/motion/engine/renderer"
	"github.com/spaghettifunk/motion/engine/renderer/raster"
	"github.com/spaghettifunk/motion/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine has shut down and cannot be restarted
	EngineStageShutdown
)

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	config        *core.Config
	systemManager *systems.SystemManager
	renderer      *renderer.Renderer
	clock         *core.Clock
	metrics       *core.FrameMetrics
	lastTime      float64
	frameNumber   uint64
	elapsed       float64
	pending       chan *core.Config
}

type Option func(*Engine)

// WithBackend replaces the default raster backend.
func WithBackend(backend renderer.RendererBackend) Option {
	return func(e *Engine) {
		e.renderer = renderer.New(backend)
	}
}

// WithClock replaces the wall clock used by Run.
func WithClock(clock *core.Clock) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

func New(g *Game, config *core.Config, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("engine needs a game instance")
	}
	if config == nil {
		config = core.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	sm, err := systems.NewSystemManager(systems.SystemManagerConfig{
		Workers:      config.Render.Workers,
		JobQueueSize: config.Render.Workers * 2,
	})
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	g.SystemManager = sm

	e := &Engine{
		currentStage:  EngineStageUninitialized,
		gameInstance:  g,
		config:        config,
		systemManager: sm,
		clock:         core.NewClock(),
		metrics:       core.NewFrameMetrics(),
		pending:       make(chan *core.Config, 1),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.renderer == nil {
		background, err := math.ParseHex(config.Render.Background)
		if err != nil {
			core.LogWarn("invalid background %q, using black: %s", config.Render.Background, err)
			background = math.Black
		}
		e.renderer = renderer.New(raster.New(raster.Config{
			Scale:      float32(config.Render.Scale),
			Background: background,
			OutputDir:  config.Render.OutputDir,
		}, sm.JobSystem))
	}
	return e, nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) SystemManager() *systems.SystemManager {
	return e.systemManager
}

func (e *Engine) Metrics() *core.FrameMetrics {
	return e.metrics
}

func (e *Engine) FrameNumber() uint64 {
	return e.frameNumber
}

// Elapsed is the animation time stepped so far, in seconds.
func (e *Engine) Elapsed() float64 {
	return e.elapsed
}

// FrameCount is the number of frames needed to cover frame.duration at
// frame.rate, or zero when the duration is open-ended.
func (e *Engine) FrameCount() int {
	return int(stdmath.Ceil(e.config.Frame.Duration * e.config.Frame.Rate))
}

func (e *Engine) policy() object.Policy {
	return object.Policy{
		StrictEnable: e.config.Objects.StrictEnable,
		TrueMidpoint: e.config.Objects.TrueMidpoint,
	}
}

// Initialize boots the game, which registers its scenes and tickers, then
// constructs every registered scene in registration order.
func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("initialize: %w", core.ErrInvalidStage)
	}
	e.currentStage = EngineStageInitializing
	e.config.ApplyLogging()

	if err := e.renderer.Initialize(e.config.App.Name, uint32(e.config.Render.Width), uint32(e.config.Render.Height)); err != nil {
		return err
	}

	if e.gameInstance.FnBoot != nil {
		if err := e.gameInstance.FnBoot(); err != nil {
			core.LogError("game boot failed: %s", err)
			return err
		}
	}

	registry := e.systemManager.Registry
	policy := e.policy()
	for _, s := range registry.Scenes() {
		s.AsNode().SetPolicy(policy)
	}
	for _, t := range registry.Tickers() {
		t.AsNode().SetPolicy(policy)
	}
	for _, s := range registry.Scenes() {
		s.AsNode().Build()
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			core.LogError("game initialize failed: %s", err)
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	core.LogInfo("%s initialized with %d scene(s) and %d ticker(s)", e.config.App.Name, len(registry.Scenes()), len(registry.Tickers()))
	return nil
}

// Reconfigure queues a new configuration; it is picked up at the start of the
// next frame. Size, workers and output settings are fixed at creation.
func (e *Engine) Reconfigure(config *core.Config) {
	if config == nil {
		return
	}
	select {
	case <-e.pending:
	default:
	}
	e.pending <- config
}

func (e *Engine) applyPending() {
	select {
	case config := <-e.pending:
		e.config.Log = config.Log
		e.config.Frame = config.Frame
		e.config.Objects = config.Objects
		e.config.ApplyLogging()
		policy := e.policy()
		for _, s := range e.systemManager.Registry.Scenes() {
			s.AsNode().SetPolicy(policy)
		}
		for _, t := range e.systemManager.Registry.Tickers() {
			t.AsNode().SetPolicy(policy)
		}
		core.LogInfo("configuration reloaded")
	default:
	}
}

// Step advances every registered ticker by deltaTime seconds and renders one
// frame.
func (e *Engine) Step(deltaTime float64) error {
	if e.currentStage != EngineStageInitialized && e.currentStage != EngineStageRunning {
		return fmt.Errorf("step: %w", core.ErrInvalidStage)
	}
	if deltaTime < 0 {
		return fmt.Errorf("step(%v): %w", deltaTime, core.ErrNegativeDelta)
	}
	e.applyPending()

	registry := e.systemManager.Registry
	for _, t := range registry.Tickers() {
		t.AsNode().Update(deltaTime)
	}

	if e.gameInstance.FnUpdate != nil {
		if err := e.gameInstance.FnUpdate(deltaTime); err != nil {
			core.LogError("game update failed: %s", err)
			return err
		}
	}

	scenes := registry.Scenes()
	roots := make([]object.Object, 0, len(scenes))
	for _, s := range scenes {
		roots = append(roots, s)
	}
	packet := renderer.BuildPacket(e.frameNumber, deltaTime, e.systemManager.CameraSystem.GetDefault(), roots...)
	if err := e.renderer.DrawFrame(packet); err != nil {
		core.LogError("frame %d failed to render: %s", e.frameNumber, err)
		return err
	}

	e.frameNumber++
	e.elapsed += deltaTime
	return nil
}

// RenderFrames steps n frames at the fixed 1/frame.rate delta, calling
// onFrame after each one.
func (e *Engine) RenderFrames(n int, onFrame func(frame uint64)) error {
	for i := 0; i < n; i++ {
		if err := e.Step(1.0 / e.config.Frame.Rate); err != nil {
			return err
		}
		if onFrame != nil {
			onFrame(e.frameNumber)
		}
	}
	return nil
}

// Run steps the engine in real time until ctx is done or frame.duration
// seconds have been stepped.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("run: %w", core.ErrInvalidStage)
	}
	e.currentStage = EngineStageRunning
	defer func() {
		if e.currentStage == EngineStageRunning {
			e.currentStage = EngineStageInitialized
		}
	}()

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	targetFrameSeconds := 1.0 / e.config.Frame.Rate
	ticker := time.NewTicker(time.Duration(targetFrameSeconds * float64(time.Second)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			core.LogInfo("run cancelled after %d frames", e.frameNumber)
			return nil
		case <-ticker.C:
		}

		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime

		if err := e.Step(delta); err != nil {
			return err
		}
		e.metrics.Update(delta)
		e.lastTime = currentTime

		if e.frameNumber%uint64(stdmath.Max(1, e.config.Frame.Rate)) == 0 {
			fps, ms := e.metrics.Frame()
			core.LogDebug("frame %d: %.1f fps, %.2f ms", e.frameNumber, fps, ms)
		}
		if e.config.Frame.Duration > 0 && e.elapsed >= e.config.Frame.Duration {
			return nil
		}
	}
}

// Shutdown destroys the scenes that asked for it and stops every system. It
// waits for pending frame writes and reports their failures.
func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShutdown || e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown

	var errs []error
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, s := range e.systemManager.Registry.Scenes() {
		if !s.DestroyOnCompleted() || s.AsNode().State() != object.StateLive {
			continue
		}
		if err := s.Destroy(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := e.renderer.Shutdown(); err != nil {
		errs = append(errs, err)
	}
	if err := e.systemManager.Shutdown(); err != nil {
		errs = append(errs, err)
	}

	e.currentStage = EngineStageShutdown
	core.LogInfo("%s shut down after %d frames", e.config.App.Name, e.frameNumber)
	return errors.Join(errs...)
}
