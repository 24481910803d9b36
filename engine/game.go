package engine

import (
	"github.com/spaghettifunk/motion/engine/systems"
)

// Game is the composition root the engine drives. FnBoot registers the scenes
// and tickers; the remaining callbacks are optional.
type Game struct {
	SystemManager *systems.SystemManager
	State         interface{}
	FnBoot        Boot
	FnInitialize  Initialize
	FnUpdate      Update
	FnShutdown    Shutdown
}

type Boot func() error
type Initialize func() error
type Update func(deltaTime float64) error
type Shutdown func() error
