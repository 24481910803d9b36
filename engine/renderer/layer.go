package renderer

import (
	"sync/atomic"

	"github.com/spaghettifunk/motion/engine/core"
)

// Layer is the output target scene objects attach their adornments to. Only
// primitives attached to a live layer are drawn.
type Layer struct {
	name      string
	destroyed atomic.Bool
}

func NewLayer(name string) *Layer {
	return &Layer{name: name}
}

func (l *Layer) Name() string {
	return l.name
}

func (l *Layer) Destroy() {
	if l.destroyed.Swap(true) {
		return
	}
	core.LogDebug("layer %q destroyed", l.name)
}

func (l *Layer) Destroyed() bool {
	return l.destroyed.Load()
}
