package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalConnectAndOnce(t *testing.T) {
	var s Signal
	var every, once int
	s.Connect(func() { every++ })
	s.Once(func() { once++ })

	s.Fire()
	s.Fire()

	assert.Equal(t, 2, every)
	assert.Equal(t, 1, once)
	assert.Equal(t, 1, s.Len())
}

func TestSignalDisconnect(t *testing.T) {
	var s Signal
	calls := 0
	c := s.Connect(func() { calls++ })
	assert.True(t, c.Disconnect())
	assert.False(t, c.Disconnect())

	s.Fire()
	assert.Zero(t, calls)
}

func TestSignalListenerMayConnectWhileFiring(t *testing.T) {
	var s Signal
	inner := 0
	s.Once(func() {
		s.Once(func() { inner++ })
	})
	s.Fire()
	assert.Zero(t, inner)
	s.Fire()
	assert.Equal(t, 1, inner)
}
