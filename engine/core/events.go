package core

import "sync"

// FnOnEvent is invoked every time a Signal fires.
type FnOnEvent func()

type registeredEvent struct {
	id       uint64
	callback FnOnEvent
	once     bool
}

// Signal is a list of listeners notified, in registration order, when Fire is
// called. Listeners registered with Once are dropped after their first call.
type Signal struct {
	mu     sync.Mutex
	nextID uint64
	events []*registeredEvent
}

// Connection identifies one listener registered on a Signal.
type Connection struct {
	signal *Signal
	id     uint64
}

// Connect registers a listener called on every Fire.
func (s *Signal) Connect(callback FnOnEvent) *Connection {
	return s.register(callback, false)
}

// Once registers a listener called on the next Fire only.
func (s *Signal) Once(callback FnOnEvent) *Connection {
	return s.register(callback, true)
}

func (s *Signal) register(callback FnOnEvent, once bool) *Connection {
	if callback == nil {
		return &Connection{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.events = append(s.events, &registeredEvent{
		id:       s.nextID,
		callback: callback,
		once:     once,
	})
	return &Connection{signal: s, id: s.nextID}
}

// Disconnect removes the listener. Returns false if it was already gone.
func (c *Connection) Disconnect() bool {
	if c == nil || c.signal == nil {
		return false
	}
	return c.signal.unregister(c.id)
}

func (s *Signal) unregister(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.events {
		if e.id == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return true
		}
	}
	return false
}

// Fire notifies every listener. Callbacks run outside the lock so they may
// connect or disconnect listeners themselves.
func (s *Signal) Fire() {
	s.mu.Lock()
	pending := make([]*registeredEvent, len(s.events))
	copy(pending, s.events)
	kept := s.events[:0]
	for _, e := range s.events {
		if !e.once {
			kept = append(kept, e)
		}
	}
	s.events = kept
	s.mu.Unlock()

	for _, e := range pending {
		e.callback()
	}
}

// Len reports how many listeners are registered.
func (s *Signal) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
