package core

import "github.com/google/uuid"

// NewID returns a fresh identifier for a scene object.
func NewID() string {
	return uuid.NewString()
}

// ShortID trims an identifier for log lines.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
