package core

import (
	"errors"
)

var (
	ErrAlreadyDestroyed      = errors.New("object already destroyed")
	ErrNotConstructed        = errors.New("object not constructed yet")
	ErrCyclicChild           = errors.New("child is the object itself or one of its ancestors")
	ErrUnknownParam          = errors.New("unknown attribute")
	ErrParamType             = errors.New("attribute value has the wrong type")
	ErrUnknownProperty       = errors.New("unknown native property")
	ErrPropertyType          = errors.New("native property value has the wrong type")
	ErrNoCamera              = errors.New("camera does not exist")
	ErrTweenInFlight         = errors.New("a camera tween is already in flight")
	ErrInvalidRegistration   = errors.New("invalid registration")
	ErrDuplicateRegistration = errors.New("name already registered")
	ErrNegativeDelta         = errors.New("delta time must not be negative")
	ErrInvalidStage          = errors.New("operation not allowed in the current engine stage")
)
