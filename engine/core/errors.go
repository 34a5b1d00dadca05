package core

import (
	"errors"
)

var (
	ErrZeroUpVector      = errors.New("reference up vector has zero length")
	ErrZeroLookDirection = errors.New("eye and target coincide")
	ErrParallelUpVector  = errors.New("look direction is parallel to the reference up vector")

	ErrCameraNotFound     = errors.New("camera not found")
	ErrCameraLimitReached = errors.New("camera limit reached")
	ErrRigFormat          = errors.New("unsupported camera rig format")
	ErrRigInvalid         = errors.New("invalid camera rig")
	ErrUnknown            = errors.New("unknown")
)
