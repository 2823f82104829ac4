package scene

import "errors"

var (
	ErrInvalidPrimitiveGeometry = errors.New("scene: invalid primitive geometry")
	ErrUnknownShape             = errors.New("scene: unknown primitive shape")
)
