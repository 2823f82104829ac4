package input

import "errors"

var (
	ErrUnknownObjectType = errors.New("input: unknown object type")
	ErrEmptyScene        = errors.New("input: scene defines no objects")
)
