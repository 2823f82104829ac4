package bvh

import "errors"

var (
	ErrNoPrimitives        = errors.New("bvh: no primitives to partition")
	ErrMalformedHierarchy  = errors.New("bvh: malformed linear node list")
	ErrPrimitiveOutOfRange = errors.New("bvh: leaf references primitive outside the primitive list")
)
