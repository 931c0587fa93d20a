package treecheck

import "errors"

// Sentinel errors for tree verification.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("treecheck: graph is nil")

	// ErrRootOutOfRange is returned when the root index is outside [0, Order).
	ErrRootOutOfRange = errors.New("treecheck: root vertex out of range")
)
