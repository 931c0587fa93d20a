package spath

import "errors"

// Sentinel errors returned by the spath algorithms.
var (
	// ErrNilGraph indicates that a nil graph pointer was passed.
	ErrNilGraph = errors.New("spath: graph is nil")

	// ErrRootOutOfRange indicates the root/source index is outside [0, Order).
	ErrRootOutOfRange = errors.New("spath: root vertex out of range")

	// ErrNegativeWeight indicates a negative edge weight was detected;
	// Dijkstra requires non-negative weights.
	ErrNegativeWeight = errors.New("spath: negative edge weight encountered")

	// ErrDistanceLength indicates a candidate distance vector whose length
	// does not equal the graph's vertex count.
	ErrDistanceLength = errors.New("spath: distance vector length mismatch")
)

// NoPredecessor is the prev-slice entry for the source itself and for
// vertices Dijkstra never reached.
const NoPredecessor = -1
