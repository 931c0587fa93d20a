// Package core defines the Digraph type, its Weight constraint, and the
// sentinel errors shared by every graph operation.
//
// This file declares Weight, Digraph, sentinel errors, the New constructor,
// and the Infinity sentinel helpers.
//
// Errors:
//
//	ErrNegativeOrder     - vertex count passed to a constructor is negative.
//	ErrVertexRange       - vertex index outside [0, Order).
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrSourceUnavailable - edge-list source could not be opened.
package core

import (
	"errors"
	"math"
	"reflect"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeOrder indicates a constructor received a vertex count < 0.
	ErrNegativeOrder = errors.New("core: vertex count must be non-negative")

	// ErrVertexRange indicates an operation referenced a vertex index
	// outside [0, Order).
	ErrVertexRange = errors.New("core: vertex index out of range")

	// ErrEdgeNotFound indicates a weight lookup referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSourceUnavailable indicates an edge-list source could not be opened.
	ErrSourceUnavailable = errors.New("core: edge-list source unavailable")
)

// Weight constrains the edge-weight parameter of Digraph to the built-in
// numeric kinds (and types derived from them).
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Digraph is a weighted directed graph over vertices 0..Order()-1.
//
// Each ordered pair (u,v) holds at most one weight; AddEdge replaces the
// stored weight on a duplicate pair. The vertex count is fixed at
// construction; only edges are mutable.
type Digraph[W Weight] struct {
	// adj[u] maps target vertex -> weight of the edge u->target.
	// A nil inner map means u has no outgoing edges.
	adj []map[int]W
}

// New creates a Digraph with order vertices and no edges.
// Returns ErrNegativeOrder if order < 0.
// Complexity: O(order)
func New[W Weight](order int) (*Digraph[W], error) {
	if order < 0 {
		return nil, ErrNegativeOrder
	}

	return &Digraph[W]{adj: make([]map[int]W, order)}, nil
}

// Infinity returns the sentinel meaning "no finite distance known" for W:
// positive infinity for float kinds, the maximum representable value for
// integer kinds.
func Infinity[W Weight]() W {
	var w W
	rv := reflect.ValueOf(&w).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(math.Inf(1))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		rv.SetUint(^uint64(0) >> (64 - rv.Type().Bits()))
	default: // signed integer kinds
		rv.SetInt(int64(^uint64(0) >> (65 - rv.Type().Bits())))
	}

	return w
}

// fromFloat converts a parsed float64 token to W, truncating toward zero for
// integer kinds. Mirrors the loader's "weight parsed as floating point, cast
// to W" contract.
func fromFloat[W Weight](f float64) W {
	var w W
	rv := reflect.ValueOf(&w).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(f)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		rv.SetUint(uint64(f))
	default:
		rv.SetInt(int64(f))
	}

	return w
}
