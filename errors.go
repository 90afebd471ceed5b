// Package lbm implements a two-dimensional lattice-Boltzmann fluid solver
// on a D2Q9 velocity set, together with the family of streaming engines,
// boundary treatments and parallel-strip framework described in the
// project documentation.
package lbm

import (
	"errors"
	"fmt"
)

// Configuration errors are detected at setup, before any step runs, and
// are always fatal: the caller receives a wrapped sentinel and aborts.
var (
	ErrUnknownAlgorithm = errors.New("lbm: unknown algorithm")
	ErrUnknownLayout    = errors.New("lbm: unknown access pattern")
	ErrUnknownPolicy    = errors.New("lbm: unknown inlet/outlet policy")
	ErrGridTooSmall     = errors.New("lbm: grid dimensions below 3x3")
	ErrStripGeometry    = errors.New("lbm: subdomain geometry does not partition the interior exactly")
	ErrShiftOffset      = errors.New("lbm: shift offset must equal W+1")
	ErrNegativeTau      = errors.New("lbm: relaxation time must be positive")
)

// Invariant violations are only checked when debug assertions are enabled
// (Config.DebugMode); they indicate a bug in setup rather than bad input.
var (
	ErrEmptyAdjacencyEntry = errors.New("lbm: adjacency entry has zero directions")
	ErrNeighborOutOfRange  = errors.New("lbm: neighbor index outside allocated array")
	ErrNotABufferRow       = errors.New("lbm: buffer exchange addressed a non-buffer row")
)

// ConfigError wraps one of the Err* configuration sentinels above with the
// offending value, so callers can both pattern-match with errors.Is and
// print a precise message.
type ConfigError struct {
	Err   error
	Field string
	Value interface{}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v (%s=%v)", e.Err, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfigError builds a ConfigError for field/value, wrapping sentinel.
func NewConfigError(sentinel error, field string, value interface{}) *ConfigError {
	return &ConfigError{Err: sentinel, Field: field, Value: value}
}

// InvariantError wraps one of the Err* invariant-violation sentinels with
// the node/direction that triggered it.
type InvariantError struct {
	Err  error
	Node int
	Dir  int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v (node=%d dir=%d)", e.Err, e.Node, e.Dir)
}

func (e *InvariantError) Unwrap() error { return e.Err }

// NewInvariantError builds an InvariantError for a node/direction pair.
func NewInvariantError(sentinel error, node, dir int) *InvariantError {
	return &InvariantError{Err: sentinel, Node: node, Dir: dir}
}
