// SPDX-License-Identifier: MIT
// Package: pathmap/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with %w, prefixed by the method name.
//   • Constructors never panic; option constructors do (see options.go).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, ...) is
// smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownSolid indicates an unsupported PlatonicName.
var ErrUnknownSolid = errors.New("builder: unknown platonic solid")

// ErrConstructFailed indicates that core.Builder rejected a vertex or edge
// emitted by a constructor, or that a nil constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf formats "<method>: <message>: <sentinel>" keeping the
// sentinel reachable through errors.Is.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
