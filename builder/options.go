// SPDX-License-Identifier: MIT
// Package: pathmap/builder
//
// options.go — functional options for constructor placement and randomness.
//
// Option constructors panic on meaningless input (nil RNG, non-positive or
// non-finite scale, non-finite origin) so misconfiguration fails at the call
// site rather than deep inside a constructor.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/pathmap/point"
)

// WithRand uses r for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.rng = r
	}
}

// WithSeed seeds a fresh math/rand source; same seed ⇒ same graph.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOrigin translates every generated point by o. Panics if o is not finite.
func WithOrigin(o point.Point) BuilderOption {
	if !o.IsFinite() {
		panic(fmt.Sprintf("builder: WithOrigin(%s): non-finite origin", o))
	}
	return func(cfg *builderConfig) {
		cfg.origin = o
	}
}

// WithScale multiplies unit coordinates by s. Panics unless s is finite and > 0.
func WithScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic(fmt.Sprintf("builder: WithScale(%g): scale must be finite and > 0", s))
	}
	return func(cfg *builderConfig) {
		cfg.scale = s
	}
}
