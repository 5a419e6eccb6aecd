// SPDX-License-Identifier: MIT
// Package: pathmap/builder
//
// config.go — internal configuration shared by all constructors.
//
// Contract:
//   • newBuilderConfig applies options in order; the last one wins.
//   • Defaults: no RNG, origin (0,0,0), scale DefaultScale.
//   • Option constructors validate their input; builderConfig never does.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathmap/point"
)

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// builderConfig holds the knobs every constructor reads.
type builderConfig struct {
	rng    *rand.Rand  // RNG for stochastic constructors; nil ⇒ deterministic only
	origin point.Point // translation applied to every generated point
	scale  float64     // multiplier applied to unit coordinates
}

// newBuilderConfig returns defaults overlaid by opts.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		origin: point.Point{},
		scale:  DefaultScale,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// at maps unit coordinates to the configured placement:
// origin + scale·(x, y, z).
func (cfg builderConfig) at(x, y, z float64) point.Point {
	return point.New(
		cfg.origin.X+cfg.scale*x,
		cfg.origin.Y+cfg.scale*y,
		cfg.origin.Z+cfg.scale*z,
	)
}
