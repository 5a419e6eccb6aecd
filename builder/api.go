// SPDX-License-Identifier: MIT
// Package: pathmap/builder
//
// api.go — Constructor contract and the BuildGraph orchestrator.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathmap/core"
)

// Constructor adds one topology to b using the resolved configuration.
//
// Contract:
//   - Validate parameters first; return a wrapped sentinel without touching b.
//   - Register every vertex before connecting any of them.
//   - Report core.Builder failures through ErrConstructFailed.
type Constructor func(b *core.Builder, cfg builderConfig) error

// Apply runs cons in order on an existing core.Builder.
// It stops at the first failing constructor.
func Apply(b *core.Builder, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	for i, c := range cons {
		if c == nil {
			return fmt.Errorf("builder: constructor #%d is nil: %w", i, ErrConstructFailed)
		}
		if err := c(b, cfg); err != nil {
			return err
		}
	}

	return nil
}

// BuildGraph creates a core.Builder with gopts, applies cons and builds.
//
// Example:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithScale(2)},
//		builder.Grid(3, 4))
func BuildGraph(gopts []core.Option, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b := core.NewBuilder(gopts...)
	if err := Apply(b, bopts, cons...); err != nil {
		return nil, err
	}

	return b.Build()
}

// checkBuilder converts a sticky core.Builder error into ErrConstructFailed.
func checkBuilder(method string, b *core.Builder) error {
	if err := b.Err(); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}
