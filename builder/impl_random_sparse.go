// SPDX-License-Identifier: MIT
// Package: pathmap/builder
//
// impl_random_sparse.go — implementation of RandomSparse(n, p), a random
// geometric graph in the cube [0, scale)³ around origin.
//
// Contract:
//   • n ≥ MinRandomNodes (else ErrTooFewVertices).
//   • p ∈ [0,1] (else ErrInvalidProbability).
//   • cfg.rng is required (else ErrNeedRandSource); positions are random.
//   • All n positions are drawn first (X, Y, Z per vertex), then each pair
//     (i<j) is tested in lexicographic order with one Float64() < p draw.
//     p=0 and p=1 skip the draws.
//
// Complexity: O(n²) pair trials.
//
// Determinism:
//   • Same seed ⇒ same positions and edges.

package builder

import (
	"github.com/katalvlaran/pathmap/core"
	"github.com/katalvlaran/pathmap/point"
)

// RandomSparse returns a Constructor that scatters n points and connects
// each pair independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandomSparse, ErrNeedRandSource, "n=%d", n)
		}

		pts := make([]point.Point, n)
		for i := range pts {
			pts[i] = cfg.at(cfg.rng.Float64(), cfg.rng.Float64(), cfg.rng.Float64())
		}

		var edges [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == MinProbability:
				case p == MaxProbability:
					edges = append(edges, [2]int{i, j})
				case cfg.rng.Float64() < p:
					edges = append(edges, [2]int{i, j})
				}
			}
		}

		return emit(MethodRandomSparse, b, pts, edges)
	}
}
