// SPDX-License-Identifier: MIT
// Package: pathmap/builder
//
// impl_grid.go — implementation of Grid(rows, cols) and Lattice(nx, ny, nz).
//
// Canonical model:
//   • Grid: planar orthogonal grid with 4-neighborhood; cell (r,c) sits at
//     origin + scale·(c, r, 0).
//   • Lattice: cubic lattice with 6-neighborhood; cell (x,y,z) sits at
//     origin + scale·(x, y, z).
//
// Contract:
//   • Every dimension ≥ MinGridDim (else ErrTooFewVertices).
//   • Grid vertices are added row-major (r asc, then c asc); Lattice vertices
//     z-major, then y, then x.
//   • For each cell, edges go to the +X neighbor, then +Y, then +Z.
//
// Complexity: O(cells) vertices and edges.

package builder

import (
	"github.com/katalvlaran/pathmap/core"
	"github.com/katalvlaran/pathmap/point"
)

// Grid returns a Constructor that builds a rows×cols grid in the XY plane.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		pts, edges := lattice(cfg, cols, rows, 1)

		return emit(MethodGrid, b, pts, edges)
	}
}

// Lattice returns a Constructor that builds an nx×ny×nz cubic lattice.
func Lattice(nx, ny, nz int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		for _, d := range []struct {
			name string
			n    int
		}{{"nx", nx}, {"ny", ny}, {"nz", nz}} {
			if err := validateMin(MethodLattice, d.name, d.n, MinGridDim); err != nil {
				return err
			}
		}

		pts, edges := lattice(cfg, nx, ny, nz)

		return emit(MethodLattice, b, pts, edges)
	}
}

// lattice lays out nx·ny·nz cells; cell (x,y,z) has index (z·ny + y)·nx + x.
func lattice(cfg builderConfig, nx, ny, nz int) ([]point.Point, [][2]int) {
	idx := func(x, y, z int) int { return (z*ny+y)*nx + x }

	pts := make([]point.Point, 0, nx*ny*nz)
	var edges [][2]int
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				pts = append(pts, cfg.at(float64(x), float64(y), float64(z)))
				u := idx(x, y, z)
				if x+1 < nx {
					edges = append(edges, [2]int{u, idx(x+1, y, z)})
				}
				if y+1 < ny {
					edges = append(edges, [2]int{u, idx(x, y+1, z)})
				}
				if z+1 < nz {
					edges = append(edges, [2]int{u, idx(x, y, z+1)})
				}
			}
		}
	}

	return pts, edges
}
