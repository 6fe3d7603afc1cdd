// SPDX-License-Identifier: MIT
// Package: hedgegraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal lattice with one quad face per cell.
//   • Vertex IDs use a fixed, documented scheme "r,c" (row-major order).
//     This is a deliberate exception to cfg.idFn to keep coordinates explicit.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Mints vertices in row-major order.
//   • rows ≥ 2 and cols ≥ 2: emits cell faces (r,c) → (r,c+1) → (r+1,c+1) → (r+1,c)
//     in row-major cell order; the edges are implied.
//   • A single row or column degenerates to a path of edges.
//   • WithOuterFace (rows, cols ≥ 2) adds the boundary loop walked the other
//     way: down the first column, along the last row, up the last column and
//     back along the first row.
//
// Complexity:
//   • Time: O(rows*cols) vertices and faces; every vertex has degree ≤ 4.
//   • Space: O(rows*cols) for the ID table.

package builder

// Grid returns a Constructor that builds a rows×cols quad lattice.
func Grid(rows, cols int) Constructor {
	return func(t *Target, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if err := validateMin(MethodGrid, rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, cols, MinGridDim); err != nil {
			return err
		}

		// 2) Mint all vertices in deterministic row-major order with IDs "r,c".
		id := make([][]string, rows)
		for r := range id {
			id[r] = make([]string, cols)
			for c := range id[r] {
				id[r][c] = gridVertexID(r, c)
				t.vertex(id[r][c])
			}
		}

		// 3) Degenerate strip: a path.
		if rows == 1 || cols == 1 {
			var prev string
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					if prev != "" {
						if err := t.edge(MethodGrid, cfg, prev, id[r][c]); err != nil {
							return err
						}
					}
					prev = id[r][c]
				}
			}

			return nil
		}

		// 4) One face per cell.
		for r := 0; r+1 < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				if err := t.face(MethodGrid, cfg, id[r][c], id[r][c+1], id[r+1][c+1], id[r+1][c]); err != nil {
					return err
				}
			}
		}
		if !cfg.outerFace {
			return nil
		}

		// 5) Boundary face.
		outer := make([]string, 0, 2*(rows+cols)-4)
		for r := 0; r < rows; r++ {
			outer = append(outer, id[r][0])
		}
		for c := 1; c < cols; c++ {
			outer = append(outer, id[rows-1][c])
		}
		for r := rows - 2; r >= 0; r-- {
			outer = append(outer, id[r][cols-1])
		}
		for c := cols - 2; c > 0; c-- {
			outer = append(outer, id[0][c])
		}

		return t.face(MethodGrid, cfg, outer...)
	}
}
