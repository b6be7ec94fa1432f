// Package htmltable locates table markup in HTML text and turns each table
// into a rectangular grid of cell strings.
package htmltable

import "fmt"

// Grid is one extracted table: rows of whitespace-normalized cell text.
// Grids leaving Extract are rectangular; every row has the width of the
// widest source row, short rows padded with empty strings.
type Grid [][]string

// RowCount returns the number of rows in the grid.
func (g Grid) RowCount() int { return len(g) }

// Width returns the number of columns. Grids are rectangular, so this is
// the length of any row.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// IndexError reports a table index outside the range of extracted tables.
type IndexError struct {
	Requested int
	Found     int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("table index %d out of range: file contains %d table(s)", e.Requested, e.Found)
}

// Select returns the grid at the zero-based index, or an IndexError when
// the index is outside [0, len(grids)).
func Select(grids []Grid, index int) (Grid, error) {
	if index < 0 || index >= len(grids) {
		return nil, &IndexError{Requested: index, Found: len(grids)}
	}
	return grids[index], nil
}
