package dataset

import (
	"fmt"
	"strings"
)

// ResolveHeader splits a rectangular grid into column names and data rows.
// When firstRowHeader is set, the first row's normalized cell strings become
// the names and the remaining rows are data; otherwise names are synthesized
// as column_0, column_1, ... and every row is data. Names come back ordered
// and pairwise distinct, one per column of the widest row.
func ResolveHeader(grid [][]string, firstRowHeader bool) (names []string, rows [][]string) {
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, nil
	}

	if firstRowHeader && len(grid) > 0 {
		raw := make([]string, width)
		for i := 0; i < width && i < len(grid[0]); i++ {
			raw[i] = strings.Join(strings.Fields(grid[0][i]), " ")
		}
		return uniqueNames(raw), grid[1:]
	}

	names = make([]string, width)
	for i := range names {
		names[i] = fmt.Sprintf("column_%d", i)
	}
	return names, grid
}

// uniqueNames replaces empty names with positional ones and disambiguates
// duplicates with numeric suffixes. The first occurrence keeps its name;
// later duplicates get _<n>, skipping suffixes that would themselves
// collide with a name appearing elsewhere.
func uniqueNames(raw []string) []string {
	names := make([]string, len(raw))
	taken := make(map[string]bool, len(raw))

	for i, name := range raw {
		if name == "" {
			name = fmt.Sprintf("column_%d", i)
		}
		if taken[name] {
			base := name
			for n := 1; ; n++ {
				name = fmt.Sprintf("%s_%d", base, n)
				if !taken[name] && !contains(raw, name) {
					break
				}
			}
		}
		names[i] = name
		taken[name] = true
	}
	return names
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
