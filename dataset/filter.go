package dataset

import "strings"

// FilterRows normalizes data rows to the column width and, when skipEmpty
// is set, drops rows whose every cell is empty after trimming. Width
// normalization is silent: short rows are right-padded with empty strings
// and long rows truncated, since source HTML is often irregular. The
// function is idempotent.
func FilterRows(rows [][]string, width int, skipEmpty bool) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if skipEmpty && allBlank(row) {
			continue
		}
		out = append(out, normalizeWidth(row, width))
	}
	return out
}

func allBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func normalizeWidth(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	if len(row) > width {
		return row[:width]
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
