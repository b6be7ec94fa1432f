package htmlgrid

import "fmt"

// NoTablesError reports a source file that parsed but contained no table
// markup at all.
type NoTablesError struct {
	Path string
}

func (e *NoTablesError) Error() string {
	return fmt.Sprintf("no HTML tables found in %s", e.Path)
}

// EmptyTableError reports a selected table with no rows, or no columns
// once the header row is accounted for.
type EmptyTableError struct {
	Path  string
	Index int
}

func (e *EmptyTableError) Error() string {
	return fmt.Sprintf("table %d in %s has no rows or columns", e.Index, e.Path)
}
