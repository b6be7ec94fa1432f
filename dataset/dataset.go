package dataset

import (
	"fmt"
	"strings"
)

// Column is a named, typed sequence of values. All columns in one Dataset
// have the same length.
type Column struct {
	Name   string
	Type   Type
	Values []Value
}

// Dataset is the typed tabular output handed to the host platform: ordered
// columns of equal length plus a generated row-index key.
type Dataset struct {
	Columns []Column
	rows    int
}

// New builds a Dataset from columns, enforcing the row-count invariant.
func New(cols []Column) (*Dataset, error) {
	rows := 0
	for i, c := range cols {
		if i == 0 {
			rows = len(c.Values)
			continue
		}
		if len(c.Values) != rows {
			return nil, fmt.Errorf("column %q has %d values, want %d", c.Name, len(c.Values), rows)
		}
	}
	return &Dataset{Columns: cols, rows: rows}, nil
}

// RowCount returns the number of rows.
func (d *Dataset) RowCount() int { return d.rows }

// ColCount returns the number of columns.
func (d *Dataset) ColCount() int { return len(d.Columns) }

// Names returns the ordered column names.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// Row returns the values of row i across all columns, or nil when i is out
// of range.
func (d *Dataset) Row(i int) []Value {
	if i < 0 || i >= d.rows {
		return nil
	}
	row := make([]Value, len(d.Columns))
	for j, c := range d.Columns {
		row[j] = c.Values[i]
	}
	return row
}

// RowKey returns the generated row-index key for row i, following the
// host's RowN convention.
func (d *Dataset) RowKey(i int) string {
	return fmt.Sprintf("Row%d", i)
}

// ToCSV renders the dataset as CSV with a header line.
func (d *Dataset) ToCSV() string {
	var sb strings.Builder
	for j, c := range d.Columns {
		sb.WriteString(csvEscape(c.Name))
		if j < len(d.Columns)-1 {
			sb.WriteString(",")
		}
	}
	sb.WriteString("\n")

	for i := 0; i < d.rows; i++ {
		for j, c := range d.Columns {
			sb.WriteString(csvEscape(c.Values[i].String()))
			if j < len(d.Columns)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToMarkdown renders the dataset as a markdown table.
func (d *Dataset) ToMarkdown() string {
	if len(d.Columns) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, c := range d.Columns {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(c.Name, "\n", " "))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")

	for range d.Columns {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")

	for i := 0; i < d.rows; i++ {
		for _, c := range d.Columns {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(c.Values[i].String(), "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}

func csvEscape(text string) string {
	if strings.ContainsAny(text, ",\"\n") {
		return "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
	}
	return text
}
