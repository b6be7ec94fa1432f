package htmltable

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestExtract_SingleTable(t *testing.T) {
	html := `<table>
		<tr><th>Product</th><th>Sales</th></tr>
		<tr><td>Widget A</td><td>15000</td></tr>
		<tr><td>Widget B</td><td>22000</td></tr>
	</table>`

	grids := Extract(html)
	if len(grids) != 1 {
		t.Fatalf("Extract() found %d tables, want 1", len(grids))
	}

	want := Grid{
		{"Product", "Sales"},
		{"Widget A", "15000"},
		{"Widget B", "22000"},
	}
	if !reflect.DeepEqual(grids[0], want) {
		t.Errorf("grid = %v, want %v", grids[0], want)
	}
}

func TestExtract_CountAndDocumentOrder(t *testing.T) {
	html := `<html><body>
		<table><tr><td>first</td></tr></table>
		<p>between</p>
		<table><tr><td>second</td></tr></table>
		<div><table><tr><td>third</td></tr></table></div>
	</body></html>`

	grids := Extract(html)
	if len(grids) != 3 {
		t.Fatalf("Extract() found %d tables, want 3", len(grids))
	}
	for i, want := range []string{"first", "second", "third"} {
		if grids[i][0][0] != want {
			t.Errorf("table %d cell = %q, want %q", i, grids[i][0][0], want)
		}
	}
}

func TestExtract_NestedTable(t *testing.T) {
	html := `<table>
		<tr><td>outer<table><tr><td>inner</td></tr></table></td><td>right</td></tr>
	</table>`

	grids := Extract(html)
	if len(grids) != 2 {
		t.Fatalf("Extract() found %d tables, want 2 (outer and nested)", len(grids))
	}

	// Outer table comes first in document order; nested text stays out of
	// the outer cell.
	if grids[0][0][0] != "outer" {
		t.Errorf("outer cell = %q, want %q", grids[0][0][0], "outer")
	}
	if grids[1][0][0] != "inner" {
		t.Errorf("nested cell = %q, want %q", grids[1][0][0], "inner")
	}
}

func TestExtract_NoTables(t *testing.T) {
	grids := Extract("<html><body><p>no tables here</p></body></html>")
	if len(grids) != 0 {
		t.Errorf("Extract() found %d tables, want 0", len(grids))
	}
}

func TestExtract_MalformedMarkup(t *testing.T) {
	// Unclosed tags must not fail; the parse is lenient.
	grids := Extract("<table><tr><td>a<td>b<tr><td>c")
	if len(grids) != 1 {
		t.Fatalf("Extract() found %d tables, want 1", len(grids))
	}
	want := Grid{{"a", "b"}, {"c", ""}}
	if !reflect.DeepEqual(grids[0], want) {
		t.Errorf("grid = %v, want %v", grids[0], want)
	}
}

func TestExtract_Colspan(t *testing.T) {
	html := `<table>
		<tr><th>A</th><th>B</th></tr>
		<tr><td colspan="2">wide</td></tr>
	</table>`

	grids := Extract(html)
	want := Grid{{"A", "B"}, {"wide", "wide"}}
	if !reflect.DeepEqual(grids[0], want) {
		t.Errorf("grid = %v, want %v", grids[0], want)
	}
}

func TestExtract_Rowspan(t *testing.T) {
	html := `<table>
		<tr><td rowspan="2">tall</td><td>r1</td></tr>
		<tr><td>r2</td></tr>
	</table>`

	grids := Extract(html)
	want := Grid{{"tall", "r1"}, {"tall", "r2"}}
	if !reflect.DeepEqual(grids[0], want) {
		t.Errorf("grid = %v, want %v", grids[0], want)
	}
}

func TestExtract_MalformedSpansClamped(t *testing.T) {
	html := `<table>
		<tr><td rowspan="9999">a</td><td colspan="junk">b</td></tr>
		<tr><td colspan="-3">c</td></tr>
	</table>`

	grids := Extract(html)
	if len(grids) != 1 {
		t.Fatalf("Extract() found %d tables, want 1", len(grids))
	}
	// rowspan clamps to the 2 rows that exist; bad colspans fall back to 1
	want := Grid{{"a", "b"}, {"a", "c"}}
	if !reflect.DeepEqual(grids[0], want) {
		t.Errorf("grid = %v, want %v", grids[0], want)
	}
}

func TestExtract_SectionsInOrder(t *testing.T) {
	html := `<table>
		<thead><tr><th>h</th></tr></thead>
		<tbody><tr><td>b</td></tr></tbody>
		<tfoot><tr><td>f</td></tr></tfoot>
	</table>`

	grids := Extract(html)
	want := Grid{{"h"}, {"b"}, {"f"}}
	if !reflect.DeepEqual(grids[0], want) {
		t.Errorf("grid = %v, want %v", grids[0], want)
	}
}

func TestExtract_WhitespaceNormalization(t *testing.T) {
	html := "<table><tr><td>  multi\n\t word   text  </td><td>a<br>b</td></tr></table>"

	grids := Extract(html)
	if got := grids[0][0][0]; got != "multi word text" {
		t.Errorf("cell = %q, want %q", got, "multi word text")
	}
	if got := grids[0][0][1]; got != "a b" {
		t.Errorf("br cell = %q, want %q", got, "a b")
	}
}

func TestExtract_RaggedRowsPadded(t *testing.T) {
	html := `<table>
		<tr><td>a</td><td>b</td><td>c</td></tr>
		<tr><td>d</td></tr>
	</table>`

	grids := Extract(html)
	g := grids[0]
	if g.Width() != 3 {
		t.Fatalf("Width() = %d, want 3", g.Width())
	}
	for i, row := range g {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells, want 3", i, len(row))
		}
	}
	if !reflect.DeepEqual(g[1], []string{"d", "", ""}) {
		t.Errorf("short row = %v, want padded", g[1])
	}
}

func TestExtract_RowWithoutCellsDropped(t *testing.T) {
	html := `<table>
		<tr><td>a</td></tr>
		<tr></tr>
		<tr><td>b</td></tr>
	</table>`

	grids := Extract(html)
	want := Grid{{"a"}, {"b"}}
	if !reflect.DeepEqual(grids[0], want) {
		t.Errorf("grid = %v, want %v", grids[0], want)
	}
}

func TestExtract_ScriptAndStyleExcluded(t *testing.T) {
	html := `<table><tr><td>keep<script>drop()</script><style>.x{}</style></td></tr></table>`

	grids := Extract(html)
	if got := grids[0][0][0]; got != "keep" {
		t.Errorf("cell = %q, want %q", got, "keep")
	}
}

func TestSelect(t *testing.T) {
	grids := []Grid{{{"a"}}, {{"b"}}}

	g, err := Select(grids, 1)
	if err != nil {
		t.Fatalf("Select(1) failed: %v", err)
	}
	if g[0][0] != "b" {
		t.Errorf("Select(1) = %v", g)
	}

	for _, idx := range []int{-1, 2, 100} {
		_, err := Select(grids, idx)
		if err == nil {
			t.Errorf("Select(%d) expected error", idx)
			continue
		}
		var ie *IndexError
		if !errors.As(err, &ie) {
			t.Errorf("Select(%d) error type = %T, want *IndexError", idx, err)
			continue
		}
		if ie.Requested != idx || ie.Found != 2 {
			t.Errorf("IndexError = {%d %d}, want {%d 2}", ie.Requested, ie.Found, idx)
		}
	}
}

func TestSelect_Empty(t *testing.T) {
	_, err := Select(nil, 0)
	var ie *IndexError
	if !errors.As(err, &ie) {
		t.Fatalf("Select on empty = %T, want *IndexError", err)
	}
	if ie.Found != 0 {
		t.Errorf("IndexError.Found = %d, want 0", ie.Found)
	}
	if !strings.Contains(ie.Error(), "0 table(s)") {
		t.Errorf("message = %q", ie.Error())
	}
}

func TestGrid_Dimensions(t *testing.T) {
	var empty Grid
	if empty.RowCount() != 0 || empty.Width() != 0 {
		t.Error("empty grid should have zero dimensions")
	}

	g := Grid{{"a", "b"}, {"c", "d"}}
	if g.RowCount() != 2 || g.Width() != 2 {
		t.Errorf("dimensions = %dx%d, want 2x2", g.RowCount(), g.Width())
	}
}
