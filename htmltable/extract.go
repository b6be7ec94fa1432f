package htmltable

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// maxColSpan bounds colspan expansion so a malformed attribute cannot blow
// up the grid width. Rowspan is clamped to the rows the table actually has.
const maxColSpan = 1000

// maxDepth caps descent when collecting cell text, so adversarial nesting
// is treated as ordinary non-matching content instead of recursing without
// bound.
const maxDepth = 64

// Extract parses text as HTML and returns one Grid per <table> element, in
// document order. Nested tables are reported as their own grids and their
// text does not leak into the enclosing cell. Extract never fails: the
// parse is lenient, matching real-world machine-exported markup, and
// unparseable input simply yields no tables.
func Extract(text string) []Grid {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil
	}

	var grids []Grid
	doc.Find("table").Each(func(_ int, s *goquery.Selection) {
		grids = append(grids, parseTable(s.Get(0)))
	})
	return grids
}

// spanCell is a cell as written in the markup, before span expansion.
type spanCell struct {
	text    string
	rowSpan int
	colSpan int
}

// parseTable walks one table element and builds its rectangular grid.
func parseTable(table *html.Node) Grid {
	var rows [][]spanCell
	for _, tr := range tableRows(table) {
		var row []spanCell
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
				continue
			}
			row = append(row, spanCell{
				text:    cellText(c),
				rowSpan: spanAttr(c, "rowspan"),
				colSpan: spanAttr(c, "colspan"),
			})
		}
		rows = append(rows, row)
	}
	return expand(rows)
}

// tableRows collects the <tr> children of a table, descending into
// <thead>/<tbody>/<tfoot> sections, in document order. Rows of nested
// tables are not included; they belong to their own grid.
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			for rc := c.FirstChild; rc != nil; rc = rc.NextSibling {
				if rc.Type == html.ElementNode && rc.Data == "tr" {
					rows = append(rows, rc)
				}
			}
		case "tr":
			rows = append(rows, c)
		}
	}
	return rows
}

// expand resolves row/column spans into concrete grid positions, repeating
// the cell text into every position a span claims. Span counts are clamped
// so malformed markup cannot crash or explode the grid. Source rows that
// contribute nothing (no cells, no span carry-over) are dropped, and the
// result is padded to the widest row.
func expand(rows [][]spanCell) Grid {
	n := len(rows)
	cells := make([][]string, n)
	filled := make([][]bool, n)

	ensure := func(r, w int) {
		for len(cells[r]) < w {
			cells[r] = append(cells[r], "")
			filled[r] = append(filled[r], false)
		}
	}

	for r := range rows {
		col := 0
		for _, sc := range rows[r] {
			// advance past positions claimed by rowspans from earlier rows
			for {
				ensure(r, col+1)
				if !filled[r][col] {
					break
				}
				col++
			}

			rs := sc.rowSpan
			if rs > n-r {
				rs = n - r
			}
			cs := sc.colSpan
			if cs > maxColSpan {
				cs = maxColSpan
			}

			for dr := 0; dr < rs; dr++ {
				for dc := 0; dc < cs; dc++ {
					ensure(r+dr, col+dc+1)
					cells[r+dr][col+dc] = sc.text
					filled[r+dr][col+dc] = true
				}
			}
			col += cs
		}
	}

	width := 0
	var out Grid
	for r := range cells {
		contributes := false
		for _, f := range filled[r] {
			if f {
				contributes = true
				break
			}
		}
		if !contributes {
			continue
		}
		out = append(out, cells[r])
		if len(cells[r]) > width {
			width = len(cells[r])
		}
	}

	for i := range out {
		for len(out[i]) < width {
			out[i] = append(out[i], "")
		}
	}
	return out
}

// cellText concatenates the descendant text of a cell with whitespace
// normalized: runs collapse to one space, leading/trailing trimmed. Nested
// tables and non-content elements contribute nothing; <br> becomes a space.
func cellText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node, int)
	walk = func(n *html.Node, depth int) {
		if depth > maxDepth {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				b.WriteString(c.Data)
			case html.ElementNode:
				switch c.Data {
				case "table", "script", "style", "template", "noscript":
				case "br":
					b.WriteByte(' ')
				default:
					walk(c, depth+1)
				}
			}
		}
	}
	walk(n, 0)
	return strings.Join(strings.Fields(b.String()), " ")
}

// spanAttr reads a rowspan/colspan attribute, defaulting to 1 for missing,
// unparseable, or non-positive values.
func spanAttr(n *html.Node, key string) int {
	for _, a := range n.Attr {
		if a.Key == key {
			v, err := strconv.Atoi(strings.TrimSpace(a.Val))
			if err != nil || v < 1 {
				return 1
			}
			return v
		}
	}
	return 1
}
