// Package infer determines the narrowest consistent type of each column in
// a grid of cell strings and coerces the column into typed values.
//
// Inference is column-local and all-or-nothing: candidates are tried in the
// order Integer, Float, DateTime, String, and a single non-empty cell that
// defeats a candidate demotes the whole column to the next one. Empty cells
// become the null marker under whichever type wins and never veto a
// non-String inference. The result is deterministic and independent of row
// order.
package infer

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/tsawler/htmlgrid/dataset"
)

// dateLayouts is the fixed ordered list of accepted date/time patterns. A
// column is DateTime only when one single layout parses every non-empty
// cell.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"02-Jan-2006",
}

// Options controls the numeric separator convention and date leniency.
type Options struct {
	// DecimalSep separates the integer and fractional parts. Default '.'.
	DecimalSep rune
	// ThousandsSep groups digits in threes. Default ','. Must differ from
	// DecimalSep.
	ThousandsSep rune
	// LenientDates retries columns that failed the fixed date layouts with
	// a permissive parser. Off by default; the permissive parser is not
	// layout-stable, so enabling it trades determinism for recall.
	LenientDates bool
}

// DefaultOptions returns the fixed default convention: '.' decimal, ','
// thousands, strict dates.
func DefaultOptions() Options {
	return Options{DecimalSep: '.', ThousandsSep: ','}
}

// Columns infers one typed column per name from the data rows. Rows must
// be at least as wide as names; the caller normalizes widths beforehand.
func Columns(names []string, rows [][]string, opts Options) []dataset.Column {
	if opts.DecimalSep == 0 {
		opts.DecimalSep = '.'
	}
	if opts.ThousandsSep == 0 {
		opts.ThousandsSep = ','
	}

	cols := make([]dataset.Column, len(names))
	for j, name := range names {
		cells := make([]string, len(rows))
		for i, row := range rows {
			if j < len(row) {
				cells[i] = strings.TrimSpace(row[j])
			}
		}
		cols[j] = inferColumn(name, cells, opts)
	}
	return cols
}

// inferColumn runs the candidate ladder over one column's cells.
func inferColumn(name string, cells []string, opts Options) dataset.Column {
	if vals, ok := tryInteger(cells); ok {
		return dataset.Column{Name: name, Type: dataset.TypeInteger, Values: vals}
	}
	if vals, ok := tryFloat(cells, opts); ok {
		return dataset.Column{Name: name, Type: dataset.TypeFloat, Values: vals}
	}
	if vals, ok := tryDateTime(cells, opts); ok {
		return dataset.Column{Name: name, Type: dataset.TypeDateTime, Values: vals}
	}

	vals := make([]dataset.Value, len(cells))
	for i, cell := range cells {
		if cell == "" {
			vals[i] = dataset.NewNull()
		} else {
			vals[i] = dataset.NewString(cell)
		}
	}
	return dataset.Column{Name: name, Type: dataset.TypeString, Values: vals}
}

// tryInteger accepts base-10 integers with an optional sign and no
// separators. A column with no non-empty cells is not an integer column.
func tryInteger(cells []string) ([]dataset.Value, bool) {
	vals := make([]dataset.Value, len(cells))
	nonEmpty := false
	for i, cell := range cells {
		if cell == "" {
			vals[i] = dataset.NewNull()
			continue
		}
		n, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return nil, false
		}
		vals[i] = dataset.NewInt(n)
		nonEmpty = true
	}
	return vals, nonEmpty
}

// tryFloat accepts decimals with optional sign and exponent under the
// configured separator convention. Thousands separators are allowed only
// in valid three-digit groupings.
func tryFloat(cells []string, opts Options) ([]dataset.Value, bool) {
	vals := make([]dataset.Value, len(cells))
	nonEmpty := false
	for i, cell := range cells {
		if cell == "" {
			vals[i] = dataset.NewNull()
			continue
		}
		normalized, ok := normalizeNumber(cell, opts)
		if !ok {
			return nil, false
		}
		f, err := strconv.ParseFloat(normalized, 64)
		if err != nil {
			return nil, false
		}
		vals[i] = dataset.NewFloat(f)
		nonEmpty = true
	}
	return vals, nonEmpty
}

// normalizeNumber strips a valid thousands grouping and rewrites the
// decimal separator to '.' for strconv. It rejects strings whose
// separators are not a valid grouping rather than guessing.
func normalizeNumber(s string, opts Options) (string, bool) {
	if !strings.ContainsRune(s, opts.ThousandsSep) {
		if opts.DecimalSep != '.' {
			if strings.ContainsRune(s, '.') {
				return "", false
			}
			s = strings.Replace(s, string(opts.DecimalSep), ".", 1)
		}
		return s, true
	}

	// Split off sign, fraction and exponent; the grouping rule applies to
	// the integer part only.
	intPart := s
	var suffix string
	if idx := strings.IndexAny(intPart, "eE"); idx >= 0 {
		suffix = intPart[idx:]
		intPart = intPart[:idx]
	}
	if idx := strings.IndexRune(intPart, opts.DecimalSep); idx >= 0 {
		suffix = strings.Replace(intPart[idx:], string(opts.DecimalSep), ".", 1) + suffix
		intPart = intPart[:idx]
	}

	var sign string
	if strings.HasPrefix(intPart, "+") || strings.HasPrefix(intPart, "-") {
		sign = intPart[:1]
		intPart = intPart[1:]
	}

	groups := strings.Split(intPart, string(opts.ThousandsSep))
	if len(groups[0]) == 0 || len(groups[0]) > 3 {
		return "", false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return "", false
		}
		for _, r := range g {
			if r < '0' || r > '9' {
				return "", false
			}
		}
	}

	return sign + strings.Join(groups, "") + suffix, true
}

// tryDateTime finds the first fixed layout that parses every non-empty
// cell. With LenientDates set, a permissive parse is attempted when no
// fixed layout fits.
func tryDateTime(cells []string, opts Options) ([]dataset.Value, bool) {
	for _, layout := range dateLayouts {
		if vals, ok := tryLayout(cells, layout); ok {
			return vals, true
		}
	}
	if opts.LenientDates {
		return tryLenient(cells)
	}
	return nil, false
}

func tryLayout(cells []string, layout string) ([]dataset.Value, bool) {
	vals := make([]dataset.Value, len(cells))
	nonEmpty := false
	for i, cell := range cells {
		if cell == "" {
			vals[i] = dataset.NewNull()
			continue
		}
		t, err := time.Parse(layout, cell)
		if err != nil {
			return nil, false
		}
		vals[i] = dataset.NewTime(t)
		nonEmpty = true
	}
	return vals, nonEmpty
}

func tryLenient(cells []string) ([]dataset.Value, bool) {
	vals := make([]dataset.Value, len(cells))
	nonEmpty := false
	for i, cell := range cells {
		if cell == "" {
			vals[i] = dataset.NewNull()
			continue
		}
		t, err := dateparse.ParseStrict(cell)
		if err != nil {
			return nil, false
		}
		vals[i] = dataset.NewTime(t)
		nonEmpty = true
	}
	return vals, nonEmpty
}
