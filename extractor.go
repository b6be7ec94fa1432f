package htmlgrid

import (
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/tsawler/htmlgrid/dataset"
	"github.com/tsawler/htmlgrid/format"
	"github.com/tsawler/htmlgrid/htmltable"
	"github.com/tsawler/htmlgrid/loader"
)

// Extractor provides a fluent interface for extracting a typed dataset
// from an HTML-bearing file. Each configuration method returns a new
// Extractor instance, making it safe to share a base extractor and branch
// configurations from it.
type Extractor struct {
	filename string
	options  readOptions
}

// clone creates a copy of the Extractor with a copy of its options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		options:  e.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Table selects which extracted table to use, zero-based. Default 0.
//
// Example:
//
//	ds, err := htmlgrid.Open("report.xls").Table(2).Dataset()
func (e *Extractor) Table(index int) *Extractor {
	newExt := e.clone()
	newExt.options.tableIndex = index
	return newExt
}

// NoHeader treats the first row as ordinary data and synthesizes
// column_0, column_1, ... names instead.
func (e *Extractor) NoHeader() *Extractor {
	newExt := e.clone()
	newExt.options.firstRowHeader = false
	return newExt
}

// Encoding sets the decoding codec by IANA name (e.g. "latin-1",
// "cp1252"), or "auto" for charset detection. Default "utf-8".
func (e *Extractor) Encoding(name string) *Extractor {
	newExt := e.clone()
	newExt.options.encoding = name
	return newExt
}

// KeepEmptyRows retains rows whose cells are all blank; by default they
// are skipped.
func (e *Extractor) KeepEmptyRows() *Extractor {
	newExt := e.clone()
	newExt.options.skipEmptyRows = false
	return newExt
}

// NumberFormat sets the numeric separator convention used during type
// inference. Default is '.' decimal and ',' thousands.
//
// Example:
//
//	ds, err := htmlgrid.Open("de.xls").NumberFormat(',', '.').Dataset()
func (e *Extractor) NumberFormat(decimal, thousands rune) *Extractor {
	newExt := e.clone()
	newExt.options.decimalSep = decimal
	newExt.options.thousandsSep = thousands
	return newExt
}

// LenientDates enables permissive date parsing for columns the fixed
// date layouts reject. Off by default.
func (e *Extractor) LenientDates() *Extractor {
	newExt := e.clone()
	newExt.options.lenientDates = true
	return newExt
}

// Logger attaches a logger that receives per-stage debug logging.
func (e *Extractor) Logger(l hclog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = l
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Dataset runs the pipeline and returns the typed dataset for the
// configured table.
//
// Example:
//
//	ds, err := htmlgrid.Open("report.xls").Table(1).Dataset()
func (e *Extractor) Dataset() (*dataset.Dataset, error) {
	return Read(e.config())
}

// TableCount loads the file and returns how many tables it contains.
// Useful for validating a table index before extraction.
func (e *Extractor) TableCount() (int, error) {
	text, err := loader.Load(e.filename, e.options.encoding)
	if err != nil {
		return 0, err
	}
	return len(htmltable.Extract(text)), nil
}

// Grids loads the file and returns every table as a raw grid of cell
// strings, before header resolution and type inference.
func (e *Extractor) Grids() ([]htmltable.Grid, error) {
	text, err := loader.Load(e.filename, e.options.encoding)
	if err != nil {
		return nil, err
	}
	return htmltable.Extract(text), nil
}

// Sniff reads the leading bytes of the file and reports its detected
// content format. A spreadsheet extension over HTML content is the
// expected case; ZIP or OLE means the file really is a binary workbook
// and has no HTML to extract.
func (e *Extractor) Sniff() (format.Format, error) {
	f, err := os.Open(e.filename)
	if err != nil {
		return format.Unknown, &loader.FileError{Path: e.filename, Err: err}
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && n == 0 {
		return format.Unknown, nil
	}
	return format.DetectFromMagic(head[:n]), nil
}

// config materializes the option chain into a Config for Read.
func (e *Extractor) config() Config {
	return Config{
		Path:               e.filename,
		TableIndex:         e.options.tableIndex,
		FirstRowHeader:     e.options.firstRowHeader,
		Encoding:           e.options.encoding,
		SkipEmptyRows:      e.options.skipEmptyRows,
		DecimalSeparator:   e.options.decimalSep,
		ThousandsSeparator: e.options.thousandsSep,
		LenientDates:       e.options.lenientDates,
		Logger:             e.options.logger,
	}
}
