package htmlgrid

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/tsawler/htmlgrid/dataset"
	"github.com/tsawler/htmlgrid/htmltable"
	"github.com/tsawler/htmlgrid/infer"
	"github.com/tsawler/htmlgrid/loader"
)

// Config is the full configuration of one extraction: the options a host
// platform's node-configuration surface would collect. It is validated
// once at pipeline entry and never mutated mid-pipeline.
type Config struct {
	// Path is the source file to load. Required; the file may carry a
	// spreadsheet extension and still contain HTML.
	Path string

	// TableIndex selects which extracted table to use, zero-based.
	TableIndex int

	// FirstRowHeader promotes the first row of the selected table to
	// column names.
	FirstRowHeader bool

	// Encoding is the decoding codec name (IANA label, or "auto").
	Encoding string

	// SkipEmptyRows removes rows whose cells are all blank.
	SkipEmptyRows bool

	// DecimalSeparator and ThousandsSeparator set the numeric convention
	// for type inference. Defaults: '.' and ','.
	DecimalSeparator   rune
	ThousandsSeparator rune

	// LenientDates enables permissive date parsing for columns that the
	// fixed date layouts reject.
	LenientDates bool

	// Logger receives per-stage debug logging. Nil means no logging.
	Logger hclog.Logger
}

// DefaultConfig returns a Config for path with every option at its
// default: first table, first row as header, utf-8, empty rows skipped.
func DefaultConfig(path string) Config {
	return Config{
		Path:               path,
		TableIndex:         0,
		FirstRowHeader:     true,
		Encoding:           loader.DefaultEncoding,
		SkipEmptyRows:      true,
		DecimalSeparator:   '.',
		ThousandsSeparator: ',',
	}
}

// Validate checks the configuration for problems that make the pipeline
// unrunnable. File existence is not checked here; the loader reports that
// with a FileError.
func (c Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("file path cannot be empty")
	}
	if c.TableIndex < 0 {
		return fmt.Errorf("table index must be non-negative, got %d", c.TableIndex)
	}
	dec, thou := c.DecimalSeparator, c.ThousandsSeparator
	if dec == 0 {
		dec = '.'
	}
	if thou == 0 {
		thou = ','
	}
	if dec == thou {
		return fmt.Errorf("decimal and thousands separators must differ, both are %q", dec)
	}
	return nil
}

// Read runs the whole pipeline for one configuration: load and decode the
// file, extract every table, select one, resolve headers, filter rows,
// infer column types, and assemble the typed dataset. Each execution is
// independent and owns all of its intermediate state; any stage failure
// aborts the run and surfaces a typed error.
func Read(cfg Config) (*dataset.Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}

	log.Debug("reading source file", "path", cfg.Path, "encoding", cfg.Encoding)
	text, err := loader.Load(cfg.Path, cfg.Encoding)
	if err != nil {
		return nil, err
	}

	grids := htmltable.Extract(text)
	log.Debug("extracted tables", "count", len(grids))
	if len(grids) == 0 {
		return nil, &NoTablesError{Path: cfg.Path}
	}

	grid, err := htmltable.Select(grids, cfg.TableIndex)
	if err != nil {
		return nil, err
	}
	if grid.RowCount() == 0 || grid.Width() == 0 {
		return nil, &EmptyTableError{Path: cfg.Path, Index: cfg.TableIndex}
	}

	names, rows := dataset.ResolveHeader(grid, cfg.FirstRowHeader)
	if len(names) == 0 {
		return nil, &EmptyTableError{Path: cfg.Path, Index: cfg.TableIndex}
	}

	rows = dataset.FilterRows(rows, len(names), cfg.SkipEmptyRows)
	log.Debug("resolved table shape", "columns", len(names), "rows", len(rows))

	cols := infer.Columns(names, rows, infer.Options{
		DecimalSep:   cfg.DecimalSeparator,
		ThousandsSep: cfg.ThousandsSeparator,
		LenientDates: cfg.LenientDates,
	})

	ds, err := dataset.New(cols)
	if err != nil {
		return nil, fmt.Errorf("assembling dataset: %w", err)
	}
	return ds, nil
}
