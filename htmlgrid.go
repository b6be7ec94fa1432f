// Package htmlgrid reads HTML-formatted tables out of files, including
// files mislabeled with spreadsheet extensions, and converts one selected
// table into a typed tabular dataset.
//
// Basic usage:
//
//	ds, err := htmlgrid.Open("report.xls").Dataset()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(ds.Names())
//
// With options:
//
//	ds, err := htmlgrid.Open("report.xls").
//	    Table(2).
//	    Encoding("cp1252").
//	    NoHeader().
//	    Dataset()
//
// The lower-level Read function takes a Config directly, for callers that
// receive their settings from a host platform's configuration surface.
package htmlgrid

// Open prepares an Extractor for the file at path with default options.
// No I/O happens until a terminal operation like Dataset() is called.
//
// Example:
//
//	ds, err := htmlgrid.Open("export.xls").Dataset()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultReadOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	ds := htmlgrid.Must(htmlgrid.Open("export.xls").Dataset())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
