package htmlgrid

import "github.com/hashicorp/go-hclog"

// readOptions holds configuration for table extraction.
type readOptions struct {
	// Table selection
	tableIndex int

	// Header handling
	firstRowHeader bool

	// Decoding
	encoding string

	// Row filtering
	skipEmptyRows bool

	// Numeric convention for type inference
	decimalSep   rune
	thousandsSep rune

	// Date leniency
	lenientDates bool

	logger hclog.Logger
}

// defaultReadOptions returns the default extraction options.
func defaultReadOptions() readOptions {
	return readOptions{
		tableIndex:     0,
		firstRowHeader: true,
		encoding:       "utf-8",
		skipEmptyRows:  true,
		decimalSep:     '.',
		thousandsSep:   ',',
		lenientDates:   false,
		logger:         nil, // resolved to a no-op logger at execution
	}
}

// clone creates a copy of readOptions. The logger is shared; everything
// else is a value.
func (o readOptions) clone() readOptions {
	return o
}
