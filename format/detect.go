// Package format provides content sniffing for the htmlgrid library.
//
// The primary use case is files saved with spreadsheet extensions (.xls in
// particular) that actually contain HTML markup. Extension-based detection
// is therefore only a hint; DetectFromMagic inspects the leading bytes.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents the detected content format of a source file.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HTML indicates HTML markup, whatever the file extension claims.
	HTML
	// ZIPArchive indicates a ZIP container (a real .xlsx workbook, not HTML).
	ZIPArchive
	// OLECompound indicates a legacy OLE compound file (a real binary .xls).
	OLECompound
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HTML:
		return "HTML"
	case ZIPArchive:
		return "ZIP"
	case OLECompound:
		return "OLE"
	default:
		return "Unknown"
	}
}

// oleMagic is the header of an OLE compound file (legacy binary .xls).
var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// SpreadsheetExtension reports whether the filename carries a spreadsheet
// extension. Such files are still candidates for HTML extraction; many
// export tools write HTML under these extensions.
func SpreadsheetExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls", ".xlsx", ".xlsm":
		return true
	}
	return false
}

// HTMLExtension reports whether the filename carries an HTML extension.
func HTMLExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// DetectFromMagic determines the content format from the leading bytes of a
// file. It returns Unknown when the bytes match none of the known signatures;
// Unknown content is still fed to the HTML parser, which is lenient.
func DetectFromMagic(data []byte) Format {
	if len(data) >= len(oleMagic) && hasPrefix(data, oleMagic) {
		return OLECompound
	}

	// ZIP magic: PK\x03\x04 (a real OOXML workbook, among other things)
	if len(data) >= 4 && data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return ZIPArchive
	}

	if detectHTMLMagic(data) {
		return HTML
	}

	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML content. Besides the
// usual document prologs it accepts bare table fragments, which is what
// machine exporters tend to emit.
func detectHTMLMagic(data []byte) bool {
	// Trim leading whitespace and a UTF-8 BOM if present
	start := 0
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		start = 3
	}
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}

	head := strings.ToUpper(string(data[start:min(start+512, len(data))]))
	switch {
	case strings.HasPrefix(head, "<!DOCTYPE HTML"):
		return true
	case strings.HasPrefix(head, "<HTML"):
		return true
	case strings.HasPrefix(head, "<TABLE"):
		return true
	case strings.HasPrefix(head, "<?XML") && strings.Contains(head, "<HTML"):
		// XHTML with an XML declaration
		return true
	}
	return false
}

func hasPrefix(data, prefix []byte) bool {
	for i, b := range prefix {
		if data[i] != b {
			return false
		}
	}
	return true
}
