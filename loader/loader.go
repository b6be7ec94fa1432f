// Package loader reads source files from disk and decodes them into UTF-8
// text under a named character encoding.
//
// Encoding names are resolved through the IANA registry, so the usual
// aliases (latin-1, iso-8859-1, cp1252, windows-1252, ...) all work. The
// special name "auto" runs charset detection over the raw bytes. Decoding
// is strict for UTF-8 and ASCII: an invalid byte fails the load with its
// offset rather than being silently replaced, because a wrong encoding is
// a configuration problem the caller should see.
package loader

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultEncoding is used when no encoding name is given.
const DefaultEncoding = "utf-8"

// FileError reports a source file that could not be read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("reading source file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// EncodingError reports a decoding failure. Offset is the position of the
// first offending byte, or -1 when the failure has no single position
// (e.g. an unknown codec name).
type EncodingError struct {
	Path     string
	Encoding string
	Offset   int64
	Err      error
}

func (e *EncodingError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("decoding %s as %s: invalid byte at offset %d", e.Path, e.Encoding, e.Offset)
	}
	return fmt.Sprintf("decoding %s as %s: %v", e.Path, e.Encoding, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// Load reads the file at path and decodes it under the named encoding.
// The file handle is closed before Load returns; nothing is retried.
func Load(path, encodingName string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}
	return decode(raw, path, encodingName)
}

// Decode decodes raw bytes under the named encoding. It applies the same
// rules as Load but takes the bytes directly.
func Decode(raw []byte, encodingName string) (string, error) {
	return decode(raw, "input", encodingName)
}

func decode(raw []byte, path, encodingName string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(encodingName))
	if name == "" {
		name = DefaultEncoding
	}

	if name == "auto" {
		detected, err := DetectEncoding(raw)
		if err != nil {
			return "", &EncodingError{Path: path, Encoding: encodingName, Offset: -1, Err: err}
		}
		name = detected
	}

	switch name {
	case "utf-8", "utf8":
		if off := firstInvalidUTF8(raw); off >= 0 {
			return "", &EncodingError{Path: path, Encoding: name, Offset: off}
		}
		return string(raw), nil

	case "ascii", "us-ascii":
		for i, b := range raw {
			if b > 0x7F {
				return "", &EncodingError{Path: path, Encoding: name, Offset: int64(i)}
			}
		}
		return string(raw), nil
	}

	enc, err := lookupEncoding(name)
	if err != nil {
		return "", &EncodingError{Path: path, Encoding: encodingName, Offset: -1, Err: err}
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", &EncodingError{Path: path, Encoding: encodingName, Offset: -1, Err: err}
	}
	return string(decoded), nil
}

// lookupEncoding resolves a codec name to a decoder. IANA registry names
// are tried first, then the WHATWG label set, which covers the informal
// spellings real exports use (cp1252, latin1, iso88591). A hyphen-stripped
// retry catches variants like "latin-1".
func lookupEncoding(name string) (encoding.Encoding, error) {
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(strings.ReplaceAll(name, "-", "")); err == nil {
		return enc, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", name)
}

// DetectEncoding guesses the charset of raw bytes. Used for the "auto"
// encoding name.
func DetectEncoding(raw []byte) (string, error) {
	result, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil {
		return "", fmt.Errorf("charset detection: %w", err)
	}
	return strings.ToLower(result.Charset), nil
}

// firstInvalidUTF8 returns the byte offset of the first invalid UTF-8
// sequence, or -1 if the input is valid.
func firstInvalidUTF8(raw []byte) int64 {
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size == 1 {
			return int64(i)
		}
		i += size
	}
	return -1
}
