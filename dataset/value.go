// Package dataset provides the typed tabular output model: a tagged value
// type, typed columns, and the Dataset the pipeline hands to the host
// platform's table contract.
package dataset

import (
	"strconv"
	"time"
)

// Type is the inferred type tag of a column.
type Type int

const (
	// TypeString is the fallback type; cell text carried as-is.
	TypeString Type = iota
	// TypeInteger is a base-10 integer column.
	TypeInteger
	// TypeFloat is a floating-point column.
	TypeFloat
	// TypeDateTime is a date/time column.
	TypeDateTime
)

// String returns the string representation of the type tag.
func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeDateTime:
		return "datetime"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is one cell of a typed column: exactly one of the variants, or
// null. Null is the missing-value marker; empty source cells become null
// whatever type their column resolves to.
type Value struct {
	typ  Type
	null bool
	s    string
	i    int64
	f    float64
	t    time.Time
}

// NewString returns a string value.
func NewString(s string) Value { return Value{typ: TypeString, s: s} }

// NewInt returns an integer value.
func NewInt(i int64) Value { return Value{typ: TypeInteger, i: i} }

// NewFloat returns a float value.
func NewFloat(f float64) Value { return Value{typ: TypeFloat, f: f} }

// NewTime returns a date/time value.
func NewTime(t time.Time) Value { return Value{typ: TypeDateTime, t: t} }

// NewNull returns the null marker.
func NewNull() Value { return Value{null: true} }

// IsNull reports whether the value is the null marker.
func (v Value) IsNull() bool { return v.null }

// Str returns the string variant; zero value when null or another type.
func (v Value) Str() string { return v.s }

// Int returns the integer variant; zero when null or another type.
func (v Value) Int() int64 { return v.i }

// Float returns the float variant; zero when null or another type.
func (v Value) Float() float64 { return v.f }

// Time returns the date/time variant; zero when null or another type.
func (v Value) Time() time.Time { return v.t }

// String renders the value for display and CSV output.
func (v Value) String() string {
	if v.null {
		return ""
	}
	switch v.typ {
	case TypeInteger:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case TypeDateTime:
		return v.t.Format("2006-01-02 15:04:05")
	default:
		return v.s
	}
}
