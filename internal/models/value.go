package models

import (
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "null"
	}
}

// Value is a single table cell. The zero Value is Null.
type Value struct {
	kind Kind
	str  string
	num  float64
	flag bool
}

// Null returns an empty cell value.
func Null() Value {
	return Value{}
}

// String wraps a string cell value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number wraps a numeric cell value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Int is a convenience wrapper around Number.
func Int(n int) Value {
	return Number(float64(n))
}

// Bool wraps a boolean cell value.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// StringPtr returns Null for a nil pointer.
func StringPtr(s *string) Value {
	if s == nil {
		return Null()
	}
	return String(*s)
}

// NumberPtr returns Null for a nil pointer.
func NumberPtr(n *float64) Value {
	if n == nil {
		return Null()
	}
	return Number(*n)
}

// Kind returns the variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is empty.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Str returns the string payload, or "" for other kinds.
func (v Value) Str() string {
	return v.str
}

// Num returns the numeric payload, or 0 for other kinds.
func (v Value) Num() float64 {
	return v.num
}

// Flag returns the boolean payload, or false for other kinds.
func (v Value) Flag() bool {
	return v.flag
}

// Display formats the value for a table cell. Null renders as an empty string.
func (v Value) Display() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		if v.flag {
			return "yes"
		}
		return "no"
	default:
		return ""
	}
}

// Interface returns the payload as a plain Go value (nil for Null),
// for encoders that do not know about Value.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.flag
	default:
		return nil
	}
}
