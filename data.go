package sorer

import "strconv"

// Data is a tagged union over the four SoR value types plus the explicit
// missing sentinel. It is the result of parsing a single field.
type Data struct {
	typ    DataType
	isNull bool
	b      bool
	i      int64
	f      float64
	s      string
}

// NullData is the explicit-missing value shared by every Data variant.
var NullData = Data{isNull: true}

// BoolData constructs a present Bool value.
func BoolData(v bool) Data { return Data{typ: Bool, b: v} }

// IntData constructs a present Int value.
func IntData(v int64) Data { return Data{typ: Int, i: v} }

// FloatData constructs a present Float value.
func FloatData(v float64) Data { return Data{typ: Float, f: v} }

// StringData constructs a present String value.
func StringData(v string) Data { return Data{typ: String, s: v} }

// IsNull reports whether this is the explicit-missing sentinel.
func (d Data) IsNull() bool { return d.isNull }

// Type reports the variant of a present value. It is meaningless for Null.
func (d Data) Type() DataType { return d.typ }

// Bool returns the underlying bool and whether d is a present Bool.
func (d Data) Bool() (bool, bool) { return d.b, !d.isNull && d.typ == Bool }

// Int returns the underlying int64 and whether d is a present Int.
func (d Data) Int() (int64, bool) { return d.i, !d.isNull && d.typ == Int }

// Float returns the underlying float64 and whether d is a present Float.
func (d Data) Float() (float64, bool) { return d.f, !d.isNull && d.typ == Float }

// Str returns the underlying string and whether d is a present String.
func (d Data) Str() (string, bool) { return d.s, !d.isNull && d.typ == String }

// String renders d the way the original SoRer's Data::Display did: bools as
// "1"/"0", strings double-quoted, and Null as a sentinel word.
func (d Data) String() string {
	if d.isNull {
		return "Missing Value"
	}
	switch d.typ {
	case Bool:
		if d.b {
			return "1"
		}
		return "0"
	case Int:
		return strconv.FormatInt(d.i, 10)
	case Float:
		return strconv.FormatFloat(d.f, 'g', -1, 64)
	case String:
		return `"` + d.s + `"`
	default:
		return ""
	}
}
