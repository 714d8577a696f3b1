package tomldoc

import (
	"fmt"
	"strconv"
)

// Kind identifies what a resolved slot holds.
type Kind int

const (
	// KindAbsent means the key does not exist.
	KindAbsent Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindTimestamp
	KindArray
	KindTable
	// KindUnknown means the slot exists but matched no known kind.
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTimestamp:
		return "timestamp"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	case KindUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the result of resolving a slot. The zero Value is KindAbsent.
//
// A Value of KindArray or KindTable owns a view that holds one reference on
// the document; release it with Close (or close the view itself).
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	ts   Timestamp
	arr  *Array
	tab  *Table
}

// TableValue wraps an existing view in a Value. The Value shares the view;
// closing either closes both.
func TableValue(t *Table) Value { return Value{kind: KindTable, tab: t} }

// ArrayValue wraps an existing array view in a Value, like TableValue.
func ArrayValue(a *Array) Value { return Value{kind: KindArray, arr: a} }

// Kind reports what the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the key the value was resolved from is missing.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Typed accessors report ok=false when the value holds another kind.

func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }

func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

func (v Value) Timestamp() (Timestamp, bool) { return v.ts, v.kind == KindTimestamp }

func (v Value) Array() (*Array, bool) { return v.arr, v.kind == KindArray }

func (v Value) Table() (*Table, bool) { return v.tab, v.kind == KindTable }

// Interface returns the held value as bool, int64, float64, string,
// Timestamp, *Array or *Table, or nil for absent and unknown slots.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindTimestamp:
		return v.ts
	case KindArray:
		return v.arr
	case KindTable:
		return v.tab
	default:
		return nil
	}
}

// Close releases the view held by an array or table value. It is a no-op
// for every other kind.
func (v Value) Close() error {
	switch v.kind {
	case KindArray:
		return v.arr.Close()
	case KindTable:
		return v.tab.Close()
	default:
		return nil
	}
}

// String renders scalars in TOML syntax and views by their description.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return strconv.Quote(v.s)
	case KindTimestamp:
		return v.ts.String()
	case KindArray:
		return v.arr.String()
	case KindTable:
		return v.tab.String()
	default:
		return "<" + v.kind.String() + ">"
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	switch s {
	case "+Inf":
		return "inf"
	case "-Inf":
		return "-inf"
	case "NaN":
		return "nan"
	}
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return s
		}
	}
	return s + ".0"
}
