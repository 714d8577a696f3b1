// Package host adapts tomldoc to interpreters and other embedding layers
// that work with dynamically typed values.
//
// Host values are nil, bool, int64, float64, string, tomldoc.Timestamp,
// *tomldoc.Table and *tomldoc.Array. Missing keys and slots of unknown kind
// both come back as nil. Every *tomldoc.Table or *tomldoc.Array returned
// by this package holds a reference on its document and must eventually be
// passed to Release.
package host

import (
	"fmt"

	"github.com/joshuapare/tomlkit/pkg/types"
	"github.com/joshuapare/tomlkit/tomldoc"
)

// Class is the integer type code reported to hosts.
type Class int

const (
	ClassNone      Class = 0
	ClassTable     Class = 1
	ClassArray     Class = 2
	ClassTimestamp Class = 3
)

func (c Class) String() string {
	switch c {
	case ClassTable:
		return "table"
	case ClassArray:
		return "array"
	case ClassTimestamp:
		return "timestamp"
	default:
		return "none"
	}
}

// ParseText parses TOML text and returns the root table view.
func ParseText(text string, opts *types.ParseOptions) (*tomldoc.Table, error) {
	return tomldoc.Parse(text, opts)
}

// ParsePath parses the TOML file at path and returns the root table view.
func ParsePath(path string, opts *types.ParseOptions) (*tomldoc.Table, error) {
	return tomldoc.ParseFile(path, opts)
}

// Classify reports the type code of v. Scalars and nil are ClassNone.
func Classify(v any) Class {
	switch v.(type) {
	case *tomldoc.Table:
		return ClassTable
	case *tomldoc.Array:
		return ClassArray
	case tomldoc.Timestamp, *tomldoc.Timestamp:
		return ClassTimestamp
	default:
		return ClassNone
	}
}

// LengthOf returns the number of entries of an open table or array view,
// and -1 for anything else.
func LengthOf(v any) int {
	switch x := v.(type) {
	case *tomldoc.Table:
		if x.Closed() {
			return -1
		}
		return x.Len()
	case *tomldoc.Array:
		if x.Closed() {
			return -1
		}
		return x.Len()
	default:
		return -1
	}
}

// KeyAt returns the key at a 1-based, wrap-around position of a table, or
// nil when that slot has no key.
func KeyAt(v any, index int) (any, error) {
	t, ok := v.(*tomldoc.Table)
	if !ok {
		return nil, argumentError("expecting TOML table, got %s", typeName(v))
	}
	key, ok, err := t.KeyAt(index)
	if err != nil || !ok {
		return nil, err
	}
	return key, nil
}

// AllKeys returns every key of a table in declaration order.
func AllKeys(v any) ([]string, error) {
	t, ok := v.(*tomldoc.Table)
	if !ok {
		return nil, argumentError("expecting TOML table, got %s", typeName(v))
	}
	return t.Keys()
}

// Describe returns the printed form of v.
func Describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case *tomldoc.Table:
		return x.String()
	case *tomldoc.Array:
		return x.String()
	case tomldoc.Timestamp:
		return x.Describe()
	case *tomldoc.Timestamp:
		return x.Describe()
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprint(x)
	}
}

// Release closes the view held by v. It is a no-op for values that hold no
// view.
func Release(v any) error {
	switch x := v.(type) {
	case *tomldoc.Table:
		return x.Close()
	case *tomldoc.Array:
		return x.Close()
	default:
		return nil
	}
}

// fromValue converts a resolved slot into a host value.
func fromValue(v tomldoc.Value) any {
	return v.Interface()
}

func argumentError(format string, args ...any) error {
	return types.Errorf(types.ErrKindArgument, format, args...)
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case *tomldoc.Table:
		return "TOML table"
	case *tomldoc.Array:
		return "TOML array"
	case tomldoc.Timestamp, *tomldoc.Timestamp:
		return "TOML timestamp"
	default:
		return fmt.Sprintf("%T", v)
	}
}
