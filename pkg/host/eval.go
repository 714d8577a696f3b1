package host

import (
	"math"

	"github.com/joshuapare/tomlkit/pkg/types"
	"github.com/joshuapare/tomlkit/tomldoc"
)

// Eval applies the call/index form to a table or array view:
//
//	nil arg      -> number of entries (int64)
//	string arg   -> value stored under that key (tables only)
//	integer arg  -> value at that 1-based, wrap-around position
//
// Any other value fails with types.ErrNotIndexable.
func Eval(v any, arg any) (any, error) {
	switch x := v.(type) {
	case *tomldoc.Table:
		return evalTable(x, arg)
	case *tomldoc.Array:
		return evalArray(x, arg)
	default:
		return nil, types.Errorf(types.ErrKindNotIndexable, "%s is not callable or indexable", typeName(v))
	}
}

func evalTable(t *tomldoc.Table, arg any) (any, error) {
	if arg == nil {
		if t.Closed() {
			return nil, types.ErrReleased
		}
		return int64(t.Len()), nil
	}
	if key, ok := arg.(string); ok {
		v, err := t.Get(key)
		if err != nil {
			return nil, err
		}
		return fromValue(v), nil
	}
	idx, ok := toIndex(arg)
	if !ok {
		return nil, argumentError("expecting key or integer index, got %s", typeName(arg))
	}
	v, err := t.At(idx)
	if err != nil {
		return nil, err
	}
	return fromValue(v), nil
}

func evalArray(a *tomldoc.Array, arg any) (any, error) {
	if arg == nil {
		if a.Closed() {
			return nil, types.ErrReleased
		}
		return int64(a.Len()), nil
	}
	idx, ok := toIndex(arg)
	if !ok {
		return nil, argumentError("expecting integer index, got %s", typeName(arg))
	}
	v, err := a.At(idx)
	if err != nil {
		return nil, err
	}
	return fromValue(v), nil
}

// toIndex accepts any Go integer type that fits in an int.
func toIndex(arg any) (int, bool) {
	var n int64
	switch x := arg.(type) {
	case int:
		return x, true
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint:
		if uint64(x) > math.MaxInt64 {
			return 0, false
		}
		n = int64(x)
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		n = int64(x)
	default:
		return 0, false
	}
	if n > math.MaxInt || n < math.MinInt {
		return 0, false
	}
	return int(n), true
}
