package host

import (
	"github.com/joshuapare/tomlkit/pkg/types"
	"github.com/joshuapare/tomlkit/tomldoc"
)

// Member returns the named field of a view or timestamp.
//
// Tables and arrays provide len (int64), is_root (bool) and root (a new
// *tomldoc.Table on the document's top-level table). Timestamps provide
// year, month, day, hour, minute (int64), second (float64, with the
// milliseconds as a fraction), kind (a one-character string) and tz (string,
// or nil when the timestamp has no offset).
func Member(v any, name string) (any, error) {
	switch x := v.(type) {
	case *tomldoc.Table:
		return viewMember(x, name)
	case *tomldoc.Array:
		return viewMember(x, name)
	case tomldoc.Timestamp:
		return timestampMember(x, name)
	case *tomldoc.Timestamp:
		return timestampMember(*x, name)
	default:
		return nil, types.Errorf(types.ErrKindNotIndexable, "%s has no members", typeName(v))
	}
}

// view is the part of the table and array API Member needs.
type view interface {
	Len() int
	IsRoot() bool
	Root() (*tomldoc.Table, error)
	Closed() bool
}

func viewMember(v view, name string) (any, error) {
	if v.Closed() {
		return nil, types.ErrReleased
	}
	switch name {
	case "len":
		return int64(v.Len()), nil
	case "is_root":
		return v.IsRoot(), nil
	case "root":
		r, err := v.Root()
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, types.Errorf(types.ErrKindInvalidKind, "non-existing member %q", name)
	}
}

func timestampMember(ts tomldoc.Timestamp, name string) (any, error) {
	switch name {
	case "year":
		return int64(ts.Year), nil
	case "month":
		return int64(ts.Month), nil
	case "day":
		return int64(ts.Day), nil
	case "hour":
		return int64(ts.Hour), nil
	case "minute":
		return int64(ts.Minute), nil
	case "second":
		return ts.Seconds(), nil
	case "kind":
		return string(rune(ts.Kind)), nil
	case "tz":
		if z, ok := ts.Zone(); ok {
			return z, nil
		}
		return nil, nil
	default:
		return nil, types.Errorf(types.ErrKindInvalidKind, "non-existing member %q", name)
	}
}
