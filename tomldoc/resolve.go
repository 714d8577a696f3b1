package tomldoc

import "github.com/joshuapare/tomlkit/internal/parsetree"

// slots is the probe surface shared by parse-tree tables (keyed by name)
// and arrays (keyed by zero-based offset).
type slots[K any] interface {
	Bool(K) (bool, bool)
	Int(K) (int64, bool)
	Double(K) (float64, bool)
	String(K) (string, bool, error)
	Timestamp(K) (*parsetree.Timestamp, error)
	Array(K) *parsetree.Array
	Table(K) *parsetree.Table
}

// resolve decodes slot k of s. Kinds are probed in a fixed order and the
// first match wins. Arrays and tables come back as new views on r.
func resolve[K any](r *root, s slots[K], k K) (Value, error) {
	if b, ok := s.Bool(k); ok {
		return Value{kind: KindBool, b: b}, nil
	}
	if i, ok := s.Int(k); ok {
		return Value{kind: KindInt, i: i}, nil
	}
	if f, ok := s.Double(k); ok {
		return Value{kind: KindFloat, f: f}, nil
	}
	str, ok, err := s.String(k)
	if err != nil {
		return Value{}, err
	}
	if ok {
		return Value{kind: KindString, s: str}, nil
	}
	ts, err := s.Timestamp(k)
	if err != nil {
		return Value{}, err
	}
	if ts != nil {
		return Value{kind: KindTimestamp, ts: newTimestamp(ts)}, nil
	}
	if arr := s.Array(k); arr != nil {
		return Value{kind: KindArray, arr: newArrayView(arr, r)}, nil
	}
	if tab := s.Table(k); tab != nil {
		return Value{kind: KindTable, tab: newTableView(tab, r)}, nil
	}
	return Value{kind: KindUnknown}, nil
}
