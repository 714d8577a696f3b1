package parsetree

import (
	"strings"

	"github.com/joshuapare/tomlkit/pkg/types"
)

// Table slot probes. Each reports ok=false when the key is missing or holds
// another kind.

// Bool probes key for a boolean.
func (t *Table) Bool(key string) (bool, bool) {
	v, _ := t.slot(key)
	return probeBool(v)
}

// Int probes key for a 64-bit integer.
func (t *Table) Int(key string) (int64, bool) {
	v, _ := t.slot(key)
	return probeInt(v)
}

// Double probes key for a float.
func (t *Table) Double(key string) (float64, bool) {
	v, _ := t.slot(key)
	return probeDouble(v)
}

// String probes key for a string. The returned string is a fresh copy.
func (t *Table) String(key string) (string, bool, error) {
	v, _ := t.slot(key)
	return probeString(t.cfg, v)
}

// Timestamp probes key for a date-time. A nil Timestamp with a nil error
// means the slot is not a date-time.
func (t *Table) Timestamp(key string) (*Timestamp, error) {
	v, _ := t.slot(key)
	return probeTimestamp(t.cfg, v)
}

// Array returns the array stored at key, or nil.
func (t *Table) Array(key string) *Array {
	v, _ := t.slot(key)
	a, _ := v.(*Array)
	return a
}

// Table returns the sub-table stored at key, or nil.
func (t *Table) Table(key string) *Table {
	v, _ := t.slot(key)
	sub, _ := v.(*Table)
	return sub
}

// Array slot probes, by zero-based index.

// Bool probes element i for a boolean.
func (a *Array) Bool(i int) (bool, bool) {
	v, _ := a.slot(i)
	return probeBool(v)
}

// Int probes element i for a 64-bit integer.
func (a *Array) Int(i int) (int64, bool) {
	v, _ := a.slot(i)
	return probeInt(v)
}

// Double probes element i for a float.
func (a *Array) Double(i int) (float64, bool) {
	v, _ := a.slot(i)
	return probeDouble(v)
}

// String probes element i for a string.
func (a *Array) String(i int) (string, bool, error) {
	v, _ := a.slot(i)
	return probeString(a.cfg, v)
}

// Timestamp probes element i for a date-time.
func (a *Array) Timestamp(i int) (*Timestamp, error) {
	v, _ := a.slot(i)
	return probeTimestamp(a.cfg, v)
}

// Array returns element i when it is an array, or nil.
func (a *Array) Array(i int) *Array {
	v, _ := a.slot(i)
	sub, _ := v.(*Array)
	return sub
}

// Table returns element i when it is a table, or nil.
func (a *Array) Table(i int) *Table {
	v, _ := a.slot(i)
	sub, _ := v.(*Table)
	return sub
}

func probeBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func probeInt(v any) (int64, bool) {
	i, ok := v.(int64)
	return i, ok
}

func probeDouble(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func probeString(cfg *config, v any) (string, bool, error) {
	s, ok := v.(string)
	if !ok {
		return "", false, nil
	}
	if cfg.maxDecode > 0 && len(s) > cfg.maxDecode {
		return "", false, types.Errorf(types.ErrKindOutOfMemory,
			"insufficient memory for string (%d bytes, budget %d)", len(s), cfg.maxDecode)
	}
	return strings.Clone(s), true, nil
}

func probeTimestamp(cfg *config, v any) (*Timestamp, error) {
	d, ok := v.(*datetime)
	if !ok {
		return nil, nil
	}
	ts, size := d.decode()
	if cfg.maxDecode > 0 && size > cfg.maxDecode {
		return nil, types.Errorf(types.ErrKindOutOfMemory,
			"insufficient memory for timestamp (%d bytes, budget %d)", size, cfg.maxDecode)
	}
	return ts, nil
}
