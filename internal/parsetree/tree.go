// Package parsetree holds the parsed form of a TOML document: an ordered tree
// of tables, arrays, scalars and date-times built from the decoder output.
//
// The tree is immutable after Parse returns. Callers inspect slots only
// through the typed probe methods (Bool, Int, Double, String, Timestamp,
// Array, Table), each of which reports whether the slot holds that kind.
// Free drops every node reference; probes on a freed tree report nothing.
package parsetree

// config is shared by every node of one tree.
type config struct {
	maxDecode int
	freed     bool
}

// Table is a table node. Keys keep their declaration order.
type Table struct {
	cfg   *config
	keys  []string
	index map[string]int
	vals  []any // bool, int64, float64, string, *datetime, *Array, *Table
}

// Array is an array node (inline array or array of tables).
type Array struct {
	cfg   *config
	elems []any
}

func newTable(cfg *config, n int) *Table {
	return &Table{
		cfg:   cfg,
		keys:  make([]string, 0, n),
		index: make(map[string]int, n),
		vals:  make([]any, 0, n),
	}
}

func (t *Table) set(key string, v any) {
	if i, ok := t.index[key]; ok {
		t.vals[i] = v
		return
	}
	t.index[key] = len(t.keys)
	t.keys = append(t.keys, key)
	t.vals = append(t.vals, v)
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	if t == nil || t.cfg.freed {
		return 0
	}
	return len(t.keys)
}

// Key returns the key at zero-based position i. ok is false when the slot
// has no key.
func (t *Table) Key(i int) (string, bool) {
	if i < 0 || i >= t.Len() {
		return "", false
	}
	return t.keys[i], true
}

// Has reports whether key exists in the table.
func (t *Table) Has(key string) bool {
	_, ok := t.slot(key)
	return ok
}

func (t *Table) slot(key string) (any, bool) {
	if t == nil || t.cfg.freed {
		return nil, false
	}
	i, ok := t.index[key]
	if !ok {
		return nil, false
	}
	return t.vals[i], true
}

// Len returns the number of elements in the array.
func (a *Array) Len() int {
	if a == nil || a.cfg.freed {
		return 0
	}
	return len(a.elems)
}

func (a *Array) slot(i int) (any, bool) {
	if i < 0 || i >= a.Len() {
		return nil, false
	}
	return a.elems[i], true
}

// Free releases the whole tree t belongs to. It must only be called on the
// top-level table returned by Parse; afterwards every node of the tree is
// empty.
func (t *Table) Free() {
	if t == nil || t.cfg.freed {
		return
	}
	t.cfg.freed = true
	t.clear()
}

// Freed reports whether the tree has been released.
func (t *Table) Freed() bool {
	return t == nil || t.cfg.freed
}

func (t *Table) clear() {
	for _, v := range t.vals {
		clearValue(v)
	}
	t.keys = nil
	t.vals = nil
	t.index = nil
}

func (a *Array) clear() {
	for _, v := range a.elems {
		clearValue(v)
	}
	a.elems = nil
}

func clearValue(v any) {
	switch n := v.(type) {
	case *Table:
		n.clear()
	case *Array:
		n.clear()
	}
}
