package tomldoc

import (
	"fmt"
	"sync/atomic"

	"github.com/joshuapare/tomlkit/internal/logger"
	"github.com/joshuapare/tomlkit/internal/parsetree"
	"github.com/joshuapare/tomlkit/pkg/types"
)

// Table is a view on one table of a parsed document. It is the root view
// when it refers to the document's top-level table.
type Table struct {
	root   *root
	node   *parsetree.Table
	closed atomic.Bool
}

// newTableView creates a view on node. A nil r seeds a new registry with
// node as its top-level table; otherwise the view takes one reference on r.
func newTableView(node *parsetree.Table, r *root) *Table {
	var refs int64
	if r == nil {
		r = newRoot(node)
		refs = 1
	} else {
		refs = r.acquire()
	}
	t := &Table{root: r, node: node}
	logger.Debug("toml table view created", "root", t.IsRoot(), "len", node.Len(), "refs", refs)
	return t
}

func (t *Table) ensureOpen() error {
	if t == nil || t.closed.Load() {
		return types.ErrReleased
	}
	return nil
}

// Len returns the number of key/value pairs, or 0 once the view is closed.
func (t *Table) Len() int {
	if t.ensureOpen() != nil {
		return 0
	}
	return t.node.Len()
}

// IsRoot reports whether t is a view on the document's top-level table.
func (t *Table) IsRoot() bool {
	return t != nil && t.node == t.root.table
}

// Root returns a new view on the document's top-level table.
func (t *Table) Root() (*Table, error) {
	if err := t.ensureOpen(); err != nil {
		return nil, err
	}
	return newTableView(t.root.table, t.root), nil
}

// Alias returns a second, independently closable view on the same table.
func (t *Table) Alias() (*Table, error) {
	if err := t.ensureOpen(); err != nil {
		return nil, err
	}
	return newTableView(t.node, t.root), nil
}

// Get resolves the value stored under key. A missing key yields a
// KindAbsent value and no error.
func (t *Table) Get(key string) (Value, error) {
	if err := t.ensureOpen(); err != nil {
		return Value{}, err
	}
	if !t.node.Has(key) {
		return Value{}, nil
	}
	return resolve[string](t.root, t.node, key)
}

// At resolves the value at a 1-based, wrap-around position in declaration
// order.
func (t *Table) At(index int) (Value, error) {
	key, ok, err := t.KeyAt(index)
	if err != nil || !ok {
		return Value{}, err
	}
	return t.Get(key)
}

// KeyAt returns the key at a 1-based, wrap-around position in declaration
// order. ok is false when the slot has no key.
func (t *Table) KeyAt(index int) (string, bool, error) {
	if err := t.ensureOpen(); err != nil {
		return "", false, err
	}
	off, err := normalizeIndex(index, t.node.Len())
	if err != nil {
		return "", false, err
	}
	key, ok := t.node.Key(off)
	return key, ok, nil
}

// Keys returns every key in declaration order. The result always has Len()
// entries; a slot without a key is reported as "".
func (t *Table) Keys() ([]string, error) {
	if err := t.ensureOpen(); err != nil {
		return nil, err
	}
	keys := make([]string, t.node.Len())
	for i := range keys {
		keys[i], _ = t.node.Key(i)
	}
	return keys, nil
}

// Close releases the view. The document tree is freed when its last view is
// closed. Closing a view twice returns types.ErrReleased.
func (t *Table) Close() error {
	if t == nil || !t.closed.CompareAndSwap(false, true) {
		return types.ErrReleased
	}
	isRoot := t.IsRoot()
	refs := t.root.release()
	logger.Debug("toml table view released", "root", isRoot, "refs", refs)
	return nil
}

// Closed reports whether Close has been called on this view.
func (t *Table) Closed() bool {
	return t == nil || t.closed.Load()
}

// Refs reports the number of open views sharing t's document.
func (t *Table) Refs() int64 {
	if t == nil {
		return 0
	}
	return t.root.refs.Load()
}

// Released reports whether the document tree has been freed.
func (t *Table) Released() bool {
	return t == nil || t.root.released.Load()
}

// String returns a one-line description such as "TOML Table (len = 3)".
func (t *Table) String() string {
	if t.Closed() {
		return "TOML Table (released)"
	}
	return fmt.Sprintf("TOML Table (len = %d)", t.Len())
}
