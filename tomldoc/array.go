package tomldoc

import (
	"fmt"
	"sync/atomic"

	"github.com/joshuapare/tomlkit/internal/logger"
	"github.com/joshuapare/tomlkit/internal/parsetree"
	"github.com/joshuapare/tomlkit/pkg/types"
)

// Array is a view on one array of a parsed document, either an inline array
// or an array of tables. An Array is never a root view.
type Array struct {
	root   *root
	node   *parsetree.Array
	closed atomic.Bool
}

// newArrayView creates a view on node holding one reference on r.
func newArrayView(node *parsetree.Array, r *root) *Array {
	if r == nil {
		panic("tomldoc: array view without a document")
	}
	refs := r.acquire()
	logger.Debug("toml array view created", "len", node.Len(), "refs", refs)
	return &Array{root: r, node: node}
}

func (a *Array) ensureOpen() error {
	if a == nil || a.closed.Load() {
		return types.ErrReleased
	}
	return nil
}

// Len returns the number of elements, or 0 once the view is closed.
func (a *Array) Len() int {
	if a.ensureOpen() != nil {
		return 0
	}
	return a.node.Len()
}

// IsRoot always reports false.
func (a *Array) IsRoot() bool { return false }

// Root returns a new view on the document's top-level table.
func (a *Array) Root() (*Table, error) {
	if err := a.ensureOpen(); err != nil {
		return nil, err
	}
	return newTableView(a.root.table, a.root), nil
}

// Alias returns a second, independently closable view on the same array.
func (a *Array) Alias() (*Array, error) {
	if err := a.ensureOpen(); err != nil {
		return nil, err
	}
	return newArrayView(a.node, a.root), nil
}

// At resolves the element at a 1-based, wrap-around position.
func (a *Array) At(index int) (Value, error) {
	if err := a.ensureOpen(); err != nil {
		return Value{}, err
	}
	off, err := normalizeIndex(index, a.node.Len())
	if err != nil {
		return Value{}, err
	}
	return resolve[int](a.root, a.node, off)
}

// Close releases the view. Closing a view twice returns types.ErrReleased.
func (a *Array) Close() error {
	if a == nil || !a.closed.CompareAndSwap(false, true) {
		return types.ErrReleased
	}
	refs := a.root.release()
	logger.Debug("toml array view released", "refs", refs)
	return nil
}

// Closed reports whether Close has been called on this view.
func (a *Array) Closed() bool {
	return a == nil || a.closed.Load()
}

// Refs reports the number of open views sharing a's document.
func (a *Array) Refs() int64 {
	if a == nil {
		return 0
	}
	return a.root.refs.Load()
}

// Released reports whether the document tree has been freed.
func (a *Array) Released() bool {
	return a == nil || a.root.released.Load()
}

// String returns a one-line description such as "TOML Array (len = 3)".
func (a *Array) String() string {
	if a.Closed() {
		return "TOML Array (released)"
	}
	return fmt.Sprintf("TOML Array (len = %d)", a.Len())
}
