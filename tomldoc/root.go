package tomldoc

import (
	"sync/atomic"

	"github.com/joshuapare/tomlkit/internal/logger"
	"github.com/joshuapare/tomlkit/internal/parsetree"
)

// root is the registry shared by every view on one parsed document. refs
// equals the number of open views; the tree is freed on the 1 -> 0
// transition.
type root struct {
	table     *parsetree.Table
	refs      atomic.Int64
	released  atomic.Bool
	onRelease func()
}

func newRoot(table *parsetree.Table) *root {
	r := &root{table: table}
	r.refs.Store(1)
	return r
}

func (r *root) acquire() int64 {
	return r.refs.Add(1)
}

func (r *root) release() int64 {
	n := r.refs.Add(-1)
	switch {
	case n == 0:
		r.table.Free()
		r.released.Store(true)
		logger.Debug("toml tree released")
		if r.onRelease != nil {
			r.onRelease()
		}
	case n < 0:
		panic("tomldoc: reference count underflow")
	}
	return n
}
