package tomldoc

import (
	"errors"
	"strconv"
)

// SkipChildren may be returned by a WalkFunc to skip descending into the
// current table or array.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for each slot visited by Walk. path is the slot's
// Lookup path relative to the walked view. Views held by v are closed when
// fn returns; use Alias to keep one.
type WalkFunc func(path string, v Value) error

// Walk visits every slot below t in declaration order, parents before
// children. It stops at the first error fn returns, other than
// SkipChildren.
func (t *Table) Walk(fn WalkFunc) error {
	if err := t.ensureOpen(); err != nil {
		return err
	}
	return walkTable(t, "", fn)
}

// Walk visits every element below a, parents before children.
func (a *Array) Walk(fn WalkFunc) error {
	if err := a.ensureOpen(); err != nil {
		return err
	}
	return walkArray(a, "", fn)
}

func walkTable(t *Table, prefix string, fn WalkFunc) error {
	keys, err := t.Keys()
	if err != nil {
		return err
	}
	for i, k := range keys {
		path := FormatKey(k)
		if prefix != "" {
			path = prefix + "." + path
		}
		v, err := t.At(i + 1)
		if err != nil {
			return err
		}
		if err := visit(path, v, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkArray(a *Array, prefix string, fn WalkFunc) error {
	for i := 1; i <= a.Len(); i++ {
		path := prefix + "[" + strconv.Itoa(i) + "]"
		v, err := a.At(i)
		if err != nil {
			return err
		}
		if err := visit(path, v, fn); err != nil {
			return err
		}
	}
	return nil
}

func visit(path string, v Value, fn WalkFunc) error {
	defer v.Close()

	err := fn(path, v)
	if errors.Is(err, SkipChildren) {
		return nil
	}
	if err != nil {
		return err
	}
	switch v.kind {
	case KindTable:
		return walkTable(v.tab, path, fn)
	case KindArray:
		return walkArray(v.arr, path, fn)
	}
	return nil
}
