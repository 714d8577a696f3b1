package printer

import (
	"fmt"

	"github.com/joshuapare/tomlkit/tomldoc"
)

// ordered is a table snapshot that keeps declaration order.
type ordered struct {
	keys []string
	vals []any
}

// collect snapshots v into plain Go values: *ordered for tables, []any for
// arrays and the scalar itself otherwise. Collections at MaxDepth are
// replaced by their one-line description.
func (p *Printer) collect(v tomldoc.Value, depth int) (any, error) {
	limited := p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth

	switch v.Kind() {
	case tomldoc.KindTable:
		t, _ := v.Table()
		if limited {
			return t.String(), nil
		}
		keys, err := t.Keys()
		if err != nil {
			return nil, err
		}
		o := &ordered{keys: keys, vals: make([]any, 0, len(keys))}
		for _, k := range keys {
			child, err := t.Get(k)
			if err != nil {
				return nil, fmt.Errorf("get %s: %w", tomldoc.FormatKey(k), err)
			}
			x, err := p.collect(child, depth+1)
			child.Close()
			if err != nil {
				return nil, err
			}
			o.vals = append(o.vals, x)
		}
		return o, nil

	case tomldoc.KindArray:
		a, _ := v.Array()
		if limited {
			return a.String(), nil
		}
		out := make([]any, 0, a.Len())
		for i := 1; i <= a.Len(); i++ {
			child, err := a.At(i)
			if err != nil {
				return nil, fmt.Errorf("get [%d]: %w", i, err)
			}
			x, err := p.collect(child, depth+1)
			child.Close()
			if err != nil {
				return nil, err
			}
			out = append(out, x)
		}
		return out, nil

	default:
		return v.Interface(), nil
	}
}
