package parsetree

import (
	"errors"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/joshuapare/tomlkit/pkg/types"
)

// Options configures a parse.
type Options struct {
	// MaxDecodeBytes bounds string and date-time probes; zero means no limit.
	MaxDecodeBytes int
}

// Parse decodes text and returns the top-level table. On failure the error
// is a *types.Error of kind ErrKindParse with a bounded message.
func Parse(text string, opts Options) (*Table, error) {
	var raw map[string]any
	md, err := toml.Decode(text, &raw)
	if err != nil {
		return nil, wrapParseErr(err)
	}
	b := &builder{cfg: &config{maxDecode: opts.MaxDecodeBytes}}
	return b.table(raw, record(md.Keys(), raw)), nil
}

func wrapParseErr(err error) error {
	e := &types.Error{Kind: types.ErrKindParse, Err: err}
	var perr toml.ParseError
	if errors.As(err, &perr) {
		e.Line = perr.Position.Line
		e.Column = perr.Position.Col
	}
	e.Msg = types.BoundMessage(err.Error())
	return e
}

// shape mirrors the decoded document and records each table's keys in the
// order the decoder first saw them. Every element of an array of tables has
// its own shape.
type shape struct {
	keys  []string
	seen  map[string]bool
	sub   map[string]*shape
	elems map[string][]*shape
}

func newShape() *shape {
	return &shape{
		seen:  make(map[string]bool),
		sub:   make(map[string]*shape),
		elems: make(map[string][]*shape),
	}
}

func (s *shape) note(k string) {
	if !s.seen[k] {
		s.seen[k] = true
		s.keys = append(s.keys, k)
	}
}

func (s *shape) child(k string) *shape {
	if c, ok := s.sub[k]; ok {
		return c
	}
	c := newShape()
	s.sub[k] = c
	return c
}

func (s *shape) lookup(k string) *shape {
	if s == nil {
		return nil
	}
	return s.sub[k]
}

func (s *shape) elemsOf(k string) []*shape {
	if s == nil {
		return nil
	}
	return s.elems[k]
}

// order returns the keys of m in declaration order. Keys the decoder did not
// report are appended in sorted order.
func (s *shape) order(m map[string]any) []string {
	out := make([]string, 0, len(m))
	used := make(map[string]bool, len(m))
	if s != nil {
		for _, k := range s.keys {
			if _, ok := m[k]; ok && !used[k] {
				used[k] = true
				out = append(out, k)
			}
		}
	}
	if len(out) == len(m) {
		return out
	}
	rest := make([]string, 0, len(m)-len(out))
	for k := range m {
		if !used[k] {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(out, rest...)
}

// replay walks md.Keys() against the decoded document. A [[header]] key
// opens a new element. The keys of an inline array's tables follow the
// array key without interruption, one table after another.
type replay struct {
	keys []toml.Key
	pos  int
}

func record(keys []toml.Key, raw map[string]any) *shape {
	r := &replay{keys: keys}
	root := newShape()
	for r.pos < len(r.keys) {
		k := r.keys[r.pos]
		r.pos++
		r.place(root, raw, k, 0)
	}
	return root
}

// place notes k[from:] under sh and reports how many values the key
// completed: 1 for a scalar, array or empty table, 0 otherwise.
func (r *replay) place(sh *shape, m map[string]any, k toml.Key, from int) int {
	for i := from; i < len(k); i++ {
		seg := k[i]
		sh.note(seg)
		last := i == len(k)-1
		switch x := m[seg].(type) {
		case nil:
			return 0
		case map[string]any:
			if last {
				if len(x) == 0 {
					return 1
				}
				return 0
			}
			sh, m = sh.child(seg), x
		case []map[string]any:
			if last {
				sh.elems[seg] = append(sh.elems[seg], newShape())
				return 0
			}
			n := len(sh.elems[seg])
			if n == 0 || n > len(x) {
				return 0
			}
			sh, m = sh.elems[seg][n-1], x[n-1]
		case []any:
			if !last {
				return 0
			}
			r.array(sh, seg, k, x)
			return 1
		default:
			if !last {
				return 0
			}
			return 1
		}
	}
	return 0
}

func (r *replay) array(sh *shape, seg string, ctx toml.Key, x []any) {
	for _, e := range x {
		switch y := e.(type) {
		case map[string]any:
			el := newShape()
			sh.elems[seg] = append(sh.elems[seg], el)
			r.inline(el, y, ctx)
		case []any:
			r.array(sh, seg, ctx, y)
		}
	}
}

// inline consumes the keys of one inline table declared under ctx.
func (r *replay) inline(sh *shape, m map[string]any, ctx toml.Key) {
	for left := leaves(m); left > 0 && r.pos < len(r.keys); {
		k := r.keys[r.pos]
		if len(k) <= len(ctx) || !slices.Equal(k[:len(ctx)], ctx) {
			return
		}
		r.pos++
		left -= r.place(sh, m, k, len(ctx))
	}
}

// leaves counts the keys that close a value of m: scalars, arrays and empty
// tables, found through any nested tables.
func leaves(m map[string]any) int {
	n := 0
	for _, v := range m {
		if t, ok := v.(map[string]any); ok && len(t) > 0 {
			n += leaves(t)
			continue
		}
		n++
	}
	return n
}

type builder struct {
	cfg *config
}

func (b *builder) table(m map[string]any, sh *shape) *Table {
	t := newTable(b.cfg, len(m))
	for _, k := range sh.order(m) {
		t.set(k, b.value(m[k], sh, k))
	}
	return t
}

// value converts the decoder output stored under key in a table of shape sh.
func (b *builder) value(v any, sh *shape, key string) any {
	switch x := v.(type) {
	case map[string]any:
		return b.table(x, sh.lookup(key))
	case []map[string]any:
		elems := sh.elemsOf(key)
		a := &Array{cfg: b.cfg, elems: make([]any, 0, len(x))}
		for i, m := range x {
			var el *shape
			if i < len(elems) {
				el = elems[i]
			}
			a.elems = append(a.elems, b.table(m, el))
		}
		return a
	case []any:
		q := sh.elemsOf(key)
		return b.array(x, &q)
	case time.Time:
		return newDatetime(x)
	default:
		return v
	}
}

// array builds an inline array. Its tables take their shapes from q in
// document order, nested arrays included.
func (b *builder) array(x []any, q *[]*shape) *Array {
	a := &Array{cfg: b.cfg, elems: make([]any, 0, len(x))}
	for _, e := range x {
		switch y := e.(type) {
		case map[string]any:
			var el *shape
			if len(*q) > 0 {
				el, *q = (*q)[0], (*q)[1:]
			}
			a.elems = append(a.elems, b.table(y, el))
		case []any:
			a.elems = append(a.elems, b.array(y, q))
		default:
			a.elems = append(a.elems, b.value(e, nil, ""))
		}
	}
	return a
}
