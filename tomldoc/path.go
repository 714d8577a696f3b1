package tomldoc

import (
	"strconv"
	"strings"

	"github.com/joshuapare/tomlkit/pkg/types"
)

// segment is one step of a lookup path: a key or a 1-based index.
type segment struct {
	key     string
	index   int
	isIndex bool
}

func (s segment) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return FormatKey(s.key)
}

// FormatKey renders key as a path segment, quoting it unless it is a bare
// TOML key.
func FormatKey(key string) string {
	if isBareKey(key) {
		return key
	}
	return strconv.Quote(key)
}

func isBareKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		if !isBareChar(key[i]) {
			return false
		}
	}
	return true
}

func isBareChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

// parsePath splits a path such as `servers.alpha.ports[0]` or
// `"a.b".c[-1]` into segments.
func parsePath(path string) ([]segment, error) {
	if path == "" {
		return nil, types.Errorf(types.ErrKindArgument, "empty path")
	}
	var segs []segment
	i := 0
	expectKey := true // at start or after '.'
	for i < len(path) {
		if len(segs) >= types.MaxPathDepth {
			return nil, types.Errorf(types.ErrKindArgument, "path deeper than %d segments", types.MaxPathDepth)
		}
		c := path[i]
		switch {
		case c == '[':
			if expectKey && len(segs) > 0 {
				return nil, pathError(path, i, "empty key")
			}
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil, pathError(path, i, "unterminated index")
			}
			n, err := strconv.Atoi(strings.TrimSpace(path[i+1 : i+end]))
			if err != nil {
				return nil, pathError(path, i, "invalid index")
			}
			segs = append(segs, segment{index: n, isIndex: true})
			i += end + 1
			expectKey = false
		case c == '.':
			if expectKey {
				return nil, pathError(path, i, "empty key")
			}
			i++
			expectKey = true
			if i == len(path) {
				return nil, pathError(path, i, "trailing '.'")
			}
		case expectKey && (c == '"' || c == '\''):
			key, n, err := quotedKey(path[i:])
			if err != nil {
				return nil, pathError(path, i, err.Error())
			}
			segs = append(segs, segment{key: key})
			i += n
			expectKey = false
		case expectKey && isBareChar(c):
			j := i
			for j < len(path) && isBareChar(path[j]) {
				j++
			}
			segs = append(segs, segment{key: path[i:j]})
			i = j
			expectKey = false
		default:
			return nil, pathError(path, i, "unexpected "+strconv.QuoteRune(rune(c)))
		}
	}
	return segs, nil
}

// quotedKey reads a basic ("...") or literal ('...') quoted key at the start
// of s and returns it with the number of bytes consumed.
func quotedKey(s string) (string, int, error) {
	q := s[0]
	for j := 1; j < len(s); j++ {
		switch {
		case q == '"' && s[j] == '\\':
			j++
		case s[j] == q:
			if q == '\'' {
				return s[1:j], j + 1, nil
			}
			key, err := strconv.Unquote(s[:j+1])
			if err != nil {
				return "", 0, err
			}
			return key, j + 1, nil
		}
	}
	return "", 0, strconv.ErrSyntax
}

func pathError(path string, at int, msg string) error {
	return types.Errorf(types.ErrKindArgument, "invalid path %q at offset %d: %s", path, at, msg)
}

// Lookup resolves a dotted path relative to t. Keys may be bare or quoted;
// bracketed integers select 1-based, wrap-around positions in arrays (or in
// tables, by declaration order). Intermediate views are released before
// Lookup returns. A missing key anywhere on the path yields KindAbsent.
func (t *Table) Lookup(path string) (Value, error) {
	if err := t.ensureOpen(); err != nil {
		return Value{}, err
	}
	segs, err := parsePath(path)
	if err != nil {
		return Value{}, err
	}
	return walkPath(TableValue(t), segs)
}

// Lookup resolves a path starting with an index, such as `[2].name`.
func (a *Array) Lookup(path string) (Value, error) {
	if err := a.ensureOpen(); err != nil {
		return Value{}, err
	}
	segs, err := parsePath(path)
	if err != nil {
		return Value{}, err
	}
	return walkPath(ArrayValue(a), segs)
}

// walkPath steps through segs from cur. cur itself is borrowed; every view
// created on the way except the final one is closed.
func walkPath(cur Value, segs []segment) (Value, error) {
	owned := false
	for n, seg := range segs {
		next, err := step(cur, seg)
		if owned {
			cur.Close()
		}
		if err != nil {
			return Value{}, err
		}
		if next.IsAbsent() && n < len(segs)-1 {
			return Value{}, nil
		}
		cur, owned = next, true
	}
	if !owned {
		return Value{}, nil
	}
	return cur, nil
}

func step(cur Value, seg segment) (Value, error) {
	switch cur.kind {
	case KindTable:
		if seg.isIndex {
			return cur.tab.At(seg.index)
		}
		return cur.tab.Get(seg.key)
	case KindArray:
		if !seg.isIndex {
			return Value{}, types.Errorf(types.ErrKindNotIndexable, "array cannot be indexed by key %s", seg)
		}
		return cur.arr.At(seg.index)
	default:
		return Value{}, types.Errorf(types.ErrKindNotIndexable, "%s value cannot be indexed by %s", cur.kind, seg)
	}
}
