package printer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/tomlkit/tomldoc"
)

// printText prints v as an indented tree.
func (p *Printer) printText(v tomldoc.Value) error {
	switch v.Kind() {
	case tomldoc.KindTable:
		t, _ := v.Table()
		return p.printTableText(t, 0)
	case tomldoc.KindArray:
		a, _ := v.Array()
		return p.printArrayText(a, 0)
	default:
		_, err := fmt.Fprintln(p.writer, p.scalarText(v))
		return err
	}
}

func (p *Printer) printTableText(t *tomldoc.Table, depth int) error {
	keys, err := t.Keys()
	if err != nil {
		return err
	}
	for _, k := range keys {
		name := tomldoc.FormatKey(k)
		v, err := t.Get(k)
		if err != nil {
			return fmt.Errorf("get %s: %w", name, err)
		}
		err = p.printEntryText(name, v, depth)
		v.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printArrayText(a *tomldoc.Array, depth int) error {
	for i := 1; i <= a.Len(); i++ {
		name := "[" + strconv.Itoa(i) + "]"
		v, err := a.At(i)
		if err != nil {
			return fmt.Errorf("get %s: %w", name, err)
		}
		err = p.printEntryText(name, v, depth)
		v.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// printEntryText prints one named slot and, for collections, its children
// one level deeper.
func (p *Printer) printEntryText(name string, v tomldoc.Value, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	switch v.Kind() {
	case tomldoc.KindTable, tomldoc.KindArray:
		if _, err := fmt.Fprintf(p.writer, "%s%s: %s\n", indent, name, v); err != nil {
			return err
		}
		if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth {
			return nil
		}
		if t, ok := v.Table(); ok {
			return p.printTableText(t, depth+1)
		}
		a, _ := v.Array()
		return p.printArrayText(a, depth+1)
	}

	line := indent + name + " = " + p.scalarText(v)
	if p.opts.ShowTypes {
		line += " [" + v.Kind().String() + "]"
	}
	_, err := fmt.Fprintln(p.writer, line)
	return err
}

func (p *Printer) scalarText(v tomldoc.Value) string {
	s, ok := v.Str()
	if !ok || p.opts.MaxStringBytes <= 0 || len(s) <= p.opts.MaxStringBytes {
		return v.String()
	}
	cut := p.opts.MaxStringBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return fmt.Sprintf("%s... (truncated, %d total bytes)", strconv.Quote(s[:cut]), len(s))
}
