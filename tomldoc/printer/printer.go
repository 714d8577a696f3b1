// Package printer renders tomldoc views as indented text, JSON or YAML.
// Key order follows the document's declaration order in every format.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/tomlkit/tomldoc"
)

const (
	DefaultIndentSize     = 2
	DefaultMaxDepth       = 0
	DefaultMaxStringBytes = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented, human-readable tree.
	FormatText Format = "text"

	// FormatJSON outputs JSON. Timestamps become strings.
	FormatJSON Format = "json"

	// FormatYAML outputs a YAML document.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", name)
	}
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, yaml).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level.
	// Default: 2
	IndentSize int

	// MaxDepth limits recursion depth (0 = unlimited). Collections below
	// the limit are summarized instead of expanded.
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowTypes appends the value kind to each text line.
	// Default: false
	ShowTypes bool

	// MaxStringBytes truncates long strings in text output (0 = no limit).
	// Default: 0
	MaxStringBytes int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:         FormatText,
		IndentSize:     DefaultIndentSize,
		MaxDepth:       DefaultMaxDepth,
		MaxStringBytes: DefaultMaxStringBytes,
	}
}

// Printer handles formatted output of document views.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	doc, _ := tomldoc.ParseFile("config.toml", nil)
//	defer doc.Close()
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintTable(doc)
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{writer: w, opts: opts}
}

// PrintTable prints every entry of t.
func (p *Printer) PrintTable(t *tomldoc.Table) error {
	return p.PrintValue(tomldoc.TableValue(t))
}

// PrintArray prints every element of a.
func (p *Printer) PrintArray(a *tomldoc.Array) error {
	return p.PrintValue(tomldoc.ArrayValue(a))
}

// PrintValue prints a resolved value. Scalars print on one line; tables and
// arrays print recursively. The view held by v is borrowed, not closed.
func (p *Printer) PrintValue(v tomldoc.Value) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(v)
	case FormatYAML:
		return p.printYAML(v)
	default:
		return p.printText(v)
	}
}
