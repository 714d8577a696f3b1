package main

import (
	"errors"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/tomlkit/internal/logger"
	"github.com/joshuapare/tomlkit/pkg/types"
	"github.com/joshuapare/tomlkit/tomldoc"
)

// Layout constants
const (
	headerHeight  = 4 // title, margin and path line
	statusHeight  = 3 // margin, status line and help line
	paneChrome    = 2 // pane border
	defaultHeight = 24
	defaultWidth  = 80
)

// clipboardWrite is swapped out by tests.
var clipboardWrite = clipboard.WriteAll

// row is one slot of the view on top of the stack.
type row struct {
	label   string
	key     string // table slots
	index   int    // array slots, 1-based
	kind    tomldoc.Kind
	preview string
}

// frame is an open table or array view. Exactly one of table and array is
// set. The frame owns the view's reference until it is popped.
type frame struct {
	path   string
	table  *tomldoc.Table
	array  *tomldoc.Array
	rows   []row
	cursor int
	offset int
}

func (f *frame) close() error {
	if f.table != nil {
		return f.table.Close()
	}
	return f.array.Close()
}

func (f *frame) refs() int64 {
	if f.table != nil {
		return f.table.Refs()
	}
	return f.array.Refs()
}

func (f *frame) describe() string {
	if f.table != nil {
		return f.table.String()
	}
	return f.array.String()
}

// value resolves the slot behind r. The caller closes the result.
func (f *frame) value(r row) (tomldoc.Value, error) {
	if f.table != nil {
		return f.table.Get(r.key)
	}
	return f.array.At(r.index)
}

func (f *frame) childPath(r row) string {
	if f.array != nil {
		return f.path + "[" + strconv.Itoa(r.index) + "]"
	}
	seg := tomldoc.FormatKey(r.key)
	if f.path == "" {
		return seg
	}
	return f.path + "." + seg
}

// load fills rows from the view. Sub-views created to describe a slot are
// closed straight away so they do not hold references.
func (f *frame) load() error {
	f.rows = f.rows[:0]
	if f.table != nil {
		keys, err := f.table.Keys()
		if err != nil {
			return err
		}
		for _, k := range keys {
			r := row{label: k, key: k}
			if err := f.describeRow(&r); err != nil {
				return err
			}
			f.rows = append(f.rows, r)
		}
		return nil
	}
	for i := 1; i <= f.array.Len(); i++ {
		r := row{label: "[" + strconv.Itoa(i) + "]", index: i}
		if err := f.describeRow(&r); err != nil {
			return err
		}
		f.rows = append(f.rows, r)
	}
	return nil
}

func (f *frame) describeRow(r *row) error {
	v, err := f.value(*r)
	if err != nil {
		if errors.Is(err, types.ErrOutOfMemory) {
			r.kind = tomldoc.KindUnknown
			r.preview = "<too large to decode>"
			return nil
		}
		return err
	}
	defer v.Close()
	r.kind = v.Kind()
	r.preview = v.String()
	return nil
}

// detail is the content of the value popup.
type detail struct {
	title string
	body  string
}

// Model is the main application model
type Model struct {
	docPath string
	keys    KeyMap
	help    help.Model

	// frames[0] is the document root. The last frame is the one on screen.
	frames []frame

	width  int
	height int

	showHelp bool
	detail   *detail

	// Status message for temporary feedback
	statusMessage string

	err error
}

// NewModel parses the document at docPath and returns a model showing its
// root table. Parse failures are reported by View.
func NewModel(docPath string, opts *types.ParseOptions) Model {
	root, err := tomldoc.ParseFile(docPath, opts)
	if err != nil {
		logger.Error("failed to parse document", "path", docPath, "error", err)
		return Model{docPath: docPath, keys: DefaultKeyMap(), help: help.New(), err: err}
	}
	return newModelFromRoot(docPath, root)
}

// newModelFromRoot takes ownership of root's reference.
func newModelFromRoot(name string, root *tomldoc.Table) Model {
	m := Model{
		docPath: name,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	f := frame{table: root}
	if err := f.load(); err != nil {
		m.err = err
	}
	m.frames = []frame{f}
	logger.Debug("explorer opened document", "path", name, "slots", len(f.rows))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close releases every view on the stack, deepest first. Once it returns
// the document tree has been freed.
func (m *Model) Close() error {
	var lastErr error
	for i := len(m.frames) - 1; i >= 0; i-- {
		if err := m.frames[i].close(); err != nil {
			lastErr = err
		}
	}
	m.frames = nil
	return lastErr
}

func (m *Model) top() *frame {
	if len(m.frames) == 0 {
		return nil
	}
	return &m.frames[len(m.frames)-1]
}

func (m *Model) current() (row, bool) {
	f := m.top()
	if f == nil || len(f.rows) == 0 {
		return row{}, false
	}
	return f.rows[f.cursor], true
}

// listHeight is the number of rows that fit in the pane.
func (m Model) listHeight() int {
	h := m.height
	if h <= 0 {
		h = defaultHeight
	}
	h -= headerHeight + statusHeight + paneChrome
	if h < 1 {
		h = 1
	}
	return h
}

// Messages

type clearStatusMsg struct{}
