package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/tomlkit/internal/logger"
	"github.com/joshuapare/tomlkit/tomldoc"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scrollToCursor()
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.err != nil {
		return m, nil
	}

	// If help is showing, only keys that dismiss it are handled
	if m.showHelp {
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Help) {
			m.showHelp = false
		}
		return m, nil
	}

	// Same for the value popup
	if m.detail != nil {
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Enter) {
			m.detail = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.listHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.listHeight())
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(-len(m.top().rows))
	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.top().rows))
	case key.Matches(msg, m.keys.Enter):
		return m.open()
	case key.Matches(msg, m.keys.Back):
		return m.back()
	case key.Matches(msg, m.keys.Copy):
		return m.copyPath()
	case key.Matches(msg, m.keys.CopyValue):
		return m.copyValue()
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	f := m.top()
	if f == nil || len(f.rows) == 0 {
		return
	}
	f.cursor += delta
	if f.cursor < 0 {
		f.cursor = 0
	}
	if f.cursor >= len(f.rows) {
		f.cursor = len(f.rows) - 1
	}
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	f := m.top()
	if f == nil {
		return
	}
	h := m.listHeight()
	if f.cursor < f.offset {
		f.offset = f.cursor
	}
	if f.cursor >= f.offset+h {
		f.offset = f.cursor - h + 1
	}
}

// open descends into the selected table or array, or shows the selected
// scalar in a popup.
func (m Model) open() (tea.Model, tea.Cmd) {
	r, ok := m.current()
	if !ok {
		return m, nil
	}
	f := m.top()
	path := f.childPath(r)
	v, err := f.value(r)
	if err != nil {
		return m.setStatus(fmt.Sprintf("Cannot open %s: %v", path, err))
	}

	var next frame
	switch v.Kind() {
	case tomldoc.KindTable:
		t, _ := v.Table()
		next = frame{path: path, table: t}
	case tomldoc.KindArray:
		a, _ := v.Array()
		next = frame{path: path, array: a}
	default:
		m.detail = &detail{title: path, body: describeValue(v)}
		return m, nil
	}

	if err := next.load(); err != nil {
		_ = next.close()
		return m.setStatus(fmt.Sprintf("Cannot open %s: %v", path, err))
	}
	m.frames = append(m.frames, next)
	logger.Debug("explorer opened view", "path", path, "refs", next.refs())
	return m, nil
}

// back pops the view on top of the stack and releases it.
func (m Model) back() (tea.Model, tea.Cmd) {
	if len(m.frames) <= 1 {
		return m, nil
	}
	f := m.top()
	if err := f.close(); err != nil {
		logger.Warn("failed to release view", "path", f.path, "error", err)
	}
	m.frames = m.frames[:len(m.frames)-1]
	logger.Debug("explorer closed view", "path", f.path, "refs", m.top().refs())
	return m, nil
}

func (m Model) copyPath() (tea.Model, tea.Cmd) {
	r, ok := m.current()
	if !ok {
		return m, nil
	}
	path := m.top().childPath(r)
	if err := clipboardWrite(path); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		return m.setStatus("Failed to copy path")
	}
	return m.setStatus("Copied path: " + path)
}

func (m Model) copyValue() (tea.Model, tea.Cmd) {
	r, ok := m.current()
	if !ok {
		return m, nil
	}
	v, err := m.top().value(r)
	if err != nil {
		return m.setStatus(fmt.Sprintf("Failed to copy value: %v", err))
	}
	defer v.Close()
	text := v.String()
	if s, ok := v.Str(); ok {
		text = s
	}
	if err := clipboardWrite(text); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		return m.setStatus("Failed to copy value")
	}
	return m.setStatus("Value copied to clipboard")
}

// setStatus shows msg and clears it after 2 seconds.
func (m Model) setStatus(msg string) (tea.Model, tea.Cmd) {
	m.statusMessage = msg
	return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// describeValue renders a scalar for the value popup. Views are closed
// before it returns.
func describeValue(v tomldoc.Value) string {
	defer v.Close()
	switch v.Kind() {
	case tomldoc.KindString:
		s, _ := v.Str()
		return fmt.Sprintf("string (%d bytes)\n\n%s", len(s), s)
	case tomldoc.KindTimestamp:
		ts, _ := v.Timestamp()
		return ts.Describe()
	default:
		return v.Kind().String() + "\n\n" + v.String()
	}
}
