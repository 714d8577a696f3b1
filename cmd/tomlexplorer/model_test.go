package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/tomlkit/internal/testutil"
	"github.com/joshuapare/tomlkit/pkg/types"
	"github.com/joshuapare/tomlkit/tomldoc"
)

const sampleDoc = `
title = "demo"

[owner]
name = "Tom"
dob = 1979-05-27T07:32:00-08:00

[[products]]
name = "Hammer"

[[products]]
name = "Nail"
`

func TestModel_RootRows(t *testing.T) {
	h := newTestHelper(t, sampleDoc)

	assert.Equal(t, []string{"title", "owner", "products"}, h.labels())
	assert.Equal(t, int64(1), h.refs())

	rows := h.model.top().rows
	assert.Equal(t, tomldoc.KindString, rows[0].kind)
	assert.Equal(t, `"demo"`, rows[0].preview)
	assert.Equal(t, tomldoc.KindTable, rows[1].kind)
	assert.Equal(t, tomldoc.KindArray, rows[2].kind)
}

func TestModel_CursorMovement(t *testing.T) {
	h := newTestHelper(t, sampleDoc)

	h.sendKey(tea.KeyUp)
	assert.Equal(t, 0, h.cursor(), "cursor stays at top")

	h.sendKey(tea.KeyDown)
	h.sendRune('j')
	assert.Equal(t, 2, h.cursor())

	h.sendKey(tea.KeyDown)
	assert.Equal(t, 2, h.cursor(), "cursor stays at bottom")

	h.sendRune('k')
	assert.Equal(t, 1, h.cursor())

	h.sendRune('G')
	assert.Equal(t, 2, h.cursor())
	h.sendKey(tea.KeyHome)
	assert.Equal(t, 0, h.cursor())
}

func TestModel_OpenAndBack(t *testing.T) {
	h := newTestHelper(t, sampleDoc)

	h.sendKey(tea.KeyDown)
	h.sendKey(tea.KeyEnter)
	require.Len(t, h.model.frames, 2)
	assert.Equal(t, "owner", h.model.top().path)
	assert.Equal(t, []string{"name", "dob"}, h.labels())
	assert.Equal(t, int64(2), h.refs(), "open sub-table holds a reference")

	h.sendKey(tea.KeyEsc)
	require.Len(t, h.model.frames, 1)
	assert.Equal(t, int64(1), h.refs())
	assert.Equal(t, 1, h.cursor(), "parent cursor is kept")

	// Back at the root is a no-op.
	h.sendKey(tea.KeyLeft)
	assert.Len(t, h.model.frames, 1)
}

func TestModel_ArrayOfTables(t *testing.T) {
	h := newTestHelper(t, sampleDoc)

	h.sendRune('G')
	h.sendRune('l')
	assert.Equal(t, "products", h.model.top().path)
	assert.Equal(t, []string{"[1]", "[2]"}, h.labels())

	h.sendKey(tea.KeyDown)
	h.sendKey(tea.KeyEnter)
	assert.Equal(t, "products[2]", h.model.top().path)
	assert.Equal(t, int64(3), h.refs())

	rows := h.model.top().rows
	require.Len(t, rows, 1)
	assert.Equal(t, `"Nail"`, rows[0].preview)
}

func TestModel_CloseReleasesDocument(t *testing.T) {
	h := newTestHelper(t, sampleDoc)

	h.sendKey(tea.KeyDown)
	h.sendKey(tea.KeyEnter)
	h.sendKey(tea.KeyDown)
	h.sendKey(tea.KeyEnter) // scalar: opens the popup, no new view
	require.Len(t, h.model.frames, 2)

	root := h.model.frames[0].table
	require.NoError(t, h.model.Close())
	assert.True(t, h.released)
	assert.True(t, root.Released())
	assert.Nil(t, h.model.frames)
}

func TestModel_ValueDetail(t *testing.T) {
	h := newTestHelper(t, sampleDoc)
	h.send(tea.WindowSizeMsg{Width: 100, Height: 30})

	h.sendKey(tea.KeyEnter)
	require.NotNil(t, h.model.detail)
	assert.Equal(t, "title", h.model.detail.title)
	assert.Contains(t, h.model.detail.body, "demo")
	assert.Contains(t, h.model.View(), "esc to close")

	// Movement is ignored while the popup is open.
	h.sendKey(tea.KeyDown)
	assert.Equal(t, 0, h.cursor())

	h.sendKey(tea.KeyEsc)
	assert.Nil(t, h.model.detail)
	assert.Len(t, h.model.frames, 1)
}

func TestModel_TimestampDetail(t *testing.T) {
	h := newTestHelper(t, sampleDoc)

	h.sendKey(tea.KeyDown)
	h.sendKey(tea.KeyEnter)
	h.sendKey(tea.KeyDown)
	h.sendKey(tea.KeyEnter)
	require.NotNil(t, h.model.detail)
	assert.Equal(t, "owner.dob", h.model.detail.title)
	assert.Contains(t, h.model.detail.body, "TOML Timestamp (offset datetime)")
}

func TestModel_HelpToggle(t *testing.T) {
	h := newTestHelper(t, sampleDoc)
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.False(t, h.model.showHelp)
	h.sendRune('?')
	assert.True(t, h.model.showHelp)
	assert.Contains(t, h.model.View(), "Keyboard Shortcuts")

	h.sendRune('?')
	assert.False(t, h.model.showHelp)

	h.sendRune('?')
	h.sendKey(tea.KeyEsc)
	assert.False(t, h.model.showHelp)
	assert.Len(t, h.model.frames, 1, "esc closes help without leaving the view")
}

func TestModel_CopyPathAndValue(t *testing.T) {
	var copied []string
	orig := clipboardWrite
	clipboardWrite = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	t.Cleanup(func() { clipboardWrite = orig })

	h := newTestHelper(t, sampleDoc)
	h.sendKey(tea.KeyDown)
	h.sendKey(tea.KeyEnter)

	cmd := h.sendRune('c')
	assert.NotNil(t, cmd, "status message is cleared by a tick")
	assert.Equal(t, "Copied path: owner.name", h.model.statusMessage)

	h.sendRune('y')
	assert.Equal(t, "Value copied to clipboard", h.model.statusMessage)
	assert.Equal(t, []string{"owner.name", "Tom"}, copied)
	assert.Equal(t, int64(2), h.refs(), "copying does not leak references")

	h.send(clearStatusMsg{})
	assert.Empty(t, h.model.statusMessage)
}

func TestModel_CopyFailure(t *testing.T) {
	orig := clipboardWrite
	clipboardWrite = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { clipboardWrite = orig })

	h := newTestHelper(t, sampleDoc)
	h.sendRune('c')
	assert.Equal(t, "Failed to copy path", h.model.statusMessage)
}

func TestModel_QuotedKeyPath(t *testing.T) {
	var copied string
	orig := clipboardWrite
	clipboardWrite = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { clipboardWrite = orig })

	h := newTestHelper(t, "[\"a b\"]\nc = 1\n")
	h.sendKey(tea.KeyEnter)
	h.sendRune('c')
	assert.Equal(t, `"a b".c`, copied)
}

func TestModel_Scrolling(t *testing.T) {
	var doc strings.Builder
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&doc, "k%02d = %d\n", i, i)
	}
	h := newTestHelper(t, doc.String())
	h.send(tea.WindowSizeMsg{Width: 80, Height: 15})

	visible := h.model.listHeight()
	require.Greater(t, visible, 0)

	h.sendKey(tea.KeyEnd)
	assert.Equal(t, 49, h.cursor())
	assert.Equal(t, 50-visible, h.model.top().offset)

	view := h.model.View()
	assert.Contains(t, view, "k49")
	assert.NotContains(t, view, "k00")

	h.sendKey(tea.KeyPgUp)
	assert.Equal(t, 49-visible, h.cursor())
	h.sendKey(tea.KeyHome)
	assert.Equal(t, 0, h.model.top().offset)
}

func TestModel_DecodeBudget(t *testing.T) {
	root, err := tomldoc.Parse(`s = "abcdefghijkl"`+"\nn = 1\n", &types.ParseOptions{MaxDecodeBytes: 4})
	require.NoError(t, err)
	m := newModelFromRoot("budget.toml", root)
	t.Cleanup(func() { _ = m.Close() })

	require.NoError(t, m.err)
	rows := m.top().rows
	require.Len(t, rows, 2)
	assert.Equal(t, tomldoc.KindUnknown, rows[0].kind)
	assert.Equal(t, "<too large to decode>", rows[0].preview)
	assert.Equal(t, "1", rows[1].preview)
}

func TestModel_View(t *testing.T) {
	h := newTestHelper(t, sampleDoc)
	h.send(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := h.model.View()
	assert.Contains(t, view, "TOML Explorer")
	assert.Contains(t, view, "File: test.toml")
	assert.Contains(t, view, "Path: (root)")
	assert.Contains(t, view, "title")
	assert.Contains(t, view, "refs: 1")
	assert.Contains(t, view, "1/3")

	h.sendKey(tea.KeyDown)
	h.sendKey(tea.KeyEnter)
	view = h.model.View()
	assert.Contains(t, view, "Path: owner")
	assert.Contains(t, view, "refs: 2")
}

func TestModel_ParseError(t *testing.T) {
	m := NewModel(filepath.Join(t.TempDir(), "missing.toml"), nil)
	require.Error(t, m.err)
	assert.True(t, errors.Is(m.err, types.ErrIO))
	assert.Contains(t, m.View(), "Error:")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	m = updated.(Model)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.NoError(t, m.Close())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "a⏎b", truncate("a\nb", 10))
	assert.Equal(t, "", truncate("abc", 0))
}

func TestNewModel_FromFile(t *testing.T) {
	path := testutil.WriteDoc(t, "fleet.toml", testutil.FleetDoc)

	released := false
	m := NewModel(path, &types.ParseOptions{OnRelease: func() { released = true }})
	require.NoError(t, m.err)
	assert.Equal(t, path, m.docPath)

	var labels []string
	for _, r := range m.top().rows {
		labels = append(labels, r.label)
	}
	assert.Equal(t, []string{"name", "updated", "owner", "servers", "crew"}, labels)
	assert.Equal(t, tomldoc.KindTimestamp, m.top().rows[1].kind)

	require.NoError(t, m.Close())
	assert.True(t, released)
}
