package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/tomlkit/pkg/types"
	"github.com/joshuapare/tomlkit/tomldoc"
)

// testHelper drives a Model through Update the way the program loop does.
type testHelper struct {
	t        *testing.T
	model    Model
	released bool
}

func newTestHelper(t *testing.T, doc string) *testHelper {
	t.Helper()
	h := &testHelper{t: t}
	root, err := tomldoc.Parse(doc, &types.ParseOptions{
		OnRelease: func() { h.released = true },
	})
	require.NoError(t, err)
	h.model = newModelFromRoot("test.toml", root)
	require.NoError(t, h.model.err)
	t.Cleanup(func() { _ = h.model.Close() })
	return h
}

func (h *testHelper) send(msg tea.Msg) tea.Cmd {
	updated, cmd := h.model.Update(msg)
	h.model = updated.(Model)
	return cmd
}

func (h *testHelper) sendKey(kt tea.KeyType) tea.Cmd {
	return h.send(tea.KeyMsg{Type: kt})
}

func (h *testHelper) sendRune(r rune) tea.Cmd {
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (h *testHelper) labels() []string {
	var out []string
	for _, r := range h.model.top().rows {
		out = append(out, r.label)
	}
	return out
}

func (h *testHelper) cursor() int {
	return h.model.top().cursor
}

func (h *testHelper) refs() int64 {
	return h.model.top().refs()
}
