package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	bg := mainViewModel{model: &m}
	if m.detail != nil {
		// The overlay is rebuilt on every render so it sees the current model.
		fg := popupModel{content: m.renderDetail()}
		return overlay.New(fg, bg, overlay.Center, overlay.Center, 0, 0).View()
	}
	return bg.View()
}

// renderHeader renders the title, the document name and the current path
func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		headerStyle.Render("TOML Explorer"),
		"  ",
		pathStyle.Render("File: "+m.docPath),
	)

	path := "(root)"
	if f := m.top(); f != nil && f.path != "" {
		path = f.path
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, pathStyle.Render("Path: "+path))
}

// renderContent renders the slots of the view on top of the stack
func (m Model) renderContent() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	inner := width - 4 // room for the pane border
	if inner < 20 {
		inner = 20
	}

	pane := paneStyle.Width(inner).Height(m.listHeight())

	f := m.top()
	if f == nil || len(f.rows) == 0 {
		return pane.Render(statusStyle.UnsetMarginTop().Render("(empty)"))
	}

	labelWidth := 0
	for _, r := range f.rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.label))
	}
	cw := inner - 2 // pane padding
	labelWidth = min(labelWidth, cw/3)

	var b strings.Builder
	end := min(f.offset+m.listHeight(), len(f.rows))
	for i := f.offset; i < end; i++ {
		r := f.rows[i]
		label := truncate(r.label, labelWidth)
		kind := fmt.Sprintf("%-9s", r.kind)
		previewWidth := cw - labelWidth - len(kind) - 4
		preview := truncate(r.preview, previewWidth)

		if i == f.cursor {
			line := fmt.Sprintf("%-*s  %s  %s", labelWidth, label, kind, preview)
			b.WriteString(selectedStyle.Width(cw).Render(line))
		} else {
			b.WriteString(rowStyle.Render(
				keyNameStyle.Render(fmt.Sprintf("%-*s", labelWidth, label)) + "  " +
					kindStyle(r.kind).Render(kind) + "  " + preview))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return pane.Render(b.String())
}

// renderStatus renders the position, live reference count and key hints
func (m Model) renderStatus() string {
	f := m.top()
	if f == nil {
		return ""
	}

	pos := "0/0"
	if len(f.rows) > 0 {
		pos = fmt.Sprintf("%d/%d", f.cursor+1, len(f.rows))
	}
	parts := []string{
		statusCountStyle.Render(pos),
		f.describe(),
		fmt.Sprintf("refs: %d", f.refs()),
		fmt.Sprintf("depth: %d", len(m.frames)-1),
	}
	line := strings.Join(parts, " │ ")
	if m.statusMessage != "" {
		line += " │ " + statusMessageStyle.Render(m.statusMessage)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		statusStyle.Render(line),
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)
}

// renderHelpOverlay replaces the screen with the key bindings, centered.
func (m Model) renderHelpOverlay() string {
	helpBox := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Render("Keyboard Shortcuts"),
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		hintStyle.Render("Press Esc or ? to close this help"),
	))
	if m.width <= 0 || m.height <= 0 {
		return helpBox
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}

func (m Model) renderDetail() string {
	width := min(60, max(m.width, defaultWidth)-8)
	body := lipgloss.NewStyle().Width(width).MaxHeight(m.listHeight()).Render(m.detail.body)
	return lipgloss.JoinVertical(lipgloss.Left,
		modalTitleStyle.Render(m.detail.title),
		body,
		"",
		hintStyle.Render("esc to close"),
	)
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", "⏎")
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
