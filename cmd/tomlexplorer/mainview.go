package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// mainViewModel wraps the main UI for use as overlay background
type mainViewModel struct {
	model *Model
}

func (m mainViewModel) Init() tea.Cmd { return nil }

// Update is a no-op; the parent Model handles all messages.
func (m mainViewModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m mainViewModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.model.renderHeader(),
		m.model.renderContent(),
		m.model.renderStatus(),
	)
}

// popupModel is a static modal drawn over the main UI.
type popupModel struct {
	content string
}

func (p popupModel) Init() tea.Cmd { return nil }

func (p popupModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return p, nil }

func (p popupModel) View() string {
	return modalStyle.Render(p.content)
}
