package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"passview/internal/adapters/tui/styles"
)

// MoveModel is the dialog for moving selected passwords to another directory.
type MoveModel struct {
	ViewState

	paths        []string
	input        textinput.Model
	keepCategory bool
}

// NewMoveModel creates the move dialog for the given password paths.
func NewMoveModel(paths []string) *MoveModel {
	input := textinput.New()
	input.Placeholder = "destination directory"
	input.CharLimit = 200
	input.Width = 48
	input.Focus()

	return &MoveModel{
		paths: paths,
		input: input,
	}
}

// Init initializes the move dialog
func (m *MoveModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the move dialog
func (m *MoveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return CloseDialogMsg{} }
		case "tab", "ctrl+k":
			m.keepCategory = !m.keepCategory
			return m, nil
		case "enter":
			destination := strings.TrimSpace(m.input.Value())
			if strings.HasPrefix(destination, "/") {
				m.SetMessage("The destination cannot start with a slash.", true)
				return m, nil
			}
			keep := m.keepCategory
			return m, func() tea.Msg {
				return MoveRequestedMsg{Destination: destination, KeepCategory: keep}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the move dialog
func (m *MoveModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(fmt.Sprintf("Move %d password(s)", len(m.paths))))
	b.WriteString("\n")

	for _, p := range m.paths {
		b.WriteString(styles.EntryList.Render("  " + p))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Destination"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	mark := "[ ]"
	if m.keepCategory {
		mark = "[x]"
	}
	b.WriteString(fmt.Sprintf("%s keep categories (tab to toggle)", mark))
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render(m.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("enter move · esc cancel"))

	return styles.App.Render(styles.Dialog.Render(b.String()))
}
