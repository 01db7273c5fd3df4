package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"passview/internal/adapters/tui/styles"
)

// DeleteModel is the confirmation dialog for deleting passwords.
type DeleteModel struct {
	ViewState

	paths []string
}

// NewDeleteModel creates the delete confirmation for the given paths.
func NewDeleteModel(paths []string) *DeleteModel {
	return &DeleteModel{paths: paths}
}

// Init initializes the delete dialog
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete dialog
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "n", "N":
			return m, func() tea.Msg { return CloseDialogMsg{} }
		case "enter", "y", "Y":
			return m, func() tea.Msg { return DeleteConfirmedMsg{} }
		}
	}

	return m, nil
}

// View renders the delete dialog
func (m *DeleteModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(fmt.Sprintf("Delete %d password(s)?", len(m.paths))))
	b.WriteString("\n")

	for _, p := range m.paths {
		b.WriteString(styles.EntryList.Render("  " + p))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.DialogWarning.Render("THIS ACTION IS IRREVERSIBLE!"))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("y/enter delete · n/esc cancel"))

	return styles.App.Render(styles.Dialog.Render(b.String()))
}
