package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"passview/internal/adapters/tui/styles"
	"passview/internal/domain"
)

// RenameModel is the dialog for renaming the password under the cursor.
type RenameModel struct {
	ViewState

	path   string
	prefix string
	input  textinput.Model
}

// NewRenameModel creates the rename dialog for the given password path.
func NewRenameModel(path string) *RenameModel {
	entry := domain.ParseEntry(path)

	input := textinput.New()
	input.Placeholder = "new name"
	input.SetValue(entry.Name)
	input.CharLimit = 200
	input.Width = 48
	input.Focus()

	prefix := strings.TrimSuffix(path, entry.Name)

	return &RenameModel{
		path:   path,
		prefix: prefix,
		input:  input,
	}
}

// Init initializes the rename dialog
func (m *RenameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the rename dialog
func (m *RenameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return CloseDialogMsg{} }
		case "enter":
			newName := strings.TrimSpace(m.input.Value())
			if newName == "" {
				m.SetMessage("The name cannot be empty.", true)
				return m, nil
			}
			if strings.HasPrefix(newName, "/") || strings.HasSuffix(newName, "/") {
				m.SetMessage("The name cannot start or end with a slash.", true)
				return m, nil
			}
			return m, func() tea.Msg { return RenameRequestedMsg{NewName: newName} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the rename dialog
func (m *RenameModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Rename password"))
	b.WriteString("\n")
	b.WriteString(styles.EntryList.Render("  " + m.path))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("New name"))
	b.WriteString("\n")
	if m.prefix != "" {
		b.WriteString(styles.Subtitle.Render(m.prefix))
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render(m.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("enter rename · esc cancel"))

	return styles.App.Render(styles.Dialog.Render(b.String()))
}
