package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"passview/internal/adapters/tui/styles"
	"passview/internal/application/commands"
	"passview/internal/domain"
)

const findDialogLimit = 10

// FindModel is the fuzzy search dialog. Typing re-ranks the password paths;
// enter jumps the table cursor to the highlighted match.
type FindModel struct {
	ViewState

	entries []domain.Entry
	input   textinput.Model
	matches []domain.Entry
	index   int
}

// NewFindModel creates the find dialog over the given password paths.
func NewFindModel(paths []string) *FindModel {
	entries := make([]domain.Entry, len(paths))
	for i, p := range paths {
		entries[i] = domain.ParseEntry(p)
	}

	input := textinput.New()
	input.Placeholder = "search"
	input.CharLimit = 200
	input.Width = 48
	input.Focus()

	return &FindModel{
		entries: entries,
		input:   input,
		matches: commands.Search(entries, ""),
	}
}

// Init initializes the find dialog
func (m *FindModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the find dialog
func (m *FindModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return CloseDialogMsg{} }
		case "up", "ctrl+p":
			if m.index > 0 {
				m.index--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.index < m.lastVisible() {
				m.index++
			}
			return m, nil
		case "enter":
			if len(m.matches) == 0 {
				return m, func() tea.Msg { return CloseDialogMsg{} }
			}
			path := m.matches[m.index].String()
			return m, func() tea.Msg { return FindSelectedMsg{Path: path} }
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Any query change re-ranks the matches and puts the highlight back on
	// the best one.
	if m.input.Value() != before {
		m.matches = commands.Search(m.entries, strings.TrimSpace(m.input.Value()))
		m.index = 0
	}
	return m, cmd
}

// lastVisible is the highest index the highlight may reach; the list is
// truncated at findDialogLimit, so hidden matches are not navigable.
func (m *FindModel) lastVisible() int {
	last := len(m.matches) - 1
	if last >= findDialogLimit {
		last = findDialogLimit - 1
	}
	return last
}

// View renders the find dialog
func (m *FindModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Find password"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.matches) == 0 {
		b.WriteString(styles.Subtitle.Render("No matches."))
		b.WriteString("\n")
	}

	for i, e := range m.matches {
		if i >= findDialogLimit {
			break
		}
		line := "  " + e.String()
		if i == m.index {
			line = styles.TableCursor.Render("> " + e.String())
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("↑/↓ choose · enter jump · esc cancel"))

	return styles.App.Render(styles.Dialog.Render(b.String()))
}
