package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"passview/internal/adapters/tui/styles"
	"passview/internal/config"
	"passview/internal/generator"
)

const (
	fieldDirectory = iota
	fieldName
	fieldUsername
	fieldSecret
	fieldCount
)

// NewEntryModel is the dialog for inserting a new password. The secret field
// is pre-filled with a generated password and can be regenerated, lengthened
// or switched to passphrase mode without leaving the dialog.
type NewEntryModel struct {
	ViewState

	inputs  []textinput.Model
	focus   int
	length  int
	words   int
	useWord bool
	reveal  bool
	cfg     *config.Config
}

// NewNewEntryModel creates the new-entry dialog using the configured
// generator defaults.
func NewNewEntryModel(cfg *config.Config) *NewEntryModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 200
		inputs[i].Width = 48
	}
	inputs[fieldDirectory].Placeholder = "directory (profile/category)"
	inputs[fieldName].Placeholder = "name"
	inputs[fieldUsername].Placeholder = "username (optional)"
	inputs[fieldSecret].Placeholder = "password"
	inputs[fieldSecret].EchoMode = textinput.EchoPassword
	inputs[fieldDirectory].Focus()

	m := &NewEntryModel{
		inputs: inputs,
		length: cfg.PasswordLength,
		words:  cfg.PassphraseWords,
		cfg:    cfg,
	}
	m.regenerate()
	return m
}

// Init initializes the new-entry dialog
func (m *NewEntryModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the new-entry dialog
func (m *NewEntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return CloseDialogMsg{} }
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case "ctrl+r":
			m.regenerate()
			return m, nil
		case "ctrl+s":
			m.reveal = !m.reveal
			if m.reveal {
				m.inputs[fieldSecret].EchoMode = textinput.EchoNormal
			} else {
				m.inputs[fieldSecret].EchoMode = textinput.EchoPassword
			}
			return m, nil
		case "ctrl+w":
			m.useWord = !m.useWord
			m.regenerate()
			return m, nil
		case "ctrl+a":
			m.bump(1)
			return m, nil
		case "ctrl+x":
			m.bump(-1)
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *NewEntryModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *NewEntryModel) bump(delta int) {
	if m.useWord {
		if n := m.words + delta; n >= 1 {
			m.words = n
		}
	} else {
		if n := m.length + delta; n >= 1 {
			m.length = n
		}
	}
	m.regenerate()
}

func (m *NewEntryModel) regenerate() {
	var secret string
	var err error
	if m.useWord {
		words, werr := generator.LoadWordlist(config.ExpandHome(m.cfg.WordsFile))
		if werr != nil {
			m.SetMessage(fmt.Sprintf("wordlist: %v", werr), true)
			return
		}
		secret, err = generator.Passphrase(words, m.words, "-")
	} else {
		secret, err = generator.Password(generator.Alphabet(true, true, true, true), m.length)
	}
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.ClearMessage()
	m.inputs[fieldSecret].SetValue(secret)
}

func (m *NewEntryModel) submit() (tea.Model, tea.Cmd) {
	directory := strings.TrimSpace(m.inputs[fieldDirectory].Value())
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	username := strings.TrimSpace(m.inputs[fieldUsername].Value())
	secret := m.inputs[fieldSecret].Value()

	if name == "" {
		m.SetMessage("The name cannot be empty.", true)
		return m, nil
	}
	if strings.Contains(name, "/") {
		m.SetMessage("The name cannot contain a slash.", true)
		return m, nil
	}
	if strings.HasPrefix(directory, "/") {
		m.SetMessage("The directory cannot start with a slash.", true)
		return m, nil
	}
	if secret == "" {
		m.SetMessage("The password cannot be empty.", true)
		return m, nil
	}

	return m, func() tea.Msg {
		return InsertRequestedMsg{
			Directory: directory,
			Name:      name,
			Username:  username,
			Secret:    secret,
		}
	}
}

// View renders the new-entry dialog
func (m *NewEntryModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("New password"))
	b.WriteString("\n")

	labels := []string{"Directory", "Name", "Username", "Password"}
	for i, input := range m.inputs {
		b.WriteString(styles.InputLabel.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	mode := fmt.Sprintf("symbols, length %d", m.length)
	if m.useWord {
		mode = fmt.Sprintf("words, count %d", m.words)
	}
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("generator: " + mode))
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render(m.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render(
		"enter save · tab next field · ctrl+r regenerate · ctrl+w words/symbols · ctrl+a/+x longer/shorter · ctrl+s reveal · esc cancel"))

	return styles.App.Render(styles.Dialog.Render(b.String()))
}
