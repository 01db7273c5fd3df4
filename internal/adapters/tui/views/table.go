package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"passview/internal/adapters/tui/styles"
	"passview/internal/passtable"
)

// TableKeyMap defines key bindings for the table view
type TableKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	SelectUp     key.Binding
	SelectDown   key.Binding
	DeselectUp   key.Binding
	DeselectDown key.Binding
	Toggle       key.Binding
	SelectAll    key.Binding
	DeselectAll  key.Binding
	Reverse      key.Binding
	New          key.Binding
	Delete       key.Binding
	Edit         key.Binding
	Move         key.Binding
	Rename       key.Binding
	Find         key.Binding
	CopyPassword key.Binding
	CopyUsername key.Binding
	YankPath     key.Binding
	Help         key.Binding
	Quit         key.Binding
}

var TableKeys = TableKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	SelectUp: key.NewBinding(
		key.WithKeys("shift+up", "K"),
		key.WithHelp("shift+↑", "select up"),
	),
	SelectDown: key.NewBinding(
		key.WithKeys("shift+down", "J"),
		key.WithHelp("shift+↓", "select down"),
	),
	DeselectUp: key.NewBinding(
		key.WithKeys("ctrl+up"),
		key.WithHelp("ctrl+↑", "deselect up"),
	),
	DeselectDown: key.NewBinding(
		key.WithKeys("ctrl+down"),
		key.WithHelp("ctrl+↓", "deselect down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "select/deselect"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "select all"),
	),
	DeselectAll: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear selection"),
	),
	Reverse: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reverse selection"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Move: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "move"),
	),
	Rename: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "rename"),
	),
	Find: key.NewBinding(
		key.WithKeys("f", "/"),
		key.WithHelp("f,/", "find"),
	),
	CopyPassword: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "copy password"),
	),
	CopyUsername: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "copy username"),
	),
	YankPath: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yank path"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap
func (k TableKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.New, k.Delete, k.Edit, k.Move, k.Find, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k TableKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.SelectUp, k.SelectDown, k.DeselectUp, k.DeselectDown},
		{k.Toggle, k.SelectAll, k.DeselectAll, k.Reverse, k.Find},
		{k.New, k.Delete, k.Edit, k.Move, k.Rename},
		{k.CopyPassword, k.CopyUsername, k.YankPath, k.Quit},
	}
}

// TableModel is the model for the main password table view. It owns the row
// list and cursor through passtable.Table; the embedded bubbles table is a
// render surface refreshed from that state, never the other way around.
type TableModel struct {
	ViewState

	pass     *passtable.Table
	view     table.Model
	keys     TableKeyMap
	help     help.Model
	clipTime int
}

// NewTableModel creates the table view over pass. clipTime is only used in
// the copy notification; the actual clipboard clearing is done by pass(1).
func NewTableModel(pass *passtable.Table, clipTime int) *TableModel {
	columns := []table.Column{
		{Title: "", Width: 2},
		{Title: "#", Width: 4},
		{Title: "Profile", Width: 16},
		{Title: "Category", Width: 24},
		{Title: "Name", Width: 32},
	}

	view := table.New(table.WithColumns(columns), table.WithFocused(true))
	s := table.DefaultStyles()
	s.Header = styles.TableHeader
	s.Selected = styles.TableCursor
	view.SetStyles(s)

	return &TableModel{
		pass:     pass,
		view:     view,
		keys:     TableKeys,
		help:     help.New(),
		clipTime: clipTime,
	}
}

// Init performs the initial reconciliation.
func (m *TableModel) Init() tea.Cmd {
	m.SyncNow()
	return nil
}

// SyncNow reconciles against the store and refreshes the projection. Called
// by the app on every resync tick; safe to run with dialogs open or
// selections mid-flight.
func (m *TableModel) SyncNow() {
	if err := m.pass.Sync(); err != nil {
		m.SetMessage(err.Error(), true)
	}
	m.refresh()
}

// Update handles messages for the table view
func (m *TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.resize()
		return m, nil

	case MoveRequestedMsg:
		res, err := m.pass.MoveSelected(context.Background(), msg.Destination, msg.KeepCategory)
		m.refresh()
		if err != nil {
			m.SetMessage(err.Error(), true)
			return m, nil
		}
		m.SetMessage(res.Message, res.Failed > 0)
		return m, nil

	case DeleteConfirmedMsg:
		res, err := m.pass.DeleteSelected(context.Background())
		m.refresh()
		if err != nil {
			m.SetMessage(err.Error(), true)
			return m, nil
		}
		m.SetMessage(res.Message, res.Failed > 0)
		return m, nil

	case RenameRequestedMsg:
		res, err := m.pass.RenameCurrent(context.Background(), msg.NewName)
		m.refresh()
		if err != nil {
			m.SetMessage(err.Error(), true)
			return m, nil
		}
		m.SetMessage(res.Message, false)
		return m, nil

	case InsertRequestedMsg:
		res, err := m.pass.Insert(context.Background(), msg.Directory, msg.Name, msg.Username, msg.Secret)
		m.refresh()
		if err != nil {
			m.SetMessage(err.Error(), true)
			return m, nil
		}
		m.SetMessage(res.Message, false)
		return m, nil

	case FindSelectedMsg:
		m.pass.SelectPath(msg.Path)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *TableModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ClearMessage()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.pass.CursorUp()
	case key.Matches(msg, m.keys.Down):
		m.pass.CursorDown()
	case key.Matches(msg, m.keys.SelectUp):
		m.pass.SelectUp()
	case key.Matches(msg, m.keys.SelectDown):
		m.pass.SelectDown()
	case key.Matches(msg, m.keys.DeselectUp):
		m.pass.DeselectUp()
	case key.Matches(msg, m.keys.DeselectDown):
		m.pass.DeselectDown()
	case key.Matches(msg, m.keys.Toggle):
		m.pass.ToggleCurrent()
	case key.Matches(msg, m.keys.SelectAll):
		m.pass.SelectAll()
	case key.Matches(msg, m.keys.DeselectAll):
		m.pass.DeselectAll()
	case key.Matches(msg, m.keys.Reverse):
		m.pass.ReverseSelection()

	case key.Matches(msg, m.keys.New):
		return m, func() tea.Msg { return ShowNewEntryDialogMsg{} }

	case key.Matches(msg, m.keys.Delete):
		if m.pass.Len() > 0 {
			paths := m.selectedPaths()
			return m, func() tea.Msg { return ShowDeleteDialogMsg{Paths: paths} }
		}

	case key.Matches(msg, m.keys.Move):
		if m.pass.Len() > 0 {
			paths := m.selectedPaths()
			return m, func() tea.Msg { return ShowMoveDialogMsg{Paths: paths} }
		}

	case key.Matches(msg, m.keys.Rename):
		if current, ok := m.pass.Current(); ok {
			path := current.String()
			return m, func() tea.Msg { return ShowRenameDialogMsg{Path: path} }
		}

	case key.Matches(msg, m.keys.Find):
		if m.pass.Len() > 0 {
			paths := m.allPaths()
			return m, func() tea.Msg { return ShowFindDialogMsg{Paths: paths} }
		}

	case key.Matches(msg, m.keys.Edit):
		if m.pass.Len() > 0 {
			return m, func() tea.Msg { return EditRequestedMsg{} }
		}

	case key.Matches(msg, m.keys.CopyPassword):
		m.copyLine(1, "Password")
	case key.Matches(msg, m.keys.CopyUsername):
		m.copyLine(2, "Username")

	case key.Matches(msg, m.keys.YankPath):
		if current, ok := m.pass.Current(); ok {
			if err := clipboard.WriteAll(current.String()); err != nil {
				m.SetMessage(fmt.Sprintf("clipboard: %v", err), true)
			} else {
				m.SetMessage(fmt.Sprintf("Copied path %s", current), false)
			}
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.refresh()
	return m, nil
}

// copyLine copies the given line of the cursor entry via pass show -c. Line 1
// is the password, line 2 the username.
func (m *TableModel) copyLine(line int, what string) {
	current, ok := m.pass.Current()
	if !ok {
		return
	}
	if err := m.pass.Store().CopyLine(current.Entry, line); err != nil {
		m.SetMessage(fmt.Sprintf("Copy failed, ensure the %s field exists.", strings.ToLower(what)), true)
		return
	}
	m.SetMessage(fmt.Sprintf("%s copied, will be cleared in %d seconds.", what, m.clipTime), false)
}

func (m *TableModel) selectedPaths() []string {
	rows := m.pass.SelectedRows()
	paths := make([]string, len(rows))
	for i, r := range rows {
		paths[i] = r.String()
	}
	return paths
}

func (m *TableModel) allPaths() []string {
	paths := make([]string, m.pass.Len())
	for i, r := range m.pass.Rows() {
		paths[i] = r.String()
	}
	return paths
}

// refresh projects the owned row list and cursor into the bubbles table.
func (m *TableModel) refresh() {
	rows := make([]table.Row, 0, m.pass.Len())
	for _, r := range m.pass.Rows() {
		mark := ""
		if r.Selected {
			mark = styles.SelectedMark.Render("■")
		}
		rows = append(rows, table.Row{
			mark,
			strconv.Itoa(r.Ordinal),
			r.Entry.Profile,
			r.Entry.Category,
			r.Entry.Name,
		})
	}
	m.view.SetRows(rows)
	m.view.SetCursor(m.pass.Cursor())
}

func (m *TableModel) resize() {
	if m.Width == 0 {
		return
	}
	m.help.Width = m.Width

	// Fixed mark and ordinal columns; the rest shared between the path
	// columns.
	rest := m.Width - 6 - 10
	if rest < 30 {
		rest = 30
	}
	m.view.SetColumns([]table.Column{
		{Title: "", Width: 2},
		{Title: "#", Width: 4},
		{Title: "Profile", Width: rest * 25 / 100},
		{Title: "Category", Width: rest * 35 / 100},
		{Title: "Name", Width: rest * 40 / 100},
	})
	if m.Height > 10 {
		m.view.SetHeight(m.Height - 8)
	}
}

// View renders the table view
func (m *TableModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("passview"))
	b.WriteString("\n")

	if m.pass.Len() == 0 {
		b.WriteString(styles.Subtitle.Render("The password store is empty."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.view.View())
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return styles.App.Render(b.String())
}
