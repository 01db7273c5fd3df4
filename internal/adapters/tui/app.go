package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"passview/internal/adapters/tui/views"
	"passview/internal/config"
	"passview/internal/passtable"
	"passview/internal/ports"
)

type resyncMsg struct{}

type editorFinishedMsg struct{ err error }

// App is the root TUI model. The table view is always alive underneath; a
// dialog, when open, captures input while resync ticks keep flowing to the
// table so external store changes land even mid-dialog.
type App struct {
	cfg    config.Config
	store  ports.Store
	pass   *passtable.Table
	table  *views.TableModel
	dialog tea.Model

	width  int
	height int
}

// NewApp creates the application model over store.
func NewApp(cfg config.Config, store ports.Store) *App {
	pass := passtable.New(store)
	return &App{
		cfg:   cfg,
		store: store,
		pass:  pass,
		table: views.NewTableModel(pass, cfg.ClipTime),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.table.Init(), a.tick())
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(a.cfg.ResyncInterval(), func(time.Time) tea.Msg {
		return resyncMsg{}
	})
}

// Update handles messages and routes them to the active view
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.table.Update(msg)
		if a.dialog != nil {
			a.dialog.Update(msg)
		}
		return a, nil

	case resyncMsg:
		a.table.SyncNow()
		return a, a.tick()

	case views.ShowMoveDialogMsg:
		return a, a.openDialog(views.NewMoveModel(msg.Paths))

	case views.ShowDeleteDialogMsg:
		return a, a.openDialog(views.NewDeleteModel(msg.Paths))

	case views.ShowRenameDialogMsg:
		return a, a.openDialog(views.NewRenameModel(msg.Path))

	case views.ShowNewEntryDialogMsg:
		return a, a.openDialog(views.NewNewEntryModel(&a.cfg))

	case views.ShowFindDialogMsg:
		return a, a.openDialog(views.NewFindModel(msg.Paths))

	case views.CloseDialogMsg:
		a.dialog = nil
		return a, nil

	case views.MoveRequestedMsg, views.DeleteConfirmedMsg,
		views.RenameRequestedMsg, views.InsertRequestedMsg,
		views.FindSelectedMsg:
		a.dialog = nil
		_, cmd := a.table.Update(msg)
		return a, cmd

	case views.EditRequestedMsg:
		current, ok := a.pass.Current()
		if !ok {
			return a, nil
		}
		return a, tea.ExecProcess(a.store.EditCommand(current.Entry), func(err error) tea.Msg {
			return editorFinishedMsg{err: err}
		})

	case editorFinishedMsg:
		a.table.SyncNow()
		if msg.err != nil {
			a.table.SetMessage("The editor exited with an error.", true)
		}
		return a, nil
	}

	if a.dialog != nil {
		var cmd tea.Cmd
		a.dialog, cmd = a.dialog.Update(msg)
		return a, cmd
	}

	_, cmd := a.table.Update(msg)
	return a, cmd
}

func (a *App) openDialog(dialog tea.Model) tea.Cmd {
	a.dialog = dialog
	if a.width > 0 {
		a.dialog.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	return a.dialog.Init()
}

// View renders the active view
func (a *App) View() string {
	if a.dialog != nil {
		return a.dialog.View()
	}
	return a.table.View()
}
