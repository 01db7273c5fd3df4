package views

import (
	"fmt"
	"os/exec"
	"path"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"passview/internal/domain"
	"passview/internal/passtable"
)

// fakeStore is an in-memory ports.Store for driving the view models.
type fakeStore struct {
	entries map[string]bool
	copied  []string
}

func newFakeStore(paths ...string) *fakeStore {
	s := &fakeStore{entries: make(map[string]bool)}
	for _, p := range paths {
		s.entries[p] = true
	}
	return s
}

func (s *fakeStore) ListEntries() ([]domain.Entry, error) {
	entries := make([]domain.Entry, 0, len(s.entries))
	for p := range s.entries {
		entries = append(entries, domain.ParseEntry(p))
	}
	domain.SortEntries(entries)
	return entries, nil
}

func (s *fakeStore) Exists(e domain.Entry) bool {
	return s.entries[e.String()]
}

func (s *fakeStore) HasConflict(entries []domain.Entry, destination string, keepCategory bool) bool {
	for _, e := range entries {
		target := path.Join(destination, e.Name)
		if keepCategory {
			target = path.Join(destination, e.Category, e.Name)
		}
		if s.entries[target] {
			return true
		}
	}
	return false
}

func (s *fakeStore) Move(e domain.Entry, destinationDir string) error {
	delete(s.entries, e.String())
	s.entries[path.Join(destinationDir, e.Name)] = true
	return nil
}

func (s *fakeStore) Remove(e domain.Entry) error {
	delete(s.entries, e.String())
	return nil
}

func (s *fakeStore) Rename(e domain.Entry, newName string) error {
	delete(s.entries, e.String())
	s.entries[path.Join(e.Profile, e.Category, newName)] = true
	return nil
}

func (s *fakeStore) Insert(e domain.Entry, secret, username string) error {
	s.entries[e.String()] = true
	return nil
}

func (s *fakeStore) PruneEmptyDirs() {}

func (s *fakeStore) CopyLine(e domain.Entry, line int) error {
	s.copied = append(s.copied, e.String())
	return nil
}

func (s *fakeStore) EditCommand(e domain.Entry) *exec.Cmd {
	return exec.Command("true")
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestTable(t *testing.T, paths ...string) *TableModel {
	t.Helper()
	return newTableOver(newFakeStore(paths...))
}

func newTableOver(store *fakeStore) *TableModel {
	m := NewTableModel(passtable.New(store), 45)
	m.SyncNow()
	return m
}

func TestTableDeleteKeyOpensConfirmation(t *testing.T) {
	m := newTestTable(t, "work/mail/gmail", "personal/bank/hsbc")

	_, cmd := m.Update(keyMsg("d"))
	if cmd == nil {
		t.Fatal("expected a command opening the delete dialog")
	}
	msg, ok := cmd().(ShowDeleteDialogMsg)
	if !ok {
		t.Fatalf("expected ShowDeleteDialogMsg, got %T", cmd())
	}
	// No explicit selection, so the cursor row is the target.
	if len(msg.Paths) != 1 || msg.Paths[0] != "personal/bank/hsbc" {
		t.Errorf("expected cursor row as target, got %v", msg.Paths)
	}
}

func TestTableDeleteConfirmedRemovesRow(t *testing.T) {
	store := newFakeStore("work/mail/gmail", "personal/bank/hsbc")
	m := newTableOver(store)

	m.Update(keyMsg(" ")) // select personal/bank/hsbc
	m.Update(DeleteConfirmedMsg{})

	if store.entries["personal/bank/hsbc"] {
		t.Error("expected the selected entry removed from the store")
	}
	if got := m.pass.Len(); got != 1 {
		t.Errorf("expected 1 row after delete, got %d", got)
	}
}

func TestTableMoveConflictLeavesRowsUntouched(t *testing.T) {
	store := newFakeStore("work/mail/gmail", "archive/gmail")
	m := newTableOver(store)

	// Moving work/mail/gmail to archive/ would land on archive/gmail.
	m.pass.SelectPath("work/mail/gmail")
	m.Update(MoveRequestedMsg{Destination: "archive"})

	if !m.MessageErr {
		t.Error("expected an error message after a conflicting move")
	}
	if !store.entries["work/mail/gmail"] {
		t.Error("expected the source entry untouched after a conflict")
	}
}

func TestTableCopyPasswordUsesCursorEntry(t *testing.T) {
	store := newFakeStore("work/mail/gmail")
	m := newTableOver(store)

	m.Update(keyMsg("p"))

	if len(store.copied) != 1 || store.copied[0] != "work/mail/gmail" {
		t.Errorf("expected one copy of the cursor entry, got %v", store.copied)
	}
	if m.MessageErr || m.Message == "" {
		t.Errorf("expected a success notification, got %q err=%v", m.Message, m.MessageErr)
	}
}

func TestTableFindSelectedMovesCursor(t *testing.T) {
	m := newTestTable(t, "personal/bank/hsbc", "work/mail/gmail")

	m.Update(FindSelectedMsg{Path: "work/mail/gmail"})

	current, ok := m.pass.Current()
	if !ok || current.String() != "work/mail/gmail" {
		t.Errorf("expected cursor on found entry, got %v", current)
	}
}

func TestMoveDialogRejectsAbsoluteDestination(t *testing.T) {
	m := NewMoveModel([]string{"work/mail/gmail"})
	m.input.SetValue("/archive")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Fatal("expected no message for an absolute destination")
	}
	if m.Message == "" {
		t.Error("expected a validation message")
	}
}

func TestMoveDialogEmitsRequest(t *testing.T) {
	m := NewMoveModel([]string{"work/mail/gmail"})
	m.input.SetValue("archive")
	m.keepCategory = true

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a move request command")
	}
	msg, ok := cmd().(MoveRequestedMsg)
	if !ok {
		t.Fatalf("expected MoveRequestedMsg, got %T", cmd())
	}
	if msg.Destination != "archive" || !msg.KeepCategory {
		t.Errorf("unexpected request: %+v", msg)
	}
}

func TestRenameDialogRejectsEmptyName(t *testing.T) {
	m := NewRenameModel("work/mail/gmail")
	m.input.SetValue("  ")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Fatal("expected no message for an empty name")
	}
	if m.Message == "" {
		t.Error("expected a validation message")
	}
}

func TestRenameDialogPrefixStripsName(t *testing.T) {
	m := NewRenameModel("work/mail/gmail")
	if m.prefix != "work/mail/" {
		t.Errorf("expected prefix work/mail/, got %q", m.prefix)
	}
	if got := m.input.Value(); got != "gmail" {
		t.Errorf("expected input prefilled with gmail, got %q", got)
	}
}

func TestFindDialogRanksMatches(t *testing.T) {
	m := NewFindModel([]string{"personal/bank/hsbc", "work/mail/gmail", "work/chat/slack"})
	for _, r := range "wrkmail" {
		m.Update(keyMsg(string(r)))
	}

	if len(m.matches) == 0 {
		t.Fatal("expected at least one match")
	}
	if got := m.matches[0].String(); got != "work/mail/gmail" {
		t.Errorf("expected work/mail/gmail ranked first, got %q", got)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	msg, ok := cmd().(FindSelectedMsg)
	if !ok {
		t.Fatalf("expected FindSelectedMsg, got %T", cmd())
	}
	if msg.Path != "work/mail/gmail" {
		t.Errorf("expected the top match selected, got %q", msg.Path)
	}
}

func TestFindDialogResetsHighlightOnQueryChange(t *testing.T) {
	m := NewFindModel([]string{"personal/bank/hsbc", "work/mail/gmail", "work/chat/slack"})

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.index != 2 {
		t.Fatalf("expected index 2 after two downs, got %d", m.index)
	}

	m.Update(keyMsg("w"))
	if m.index != 0 {
		t.Errorf("expected highlight reset to the top match, got %d", m.index)
	}
}

func TestFindDialogNavigationStaysInVisibleWindow(t *testing.T) {
	paths := make([]string, 15)
	for i := range paths {
		paths[i] = fmt.Sprintf("work/site%02d", i)
	}
	m := NewFindModel(paths)

	for i := 0; i < 20; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.index != findDialogLimit-1 {
		t.Errorf("expected index clamped to %d, got %d", findDialogLimit-1, m.index)
	}
}

func TestDeleteDialogListsTargetsAndWarns(t *testing.T) {
	m := NewDeleteModel([]string{"work/mail/gmail", "personal/bank/hsbc"})

	view := m.View()
	if !strings.Contains(view, "work/mail/gmail") || !strings.Contains(view, "personal/bank/hsbc") {
		t.Error("expected all targets listed in the confirmation")
	}
	if !strings.Contains(view, "IRREVERSIBLE") {
		t.Error("expected the irreversibility warning")
	}

	_, cmd := m.Update(keyMsg("y"))
	if cmd == nil {
		t.Fatal("expected a confirmation command")
	}
	if _, ok := cmd().(DeleteConfirmedMsg); !ok {
		t.Fatalf("expected DeleteConfirmedMsg, got %T", cmd())
	}
}
