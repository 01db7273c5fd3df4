package passtable

import (
	"slices"

	"passview/internal/domain"
	"passview/internal/ports"
)

// Table owns the ordered row list and cursor for one store view. All methods
// are driven from a single event loop; there is no internal locking.
type Table struct {
	store  ports.Store
	rows   []Row
	cursor int
}

// New creates an empty table over store. Call Sync to populate it.
func New(store ports.Store) *Table {
	return &Table{store: store}
}

// Store returns the backing store.
func (t *Table) Store() ports.Store {
	return t.store
}

// Rows returns the current row list. Callers must not mutate it.
func (t *Table) Rows() []Row {
	return t.rows
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Cursor returns the current cursor index.
func (t *Table) Cursor() int {
	return t.cursor
}

// Current returns the row under the cursor.
func (t *Table) Current() (Row, bool) {
	if len(t.rows) == 0 {
		return Row{}, false
	}
	return t.rows[t.cursor], true
}

// SetCursor moves the cursor, clamped to the row list.
func (t *Table) SetCursor(i int) {
	t.cursor = clamp(i, len(t.rows))
}

// CursorUp moves the cursor one row up, stopping at the top.
func (t *Table) CursorUp() {
	t.SetCursor(t.cursor - 1)
}

// CursorDown moves the cursor one row down, stopping at the bottom.
func (t *Table) CursorDown() {
	t.SetCursor(t.cursor + 1)
}

// Sync reconciles the row list against the store's current contents,
// preserving selection by entry identity and keeping the cursor on the same
// entry where possible. Safe to run at any quiescent point, including with
// selections mid-flight.
func (t *Table) Sync() error {
	fresh, err := t.store.ListEntries()
	if err != nil {
		return err
	}
	t.rows, t.cursor = SyncRows(t.rows, fresh, t.cursor)
	return nil
}

// ToggleCurrent flips the selection flag of the cursor row.
func (t *Table) ToggleCurrent() {
	if len(t.rows) > 0 {
		t.rows[t.cursor].Selected = !t.rows[t.cursor].Selected
	}
}

// SelectAll marks every row selected.
func (t *Table) SelectAll() {
	for i := range t.rows {
		t.rows[i].Selected = true
	}
}

// DeselectAll clears every selection flag.
func (t *Table) DeselectAll() {
	for i := range t.rows {
		t.rows[i].Selected = false
	}
}

// ReverseSelection flips every row's selection flag.
func (t *Table) ReverseSelection() {
	for i := range t.rows {
		t.rows[i].Selected = !t.rows[i].Selected
	}
}

// SelectUp selects the cursor row, moves the cursor one step up (clamped, no
// wraparound) and selects the new cursor row. Mirrors a shift+arrow range
// select.
func (t *Table) SelectUp() {
	t.markAndMove(-1, true)
}

// SelectDown is SelectUp in the other direction.
func (t *Table) SelectDown() {
	t.markAndMove(1, true)
}

// DeselectUp deselects the cursor row, moves up and deselects again.
func (t *Table) DeselectUp() {
	t.markAndMove(-1, false)
}

// DeselectDown is DeselectUp in the other direction.
func (t *Table) DeselectDown() {
	t.markAndMove(1, false)
}

func (t *Table) markAndMove(step int, selected bool) {
	if len(t.rows) == 0 {
		return
	}
	t.rows[t.cursor].Selected = selected
	t.SetCursor(t.cursor + step)
	t.rows[t.cursor].Selected = selected
}

// SelectedRows returns the rows with their selection flag set. When nothing
// is explicitly selected the cursor row is substituted, so a non-empty table
// never yields an empty target set. Returns nil for an empty table.
func (t *Table) SelectedRows() []Row {
	var selected []Row
	for _, r := range t.rows {
		if r.Selected {
			selected = append(selected, r)
		}
	}
	if selected == nil && len(t.rows) > 0 {
		selected = []Row{t.rows[t.cursor]}
	}
	return selected
}

// SelectedEntries returns the entries of SelectedRows.
func (t *Table) SelectedEntries() []domain.Entry {
	rows := t.SelectedRows()
	entries := make([]domain.Entry, len(rows))
	for i, r := range rows {
		entries[i] = r.Entry
	}
	return entries
}

// SelectPath parses path and moves the cursor to the row with that exact
// entry. No-op when the entry is not in the table.
func (t *Table) SelectPath(path string) bool {
	return t.selectEntry(domain.ParseEntry(path))
}

func (t *Table) selectEntry(e domain.Entry) bool {
	for i, r := range t.rows {
		if r.Entry == e {
			t.cursor = i
			return true
		}
	}
	return false
}

// sortRows restores canonical order after in-place identifier rewrites and
// refreshes the ordinals.
func (t *Table) sortRows() {
	slices.SortFunc(t.rows, func(a, b Row) int {
		return domain.Compare(a.Entry, b.Entry)
	})
	for i := range t.rows {
		t.rows[i].Ordinal = i + 1
	}
	t.cursor = clamp(t.cursor, len(t.rows))
}
