package passtable

import (
	"testing"

	"passview/internal/domain"
)

// rowsOf builds a sorted row list from paths, selecting those in selected.
func rowsOf(t *testing.T, paths []string, selected ...string) []Row {
	t.Helper()
	isSelected := make(map[string]bool)
	for _, s := range selected {
		isSelected[s] = true
	}
	rows := make([]Row, len(paths))
	for i, p := range paths {
		rows[i] = Row{Entry: domain.ParseEntry(p), Selected: isSelected[p], Ordinal: i + 1}
	}
	return rows
}

func entriesOf(paths ...string) []domain.Entry {
	entries := make([]domain.Entry, len(paths))
	for i, p := range paths {
		entries[i] = domain.ParseEntry(p)
	}
	return entries
}

func assertRows(t *testing.T, got []Row, wantPaths []string, wantSelected ...string) {
	t.Helper()
	if len(got) != len(wantPaths) {
		t.Fatalf("got %d rows %v, want %d", len(got), got, len(wantPaths))
	}
	isSelected := make(map[string]bool)
	for _, s := range wantSelected {
		isSelected[s] = true
	}
	for i, r := range got {
		if r.String() != wantPaths[i] {
			t.Errorf("rows[%d] = %q, want %q", i, r.String(), wantPaths[i])
		}
		if r.Selected != isSelected[wantPaths[i]] {
			t.Errorf("rows[%d] (%s) Selected = %v, want %v", i, wantPaths[i], r.Selected, isSelected[wantPaths[i]])
		}
		if r.Ordinal != i+1 {
			t.Errorf("rows[%d] Ordinal = %d, want %d", i, r.Ordinal, i+1)
		}
	}
}

func TestSyncRowsUnchangedStore(t *testing.T) {
	paths := []string{"personal/bank", "work/github", "work/mail"}
	old := rowsOf(t, paths, "work/github")

	for cursor := range paths {
		got, gotCursor := SyncRows(old, entriesOf(paths...), cursor)
		assertRows(t, got, paths, "work/github")
		if gotCursor != cursor {
			t.Errorf("cursor = %d, want %d", gotCursor, cursor)
		}
	}
}

func TestSyncRowsIdempotent(t *testing.T) {
	paths := []string{"personal/bank", "work/mail"}
	fresh := entriesOf("personal/bank", "personal/new", "work/mail")

	first, c1 := SyncRows(rowsOf(t, paths, "work/mail"), fresh, 1)
	second, c2 := SyncRows(first, fresh, c1)

	if len(first) != len(second) || c1 != c2 {
		t.Fatalf("second sync diverged: %v/%d vs %v/%d", first, c1, second, c2)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("rows[%d] diverged: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSyncRowsSelectionSurvivesUnrelatedRemoval(t *testing.T) {
	old := rowsOf(t, []string{"personal/bank", "work/github", "work/mail"}, "work/mail")
	fresh := entriesOf("personal/bank", "work/mail")

	got, _ := SyncRows(old, fresh, 0)
	assertRows(t, got, []string{"personal/bank", "work/mail"}, "work/mail")
}

func TestSyncRowsCursorFollowsInsertionBefore(t *testing.T) {
	old := rowsOf(t, []string{"work/github", "work/mail"})
	fresh := entriesOf("personal/bank", "work/github", "work/mail")

	got, cursor := SyncRows(old, fresh, 1)
	if cursor != 2 {
		t.Errorf("cursor = %d, want 2", cursor)
	}
	if got[cursor].String() != "work/mail" {
		t.Errorf("cursor row = %q, want work/mail", got[cursor].String())
	}
}

func TestSyncRowsCursorIgnoresInsertionAfter(t *testing.T) {
	old := rowsOf(t, []string{"personal/bank", "work/github"})
	fresh := entriesOf("personal/bank", "work/github", "work/mail")

	got, cursor := SyncRows(old, fresh, 0)
	if cursor != 0 {
		t.Errorf("cursor = %d, want 0", cursor)
	}
	if got[cursor].String() != "personal/bank" {
		t.Errorf("cursor row = %q, want personal/bank", got[cursor].String())
	}
}

func TestSyncRowsCursorFollowsRemovalBefore(t *testing.T) {
	old := rowsOf(t, []string{"personal/bank", "work/github", "work/mail"})
	fresh := entriesOf("work/github", "work/mail")

	got, cursor := SyncRows(old, fresh, 2)
	if cursor != 1 {
		t.Errorf("cursor = %d, want 1", cursor)
	}
	if got[cursor].String() != "work/mail" {
		t.Errorf("cursor row = %q, want work/mail", got[cursor].String())
	}
}

func TestSyncRowsCursorClamped(t *testing.T) {
	old := rowsOf(t, []string{"personal/bank", "work/github", "work/mail"})

	got, cursor := SyncRows(old, entriesOf("personal/bank"), 2)
	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	if cursor != 0 {
		t.Errorf("cursor = %d, want 0", cursor)
	}
}

func TestSyncRowsEmptyStore(t *testing.T) {
	old := rowsOf(t, []string{"work/mail"})

	got, cursor := SyncRows(old, nil, 0)
	if len(got) != 0 {
		t.Errorf("got %d rows, want 0", len(got))
	}
	if cursor != 0 {
		t.Errorf("cursor = %d, want 0", cursor)
	}
}

func TestSyncRowsFromEmpty(t *testing.T) {
	got, cursor := SyncRows(nil, entriesOf("personal/bank", "work/mail"), 0)
	assertRows(t, got, []string{"personal/bank", "work/mail"})
	if cursor != 0 {
		t.Errorf("cursor = %d, want 0", cursor)
	}
}

func TestSyncRowsTailAppendsAreUnselected(t *testing.T) {
	old := rowsOf(t, []string{"personal/bank"}, "personal/bank")
	fresh := entriesOf("personal/bank", "work/github", "work/mail")

	got, _ := SyncRows(old, fresh, 0)
	assertRows(t, got, []string{"personal/bank", "work/github", "work/mail"}, "personal/bank")
}
