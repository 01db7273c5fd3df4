package passtable

import (
	"context"
	"fmt"

	"passview/internal/application/commands"
)

// Bulk operations. Each runs the store-side batch through the command layer,
// then reconciles the row list so the table reflects the store's new state.
// Per-item failures are reported in the command result, never as an error;
// an error return means the operation was rejected up front (validation or
// conflict) and no state changed.

// DeleteSelected removes every selected row's entry from the store. The
// reconciliation runs regardless of how many removals failed; failed entries
// persist as rows.
func (t *Table) DeleteSelected(ctx context.Context) (*commands.DeleteResult, error) {
	res, err := commands.NewDeleteCommand(t.store, t.SelectedEntries()).Execute(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.Sync(); err != nil {
		return res, fmt.Errorf("failed to resync after delete: %w", err)
	}
	return res, nil
}

// MoveSelected moves every selected row's entry into destination. A conflict
// on any target aborts the whole operation before any file is touched. Rows
// moved successfully have their identifier rewritten in place before the
// reconciliation runs, so the merge sees identifiers matching the new store
// state and selection survives the move.
func (t *Table) MoveSelected(ctx context.Context, destination string, keepCategory bool) (*commands.MoveResult, error) {
	res, err := commands.NewMoveCommand(t.store, t.SelectedEntries(), destination, keepCategory).Execute(ctx)
	if err != nil {
		return nil, err
	}

	for _, moved := range res.Moved {
		for i := range t.rows {
			if t.rows[i].Entry == moved.From {
				t.rows[i].Entry = moved.To
				break
			}
		}
	}
	t.sortRows()

	if err := t.Sync(); err != nil {
		return res, fmt.Errorf("failed to resync after move: %w", err)
	}
	return res, nil
}

// RenameCurrent renames the cursor row's entry. The engine observes a rename
// as one removal plus one insertion, so after the reconciliation the cursor
// is re-pointed at the renamed entry by identity lookup.
func (t *Table) RenameCurrent(ctx context.Context, newName string) (*commands.RenameResult, error) {
	current, ok := t.Current()
	if !ok {
		return nil, fmt.Errorf("no entry under cursor")
	}

	res, err := commands.NewRenameCommand(t.store, current.Entry, newName).Execute(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.Sync(); err != nil {
		return res, fmt.Errorf("failed to resync after rename: %w", err)
	}
	t.selectEntry(res.Renamed)
	return res, nil
}

// Insert creates a new entry and moves the cursor onto it.
func (t *Table) Insert(ctx context.Context, directory, name, username, secret string) (*commands.InsertResult, error) {
	res, err := commands.NewInsertCommand(t.store, directory, name, username, secret).Execute(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.Sync(); err != nil {
		return res, fmt.Errorf("failed to resync after insert: %w", err)
	}
	t.selectEntry(res.Inserted)
	return res, nil
}
