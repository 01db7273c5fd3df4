package ports

import (
	"os/exec"

	"passview/internal/domain"
)

// Store is the boundary to the password store. It is implemented by an
// adapter that walks the store directory and shells out to pass(1); the table
// engine works against any implementation honoring this contract.
//
// The store is externally owned and may be mutated concurrently by other
// processes. Conflict checks are therefore check-then-act: a clean HasConflict
// does not guarantee the subsequent Move succeeds, and callers surface such
// failures as per-item counts rather than aborting the batch.
type Store interface {
	// ListEntries enumerates the current store contents in canonical order,
	// excluding hidden files and directories and their descendants.
	ListEntries() ([]domain.Entry, error)

	// Exists reports whether the entry is currently present in the store.
	Exists(e domain.Entry) bool

	// HasConflict reports whether moving any of the entries to destination
	// would land on a path that already exists. With keepCategory the
	// computed destination is destination/category/name, otherwise
	// destination/name.
	HasConflict(entries []domain.Entry, destination string, keepCategory bool) bool

	// Move relocates the entry's file into destinationDir, creating the
	// directory as needed.
	Move(e domain.Entry, destinationDir string) error

	// Remove deletes the entry's file.
	Remove(e domain.Entry) error

	// Rename moves the entry to a new name under the same profile and
	// category, creating intermediate directories as needed.
	Rename(e domain.Entry, newName string) error

	// Insert creates a new encrypted entry via pass, with the secret on the
	// first line and username (if non-empty) on the second. It must not be
	// called for an entry that already exists.
	Insert(e domain.Entry, secret, username string) error

	// PruneEmptyDirs removes directories left empty by moves, renames and
	// deletes. Best-effort: failures are ignored.
	PruneEmptyDirs()

	// CopyLine copies the given 1-based line of the decrypted entry to the
	// clipboard via pass show -c.
	CopyLine(e domain.Entry, line int) error

	// EditCommand returns the command that opens the entry in pass edit.
	// Callers run it while the interactive session is suspended.
	EditCommand(e domain.Entry) *exec.Cmd
}
