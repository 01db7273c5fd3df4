// Package passstore implements ports.Store against an on-disk password store
// in the layout used by pass(1): one GPG-encrypted file per entry. Structural
// operations (move, rename, remove, prune) manipulate the encrypted files
// directly; anything that needs cleartext shells out to pass.
package passstore

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"

	"passview/internal/domain"
)

const gpgExt = ".gpg"

// Store walks and mutates one password store directory.
type Store struct {
	root string
}

// New creates a store adapter rooted at path.
func New(path string) *Store {
	return &Store{root: path}
}

// Root returns the store directory.
func (s *Store) Root() string {
	return s.root
}

// IsInitialized reports whether the store directory exists.
func (s *Store) IsInitialized() bool {
	info, err := os.Stat(s.root)
	return err == nil && info.IsDir()
}

// ListEntries walks the store and returns all entries in canonical order.
// Hidden files and directories (".git", ".gpg-id", ...) and everything below
// hidden directories are excluded.
func (s *Store) ListEntries() ([]domain.Entry, error) {
	var (
		mu      sync.Mutex
		entries []domain.Entry
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal; the store may be
			// mutated underneath the walk.
			return nil
		}
		if path == s.root {
			return nil
		}
		if hidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), gpgExt) {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(strings.TrimSuffix(rel, gpgExt))

		mu.Lock()
		entries = append(entries, domain.ParseEntry(rel))
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk store: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return domain.Compare(entries[i], entries[j]) < 0
	})
	return entries, nil
}

// Exists reports whether the entry's file is present.
func (s *Store) Exists(e domain.Entry) bool {
	_, err := os.Stat(s.entryPath(e))
	return err == nil
}

// HasConflict reports whether any of the entries would land on an existing
// path when moved to destination. The check and the subsequent moves are not
// atomic against concurrent external writers; a clean result can still be
// followed by per-entry move failures.
func (s *Store) HasConflict(entries []domain.Entry, destination string, keepCategory bool) bool {
	destDir := filepath.Join(s.root, filepath.FromSlash(destination))
	if _, err := os.Stat(destDir); err != nil {
		return false
	}

	for _, e := range entries {
		target := filepath.Join(destDir, e.Name+gpgExt)
		if keepCategory {
			target = filepath.Join(destDir, filepath.FromSlash(e.Category), e.Name+gpgExt)
		}
		if _, err := os.Stat(target); err == nil {
			return true
		}
	}
	return false
}

// Move relocates the entry's file into destinationDir, creating it as needed.
// An occupied target is an error, never an overwrite; two same-named entries
// moved into the same directory fail on the second one.
func (s *Store) Move(e domain.Entry, destinationDir string) error {
	destDir := filepath.Join(s.root, filepath.FromSlash(destinationDir))
	if err := os.MkdirAll(destDir, 0o700); err != nil {
		return fmt.Errorf("failed to create %s: %w", destinationDir, err)
	}
	target := filepath.Join(destDir, e.Name+gpgExt)
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("failed to move %s: target already exists", e)
	}
	if err := os.Rename(s.entryPath(e), target); err != nil {
		return fmt.Errorf("failed to move %s: %w", e, err)
	}
	return nil
}

// Remove deletes the entry's file.
func (s *Store) Remove(e domain.Entry) error {
	if err := os.Remove(s.entryPath(e)); err != nil {
		return fmt.Errorf("failed to remove %s: %w", e, err)
	}
	return nil
}

// Rename moves the entry to newName under the same profile and category.
// newName may contain separators; intermediate directories are created.
func (s *Store) Rename(e domain.Entry, newName string) error {
	target := filepath.Join(s.root, filepath.FromSlash(e.Profile), filepath.FromSlash(e.Category), filepath.FromSlash(newName)+gpgExt)
	if err := os.MkdirAll(filepath.Dir(target), 0o700); err != nil {
		return fmt.Errorf("failed to create directories for %s: %w", newName, err)
	}
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("failed to rename %s: target already exists", e)
	}
	if err := os.Rename(s.entryPath(e), target); err != nil {
		return fmt.Errorf("failed to rename %s: %w", e, err)
	}
	return nil
}

// Insert creates the entry via pass insert --multiline, secret on the first
// line and username (when non-empty) on the second.
func (s *Store) Insert(e domain.Entry, secret, username string) error {
	content := secret + "\n"
	if username != "" {
		content += username + "\n"
	}

	cmd := exec.Command("pass", "insert", "--multiline", e.String())
	cmd.Env = s.passEnv()
	cmd.Stdin = strings.NewReader(content)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("pass insert failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// PruneEmptyDirs removes directories left empty by moves, renames and
// deletes. Hidden directories are left alone. Failures are ignored.
func (s *Store) PruneEmptyDirs() {
	// Deepest directories first so a chain of empty parents collapses in one
	// pass.
	var dirs []string
	_ = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path == s.root {
			return nil
		}
		if hidden(d.Name()) {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})

	sort.Slice(dirs, func(i, j int) bool { return len(dirs[i]) > len(dirs[j]) })
	for _, dir := range dirs {
		children, err := os.ReadDir(dir)
		if err == nil && len(children) == 0 {
			_ = os.Remove(dir)
		}
	}
}

// CopyLine copies the given 1-based line of the decrypted entry to the
// clipboard via pass show -c. pass handles the timed clipboard clear.
func (s *Store) CopyLine(e domain.Entry, line int) error {
	cmd := exec.Command("pass", "show", fmt.Sprintf("-c%d", line), e.String())
	cmd.Env = s.passEnv()
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pass show failed: %w", err)
	}
	return nil
}

// EditCommand returns the pass edit invocation for the entry, wired to the
// caller's terminal.
func (s *Store) EditCommand(e domain.Entry) *exec.Cmd {
	cmd := exec.Command("pass", "edit", e.String())
	cmd.Env = s.passEnv()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

func (s *Store) passEnv() []string {
	return append(os.Environ(), "PASSWORD_STORE_DIR="+s.root)
}

func (s *Store) entryPath(e domain.Entry) string {
	return filepath.Join(s.root, filepath.FromSlash(e.Profile), filepath.FromSlash(e.Category), e.Name+gpgExt)
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
