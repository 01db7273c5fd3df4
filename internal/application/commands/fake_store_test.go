package commands

import (
	"os/exec"
	"path"
	"sort"

	"passview/internal/domain"
)

// fakeStore is an in-memory ports.Store for command tests. Paths in fail sets
// make the corresponding operation error for that entry.
type fakeStore struct {
	entries    map[string]bool
	failRemove map[string]bool
	failMove   map[string]bool
	failInsert bool
	pruned     int
}

func newFakeStore(paths ...string) *fakeStore {
	s := &fakeStore{
		entries:    make(map[string]bool),
		failRemove: make(map[string]bool),
		failMove:   make(map[string]bool),
	}
	for _, p := range paths {
		s.entries[p] = true
	}
	return s
}

func (s *fakeStore) ListEntries() ([]domain.Entry, error) {
	paths := make([]string, 0, len(s.entries))
	for p := range s.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	entries := make([]domain.Entry, 0, len(paths))
	for _, p := range paths {
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
	if s.failMove[e.String()] {
		return errFake
	}
	if !s.entries[e.String()] {
		return errFake
	}
	delete(s.entries, e.String())
	s.entries[path.Join(destinationDir, e.Name)] = true
	return nil
}

func (s *fakeStore) Remove(e domain.Entry) error {
	if s.failRemove[e.String()] || !s.entries[e.String()] {
		return errFake
	}
	delete(s.entries, e.String())
	return nil
}

func (s *fakeStore) Rename(e domain.Entry, newName string) error {
	if !s.entries[e.String()] {
		return errFake
	}
	delete(s.entries, e.String())
	s.entries[path.Join(e.Profile, e.Category, newName)] = true
	return nil
}

func (s *fakeStore) Insert(e domain.Entry, secret, username string) error {
	if s.failInsert {
		return errFake
	}
	s.entries[e.String()] = true
	return nil
}

func (s *fakeStore) PruneEmptyDirs() {
	s.pruned++
}

func (s *fakeStore) CopyLine(e domain.Entry, line int) error {
	return nil
}

func (s *fakeStore) EditCommand(e domain.Entry) *exec.Cmd {
	return exec.Command("true")
}

type fakeErr struct{}

func (fakeErr) Error() string { return "fake store failure" }

var errFake = fakeErr{}
