package commands

import (
	"context"
	"fmt"
	"path"
	"strings"

	"passview/internal/application"
	"passview/internal/domain"
	"passview/internal/ports"
)

// MovedEntry records one entry's identifier change.
type MovedEntry struct {
	From domain.Entry
	To   domain.Entry
}

// MoveResult contains the result of a batch move operation
type MoveResult struct {
	Moved   []MovedEntry
	Failed  int
	Message string
}

// MoveCommand moves a batch of entries to a destination directory. A single
// conflict check runs across all targets before any file is touched; if it
// trips, the whole operation is aborted with no side effects. After that,
// each entry is moved independently and failures are counted.
type MoveCommand struct {
	store        ports.Store
	Targets      []domain.Entry
	Destination  string
	KeepCategory bool
}

// NewMoveCommand creates a new MoveCommand
func NewMoveCommand(store ports.Store, targets []domain.Entry, destination string, keepCategory bool) *MoveCommand {
	return &MoveCommand{
		store:        store,
		Targets:      targets,
		Destination:  destination,
		KeepCategory: keepCategory,
	}
}

// Validate checks if the move operation is valid
func (c *MoveCommand) Validate() error {
	if len(c.Targets) == 0 {
		return &application.ValidationError{
			Field:   "targets",
			Message: "at least one entry is required",
		}
	}
	if strings.HasPrefix(c.Destination, "/") {
		return &application.ValidationError{
			Field:   "destination",
			Message: "destination cannot start with a /",
		}
	}
	return nil
}

// Execute runs the move command
func (c *MoveCommand) Execute(ctx context.Context) (*MoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.store.HasConflict(c.Targets, c.Destination, c.KeepCategory) {
		return nil, &application.ConflictError{Destination: c.Destination}
	}

	result := &MoveResult{}
	for _, target := range c.Targets {
		destDir := c.Destination
		if c.KeepCategory {
			destDir = path.Join(c.Destination, target.Category)
		}

		if err := c.store.Move(target, destDir); err != nil {
			result.Failed++
			continue
		}
		result.Moved = append(result.Moved, MovedEntry{
			From: target,
			To:   domain.ParseEntry(path.Join(destDir, target.Name)),
		})
	}
	c.store.PruneEmptyDirs()

	result.Message = "Move succeeded."
	if result.Failed > 0 {
		result.Message = fmt.Sprintf("failed to move %d password(s)", result.Failed)
	}
	return result, nil
}
