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

// RenameResult contains the result of a rename operation
type RenameResult struct {
	Renamed domain.Entry
	Message string
}

// RenameCommand renames a single entry, keeping its profile and category.
type RenameCommand struct {
	store   ports.Store
	Target  domain.Entry
	NewName string
}

// NewRenameCommand creates a new RenameCommand
func NewRenameCommand(store ports.Store, target domain.Entry, newName string) *RenameCommand {
	return &RenameCommand{
		store:   store,
		Target:  target,
		NewName: newName,
	}
}

// Validate checks if the rename operation is valid. The new name may contain
// interior separators (renaming into a subdirectory) but cannot start or end
// with one.
func (c *RenameCommand) Validate() error {
	if c.NewName == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "name is required",
		}
	}
	if strings.HasPrefix(c.NewName, "/") || strings.HasSuffix(c.NewName, "/") {
		return &application.ValidationError{
			Field:   "name",
			Message: "name cannot start or end with a /",
		}
	}
	return nil
}

// Execute runs the rename command
func (c *RenameCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	renamed := domain.ParseEntry(path.Join(c.Target.Profile, c.Target.Category, c.NewName))
	if c.store.Exists(renamed) {
		return nil, &application.ConflictError{Destination: renamed.String()}
	}

	if err := c.store.Rename(c.Target, c.NewName); err != nil {
		return nil, fmt.Errorf("failed to rename: %w", err)
	}
	c.store.PruneEmptyDirs()

	return &RenameResult{
		Renamed: renamed,
		Message: fmt.Sprintf("Renamed %s to %s", c.Target, renamed),
	}, nil
}
