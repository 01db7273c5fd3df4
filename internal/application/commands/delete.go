package commands

import (
	"context"
	"fmt"

	"passview/internal/application"
	"passview/internal/domain"
	"passview/internal/ports"
)

// DeleteResult contains the result of a batch delete operation
type DeleteResult struct {
	Failed  int
	Message string
}

// DeleteCommand removes a batch of entries. Failures are counted per entry
// and never abort the rest of the batch.
type DeleteCommand struct {
	store   ports.Store
	Targets []domain.Entry
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(store ports.Store, targets []domain.Entry) *DeleteCommand {
	return &DeleteCommand{
		store:   store,
		Targets: targets,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCommand) Validate() error {
	if len(c.Targets) == 0 {
		return &application.ValidationError{
			Field:   "targets",
			Message: "at least one entry is required",
		}
	}
	return nil
}

// Execute runs the delete command. Empty directories are pruned afterwards
// regardless of how many removals failed.
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	failed := 0
	for _, target := range c.Targets {
		if err := c.store.Remove(target); err != nil {
			failed++
		}
	}
	c.store.PruneEmptyDirs()

	result := &DeleteResult{Failed: failed, Message: "Removal succeeded."}
	if failed > 0 {
		result.Message = fmt.Sprintf("failed to remove %d password(s)", failed)
	}
	return result, nil
}
