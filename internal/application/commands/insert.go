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

// InsertResult contains the result of an insert operation
type InsertResult struct {
	Inserted domain.Entry
	Message  string
}

// InsertCommand creates a new entry via the external pass command. The
// existence check runs before the external write is attempted.
type InsertCommand struct {
	store ports.Store

	// Directory is the profile/category prefix; may be empty.
	Directory string
	Name      string
	Username  string
	Secret    string
}

// NewInsertCommand creates a new InsertCommand
func NewInsertCommand(store ports.Store, directory, name, username, secret string) *InsertCommand {
	return &InsertCommand{
		store:     store,
		Directory: directory,
		Name:      name,
		Username:  username,
		Secret:    secret,
	}
}

// Validate checks if the insert operation is valid
func (c *InsertCommand) Validate() error {
	if c.Name == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "name is required",
		}
	}
	if strings.Contains(c.Name, "/") {
		return &application.ValidationError{
			Field:   "name",
			Message: "name cannot contain a /",
		}
	}
	if strings.HasPrefix(c.Directory, "/") {
		return &application.ValidationError{
			Field:   "directory",
			Message: "directory cannot start with a /",
		}
	}
	if c.Secret == "" {
		return &application.ValidationError{
			Field:   "password",
			Message: "password is required",
		}
	}
	return nil
}

// Execute runs the insert command
func (c *InsertCommand) Execute(ctx context.Context) (*InsertResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry := domain.ParseEntry(path.Join(c.Directory, c.Name))
	if c.store.Exists(entry) {
		return nil, &application.ConflictError{Destination: entry.String()}
	}

	if err := c.store.Insert(entry, c.Secret, c.Username); err != nil {
		return nil, fmt.Errorf("failed to insert %s: %w", entry, err)
	}

	return &InsertResult{
		Inserted: entry,
		Message:  "Password insertion succeeded.",
	}, nil
}
