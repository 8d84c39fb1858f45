package cli

import (
	"fmt"
	"os"

	"github.com/tagsel/tagsel/pkg/store"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() (*CommandContext, error) {
	return &CommandContext{
		ProjectPath: store.TagselDir,
	}, nil
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no %s directory found. Run 'tagsel init' first", store.TagselDir)
	}

	c.validated = true
	return nil
}
