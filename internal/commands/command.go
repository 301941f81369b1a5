// Package commands provides the command interface and implementations
// for each menu action.
package commands

import (
	"context"
	"io"

	"todo/internal/config"
	"todo/internal/service"
)

// Input reads one line of user input per prompt.
type Input interface {
	// ReadLine writes prompt and returns the next line without its terminator.
	// Returns io.EOF once input is exhausted.
	ReadLine(prompt string) (string, error)
}

// Command defines the interface for menu actions.
type Command interface {
	// Name returns the command name, also accepted as a menu selection.
	Name() string

	// Key returns the menu number, e.g. "1".
	Key() string

	// Synopsis returns the menu label.
	Synopsis() string

	// Exits returns true if the shell should stop after running the command.
	Exits() bool

	// Run executes the command.
	// in supplies any follow-up prompts the command needs.
	// Returns a status code from the exitcode package.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, in Input, out, errOut io.Writer) int
}
