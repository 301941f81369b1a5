package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string     { return "list" }
func (c *ListCmd) Key() string      { return "2" }
func (c *ListCmd) Synopsis() string { return "List tasks" }
func (c *ListCmd) Exits() bool      { return false }

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Input, out, errOut io.Writer) int {
	_, code := printListing(ctx, cfg, svc, out, errOut)
	return code
}

// printListing writes the task table, or "no tasks found" for an empty list.
// The entries are returned so callers can act on what the user just saw.
func printListing(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) ([]service.Entry, int) {
	entries, err := svc.List(ctx)
	if errors.Is(err, service.ErrNoTasks) {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return nil, exitcode.Success
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, exitcode.StorageError
	}

	output.FormatTable(out, entries)
	return entries, exitcode.Success
}
