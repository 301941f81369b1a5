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
	Register(&CompleteCmd{})
}

// CompleteCmd implements the complete command.
// The listing is always printed right before the number prompt so the
// positions the user sees match the number they type.
type CompleteCmd struct{}

func (c *CompleteCmd) Name() string     { return "complete" }
func (c *CompleteCmd) Key() string      { return "3" }
func (c *CompleteCmd) Synopsis() string { return "Complete task" }
func (c *CompleteCmd) Exits() bool      { return false }

func (c *CompleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Input, out, errOut io.Writer) int {
	entries, code := printListing(ctx, cfg, svc, out, errOut)
	if code != exitcode.Success || len(entries) == 0 {
		return code
	}

	text, err := in.ReadLine("Enter task number to complete: ")
	if err != nil {
		return exitcode.UserError
	}
	position, err := ParsePosition(text)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	wasCompleted := false
	if position >= 1 && position <= len(entries) {
		wasCompleted = entries[position-1].Task.IsCompleted
	}

	task, err := svc.Complete(ctx, position)
	if err != nil && !service.IsWriteFailure(err) {
		if errors.Is(err, service.ErrOutOfRange) {
			fmt.Fprintf(errOut, "error: task number out of range: %d\n", position)
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	if !cfg.Quiet {
		if wasCompleted {
			fmt.Fprintf(out, "task already completed: %s\n", output.Description(task))
		} else {
			fmt.Fprintf(out, "task completed: %s\n", output.Description(task))
		}
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: tasks not saved: %v\n", err)
		return exitcode.StorageError
	}
	return exitcode.Success
}
