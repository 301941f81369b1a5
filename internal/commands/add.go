package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string     { return "add" }
func (c *AddCmd) Key() string      { return "1" }
func (c *AddCmd) Synopsis() string { return "Add task" }
func (c *AddCmd) Exits() bool      { return false }

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Input, out, errOut io.Writer) int {
	description, err := in.ReadLine("Enter task description: ")
	if err != nil {
		return exitcode.UserError
	}
	if strings.TrimSpace(description) == "" {
		fmt.Fprintf(errOut, "error: %v\n", service.ErrEmptyDescription)
		return exitcode.UserError
	}

	priorityText, err := in.ReadLine("Enter priority (low/medium/high): ")
	if err != nil {
		return exitcode.UserError
	}
	priority, err := service.ParsePriority(priorityText)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", service.ErrInvalidPriority)
		return exitcode.UserError
	}

	task, err := svc.Add(ctx, description, priority)
	if err != nil && !service.IsWriteFailure(err) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "task added: %s [%s]\n", output.Description(task), task.Priority)
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: tasks not saved: %v\n", err)
		return exitcode.StorageError
	}
	return exitcode.Success
}
