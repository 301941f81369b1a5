package commands

import (
	"context"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&ExitCmd{})
}

// ExitCmd implements the exit command.
type ExitCmd struct{}

func (c *ExitCmd) Name() string     { return "exit" }
func (c *ExitCmd) Key() string      { return "4" }
func (c *ExitCmd) Synopsis() string { return "Exit" }
func (c *ExitCmd) Exits() bool      { return true }

func (c *ExitCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Input, out, errOut io.Writer) int {
	if !cfg.Quiet {
		fmt.Fprintln(out, "goodbye")
	}
	return exitcode.Success
}
