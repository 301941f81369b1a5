// Package cli runs the interactive menu loop.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

// Shell handles reading menu selections and dispatching them to commands.
// It keeps no state between iterations beyond the input stream.
type Shell struct {
	registry *commands.Registry
	svc      service.Service
	cfg      *config.Config
	logger   *log.Logger
}

// NewShell creates a shell dispatching selections through registry to svc.
func NewShell(registry *commands.Registry, svc service.Service, cfg *config.Config, logger *log.Logger) *Shell {
	if logger == nil {
		logger = log.Default()
	}
	return &Shell{
		registry: registry,
		svc:      svc,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run reads selections from in until the exit command, end of input, or
// context cancellation. Command failures are reported and the loop continues.
// Returns the process exit code.
func (s *Shell) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	prompter := NewPrompter(ctx, in, out)
	defer prompter.Close()
	items := s.menu()
	prompt := choicePrompt(items)

	if !s.cfg.Quiet {
		fmt.Fprintln(out, commands.Banner())
	}

	for {
		if ctx.Err() != nil {
			return exitcode.Interrupted
		}

		output.FormatMenu(out, items)
		selection, err := prompter.ReadLine(prompt)
		if err != nil {
			return s.inputDone(ctx, prompter, out)
		}

		cmd, ok := s.registry.Find(selection)
		if !ok {
			fmt.Fprintf(errOut, "error: invalid choice: %q (%s)\n", strings.TrimSpace(selection), selectHint(items))
			continue
		}

		s.logger.Debug("dispatching command", "command", cmd.Name())
		code := cmd.Run(ctx, s.cfg, s.svc, prompter, out, errOut)
		if code != exitcode.Success {
			s.logger.Debug("command failed", "command", cmd.Name(), "code", code)
		}

		if cmd.Exits() {
			return exitcode.Success
		}
		if prompter.Closed() || ctx.Err() != nil {
			return s.inputDone(ctx, prompter, out)
		}
	}
}

// inputDone maps the reason input stopped to an exit code.
func (s *Shell) inputDone(ctx context.Context, prompter *Prompter, out io.Writer) int {
	if ctx.Err() != nil {
		fmt.Fprintln(out)
		return exitcode.Interrupted
	}
	if err := prompter.Err(); err != nil {
		s.logger.Error("failed to read input", "err", err)
	}
	// Terminate the pending prompt line.
	fmt.Fprintln(out)
	return exitcode.Success
}

func (s *Shell) menu() []output.MenuItem {
	all := s.registry.All()
	items := make([]output.MenuItem, len(all))
	for i, cmd := range all {
		items[i] = output.MenuItem{Key: cmd.Key(), Label: cmd.Synopsis()}
	}
	return items
}

// choicePrompt returns e.g. "Enter choice (1-4): ".
func choicePrompt(items []output.MenuItem) string {
	return fmt.Sprintf("Enter choice (%s): ", keyRange(items))
}

func selectHint(items []output.MenuItem) string {
	return "select " + keyRange(items)
}

func keyRange(items []output.MenuItem) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0].Key
	}
	return items[0].Key + "-" + items[len(items)-1].Key
}
