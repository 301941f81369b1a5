// Package exitcode defines command status codes and process exit codes.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates invalid input (empty description, bad priority,
	// bad or out-of-range task number).
	UserError = 1

	// StorageError indicates the tasks file could not be written.
	// The in-memory change was still applied.
	StorageError = 3

	// Interrupted is the process exit code after SIGINT or SIGTERM.
	Interrupted = 130
)
