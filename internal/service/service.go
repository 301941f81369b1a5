// Package service defines the storage-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task operations.
// Commands only talk to the task list through this interface.
type Service interface {
	// Add validates the input, appends a new incomplete task and persists the list.
	// On a write failure the created task is returned together with a
	// *StorageError; the in-memory append is kept.
	Add(ctx context.Context, description string, priority Priority) (Task, error)

	// List returns the tasks in insertion order with 1-based positions.
	// Returns ErrNoTasks if the list is empty.
	List(ctx context.Context) ([]Entry, error)

	// Complete marks the task at the 1-based position as completed and persists the list.
	// Returns an error wrapping ErrOutOfRange if position is not in 1..count.
	// Completing an already completed task succeeds.
	Complete(ctx context.Context, position int) (Task, error)
}
