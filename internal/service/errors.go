package service

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDescription is returned when a task description is empty or whitespace.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrInvalidPriority is returned for priority text other than low, medium or high.
	ErrInvalidPriority = errors.New("invalid priority (use low, medium, or high)")

	// ErrOutOfRange is returned when a position is outside 1..count.
	ErrOutOfRange = errors.New("task number out of range")

	// ErrNoTasks signals an empty task list.
	ErrNoTasks = errors.New("no tasks found")
)

// StorageOp identifies which side of persistence failed.
type StorageOp string

const (
	OpRead  StorageOp = "read"
	OpWrite StorageOp = "write"
)

// StorageError reports a failure reading or writing the tasks file.
type StorageError struct {
	Op   StorageOp
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s tasks file %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsWriteFailure reports whether err contains a StorageError for a write.
func IsWriteFailure(err error) bool {
	var se *StorageError
	return errors.As(err, &se) && se.Op == OpWrite
}
