// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"todo/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.RWMutex
	tasks []service.Task

	// Error injection for testing. A write error is wrapped in a
	// *service.StorageError and returned after the mutation is applied,
	// the same way the file store behaves.
	ListErr  error
	WriteErr error

	// Calls records the operations invoked, e.g. "add", "complete 2".
	Calls []string
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// AddTask seeds a task without recording a call.
func (f *FakeService) AddTask(description string, priority service.Priority, completed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{
		ID:          uuid.New(),
		Description: description,
		IsCompleted: completed,
		Priority:    priority,
	})
}

// Tasks returns a copy of the current tasks.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result
}

// Add implements service.Service.
func (f *FakeService) Add(ctx context.Context, description string, priority service.Priority) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "add")

	description = strings.TrimSpace(description)
	if description == "" {
		return service.Task{}, service.ErrEmptyDescription
	}
	if !priority.Valid() {
		return service.Task{}, fmt.Errorf("%w: %q", service.ErrInvalidPriority, string(priority))
	}

	task := service.Task{ID: uuid.New(), Description: description, Priority: priority}
	f.tasks = append(f.tasks, task)
	return task, f.writeErr()
}

// List implements service.Service.
func (f *FakeService) List(ctx context.Context) ([]service.Entry, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	if len(f.tasks) == 0 {
		return nil, service.ErrNoTasks
	}
	entries := make([]service.Entry, len(f.tasks))
	for i, t := range f.tasks {
		entries[i] = service.Entry{Position: i + 1, Task: t}
	}
	return entries, nil
}

// Complete implements service.Service.
func (f *FakeService) Complete(ctx context.Context, position int) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, fmt.Sprintf("complete %d", position))

	if position < 1 || position > len(f.tasks) {
		return service.Task{}, fmt.Errorf("%w: %d", service.ErrOutOfRange, position)
	}
	f.tasks[position-1].IsCompleted = true
	return f.tasks[position-1], f.writeErr()
}

func (f *FakeService) writeErr() error {
	if f.WriteErr == nil {
		return nil
	}
	return &service.StorageError{Op: service.OpWrite, Path: "fake", Err: f.WriteErr}
}
