// Package jsonfile implements the service.Service interface on top of a
// single JSON file holding the whole task list.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"todo/internal/service"
)

// CorruptSuffix is appended to the tasks file path when an unparseable file
// is moved aside at load time. If that backup already exists, a numeric
// suffix is added (tasks.json.corrupt.1, tasks.json.corrupt.2, ...).
const CorruptSuffix = ".corrupt"

// Options configures a Store.
type Options struct {
	// Logger receives load and save diagnostics. Defaults to log.Default().
	Logger *log.Logger

	// NewID generates task ids. Defaults to uuid.New.
	NewID func() uuid.UUID
}

// Store keeps the task list in memory and rewrites the backing file after
// every mutation. There is no file lock: concurrent processes race and the
// last writer wins.
type Store struct {
	mu      sync.Mutex
	path    string
	tasks   []service.Task
	logger  *log.Logger
	newID   func() uuid.UUID
	loadErr error
}

var _ service.Service = (*Store)(nil)

// New creates a Store backed by path and loads any existing tasks.
//
// A missing file yields an empty list. An unreadable or corrupt file also
// yields an empty list; the failure is logged and kept in LoadErr. A corrupt
// file is renamed to path+CorruptSuffix so the next save does not overwrite it.
func New(path string, opts Options) *Store {
	s := &Store{
		path:   path,
		logger: opts.Logger,
		newID:  opts.NewID,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.newID == nil {
		s.newID = uuid.New
	}
	s.load()
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// LoadErr returns the *service.StorageError recorded during initialization, if any.
func (s *Store) LoadErr() error {
	return s.loadErr
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("tasks file not found, starting empty", "path", s.path)
			return
		}
		s.loadErr = &service.StorageError{Op: service.OpRead, Path: s.path, Err: err}
		s.logger.Error("failed to read tasks", "path", s.path, "err", err)
		return
	}

	tasks, err := decode(data)
	if err != nil {
		s.loadErr = &service.StorageError{Op: service.OpRead, Path: s.path, Err: err}
		s.logger.Error("failed to load tasks, starting empty", "path", s.path, "err", err)
		s.quarantine()
		return
	}

	s.tasks = tasks
	s.logger.Debug("loaded tasks", "path", s.path, "count", len(tasks))
}

// quarantine moves a corrupt tasks file out of the way without replacing
// an earlier backup.
func (s *Store) quarantine() {
	backup, err := backupPath(s.path)
	if err != nil {
		s.logger.Error("failed to move corrupt tasks file aside", "path", s.path, "err", err)
		return
	}
	if err := os.Rename(s.path, backup); err != nil {
		s.logger.Error("failed to move corrupt tasks file aside", "path", s.path, "err", err)
		return
	}
	s.logger.Warn("moved corrupt tasks file aside", "backup", backup)
}

// backupPath returns path+CorruptSuffix, or path+CorruptSuffix+".N" with the
// first free N when that name is taken.
func backupPath(path string) (string, error) {
	backup := path + CorruptSuffix
	for n := 1; ; n++ {
		_, err := os.Lstat(backup)
		if errors.Is(err, fs.ErrNotExist) {
			return backup, nil
		}
		if err != nil {
			return "", err
		}
		backup = fmt.Sprintf("%s%s.%d", path, CorruptSuffix, n)
	}
}

// Add implements service.Service.
func (s *Store) Add(ctx context.Context, description string, priority service.Priority) (service.Task, error) {
	if err := ctx.Err(); err != nil {
		return service.Task{}, err
	}

	// json.Marshal would replace invalid bytes on disk anyway.
	description = strings.TrimSpace(strings.ToValidUTF8(description, "\uFFFD"))
	if description == "" {
		return service.Task{}, service.ErrEmptyDescription
	}
	if !priority.Valid() {
		return service.Task{}, fmt.Errorf("%w: %q", service.ErrInvalidPriority, string(priority))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := service.Task{
		ID:          s.newID(),
		Description: description,
		IsCompleted: false,
		Priority:    priority,
	}
	s.tasks = append(s.tasks, task)

	return task, s.save()
}

// List implements service.Service.
func (s *Store) List(ctx context.Context) ([]service.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tasks) == 0 {
		return nil, service.ErrNoTasks
	}

	entries := make([]service.Entry, len(s.tasks))
	for i, t := range s.tasks {
		entries[i] = service.Entry{Position: i + 1, Task: t}
	}
	return entries, nil
}

// Complete implements service.Service.
func (s *Store) Complete(ctx context.Context, position int) (service.Task, error) {
	if err := ctx.Err(); err != nil {
		return service.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if position < 1 || position > len(s.tasks) {
		return service.Task{}, fmt.Errorf("%w: %d", service.ErrOutOfRange, position)
	}

	s.tasks[position-1].IsCompleted = true
	task := s.tasks[position-1]

	return task, s.save()
}

// save rewrites the whole list. The caller must hold s.mu.
// The in-memory state is left as is on failure.
func (s *Store) save() error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []service.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return s.writeFailure(fmt.Errorf("marshal tasks: %w", err))
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.path, data); err != nil {
		return s.writeFailure(err)
	}

	s.logger.Debug("saved tasks", "path", s.path, "count", len(tasks))
	return nil
}

func (s *Store) writeFailure(err error) error {
	s.logger.Error("failed to save tasks", "path", s.path, "err", err)
	return &service.StorageError{Op: service.OpWrite, Path: s.path, Err: err}
}

// writeFileAtomic writes data to a temp file next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create tasks dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace tasks file: %w", err)
	}
	return nil
}
