package commands

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry holds registered commands.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command // key and name map to command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the key or name is already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := c.Key()
	if _, exists := r.cmds[key]; exists {
		return fmt.Errorf("menu key already registered: %s", key)
	}

	name := strings.ToLower(c.Name())
	if _, exists := r.cmds[name]; exists {
		return fmt.Errorf("command already registered: %s", name)
	}

	r.cmds[key] = c
	r.cmds[name] = c
	return nil
}

// Find looks up a command by menu key or name.
// Surrounding whitespace is ignored and names match case-insensitively.
func (r *Registry) Find(selection string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[strings.ToLower(strings.TrimSpace(selection))]
	return cmd, ok
}

// All returns all unique commands sorted by menu key.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Collect unique commands by key
	seen := make(map[string]Command)
	for _, cmd := range r.cmds {
		seen[cmd.Key()] = cmd
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})

	result := make([]Command, len(keys))
	for i, key := range keys {
		result[i] = seen[key]
	}
	return result
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
