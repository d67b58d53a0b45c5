package commands

import (
	"errors"
	"iter"
	"strings"
)

var (
	// ErrDuplicateCommand is returned when a name or alias is already taken
	ErrDuplicateCommand = errors.New("command name already registered")

	// ErrCommandNotFound is returned when no command matches a name
	ErrCommandNotFound = errors.New("command not found")

	// ErrInvalidCommand is returned when a command is missing required fields
	ErrInvalidCommand = errors.New("command must have a name and an execute function")
)

// Registry holds the set of known commands keyed by name and alias.
// Registration happens once at startup; lookups afterwards are concurrent
// and lock-free.
type Registry struct {
	byName map[string]*Command
	order  []*Command
}

// NewRegistry creates an empty command registry
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Command),
	}
}

// Register adds a command to the registry. The name and every alias must be
// unused, case-insensitively.
func (r *Registry) Register(cmd *Command) error {
	if cmd == nil || cmd.Name == "" || cmd.Execute == nil {
		return ErrInvalidCommand
	}

	names := make([]string, 0, len(cmd.Aliases)+1)
	names = append(names, strings.ToLower(cmd.Name))
	for _, alias := range cmd.Aliases {
		names = append(names, strings.ToLower(alias))
	}

	for _, name := range names {
		if _, exists := r.byName[name]; exists {
			return ErrDuplicateCommand
		}
	}

	for _, name := range names {
		r.byName[name] = cmd
	}
	r.order = append(r.order, cmd)

	return nil
}

// Lookup resolves a command by name or alias, case-insensitively
func (r *Registry) Lookup(name string) (*Command, error) {
	cmd, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, ErrCommandNotFound
	}
	return cmd, nil
}

// All returns a restartable sequence of registered commands in
// registration order, aliases excluded.
func (r *Registry) All() iter.Seq[*Command] {
	return func(yield func(*Command) bool) {
		for _, cmd := range r.order {
			if !yield(cmd) {
				return
			}
		}
	}
}

// Len returns the number of registered commands, aliases excluded
func (r *Registry) Len() int {
	return len(r.order)
}
