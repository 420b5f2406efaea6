package extension

import (
	"fmt"
	"strings"
	"sync"

	"grimworks/quartermaster/internal/access"
	"grimworks/quartermaster/internal/chat"
	"grimworks/quartermaster/internal/command"
)

// Command is a chat command contributed by a server extension. Handler
// may be nil for commands the extension executes on the server side;
// such commands are still advertised and access-checked.
type Command struct {
	Description string
	Level       access.Level
	Handler     func(chat.Context)
}

// Registry is the process-wide set of extension-registered commands. It
// is the extension-side source the command catalog merges from.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

var _ command.ExtensionSource = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command under its lowercase name. Names must be
// unique within the extension registry.
func (r *Registry) Register(name string, cmd Command) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("extension command name must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("extension command %q already registered", name)
	}
	r.commands[name] = cmd
	return nil
}

// ExtensionCommands returns a snapshot for catalog building.
func (r *Registry) ExtensionCommands() map[string]command.ExtensionCommand {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]command.ExtensionCommand, len(r.commands))
	for name, cmd := range r.commands {
		out[name] = command.ExtensionCommand{
			Description: cmd.Description,
			Level:       cmd.Level,
		}
	}
	return out
}

// Handler returns the registered handler for a command, if any.
func (r *Registry) Handler(name string) (func(chat.Context), bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[strings.ToLower(name)]
	if !ok || cmd.Handler == nil {
		return nil, false
	}
	return cmd.Handler, true
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}
