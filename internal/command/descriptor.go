package command

import "grimworks/quartermaster/internal/access"

// Source identifies where a command came from.
type Source int

const (
	SourceBuiltin Source = iota
	SourceExtension
)

func (s Source) String() string {
	switch s {
	case SourceBuiltin:
		return "builtin"
	case SourceExtension:
		return "extension"
	default:
		return "unknown"
	}
}

// Descriptor represents one invocable command from either source. Names
// are lowercase and unique across the merged catalog. Description and
// Help are deferred accessors: builtin commands derive them from static
// metadata, extension commands own their own text.
type Descriptor struct {
	Name        string
	Source      Source
	Requires    access.Requirement
	Description func() string
	Help        func() string
}

// BuiltinCommand is one entry from the host's builtin enumeration. The
// help body may be a longer, multi-line text distinct from Description.
type BuiltinCommand struct {
	Name        string
	Mask        access.Rights
	Description string
	Help        string
}

// ExtensionCommand is one entry from the extension registry.
type ExtensionCommand struct {
	Description string
	Level       access.Level
}

// BuiltinSource enumerates the host's builtin commands. Enumeration may
// fail; the registry degrades to an empty builtin set.
type BuiltinSource interface {
	EnumerateBuiltins() ([]BuiltinCommand, error)
}

// ExtensionSource exposes the externally maintained extension registry.
type ExtensionSource interface {
	ExtensionCommands() map[string]ExtensionCommand
}
