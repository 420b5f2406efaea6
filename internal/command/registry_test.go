package command

import (
	"errors"
	"sync"
	"testing"

	"grimworks/quartermaster/internal/access"
)

// stubBuiltins is a builtin source backed by a slice
type stubBuiltins struct {
	list []BuiltinCommand
	err  error
}

func (s *stubBuiltins) EnumerateBuiltins() ([]BuiltinCommand, error) {
	return s.list, s.err
}

// stubExtensions is an extension source backed by a map
type stubExtensions struct {
	commands map[string]ExtensionCommand
}

func (s *stubExtensions) ExtensionCommands() map[string]ExtensionCommand {
	if s.commands == nil {
		return map[string]ExtensionCommand{}
	}
	return s.commands
}

func TestRegistry_ExtensionWinsNameCollision(t *testing.T) {
	builtins := &stubBuiltins{list: []BuiltinCommand{
		{Name: "teleport", Description: "builtin teleport"},
	}}
	extensions := &stubExtensions{commands: map[string]ExtensionCommand{
		"teleport": {Description: "extension teleport"},
	}}

	catalog := NewRegistry(builtins, extensions).Catalog()

	desc, ok := catalog.Lookup("teleport")
	if !ok {
		t.Fatal("expected teleport in catalog")
	}
	if desc.Source != SourceExtension {
		t.Errorf("expected extension entry to win the collision, got source %s", desc.Source)
	}
	if desc.Description() != "extension teleport" {
		t.Errorf("expected extension description, got %q", desc.Description())
	}
	if catalog.Len() != 1 {
		t.Errorf("expected 1 entry after dedup, got %d", catalog.Len())
	}
}

func TestRegistry_CatalogOrderIsLexicographic(t *testing.T) {
	builtins := &stubBuiltins{list: []BuiltinCommand{
		{Name: "Zeta"},
		{Name: "alpha"},
		{Name: "mid"},
	}}
	extensions := &stubExtensions{commands: map[string]ExtensionCommand{
		"beta":  {},
		"omega": {},
	}}

	catalog := NewRegistry(builtins, extensions).Catalog()

	want := []string{"alpha", "beta", "mid", "omega", "zeta"}
	got := catalog.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d names, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestRegistry_BuiltinFailureDegradesToExtensionsOnly(t *testing.T) {
	builtins := &stubBuiltins{err: errors.New("host registry unavailable")}
	extensions := &stubExtensions{commands: map[string]ExtensionCommand{
		"teleport": {Description: "warp a player"},
	}}

	catalog := NewRegistry(builtins, extensions).Catalog()

	if catalog.Len() != 1 {
		t.Fatalf("expected extension commands despite builtin failure, got %d entries", catalog.Len())
	}
	if _, ok := catalog.Lookup("teleport"); !ok {
		t.Error("expected teleport to survive builtin enumeration failure")
	}
}

func TestRegistry_CatalogIsMemoized(t *testing.T) {
	extensions := &stubExtensions{commands: map[string]ExtensionCommand{
		"one": {},
	}}
	registry := NewRegistry(&stubBuiltins{}, extensions)

	first := registry.Catalog()

	// Source mutations are not reflected until invalidation
	extensions.commands["two"] = ExtensionCommand{}
	second := registry.Catalog()

	if first != second {
		t.Error("expected the same catalog object across calls")
	}
	if _, ok := second.Lookup("two"); ok {
		t.Error("stale catalog should not reflect late registration")
	}
}

func TestRegistry_InvalidateForcesRebuild(t *testing.T) {
	extensions := &stubExtensions{commands: map[string]ExtensionCommand{
		"one": {},
	}}
	registry := NewRegistry(&stubBuiltins{}, extensions)

	registry.Catalog()
	extensions.commands["two"] = ExtensionCommand{}
	registry.Invalidate()

	rebuilt := registry.Catalog()
	if _, ok := rebuilt.Lookup("two"); !ok {
		t.Error("rebuilt catalog should include the late registration")
	}
}

func TestRegistry_ConcurrentFirstBuild(t *testing.T) {
	extensions := &stubExtensions{commands: map[string]ExtensionCommand{
		"one": {},
	}}
	registry := NewRegistry(&stubBuiltins{}, extensions)

	const callers = 16
	catalogs := make([]*Catalog, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			catalogs[i] = registry.Catalog()
		}()
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		if catalogs[i] != catalogs[0] {
			t.Fatal("racing callers should observe the same catalog")
		}
	}
}

func TestRegistry_BuiltinRequirementShape(t *testing.T) {
	builtins := &stubBuiltins{list: []BuiltinCommand{
		{Name: "ban", Mask: access.RightAdmin, Description: "ban a player", Help: "Usage: /ban <player>"},
	}}

	catalog := NewRegistry(builtins, &stubExtensions{}).Catalog()

	desc, _ := catalog.Lookup("ban")
	req, ok := desc.Requires.(access.BuiltinRights)
	if !ok {
		t.Fatalf("expected BuiltinRights requirement, got %T", desc.Requires)
	}
	if req.Mask != access.RightAdmin {
		t.Errorf("expected admin mask, got %v", req.Mask)
	}
	if desc.Help() != "Usage: /ban <player>" {
		t.Errorf("help body should come from the builtin metadata, got %q", desc.Help())
	}
}
