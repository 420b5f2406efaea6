package extension

import (
	"os"
	"path/filepath"
	"testing"

	"grimworks/quartermaster/internal/access"
)

func writeManifest(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifests_RegistersDeclaredCommands(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "warp.yaml", `
extension: warpdrive
commands:
  - name: teleport
    description: Warp a player to another player
    access: moderator
  - name: spawnpoint
    description: Show the current spawn point
`)

	table := access.DefaultTable()
	reg := NewRegistry()

	n, err := LoadManifests(dir, table, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 registered commands, got %d", n)
	}

	commands := reg.ExtensionCommands()
	tp, ok := commands["teleport"]
	if !ok {
		t.Fatal("expected teleport registered")
	}
	if tp.Level.Name != "moderator" {
		t.Errorf("expected moderator level, got %s", tp.Level.Name)
	}

	sp, ok := commands["spawnpoint"]
	if !ok {
		t.Fatal("expected spawnpoint registered")
	}
	// No access field means the lowest tier
	if sp.Level.Name != table.Lowest().Name {
		t.Errorf("expected lowest tier for unrestricted command, got %s", sp.Level.Name)
	}
}

func TestLoadManifests_RejectsMalformedManifest(t *testing.T) {
	dir := t.TempDir()
	// commands must be an array of objects with a name
	writeManifest(t, dir, "broken.yaml", `
extension: broken
commands:
  - description: no name here
`)

	_, err := LoadManifests(dir, access.DefaultTable(), NewRegistry())
	if err == nil {
		t.Fatal("expected schema validation error for manifest without command name")
	}
}

func TestLoadManifests_RejectsUnknownAccessLevel(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "weird.yaml", `
extension: weird
commands:
  - name: ascend
    access: demigod
`)

	_, err := LoadManifests(dir, access.DefaultTable(), NewRegistry())
	if err == nil {
		t.Fatal("expected error for unknown access level name")
	}
}

func TestLoadManifests_IgnoresNonYamlFiles(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "notes.txt", "not a manifest")
	writeManifest(t, dir, "ok.yml", `
extension: ok
commands:
  - name: ping
    description: pong
`)

	n, err := LoadManifests(dir, access.DefaultTable(), NewRegistry())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("expected only the yaml manifest to load, got %d commands", n)
	}
}

func TestRegistry_RejectsDuplicateAndEmptyNames(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register("Teleport", Command{Description: "warp"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Names are lowercased on registration
	if err := reg.Register("teleport", Command{}); err == nil {
		t.Error("expected duplicate registration to fail")
	}
	if err := reg.Register("  ", Command{}); err == nil {
		t.Error("expected empty name registration to fail")
	}
	if reg.Len() != 1 {
		t.Errorf("expected 1 command, got %d", reg.Len())
	}
}
