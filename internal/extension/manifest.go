package extension

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"

	"grimworks/quartermaster/internal/access"
	"grimworks/quartermaster/internal/core"
)

// Manifest declares the chat commands an extension contributes. The
// gateway loads manifests for extensions whose command execution lives
// on the game server itself; the commands still need to be advertised
// and access-checked on the bridge.
type Manifest struct {
	Extension string            `yaml:"extension"`
	Commands  []ManifestCommand `yaml:"commands"`
}

type ManifestCommand struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Access      string `yaml:"access"`
}

func manifestSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Title:       "extension-manifest",
		Description: "Chat commands contributed by one server extension",
		Type:        "object",
		Properties: map[string]*jsonschema.Schema{
			"extension": {
				Type:        "string",
				Description: "Name of the contributing extension",
			},
			"commands": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"name": {
							Type:        "string",
							Description: "Command name without the leading slash",
						},
						"description": {
							Type:        "string",
							Description: "Help text shown for the command",
						},
						"access": {
							Type:        "string",
							Description: "Minimum access level name; empty means open to all",
						},
					},
					Required: []string{"name"},
				},
			},
		},
		Required: []string{"extension", "commands"},
	}
}

// LoadManifests reads every *.yaml/*.yml in dir, validates it against
// the manifest schema, resolves access level names through the host's
// table, and registers the declared commands. Returns the number of
// commands registered.
func LoadManifests(dir string, table *access.Table, reg *Registry) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading manifest dir: %w", err)
	}

	resolved, err := manifestSchema().Resolve(nil)
	if err != nil {
		return 0, fmt.Errorf("resolving manifest schema: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return count, fmt.Errorf("reading manifest %s: %w", entry.Name(), err)
		}

		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return count, fmt.Errorf("manifest %s: %w", entry.Name(), err)
		}
		if err := resolved.Validate(raw); err != nil {
			return count, fmt.Errorf("manifest %s: %w", entry.Name(), err)
		}

		var m Manifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			return count, fmt.Errorf("manifest %s: %w", entry.Name(), err)
		}

		for _, mc := range m.Commands {
			level := table.Lowest()
			if mc.Access != "" {
				l, ok := table.Lookup(mc.Access)
				if !ok {
					return count, fmt.Errorf("manifest %s: command %q names unknown access level %q", entry.Name(), mc.Name, mc.Access)
				}
				level = l
			}
			if err := reg.Register(mc.Name, Command{
				Description: mc.Description,
				Level:       level,
			}); err != nil {
				return count, fmt.Errorf("manifest %s: %w", entry.Name(), err)
			}
			count++
		}
		core.GetLogger().Debugw("Loaded extension manifest",
			"extension", m.Extension, "file", entry.Name(), "commands", len(m.Commands))
	}
	return count, nil
}
