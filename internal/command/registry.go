package command

import (
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"grimworks/quartermaster/internal/access"
)

// Registry merges the host-builtin and extension command sources into
// one cached catalog. The build is a pure function of the two sources,
// so racing first callers only contend on the check-and-build
// transition; the catalog itself is immutable once published.
type Registry struct {
	builtins   BuiltinSource
	extensions ExtensionSource

	mu      sync.Mutex
	catalog atomic.Pointer[Catalog]
}

func NewRegistry(builtins BuiltinSource, extensions ExtensionSource) *Registry {
	return &Registry{builtins: builtins, extensions: extensions}
}

// Catalog returns the cached catalog, building it on first call. The
// same catalog is returned until Invalidate; commands registered after
// the build are not reflected until then.
func (r *Registry) Catalog() *Catalog {
	if c := r.catalog.Load(); c != nil {
		return c
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if c := r.catalog.Load(); c != nil {
		return c
	}
	c := r.build()
	r.catalog.Store(c)
	return c
}

// Invalidate clears the cache; the next Catalog call rebuilds. The host
// decides the refresh policy (e.g. after an extension reload).
func (r *Registry) Invalidate() {
	r.catalog.Store(nil)
}

func (r *Registry) build() *Catalog {
	merged := make(map[string]Descriptor)

	// Extension commands first: on a name collision the extension entry
	// wins and the builtin is suppressed.
	if r.extensions != nil {
		for name, ec := range r.extensions.ExtensionCommands() {
			name = strings.ToLower(name)
			if name == "" {
				continue
			}
			desc := ec.Description
			merged[name] = Descriptor{
				Name:        name,
				Source:      SourceExtension,
				Requires:    access.ExtensionRights{Level: ec.Level},
				Description: func() string { return desc },
				Help:        func() string { return desc },
			}
		}
	}

	if r.builtins != nil {
		list, err := r.builtins.EnumerateBuiltins()
		if err != nil {
			// Degrade to an empty builtin set; extension commands must
			// still be listed.
			zap.S().Debugw("Builtin command enumeration unavailable", "error", err)
			list = nil
		}
		for _, bc := range list {
			name := strings.ToLower(bc.Name)
			if name == "" {
				continue
			}
			if _, taken := merged[name]; taken {
				continue
			}
			description, help := bc.Description, bc.Help
			merged[name] = Descriptor{
				Name:        name,
				Source:      SourceBuiltin,
				Requires:    access.BuiltinRights{Mask: bc.Mask},
				Description: func() string { return description },
				Help:        func() string { return help },
			}
		}
	}

	return newCatalog(merged)
}
