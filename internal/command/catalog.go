package command

import (
	"sort"
	"strings"
)

// Catalog is the merged, name-ordered command set. It is built once and
// never mutated; callers get a read-only view.
type Catalog struct {
	names  []string
	byName map[string]Descriptor
}

func newCatalog(byName map[string]Descriptor) *Catalog {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return &Catalog{names: names, byName: byName}
}

// All returns every descriptor in lexicographic name order.
func (c *Catalog) All() []Descriptor {
	out := make([]Descriptor, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.byName[name])
	}
	return out
}

// Lookup resolves a command by name, case-insensitive.
func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	d, ok := c.byName[strings.ToLower(name)]
	return d, ok
}

// Names returns the command names in lexicographic order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *Catalog) Len() int {
	return len(c.names)
}
