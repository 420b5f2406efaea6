package access

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Level is an ordered privilege tier assigned to a caller. Levels are
// compared by priority, never by identity.
type Level struct {
	Name     string
	Priority int
}

// AtLeast reports whether l satisfies the required tier.
func (l Level) AtLeast(required Level) bool {
	return l.Priority >= required.Priority
}

// Table holds the host-defined ordering of access levels and the rights
// bit assigned to each tier. The help feature consumes this ordering; it
// does not define one.
type Table struct {
	levels []Level
	bits   map[string]Rights
}

// NewTable builds a table from the host's level set. Levels are kept
// sorted by ascending priority.
func NewTable(levels []Level, bits map[string]Rights) *Table {
	t := &Table{
		levels: make([]Level, len(levels)),
		bits:   make(map[string]Rights, len(bits)),
	}
	copy(t.levels, levels)
	sort.Slice(t.levels, func(i, j int) bool {
		return t.levels[i].Priority < t.levels[j].Priority
	})
	for name, bit := range bits {
		t.bits[strings.ToLower(name)] = bit
	}
	return t
}

// Lookup resolves a level by name, case-insensitive.
func (t *Table) Lookup(name string) (Level, bool) {
	name = strings.ToLower(name)
	for _, l := range t.levels {
		if l.Name == name {
			return l, true
		}
	}
	return Level{}, false
}

// Bit returns the rights flag the host assigns to the named level.
func (t *Table) Bit(name string) (Rights, bool) {
	bit, ok := t.bits[strings.ToLower(name)]
	return bit, ok
}

// Lowest returns the least-privileged tier.
func (t *Table) Lowest() Level {
	if len(t.levels) == 0 {
		return Level{}
	}
	return t.levels[0]
}

// Levels returns the tiers in ascending priority order.
func (t *Table) Levels() []Level {
	out := make([]Level, len(t.levels))
	copy(out, t.levels)
	return out
}

// ParseLevels builds a table from operator-supplied "name:priority"
// entries. Each tier is assigned one rights flag in ascending priority
// order, so the stock entries reproduce DefaultTable. Empty input means
// the stock table.
func ParseLevels(entries []string) (*Table, error) {
	if len(entries) == 0 {
		return DefaultTable(), nil
	}

	levels := make([]Level, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		name, prio, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok {
			return nil, fmt.Errorf("access level %q: want name:priority", entry)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return nil, fmt.Errorf("access level %q: empty name", entry)
		}
		if seen[name] {
			return nil, fmt.Errorf("access level %q declared twice", name)
		}
		seen[name] = true
		p, err := strconv.Atoi(strings.TrimSpace(prio))
		if err != nil {
			return nil, fmt.Errorf("access level %q: bad priority: %w", entry, err)
		}
		levels = append(levels, Level{Name: name, Priority: p})
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Priority < levels[j].Priority
	})
	bits := make(map[string]Rights, len(levels))
	for i, l := range levels {
		bits[l.Name] = 1 << i
	}
	return NewTable(levels, bits), nil
}

// DefaultTable returns the stock tier set of the host platform.
func DefaultTable() *Table {
	return NewTable(
		[]Level{
			{Name: "observer", Priority: 1},
			{Name: "gm", Priority: 2},
			{Name: "overseer", Priority: 3},
			{Name: "moderator", Priority: 4},
			{Name: "admin", Priority: 5},
		},
		map[string]Rights{
			"observer":  RightObserver,
			"gm":        RightGM,
			"overseer":  RightOverseer,
			"moderator": RightModerator,
			"admin":     RightAdmin,
		},
	)
}
