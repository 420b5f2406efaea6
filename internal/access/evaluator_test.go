package access

import "testing"

func TestCanSee_BuiltinNoMaskIsOpen(t *testing.T) {
	eval := NewEvaluator(DefaultTable())

	caller, _ := DefaultTable().Lookup("observer")
	if !eval.CanSee(BuiltinRights{Mask: RightNone}, caller) {
		t.Error("builtin command with no rights mask should be visible to everyone")
	}
	if !eval.CanSee(nil, caller) {
		t.Error("command with no requirement should be visible to everyone")
	}
}

func TestCanSee_BuiltinMaskIntersection(t *testing.T) {
	table := DefaultTable()
	eval := NewEvaluator(table)

	admin, _ := table.Lookup("admin")
	moderator, _ := table.Lookup("moderator")

	req := BuiltinRights{Mask: RightAdmin}
	if !eval.CanSee(req, admin) {
		t.Error("admin should see an admin-gated builtin")
	}
	if eval.CanSee(req, moderator) {
		t.Error("moderator should NOT see an admin-gated builtin")
	}

	// Multi-flag masks permit any intersecting tier
	req = BuiltinRights{Mask: RightModerator | RightAdmin}
	if !eval.CanSee(req, moderator) {
		t.Error("moderator should see a moderator|admin-gated builtin")
	}
}

func TestCanSee_BuiltinFailOpenOnUnknownLevel(t *testing.T) {
	eval := NewEvaluator(DefaultTable())

	// A caller whose tier has no rights mapping must be permitted:
	// unreadable rights metadata means open, not denied.
	stray := Level{Name: "timetraveler", Priority: 99}
	if !eval.CanSee(BuiltinRights{Mask: RightAdmin}, stray) {
		t.Error("unmappable caller level should fail open")
	}
}

func TestCanSee_ExtensionPriorityOrder(t *testing.T) {
	eval := NewEvaluator(DefaultTable())

	for p := 0; p <= 6; p++ {
		for r := 0; r <= 6; r++ {
			caller := Level{Name: "caller", Priority: p}
			required := Level{Name: "required", Priority: r}
			got := eval.CanSee(ExtensionRights{Level: required}, caller)
			if got != (p >= r) {
				t.Errorf("caller priority %d vs required %d: got %t, want %t", p, r, got, p >= r)
			}
		}
	}
}

func TestTable_LookupCaseInsensitive(t *testing.T) {
	table := DefaultTable()

	if _, ok := table.Lookup("Admin"); !ok {
		t.Error("level lookup should be case-insensitive")
	}
	if _, ok := table.Lookup("nosuchlevel"); ok {
		t.Error("unknown level should not resolve")
	}
	if table.Lowest().Name != "observer" {
		t.Errorf("expected observer as lowest tier, got %s", table.Lowest().Name)
	}
}
