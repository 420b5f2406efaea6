package access

// Requirement is what a command demands of its caller. Builtin commands
// gate on a rights bitmask, extension commands on an ordered tier; the
// two models are unified only at the CanSee decision boundary.
type Requirement interface {
	requirement()
}

// BuiltinRights is the bitmask-style requirement of a builtin command.
type BuiltinRights struct {
	Mask Rights
}

// ExtensionRights is the ordered-tier requirement of an extension command.
type ExtensionRights struct {
	Level Level
}

func (BuiltinRights) requirement()   {}
func (ExtensionRights) requirement() {}

// Evaluator decides whether a caller may see and run a command.
type Evaluator struct {
	table *Table
}

func NewEvaluator(table *Table) *Evaluator {
	return &Evaluator{table: table}
}

// CanSee normalizes both rights models to a boolean decision. Builtin
// requirements with no rights annotation, or whose caller level cannot
// be mapped to a rights flag, are treated as permitted: availability is
// favored over strict enforcement for this informational feature.
func (e *Evaluator) CanSee(req Requirement, caller Level) bool {
	switch r := req.(type) {
	case nil:
		return true
	case BuiltinRights:
		if r.Mask == RightNone {
			return true
		}
		bit, ok := e.table.Bit(caller.Name)
		if !ok {
			return true
		}
		return bit.Intersects(r.Mask)
	case ExtensionRights:
		return caller.AtLeast(r.Level)
	default:
		return true
	}
}
