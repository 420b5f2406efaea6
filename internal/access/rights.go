package access

// Rights is a bitmask of independent permission flags used by builtin
// commands to gate execution. A zero mask means open to everyone.
type Rights uint32

const (
	RightObserver Rights = 1 << iota
	RightGM
	RightOverseer
	RightModerator
	RightAdmin
)

// RightNone gates nothing.
const RightNone Rights = 0

// Intersects reports whether any flag is shared with other.
func (r Rights) Intersects(other Rights) bool {
	return r&other != 0
}
