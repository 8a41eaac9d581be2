package store

// State records which buffer of a spillable container is authoritative.
// The transition StateInline -> StateSpilled happens at most once per
// container and is never reversed.
type State uint8

const (
	// StateInline marks the fixed inline buffer as authoritative.
	StateInline State = iota
	// StateSpilled marks the heap buffer as authoritative, permanently.
	StateSpilled
)

func (s State) String() string {
	switch s {
	case StateInline:
		return "Inline"
	case StateSpilled:
		return "Spilled"
	}
	return "Unknown"
}
