package explain

// Mode selects which sections Generate emits (spec §4.5).
type Mode uint8

const (
	// ModeWhy narrates the decision path, condition evaluations,
	// consequence executions, and rule activations that occurred.
	ModeWhy Mode = iota
	// ModeWhyNot additionally explains why the focus node did not fire
	// and what alternative path would have reached it.
	ModeWhyNot
	// ModeFull emits the union of Why and WhyNot plus the summary.
	ModeFull
)

func (m Mode) String() string {
	switch m {
	case ModeWhy:
		return "Why"
	case ModeWhyNot:
		return "WhyNot"
	case ModeFull:
		return "Full"
	default:
		return "Unknown"
	}
}
