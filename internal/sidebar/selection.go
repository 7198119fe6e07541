package sidebar

// Mode is the state of the section selection machine.
type Mode int

const (
	// PathDerived displays the section matched by the current pathname.
	PathDerived Mode = iota
	// Pinned displays a section chosen explicitly, regardless of pathname.
	Pinned
)

func (m Mode) String() string {
	if m == Pinned {
		return "pinned"
	}
	return "path-derived"
}

// Selection decides which section's items fill the sidebar body.
// The zero value is PathDerived.
type Selection struct {
	mode  Mode
	index int
}

// Mode returns the current state.
func (s Selection) Mode() Mode { return s.mode }

// Pin moves to Pinned on section index.
func (s Selection) Pin(index int) Selection {
	return Selection{mode: Pinned, index: index}
}

// Clear moves back to PathDerived.
func (s Selection) Clear() Selection {
	return Selection{}
}

// Resolve returns the section to display given the path-derived index.
func (s Selection) Resolve(derived int) int {
	if s.mode == Pinned {
		return s.index
	}
	return derived
}
