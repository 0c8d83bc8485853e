package entity

// State is a federative unit, seeded reference data for the address hierarchy.
type State struct {
	ID       int64
	Name     string
	Initials string // Two-letter abbreviation, e.g. "SC".
}
