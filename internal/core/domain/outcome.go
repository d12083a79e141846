package domain

// Outcome reports whether ensuring a target ran anything.
type Outcome uint8

const (
	// Unchanged means the target was already up to date or is a plain source file.
	Unchanged Outcome = iota
	// Changed means a task ran to bring the target up to date.
	Changed
)

// String returns the string representation of the Outcome.
func (o Outcome) String() string {
	if o == Changed {
		return "changed"
	}
	return "unchanged"
}

// Merge combines two outcomes; any change wins.
func (o Outcome) Merge(other Outcome) Outcome {
	if o == Changed || other == Changed {
		return Changed
	}
	return Unchanged
}
