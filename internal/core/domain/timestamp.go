package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// Timestamp is the modification time of a path, or the absence of the path.
// An absent timestamp orders before every present one.
type Timestamp struct {
	at      time.Time
	present bool
}

// Absent returns the timestamp of a path that does not exist.
func Absent() Timestamp {
	return Timestamp{}
}

// StampAt returns a present timestamp at t.
func StampAt(t time.Time) Timestamp {
	return Timestamp{at: t, present: true}
}

// Present reports whether the path existed when it was stamped.
func (ts Timestamp) Present() bool {
	return ts.present
}

// Time returns the modification time. It is the zero time for absent stamps.
func (ts Timestamp) Time() time.Time {
	return ts.at
}

// Compare returns -1, 0 or +1 depending on whether ts is before, equal to or
// after other. Two absent stamps are equal.
func (ts Timestamp) Compare(other Timestamp) int {
	switch {
	case !ts.present && !other.present:
		return 0
	case !ts.present:
		return -1
	case !other.present:
		return 1
	default:
		return ts.at.Compare(other.at)
	}
}

// Require returns an ErrMissingPath error naming path and ctx if ts is absent.
func (ts Timestamp) Require(path InternedString, ctx string) error {
	if ts.present {
		return nil
	}
	return zerr.With(zerr.Wrap(ErrMissingPath, ctx), "path", path.String())
}

// String formats the stamp for logs, in UTC.
func (ts Timestamp) String() string {
	if !ts.present {
		return "absent"
	}
	return ts.at.UTC().Format(time.RFC3339Nano)
}

// Latest returns the greatest stamp, or Absent for an empty list.
func Latest(stamps []Timestamp) Timestamp {
	latest := Absent()
	for _, ts := range stamps {
		if ts.Compare(latest) > 0 {
			latest = ts
		}
	}
	return latest
}

// Earliest returns the smallest stamp, or Absent for an empty list.
func Earliest(stamps []Timestamp) Timestamp {
	if len(stamps) == 0 {
		return Absent()
	}
	earliest := stamps[0]
	for _, ts := range stamps[1:] {
		if ts.Compare(earliest) < 0 {
			earliest = ts
		}
	}
	return earliest
}

// Window compares what a task reads against what it writes.
type Window struct {
	LatestInput    Timestamp
	EarliestOutput Timestamp
}

// NewWindow builds the window from the stamps of a task's inputs and outputs.
func NewWindow(inputs, outputs []Timestamp) Window {
	return Window{
		LatestInput:    Latest(inputs),
		EarliestOutput: Earliest(outputs),
	}
}

// Stale reports whether the outputs must be rebuilt. Equal times count as stale.
func (w Window) Stale() bool {
	return w.LatestInput.Compare(w.EarliestOutput) >= 0
}
