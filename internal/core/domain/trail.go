package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Trail is the chain of targets currently being built, outermost first.
// A target that reappears on its own trail depends on itself.
type Trail struct {
	path   []InternedString
	active map[*Task]int
}

// NewTrail returns an empty trail.
func NewTrail() *Trail {
	return &Trail{active: make(map[*Task]int)}
}

// Enter pushes target, built by t, onto the trail. It fails with
// ErrCycleDetected if t is already being built further up.
func (tr *Trail) Enter(target InternedString, t *Task) error {
	if start, ok := tr.active[t]; ok {
		return tr.cycleError(start, target)
	}
	tr.active[t] = len(tr.path)
	tr.path = append(tr.path, target)
	return nil
}

// Leave pops the innermost target built by t.
func (tr *Trail) Leave(t *Task) {
	delete(tr.active, t)
	tr.path = tr.path[:len(tr.path)-1]
}

// Depth returns how many targets are being built.
func (tr *Trail) Depth() int {
	return len(tr.path)
}

func (tr *Trail) cycleError(start int, target InternedString) error {
	parts := make([]string, 0, len(tr.path)-start+1)
	for _, p := range tr.path[start:] {
		parts = append(parts, p.String())
	}
	parts = append(parts, target.String())
	return zerr.With(zerr.Wrap(ErrCycleDetected, "target depends on itself"), "cycle", strings.Join(parts, " -> "))
}
