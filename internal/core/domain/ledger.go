package domain

// Ledger records which tasks have been executed during one project build.
// It exists to surface redundant executions, never to prevent them.
type Ledger struct {
	runs map[*Task]int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{runs: make(map[*Task]int)}
}

// Has reports whether t has been executed at least once.
func (l *Ledger) Has(t *Task) bool {
	return l.runs[t] > 0
}

// Record notes one execution of t.
func (l *Ledger) Record(t *Task) {
	l.runs[t]++
}

// Runs returns how many times t has been executed.
func (l *Ledger) Runs(t *Task) int {
	return l.runs[t]
}

// Len returns the number of distinct tasks executed.
func (l *Ledger) Len() int {
	return len(l.runs)
}
