package domain

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Task is a shell command with the files it reads and the files it writes.
// Inputs and Outputs keep their declaration order.
type Task struct {
	Command string
	Inputs  []InternedString
	Outputs []InternedString
}

// String renders the task for diagnostics.
func (t *Task) String() string {
	var b strings.Builder
	b.WriteString(strconv.Quote(t.Command))
	b.WriteString(" [")
	writePaths(&b, t.Inputs)
	b.WriteString("] -> [")
	writePaths(&b, t.Outputs)
	b.WriteString("]")
	return b.String()
}

// Fingerprint returns a short structural digest of the task, stable across runs.
func (t *Task) Fingerprint() string {
	d := xxhash.New()
	_, _ = d.WriteString(t.Command)
	for _, in := range t.Inputs {
		_, _ = d.WriteString("\x00i")
		_, _ = d.WriteString(in.String())
	}
	for _, out := range t.Outputs {
		_, _ = d.WriteString("\x00o")
		_, _ = d.WriteString(out.String())
	}
	return strconv.FormatUint(d.Sum64(), 16)
}

// Paths returns every path the task declares, inputs first.
func (t *Task) Paths() []InternedString {
	paths := make([]InternedString, 0, len(t.Inputs)+len(t.Outputs))
	paths = append(paths, t.Inputs...)
	return append(paths, t.Outputs...)
}

func writePaths(b *strings.Builder, paths []InternedString) {
	for i, p := range paths {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
}
