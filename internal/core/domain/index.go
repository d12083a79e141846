package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// OutputIndex maps every declared output path to the single task producing it.
type OutputIndex struct {
	producers map[InternedString]*Task
}

// BuildIndex indexes the outputs of tasks. It fails if any output path is
// claimed more than once, including twice by the same task, or if a task
// declares no outputs at all.
func BuildIndex(tasks []*Task) (*OutputIndex, error) {
	idx := &OutputIndex{
		producers: make(map[InternedString]*Task, len(tasks)),
	}

	for _, t := range tasks {
		if len(t.Outputs) == 0 {
			return nil, zerr.With(zerr.Wrap(ErrNoOutputs, "invalid task"), "task", t.String())
		}
		for _, out := range t.Outputs {
			if owner, exists := idx.producers[out]; exists {
				err := zerr.With(zerr.Wrap(ErrDuplicateOutput, "conflicting outputs"), "path", out.String())
				err = zerr.With(err, "first", owner.Command)
				return nil, zerr.With(err, "second", t.Command)
			}
			idx.producers[out] = t
		}
	}

	return idx, nil
}

// Lookup returns the task producing path, if any.
func (idx *OutputIndex) Lookup(path InternedString) (*Task, bool) {
	t, ok := idx.producers[path]
	if !ok {
		// Declared paths are stored cleaned; callers may pass raw strings.
		t, ok = idx.producers[NewInternedString(filepath.Clean(path.String()))]
	}
	return t, ok
}

// Len returns the number of indexed output paths.
func (idx *OutputIndex) Len() int {
	return len(idx.producers)
}
