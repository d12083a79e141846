package domain

import "go.trai.ch/zerr"

// Configuration is the task list of one project root together with the
// targets a build must bring up to date.
type Configuration struct {
	Final []InternedString
	Tasks []*Task
}

// Validate checks the parts of a configuration that do not depend on the filesystem.
func (c *Configuration) Validate() error {
	if len(c.Final) == 0 {
		return ErrNoFinalTargets
	}
	for _, t := range c.Tasks {
		if t.Command == "" {
			return zerr.With(zerr.Wrap(ErrEmptyCommand, "invalid task"), "task", t.String())
		}
	}
	return nil
}

// Paths returns every path declared by any task, deduplicated, in first-seen order.
func (c *Configuration) Paths() []InternedString {
	seen := make(map[InternedString]struct{})
	var paths []InternedString
	for _, t := range c.Tasks {
		for _, p := range t.Paths() {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			paths = append(paths, p)
		}
	}
	return paths
}
