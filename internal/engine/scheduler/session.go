package scheduler

import (
	"go.trai.ch/fresh/internal/core/domain"
)

// Session holds the state of one project root's build: the output index
// built from its configuration, the ledger of tasks that ran and the trail
// of targets currently being built. Sessions are never shared across roots.
type Session struct {
	root   string
	index  *domain.OutputIndex
	ledger *domain.Ledger
	trail  *domain.Trail
}

// NewSession starts a build of the project at root using index.
func NewSession(root string, index *domain.OutputIndex) *Session {
	return &Session{
		root:   root,
		index:  index,
		ledger: domain.NewLedger(),
		trail:  domain.NewTrail(),
	}
}

// Root returns the directory commands run in and paths are resolved against.
func (s *Session) Root() string {
	return s.root
}

// Ledger returns the tasks executed so far in this session.
func (s *Session) Ledger() *domain.Ledger {
	return s.ledger
}
