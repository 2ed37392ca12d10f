package testutil

import "fmt"

// SeqIDs is a deterministic id generator for tests: t1, t2, t3, ...
type SeqIDs struct {
	n int
}

// NewID implements task.IDGenerator.
func (s *SeqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("t%d", s.n)
}
