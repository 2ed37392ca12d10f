package task

import "github.com/google/uuid"

// IDGenerator produces unique task identifiers.
// Injected so tests can assert exact ids deterministically.
type IDGenerator interface {
	NewID() string
}

// UUIDs generates random UUID identifiers. This is the production generator.
type UUIDs struct{}

// NewID implements IDGenerator.
func (UUIDs) NewID() string {
	return uuid.NewString()
}
