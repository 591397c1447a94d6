package model

import "github.com/google/uuid"

// IDFunc generates a new unique identifier. Engines take it as a parameter so
// tests can supply deterministic ids.
type IDFunc func() string

// NewID returns a random unique identifier for a new record.
func NewID() string {
	return uuid.NewString()
}
