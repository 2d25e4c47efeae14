package id

import "github.com/google/uuid"

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

// UUID yields random (v4) UUIDs; used for request ids.
type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}
