package utils

import "github.com/google/uuid"

// IDGenerator produces identifiers for new records.
type IDGenerator func() string

// NewID returns a time-ordered UUIDv7, falling back to a random UUIDv4 if the
// clock source fails.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
