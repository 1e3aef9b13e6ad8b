package utils

import "github.com/google/uuid"

// NewID returns a UUIDv7; ids sort in creation order within a process.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
