// Package uuid issues the identifiers used for every persisted row.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string, suitable as a primary key because
// consecutive inserts land next to each other in the index.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Entropy failure; a random v4 is still a valid, unique key.
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
