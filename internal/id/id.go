// Package id generates transaction identifiers.
package id

import "github.com/google/uuid"

// New returns a fresh transaction ID. IDs are random UUIDs, so two
// transactions created in the same second with identical descriptions still
// get distinct identifiers.
func New() string {
	return uuid.NewString()
}

// Valid reports whether s looks like an ID produced by New. Loaded data files
// may carry IDs from older versions, so this is advisory only.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
