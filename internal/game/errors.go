package game

import (
	"errors"
	"fmt"
)

var (
	// ErrGameExists rejects a start reusing a live gameId.
	ErrGameExists = errors.New("the game has already begun")

	// ErrInvalidGame rejects operations against a missing or finished
	// session. Deliberately uniform: callers learn nothing about which.
	ErrInvalidGame = errors.New("invalid game")

	// ErrSigning marks an attestation failure. The round outcome is
	// already final when this is returned; only the signature is missing.
	ErrSigning = errors.New("attestation signing failed")
)

type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid field: %s", e.Field)
}
