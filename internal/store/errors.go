package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned when a load or targeted update finds no
	// stored session row.
	ErrSessionNotFound = errors.New("no session stored")

	// ErrSessionNotSaved is returned when a write completes without a driver
	// error but affects zero rows, meaning nothing was actually persisted.
	ErrSessionNotSaved = errors.New("session was not saved")
)
