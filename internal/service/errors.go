package service

import "errors"

// Sentinel errors returned by the engine and façades. Callers match them
// with errors.Is; transport and protocol failures surface as the adapter
// package's sentinels instead.
var (
	// ErrUnknownEntityType is returned by Submit for an entity type the
	// write policy table does not know.
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrInvalidRecord is returned when a batch record does not have the
	// shape its entity type's route requires.
	ErrInvalidRecord = errors.New("record does not match entity type")

	ErrProjectNotFound = errors.New("project not found")
	ErrGroupNotFound   = errors.New("project group not found")
	ErrTagNotFound     = errors.New("tag not found")
	ErrFilterNotFound  = errors.New("filter not found")
	ErrHabitNotFound   = errors.New("habit not found")
	ErrColumnNotFound  = errors.New("column not found")

	// ErrColumnDeleteUnsupported marks the one write shape the service has
	// no endpoint for: columns can be created and reordered but not deleted
	// through the public API.
	ErrColumnDeleteUnsupported = errors.New("column delete is not supported by the service")
)
