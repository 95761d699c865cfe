package ecs

import "github.com/pkg/errors"

var (
	// ErrUnknownEntity indicates an operation referenced an entity not present
	// in the store. Surfaced to the caller because it points at a
	// use-after-destroy bug; never silently swallowed.
	ErrUnknownEntity = errors.New("ecs: unknown entity")

	// ErrDuplicateID indicates explicit entity creation requested an id
	// already in use.
	ErrDuplicateID = errors.New("ecs: duplicate entity id")
)
