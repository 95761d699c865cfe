package ecs

import "github.com/google/uuid"

// Entity is an opaque identity handle. It carries no data; all state lives
// in component storage keyed by the entity.
type Entity string

// None is the zero Entity, owned by nothing.
const None Entity = ""

// newEntityID allocates a fresh collision-free identity
func newEntityID() Entity {
	return Entity(uuid.NewString())
}
