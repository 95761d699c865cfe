package ecs

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// entityRecord holds the components attached to one entity plus its active flag
type entityRecord struct {
	components map[Kind]Component
	active     bool
}

// Store owns all entities and components and keeps the per-kind reverse
// index exactly synchronized with the primary component map on every
// add/remove. The index invariant: an entity appears in index[k] if and
// only if the store currently holds a k component for that entity.
type Store struct {
	logger   *zap.Logger
	entities map[Entity]*entityRecord
	index    map[Kind]map[Entity]struct{}
}

// NewStore creates an empty entity store
func NewStore() *Store {
	return newStore(zap.NewNop())
}

func newStore(logger *zap.Logger) *Store {
	return &Store{
		logger:   logger,
		entities: make(map[Entity]*entityRecord),
		index:    make(map[Kind]map[Entity]struct{}),
	}
}

// CreateEntity allocates a fresh entity with a collision-free id
func (s *Store) CreateEntity() Entity {
	e := newEntityID()
	s.entities[e] = &entityRecord{
		components: make(map[Kind]Component),
		active:     true,
	}
	return e
}

// CreateEntityWithID creates an entity under a caller-supplied id.
// Returns ErrDuplicateID if the id is already in use.
func (s *Store) CreateEntityWithID(id string) (Entity, error) {
	e := Entity(id)
	if id == "" {
		return s.CreateEntity(), nil
	}
	if _, exists := s.entities[e]; exists {
		return None, errors.Wrapf(ErrDuplicateID, "create entity %q", id)
	}
	s.entities[e] = &entityRecord{
		components: make(map[Kind]Component),
		active:     true,
	}
	return e, nil
}

// DestroyEntity removes every component owned by the entity, invoking each
// teardown hook, then removes the entity itself. Idempotent: destroying a
// missing entity is a no-op.
func (s *Store) DestroyEntity(e Entity) {
	rec, ok := s.entities[e]
	if !ok {
		return
	}
	for kind := range rec.components {
		s.detach(rec, e, kind)
	}
	delete(s.entities, e)
}

// AddComponent attaches a component to an entity. If the entity already
// holds a component of the same kind, the old one is torn down and replaced
// before the new one is indexed. The owner back-reference is bound as a
// side effect. Returns ErrUnknownEntity for a missing entity.
func (s *Store) AddComponent(e Entity, c Component) (Component, error) {
	rec, ok := s.entities[e]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEntity, "add %s component to %q", c.Kind(), e)
	}

	kind := c.Kind()
	s.detach(rec, e, kind)

	rec.components[kind] = c
	set, ok := s.index[kind]
	if !ok {
		set = make(map[Entity]struct{})
		s.index[kind] = set
	}
	set[e] = struct{}{}

	if ob, ok := c.(ownerBinder); ok {
		ob.bindOwner(e)
	}
	return c, nil
}

// GetComponent returns the entity's component of the given kind, if any.
// A destroyed or unknown entity simply reports absence.
func (s *Store) GetComponent(e Entity, kind Kind) (Component, bool) {
	rec, ok := s.entities[e]
	if !ok {
		return nil, false
	}
	c, ok := rec.components[kind]
	return c, ok
}

// HasComponent reports whether the entity currently holds a component of kind
func (s *Store) HasComponent(e Entity, kind Kind) bool {
	rec, ok := s.entities[e]
	if !ok {
		return false
	}
	_, ok = rec.components[kind]
	return ok
}

// RemoveComponent detaches and tears down the entity's component of the
// given kind. Removing a component the entity does not hold is a no-op and
// reports false. Returns ErrUnknownEntity for a missing entity.
func (s *Store) RemoveComponent(e Entity, kind Kind) (bool, error) {
	rec, ok := s.entities[e]
	if !ok {
		return false, errors.Wrapf(ErrUnknownEntity, "remove %s component from %q", kind, e)
	}
	return s.detach(rec, e, kind), nil
}

// Entities returns all live entities in unspecified order
func (s *Store) Entities() []Entity {
	out := make([]Entity, 0, len(s.entities))
	for e := range s.entities {
		out = append(out, e)
	}
	return out
}

// EntityCount returns the number of live entities
func (s *Store) EntityCount() int {
	return len(s.entities)
}

// Contains reports whether the entity exists in the store
func (s *Store) Contains(e Entity) bool {
	_, ok := s.entities[e]
	return ok
}

// SetActive toggles the entity's active flag
func (s *Store) SetActive(e Entity, active bool) error {
	rec, ok := s.entities[e]
	if !ok {
		return errors.Wrapf(ErrUnknownEntity, "set active on %q", e)
	}
	rec.active = active
	return nil
}

// Active reports the entity's active flag; false for unknown entities
func (s *Store) Active(e Entity) bool {
	rec, ok := s.entities[e]
	return ok && rec.active
}

// Clear destroys every entity, running all teardown hooks
func (s *Store) Clear() {
	for e := range s.entities {
		s.DestroyEntity(e)
	}
}

// detach removes one component, firing its teardown hook and clearing the
// owner back-reference before the index update
func (s *Store) detach(rec *entityRecord, e Entity, kind Kind) bool {
	c, ok := rec.components[kind]
	if !ok {
		return false
	}
	if td, ok := c.(Teardowner); ok {
		td.Teardown()
	}
	if ob, ok := c.(ownerBinder); ok {
		ob.releaseOwner()
	}
	delete(rec.components, kind)

	set := s.index[kind]
	delete(set, e)
	if len(set) == 0 {
		delete(s.index, kind)
	}
	return true
}
