package ecs

import "sort"

// Query returns the entities holding all listed component kinds, resolved
// as a set intersection over the per-kind indices. The smallest index is
// intersected first; that ordering is a performance choice, not a
// correctness one. Zero kinds returns all entities. Result order is
// unspecified and callers must not depend on it.
func (s *Store) Query(kinds ...Kind) []Entity {
	if len(kinds) == 0 {
		return s.Entities()
	}

	sets := make([]map[Entity]struct{}, 0, len(kinds))
	for _, k := range kinds {
		set, ok := s.index[k]
		if !ok {
			return nil
		}
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool {
		return len(sets[i]) < len(sets[j])
	})

	out := make([]Entity, 0, len(sets[0]))
	for e := range sets[0] {
		match := true
		for _, set := range sets[1:] {
			if _, ok := set[e]; !ok {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// QueryAny is the single-kind form of the same index lookup
func (s *Store) QueryAny(kind Kind) []Entity {
	set, ok := s.index[kind]
	if !ok {
		return nil
	}
	out := make([]Entity, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	return out
}

// Get retrieves the entity's component of the given kind as its concrete
// type. Reports false when the component is absent or of a different type.
func Get[T Component](s *Store, e Entity, kind Kind) (T, bool) {
	c, ok := s.GetComponent(e, kind)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := c.(T)
	if !ok {
		var zero T
		return zero, false
	}
	return t, true
}
