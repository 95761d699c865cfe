package ecs

// Kind is the stable type tag a component type declares. Component storage
// and indices are keyed by Kind, never by runtime reflection. Each concrete
// component type returns a distinct constant from Kind().
type Kind string

// Component is a plain data fragment attached to exactly one entity per Kind
type Component interface {
	Kind() Kind
}

// Teardowner is implemented by components that need a hook when they are
// removed, replaced, or destroyed with their entity. The store invokes it
// exactly once per component instance.
type Teardowner interface {
	Teardown()
}

// Owned provides the owner back-reference for components that embed it.
// The store binds the owning entity at attach time and clears it at removal.
// This is a non-owning identity copy, never a live pointer.
type Owned struct {
	owner Entity
}

// Owner returns the entity this component is attached to, or None
func (o *Owned) Owner() Entity {
	return o.owner
}

func (o *Owned) bindOwner(e Entity) {
	o.owner = e
}

func (o *Owned) releaseOwner() {
	o.owner = None
}

// ownerBinder is satisfied by any component embedding Owned
type ownerBinder interface {
	bindOwner(Entity)
	releaseOwner()
}
