package ecs

// System is a stateless unit of per-tick logic. Implementations embed
// BaseSystem, which supplies the priority, the activity flag, and the world
// back-reference bound at registration. Systems hold no entity state
// between ticks; accumulated state belongs on a component.
type System interface {
	// Update runs one tick of the system's logic. dt is the elapsed
	// simulation time in seconds.
	Update(dt float64)

	// Priority orders systems within a tick; lower runs first
	Priority() int

	// Active reports whether the scheduler should run this system
	Active() bool

	attach(w *World)
}

// Starter is implemented by systems that need a hook when first registered
type Starter interface {
	Start()
}

// Stopper is implemented by systems that need a hook when removed or replaced
type Stopper interface {
	Stop()
}

// BaseSystem carries the common system state. Embed it in every system
// struct; the unexported attach method keeps registration wiring inside
// this package.
type BaseSystem struct {
	world    *World
	priority int
	disabled bool
}

// NewBaseSystem creates the embedded base with the given priority
func NewBaseSystem(priority int) BaseSystem {
	return BaseSystem{priority: priority}
}

// World returns the owning world. Non-nil for any registered system.
func (b *BaseSystem) World() *World {
	return b.world
}

// Priority returns the system's scheduling priority; lower runs first
func (b *BaseSystem) Priority() int {
	return b.priority
}

// Active reports the activity flag
func (b *BaseSystem) Active() bool {
	return !b.disabled
}

// SetActive toggles the activity flag. No lifecycle hook fires on toggle.
func (b *BaseSystem) SetActive(active bool) {
	b.disabled = !active
}

func (b *BaseSystem) attach(w *World) {
	b.world = w
}
