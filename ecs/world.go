package ecs

import (
	"reflect"

	"go.uber.org/zap"
)

// World composes the entity store and the scheduler into the single entry
// point the host application uses: create entities, attach components,
// register systems, advance simulation time.
type World struct {
	store     *Store
	scheduler *Scheduler
	logger    *zap.Logger
	totalTime float64
	deltaTime float64
}

// Option configures a World at construction
type Option func(*World)

// WithLogger injects the structured logging sink. The default is a no-op
// logger; there is no process-wide fallback.
func WithLogger(logger *zap.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// NewWorld creates an empty world
func NewWorld(opts ...Option) *World {
	w := &World{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(w)
	}
	w.store = newStore(w.logger.Named("store"))
	w.scheduler = newScheduler(w, w.logger.Named("scheduler"))
	return w
}

// Store returns the entity store, the single source of truth for component
// data. Systems re-query it each tick rather than caching entity lists.
func (w *World) Store() *Store {
	return w.store
}

// Entity forwarding

func (w *World) CreateEntity() Entity {
	return w.store.CreateEntity()
}

func (w *World) CreateEntityWithID(id string) (Entity, error) {
	return w.store.CreateEntityWithID(id)
}

func (w *World) DestroyEntity(e Entity) {
	w.store.DestroyEntity(e)
}

func (w *World) AddComponent(e Entity, c Component) (Component, error) {
	return w.store.AddComponent(e, c)
}

func (w *World) GetComponent(e Entity, kind Kind) (Component, bool) {
	return w.store.GetComponent(e, kind)
}

func (w *World) HasComponent(e Entity, kind Kind) bool {
	return w.store.HasComponent(e, kind)
}

func (w *World) RemoveComponent(e Entity, kind Kind) (bool, error) {
	return w.store.RemoveComponent(e, kind)
}

func (w *World) Query(kinds ...Kind) []Entity {
	return w.store.Query(kinds...)
}

func (w *World) QueryAny(kind Kind) []Entity {
	return w.store.QueryAny(kind)
}

func (w *World) Entities() []Entity {
	return w.store.Entities()
}

func (w *World) EntityCount() int {
	return w.store.EntityCount()
}

// System forwarding

func (w *World) AddSystem(sys System) {
	w.scheduler.Add(sys)
}

func (w *World) RemoveSystem(t reflect.Type) bool {
	return w.scheduler.Remove(t)
}

func (w *World) Scheduler() *Scheduler {
	return w.scheduler
}

// SystemOf returns the registered system of concrete type T
func SystemOf[T System](w *World) (T, bool) {
	var zero T
	sys, ok := w.scheduler.System(reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	return sys.(T), true
}

// RemoveSystemOf unregisters the system of concrete type T
func RemoveSystemOf[T System](w *World) bool {
	var zero T
	return w.scheduler.Remove(reflect.TypeOf(zero))
}

// Update advances simulation time, then runs one scheduler tick. dt is the
// wall-clock delta in seconds supplied by the host once per frame.
func (w *World) Update(dt float64) {
	w.deltaTime = dt
	w.totalTime += dt
	w.scheduler.Update(dt)
}

// TotalTime returns cumulative simulation time in seconds
func (w *World) TotalTime() float64 {
	return w.totalTime
}

// DeltaTime returns the delta passed to the most recent Update
func (w *World) DeltaTime() float64 {
	return w.deltaTime
}

// Clear tears down systems first, so no system observes a half-destroyed
// entity set, then destroys every entity.
func (w *World) Clear() {
	w.scheduler.Clear()
	w.store.Clear()
	w.totalTime = 0
	w.deltaTime = 0
}
