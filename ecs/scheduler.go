package ecs

import (
	"reflect"
	"sort"

	"go.uber.org/zap"
)

// Scheduler holds the ordered system list and runs one tick at a time.
// Systems run in ascending priority order; ties keep registration order.
// At most one instance per concrete system type is registered; adding the
// same type again tears down and replaces the prior instance.
//
// Structural changes requested while a tick is running (add or remove from
// inside a system's Update) are queued and applied after the last system
// returns, so no system observes a schedule mutated under its feet.
type Scheduler struct {
	world   *World
	logger  *zap.Logger
	systems []System
	byType  map[reflect.Type]System
	ticking bool
	pending []func()
}

func newScheduler(w *World, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		world:  w,
		logger: logger,
		byType: make(map[reflect.Type]System),
	}
}

// Add registers a system, replacing any prior instance of the same concrete
// type (its Stop hook fires before the new instance's Start hook).
func (sc *Scheduler) Add(sys System) {
	if sc.ticking {
		sc.pending = append(sc.pending, func() { sc.add(sys) })
		return
	}
	sc.add(sys)
}

func (sc *Scheduler) add(sys System) {
	t := reflect.TypeOf(sys)
	if _, replaced := sc.byType[t]; replaced {
		sc.remove(t)
	}

	sys.attach(sc.world)
	sc.systems = append(sc.systems, sys)
	sc.byType[t] = sys
	sort.SliceStable(sc.systems, func(i, j int) bool {
		return sc.systems[i].Priority() < sc.systems[j].Priority()
	})

	if st, ok := sys.(Starter); ok {
		st.Start()
	}
	sc.logger.Debug("system registered",
		zap.String("system", t.String()),
		zap.Int("priority", sys.Priority()))
}

// Remove unregisters the system of the given concrete type, firing its Stop
// hook. Reports whether a system of that type was registered; removing an
// unregistered type is a no-op.
func (sc *Scheduler) Remove(t reflect.Type) bool {
	if sc.ticking {
		_, registered := sc.byType[t]
		if registered {
			sc.pending = append(sc.pending, func() { sc.remove(t) })
		}
		return registered
	}
	return sc.remove(t)
}

func (sc *Scheduler) remove(t reflect.Type) bool {
	sys, ok := sc.byType[t]
	if !ok {
		return false
	}
	if sp, ok := sys.(Stopper); ok {
		sp.Stop()
	}
	delete(sc.byType, t)
	for i, registered := range sc.systems {
		if registered == sys {
			sc.systems = append(sc.systems[:i], sc.systems[i+1:]...)
			break
		}
	}
	sc.logger.Debug("system removed", zap.String("system", t.String()))
	return true
}

// System returns the registered instance of the given concrete type
func (sc *Scheduler) System(t reflect.Type) (System, bool) {
	sys, ok := sc.byType[t]
	return sys, ok
}

// Len returns the number of registered systems
func (sc *Scheduler) Len() int {
	return len(sc.systems)
}

// Update runs every active system in priority order, then applies queued
// structural changes. A system that panics is not caught; partial-tick
// state is the host's to deal with.
func (sc *Scheduler) Update(dt float64) {
	sc.ticking = true
	systems := make([]System, len(sc.systems))
	copy(systems, sc.systems)
	for _, sys := range systems {
		if !sys.Active() {
			continue
		}
		sys.Update(dt)
	}
	sc.ticking = false

	pending := sc.pending
	sc.pending = nil
	for _, op := range pending {
		op()
	}
}

// Clear stops and drops every system
func (sc *Scheduler) Clear() {
	systems := make([]System, len(sc.systems))
	copy(systems, sc.systems)
	for _, sys := range systems {
		if sp, ok := sys.(Stopper); ok {
			sp.Stop()
		}
	}
	sc.systems = sc.systems[:0]
	sc.byType = make(map[reflect.Type]System)
}
