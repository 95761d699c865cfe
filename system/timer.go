package system

import (
	"github.com/corvid-labs/tessera/component"
	"github.com/corvid-labs/tessera/ecs"
)

// Timer advances every timer component and fires due callbacks. It runs
// early (priority 50) so spawn/despawn callbacks land before movement and
// rendering in the same tick.
type Timer struct {
	ecs.BaseSystem
}

func NewTimer() *Timer {
	return &Timer{BaseSystem: ecs.NewBaseSystem(PriorityTimer)}
}

func (s *Timer) Update(dt float64) {
	store := s.World().Store()
	for _, e := range store.QueryAny(component.KindTimer) {
		t, ok := ecs.Get[*component.Timer](store, e, component.KindTimer)
		if !ok {
			// a callback earlier in this loop may have removed it
			continue
		}
		t.Advance(dt)
	}
}
