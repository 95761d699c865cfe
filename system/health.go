package system

import (
	"github.com/corvid-labs/tessera/component"
	"github.com/corvid-labs/tessera/ecs"
)

// Health destroys entities whose health component reports death. Destruction
// happens after iteration so the query snapshot stays valid.
type Health struct {
	ecs.BaseSystem
}

func NewHealth() *Health {
	return &Health{BaseSystem: ecs.NewBaseSystem(PriorityHealth)}
}

func (s *Health) Update(dt float64) {
	store := s.World().Store()
	var dead []ecs.Entity
	for _, e := range store.QueryAny(component.KindHealth) {
		h, ok := ecs.Get[*component.Health](store, e, component.KindHealth)
		if ok && h.Dead {
			dead = append(dead, e)
		}
	}
	for _, e := range dead {
		store.DestroyEntity(e)
	}
}
