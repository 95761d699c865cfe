package system

import (
	"github.com/corvid-labs/tessera/component"
	"github.com/corvid-labs/tessera/ecs"
)

// Default priorities. Lower runs first; the numeric gaps let callers
// interleave custom systems without renumbering.
const (
	PriorityTimer    = 50
	PriorityMovement = 100
	PriorityBoundary = 150
	PriorityHealth   = 200
	PriorityRender   = 1000
)

// Movement integrates velocity into position for entities holding both
// Transform and Velocity
type Movement struct {
	ecs.BaseSystem
}

func NewMovement() *Movement {
	return &Movement{BaseSystem: ecs.NewBaseSystem(PriorityMovement)}
}

func (s *Movement) Update(dt float64) {
	store := s.World().Store()
	for _, e := range store.Query(component.KindTransform, component.KindVelocity) {
		tf, ok := ecs.Get[*component.Transform](store, e, component.KindTransform)
		if !ok {
			continue
		}
		vel, ok := ecs.Get[*component.Velocity](store, e, component.KindVelocity)
		if !ok {
			continue
		}
		vel.LimitSpeed()
		tf.Translate(vel.Velocity.Scale(dt))
	}
}
