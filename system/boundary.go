package system

import (
	"github.com/corvid-labs/tessera/component"
	"github.com/corvid-labs/tessera/ecs"
	"github.com/corvid-labs/tessera/vmath"
)

// BoundaryMode selects what happens at the field edge
type BoundaryMode uint8

const (
	// Wrap maps positions modulo the field size; leaving one edge re-enters
	// at the opposite one
	Wrap BoundaryMode = iota
	// Clamp pins positions to the field rectangle
	Clamp
)

// Boundary keeps every Transform inside a configured rectangle anchored at
// the origin
type Boundary struct {
	ecs.BaseSystem
	Width  float64
	Height float64
	Mode   BoundaryMode
}

func NewBoundary(width, height float64, mode BoundaryMode) *Boundary {
	return &Boundary{
		BaseSystem: ecs.NewBaseSystem(PriorityBoundary),
		Width:      width,
		Height:     height,
		Mode:       mode,
	}
}

func (s *Boundary) Update(dt float64) {
	store := s.World().Store()
	for _, e := range store.QueryAny(component.KindTransform) {
		tf, ok := ecs.Get[*component.Transform](store, e, component.KindTransform)
		if !ok {
			continue
		}
		switch s.Mode {
		case Clamp:
			tf.Position.X = vmath.Clamp(tf.Position.X, 0, s.Width)
			tf.Position.Y = vmath.Clamp(tf.Position.Y, 0, s.Height)
		default:
			tf.Position.X = vmath.Wrap(tf.Position.X, s.Width)
			tf.Position.Y = vmath.Wrap(tf.Position.Y, s.Height)
		}
	}
}
