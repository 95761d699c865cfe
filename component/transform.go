package component

import (
	"github.com/corvid-labs/tessera/ecs"
	"github.com/corvid-labs/tessera/vmath"
)

const KindTransform ecs.Kind = "transform"

// Transform holds world-space position, rotation, and scale. Flat: no
// parent/child composition.
type Transform struct {
	ecs.Owned
	Position vmath.Vec2
	Rotation float64 // radians
	Scale    vmath.Vec2
}

// NewTransform creates a transform at the given position with unit scale
func NewTransform(x, y float64) *Transform {
	return &Transform{
		Position: vmath.Vec2{X: x, Y: y},
		Scale:    vmath.Vec2{X: 1, Y: 1},
	}
}

func (*Transform) Kind() ecs.Kind { return KindTransform }

// Translate moves the transform by delta
func (t *Transform) Translate(delta vmath.Vec2) {
	t.Position = t.Position.Add(delta)
}

// Rotate turns the transform by delta radians
func (t *Transform) Rotate(delta float64) {
	t.Rotation += delta
}
