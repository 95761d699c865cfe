package component

import (
	"github.com/corvid-labs/tessera/ecs"
	"github.com/corvid-labs/tessera/vmath"
)

const KindVelocity ecs.Kind = "velocity"

// Velocity is linear velocity in world units per second
type Velocity struct {
	ecs.Owned
	Velocity vmath.Vec2
	MaxSpeed float64 // zero or negative means unlimited
}

// NewVelocity creates a velocity component with no speed limit
func NewVelocity(x, y float64) *Velocity {
	return &Velocity{Velocity: vmath.Vec2{X: x, Y: y}}
}

func (*Velocity) Kind() ecs.Kind { return KindVelocity }

// LimitSpeed clamps the velocity magnitude to MaxSpeed in place
func (v *Velocity) LimitSpeed() {
	if v.MaxSpeed <= 0 {
		return
	}
	v.Velocity = v.Velocity.ClampMagnitude(v.MaxSpeed)
}
