package component

import "github.com/corvid-labs/tessera/ecs"

const KindHealth ecs.Kind = "health"

// Health tracks hit points. Dead is set when Current reaches zero; the
// health system destroys dead entities.
type Health struct {
	ecs.Owned
	Max     int
	Current int
	Dead    bool
}

// NewHealth creates a health component at full hit points
func NewHealth(max int) *Health {
	return &Health{Max: max, Current: max}
}

func (*Health) Kind() ecs.Kind { return KindHealth }

// TakeDamage reduces Current, clamping at zero and marking death
func (h *Health) TakeDamage(amount int) {
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		h.Dead = true
	}
}

// Heal raises Current, clamping at Max and clearing the dead flag
func (h *Health) Heal(amount int) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	h.Dead = false
}
