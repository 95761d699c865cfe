package system

import (
	"sort"

	"github.com/corvid-labs/tessera/component"
	"github.com/corvid-labs/tessera/ecs"
	"github.com/corvid-labs/tessera/render"
	"github.com/corvid-labs/tessera/vmath"
)

// Render is the adapter between component data and the external renderer:
// one draw-primitive call per visible sprite per tick, in ascending z
// order. It runs last so every other system's mutations are visible in the
// frame.
type Render struct {
	ecs.BaseSystem
	renderer render.Renderer
}

func NewRender(r render.Renderer) *Render {
	return &Render{
		BaseSystem: ecs.NewBaseSystem(PriorityRender),
		renderer:   r,
	}
}

type drawable struct {
	tf *component.Transform
	sp *component.Sprite
}

func (s *Render) Update(dt float64) {
	store := s.World().Store()

	var items []drawable
	for _, e := range store.Query(component.KindTransform, component.KindSprite) {
		tf, ok := ecs.Get[*component.Transform](store, e, component.KindTransform)
		if !ok {
			continue
		}
		sp, ok := ecs.Get[*component.Sprite](store, e, component.KindSprite)
		if !ok || !sp.Visible {
			continue
		}
		items = append(items, drawable{tf: tf, sp: sp})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].sp.Z < items[j].sp.Z
	})

	for _, d := range items {
		switch d.sp.Shape {
		case component.Circle:
			s.renderer.DrawCircle(d.tf.Position, d.sp.Size.X/2, d.sp.Color)
		case component.Triangle:
			s.renderer.DrawPolygon(trianglePoints(d.tf, d.sp), d.sp.Color)
		default:
			s.renderer.DrawRectangle(
				d.tf.Position.Sub(d.sp.Size.Scale(0.5)),
				d.sp.Size,
				d.sp.Color,
				d.tf.Rotation,
			)
		}
	}
}

// trianglePoints builds an apex-up isoceles triangle centered on the
// transform, rotated with it
func trianglePoints(tf *component.Transform, sp *component.Sprite) []vmath.Vec2 {
	half := sp.Size.Scale(0.5)
	local := []vmath.Vec2{
		{X: 0, Y: -half.Y},
		{X: half.X, Y: half.Y},
		{X: -half.X, Y: half.Y},
	}
	points := make([]vmath.Vec2, len(local))
	for i, p := range local {
		points[i] = p.Rotate(tf.Rotation).Add(tf.Position)
	}
	return points
}
