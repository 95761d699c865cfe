package component

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/corvid-labs/tessera/ecs"
	"github.com/corvid-labs/tessera/vmath"
)

const KindSprite ecs.Kind = "sprite"

// Shape selects the draw primitive the render adapter emits
type Shape uint8

const (
	Rectangle Shape = iota
	Circle
	Triangle
)

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Triangle:
		return "triangle"
	default:
		return "rectangle"
	}
}

// Sprite is pure render-intent data; it draws nothing itself
type Sprite struct {
	ecs.Owned
	Color   colorful.Color
	Size    vmath.Vec2
	Shape   Shape
	Visible bool
	Z       int // ascending draw order
}

// NewSprite creates a visible sprite
func NewSprite(c colorful.Color, width, height float64, shape Shape) *Sprite {
	return &Sprite{
		Color:   c,
		Size:    vmath.Vec2{X: width, Y: height},
		Shape:   shape,
		Visible: true,
	}
}

func (*Sprite) Kind() ecs.Kind { return KindSprite }

// Hex parses a #RRGGBB color, falling back to white on malformed input
func Hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}
