package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/corvid-labs/tessera/vmath"
)

// Renderer is the draw-primitive contract the render adapter emits against.
// The core makes no assumption about how the primitives reach a screen.
type Renderer interface {
	// DrawRectangle fills an axis-sized rectangle whose top-left corner is
	// pos, rotated about its center by rotation radians
	DrawRectangle(pos, size vmath.Vec2, c colorful.Color, rotation float64)

	// DrawCircle fills a circle
	DrawCircle(center vmath.Vec2, radius float64, c colorful.Color)

	// DrawPolygon fills a simple polygon given in draw order
	DrawPolygon(points []vmath.Vec2, c colorful.Color)
}
