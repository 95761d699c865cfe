package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/corvid-labs/tessera/vmath"
)

// Primitive identifies a recorded draw call
type Primitive uint8

const (
	PrimRectangle Primitive = iota
	PrimCircle
	PrimPolygon
)

// Op is one recorded draw call
type Op struct {
	Primitive Primitive
	Pos       vmath.Vec2
	Size      vmath.Vec2
	Radius    float64
	Points    []vmath.Vec2
	Color     colorful.Color
	Rotation  float64
}

// Recorder captures draw calls instead of rasterizing them. Test double for
// anything that takes a Renderer.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) DrawRectangle(pos, size vmath.Vec2, c colorful.Color, rotation float64) {
	r.Ops = append(r.Ops, Op{Primitive: PrimRectangle, Pos: pos, Size: size, Color: c, Rotation: rotation})
}

func (r *Recorder) DrawCircle(center vmath.Vec2, radius float64, c colorful.Color) {
	r.Ops = append(r.Ops, Op{Primitive: PrimCircle, Pos: center, Radius: radius, Color: c})
}

func (r *Recorder) DrawPolygon(points []vmath.Vec2, c colorful.Color) {
	r.Ops = append(r.Ops, Op{Primitive: PrimPolygon, Points: points, Color: c})
}

// Reset drops all recorded calls
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
