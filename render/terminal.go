package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/corvid-labs/tessera/vmath"
)

const fillRune = '█'

// Terminal rasterizes draw primitives onto a tcell screen. World
// coordinates map to cells through a configurable scale; terminal cells are
// roughly twice as tall as wide, so the vertical scale is usually double
// the horizontal one.
type Terminal struct {
	screen tcell.Screen
	scaleX float64 // world units per cell column
	scaleY float64 // world units per cell row
}

// NewTerminal creates a renderer over an initialized screen
func NewTerminal(screen tcell.Screen, scaleX, scaleY float64) *Terminal {
	if scaleX <= 0 {
		scaleX = 1
	}
	if scaleY <= 0 {
		scaleY = 2
	}
	return &Terminal{screen: screen, scaleX: scaleX, scaleY: scaleY}
}

// Begin clears the screen for a new frame
func (t *Terminal) Begin() {
	t.screen.Clear()
}

// Show flushes the frame to the terminal
func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) DrawRectangle(pos, size vmath.Vec2, c colorful.Color, rotation float64) {
	if rotation == 0 {
		t.fillBox(pos, pos.Add(size), c)
		return
	}
	center := pos.Add(size.Scale(0.5))
	half := size.Scale(0.5)
	corners := []vmath.Vec2{
		{X: -half.X, Y: -half.Y},
		{X: half.X, Y: -half.Y},
		{X: half.X, Y: half.Y},
		{X: -half.X, Y: half.Y},
	}
	for i, p := range corners {
		corners[i] = p.Rotate(rotation).Add(center)
	}
	t.DrawPolygon(corners, c)
}

func (t *Terminal) DrawCircle(center vmath.Vec2, radius float64, c colorful.Color) {
	if radius <= 0 {
		return
	}
	style := t.style(c)
	min := vmath.Vec2{X: center.X - radius, Y: center.Y - radius}
	max := vmath.Vec2{X: center.X + radius, Y: center.Y + radius}
	t.scanCells(min, max, func(cx, cy int, world vmath.Vec2) {
		if world.Sub(center).MagnitudeSq() <= radius*radius {
			t.screen.SetContent(cx, cy, fillRune, nil, style)
		}
	})
}

func (t *Terminal) DrawPolygon(points []vmath.Vec2, c colorful.Color) {
	if len(points) < 3 {
		return
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	style := t.style(c)
	t.scanCells(min, max, func(cx, cy int, world vmath.Vec2) {
		if pointInPolygon(world, points) {
			t.screen.SetContent(cx, cy, fillRune, nil, style)
		}
	})
}

// fillBox is the unrotated rectangle fast path
func (t *Terminal) fillBox(min, max vmath.Vec2, c colorful.Color) {
	style := t.style(c)
	t.scanCells(min, max, func(cx, cy int, world vmath.Vec2) {
		if world.X >= min.X && world.X < max.X && world.Y >= min.Y && world.Y < max.Y {
			t.screen.SetContent(cx, cy, fillRune, nil, style)
		}
	})
}

// scanCells visits every on-screen cell whose center falls inside the world
// bounding box, handing the callback the cell coordinates and the cell
// center in world units
func (t *Terminal) scanCells(min, max vmath.Vec2, visit func(cx, cy int, world vmath.Vec2)) {
	width, height := t.screen.Size()
	x0 := int(math.Floor(min.X / t.scaleX))
	x1 := int(math.Ceil(max.X / t.scaleX))
	y0 := int(math.Floor(min.Y / t.scaleY))
	y1 := int(math.Ceil(max.Y / t.scaleY))
	for cy := y0; cy <= y1; cy++ {
		if cy < 0 || cy >= height {
			continue
		}
		for cx := x0; cx <= x1; cx++ {
			if cx < 0 || cx >= width {
				continue
			}
			world := vmath.Vec2{
				X: (float64(cx) + 0.5) * t.scaleX,
				Y: (float64(cy) + 0.5) * t.scaleY,
			}
			visit(cx, cy, world)
		}
	}
}

func (t *Terminal) style(c colorful.Color) tcell.Style {
	r, g, b := c.Clamped().RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// pointInPolygon is an even-odd ray cast
func pointInPolygon(p vmath.Vec2, poly []vmath.Vec2) bool {
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
