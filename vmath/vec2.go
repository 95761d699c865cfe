package vmath

import "math"

// Vec2 is a 2D float vector. Value semantics throughout; operations return
// new vectors.
type Vec2 struct {
	X, Y float64
}

// FromAngle builds a vector of the given magnitude pointing at angle radians
func FromAngle(angle, magnitude float64) Vec2 {
	return Vec2{X: math.Cos(angle) * magnitude, Y: math.Sin(angle) * magnitude}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// MagnitudeSq returns squared magnitude without the sqrt
func (v Vec2) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec2{}
	}
	return v.Scale(1 / mag)
}

// ClampMagnitude limits the vector to maxMag while preserving direction.
// Returns the vector unchanged if its magnitude is within the limit.
func (v Vec2) ClampMagnitude(maxMag float64) Vec2 {
	magSq := v.MagnitudeSq()
	if magSq <= maxMag*maxMag || magSq == 0 {
		return v
	}
	return v.Scale(maxMag / math.Sqrt(magSq))
}

// Rotate rotates the vector by angle radians
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns the vector's direction in radians
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Clamp limits v to the [lo, hi] interval
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap maps v into [0, size) by modular arithmetic; 815 on an 800-wide
// field wraps to 15
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}
