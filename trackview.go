package trackview

import "math"

// Vec2 is a 2D vector used for positions, offsets, and directions throughout
// the API. A value is always in exactly one coordinate space — world or
// screen — named by the parameter or field that carries it.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistTo returns the Euclidean distance between v and o.
func (v Vec2) DistTo(o Vec2) float64 {
	return o.Sub(v).Len()
}

// Perp returns v rotated 90 degrees counterclockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Normalized returns v scaled to unit length, or the zero vector if v has
// zero length.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Mul(1 / l)
}

// GestureKind identifies the active gesture session, if any.
type GestureKind uint8

const (
	GestureNone       GestureKind = iota // no pointer interaction in progress
	GesturePan                           // single pointer dragging the viewport
	GesturePinch                         // two-finger pinch zoom
	GestureEntityDrag                    // single pointer dragging a train marker
)

// String returns the gesture kind name for debug output.
func (k GestureKind) String() string {
	switch k {
	case GesturePan:
		return "pan"
	case GesturePinch:
		return "pinch"
	case GestureEntityDrag:
		return "entityDrag"
	default:
		return "none"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
