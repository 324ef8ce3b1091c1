package gesture

import "math"

// Vec2 is a 2D vector used for contact positions, deltas, and gesture
// directions. The coordinate system follows the host: origin at the top-left,
// Y increasing downward.
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

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product v · o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// Normalize returns the unit vector in the direction of v. The second result
// is false when v has zero (or non-finite) length and no direction exists.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l == 0 || !isFinite(l) {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// NormalizedDot returns the dot product of the unit vectors of v and o, i.e.
// the cosine of the angle between them. The second result is false when
// either vector has no direction.
func (v Vec2) NormalizedDot(o Vec2) (float64, bool) {
	nv, ok := v.Normalize()
	if !ok {
		return 0, false
	}
	no, ok := o.Normalize()
	if !ok {
		return 0, false
	}
	return nv.Dot(no), true
}

// AngleTo returns the signed angle in degrees that rotates from to v,
// normalized to (-180, 180]. Positive values are clockwise on screen
// (Y down). The second result is false when either vector has zero length.
func (v Vec2) AngleTo(from Vec2) (float64, bool) {
	if v.IsZero() || from.IsZero() {
		return 0, false
	}
	deg := math.Atan2(from.Cross(v), from.Dot(v)) * 180 / math.Pi
	if deg <= -180 {
		deg += 360
	}
	if !isFinite(deg) {
		return 0, false
	}
	return deg, true
}

// Mean returns the component-wise average of a and b.
func Mean(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
