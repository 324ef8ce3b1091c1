package gesture

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}

	assert.Equal(t, Vec2{4, 2}, a.Add(b))
	assert.Equal(t, Vec2{2, 6}, a.Sub(b))
	assert.Equal(t, Vec2{6, 8}, a.Scale(2))
	assert.Equal(t, -5.0, a.Dot(b))
	assert.Equal(t, -10.0, a.Cross(b))
	assert.Equal(t, 5.0, a.Len())
	assert.Equal(t, 5.0, Vec2{}.Dist(a))
	assert.Equal(t, Vec2{2, 1}, Mean(a, b))
}

func TestVec2Normalize(t *testing.T) {
	n, ok := Vec2{3, 4}.Normalize()
	assert.True(t, ok)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)

	_, ok = Vec2{}.Normalize()
	assert.False(t, ok, "zero vector has no direction")

	_, ok = Vec2{math.Inf(1), 0}.Normalize()
	assert.False(t, ok, "infinite vector has no direction")
}

func TestVec2NormalizedDot(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
		ok   bool
	}{
		{"same direction", Vec2{2, 0}, Vec2{5, 0}, 1, true},
		{"opposite", Vec2{2, 0}, Vec2{-1, 0}, -1, true},
		{"perpendicular", Vec2{0, 3}, Vec2{4, 0}, 0, true},
		{"zero left", Vec2{}, Vec2{1, 0}, 0, false},
		{"zero right", Vec2{1, 0}, Vec2{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.NormalizedDot(tt.b)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestVec2AngleTo(t *testing.T) {
	tests := []struct {
		name     string
		v, from  Vec2
		want     float64
		ok       bool
	}{
		{"same", Vec2{1, 0}, Vec2{2, 0}, 0, true},
		{"quarter clockwise on screen", Vec2{0, 1}, Vec2{1, 0}, 90, true},
		{"quarter counter-clockwise", Vec2{0, -1}, Vec2{1, 0}, -90, true},
		{"half turn is positive", Vec2{-1, 0}, Vec2{1, 0}, 180, true},
		{"small negative stays small", Vec2{1, -0.01}, Vec2{1, 0}, -0.5729, true},
		{"zero current", Vec2{}, Vec2{1, 0}, 0, false},
		{"zero previous", Vec2{1, 0}, Vec2{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.v.AngleTo(tt.from)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-3)
		})
	}
}

func TestVec2IsFinite(t *testing.T) {
	assert.True(t, Vec2{1, 2}.IsFinite())
	assert.False(t, Vec2{math.NaN(), 0}.IsFinite())
	assert.False(t, Vec2{0, math.Inf(-1)}.IsFinite())
	assert.True(t, Vec2{}.IsZero())
	assert.False(t, Vec2{0, 1}.IsZero())
}
