package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// moved returns a contact that travelled by delta to reach pos.
func moved(id int, pos, delta Vec2) Contact {
	return Contact{ID: id, Position: pos, Delta: delta}
}

func TestEvalPinch(t *testing.T) {
	tests := []struct {
		name string
		a, b Contact
		want float64
	}{
		{"spreading", moved(1, Vec2{90, 0}, Vec2{-10, 0}), moved(2, Vec2{210, 0}, Vec2{10, 0}), 20},
		{"closing", moved(1, Vec2{110, 0}, Vec2{10, 0}), moved(2, Vec2{190, 0}, Vec2{-10, 0}), -20},
		{"shared motion", moved(1, Vec2{105, 5}, Vec2{5, 5}), moved(2, Vec2{205, 5}, Vec2{5, 5}), 0},
		{"one still", moved(1, Vec2{0, 0}, Vec2{}), moved(2, Vec2{0, 30}, Vec2{0, 10}), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := evalPinch(tt.a, tt.b)
			assert.True(t, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvalRotate(t *testing.T) {
	t.Run("shared motion is zero", func(t *testing.T) {
		got, ok := evalRotate(moved(1, Vec2{105, 5}, Vec2{5, 5}), moved(2, Vec2{205, 5}, Vec2{5, 5}))
		assert.True(t, ok)
		assert.InDelta(t, 0, got, 1e-9)
	})

	t.Run("quarter turn is scaled by gain", func(t *testing.T) {
		// b orbits a from (100,0) to (0,100) relative: line b->a turns 90 degrees.
		a := moved(1, Vec2{0, 0}, Vec2{})
		b := moved(2, Vec2{0, 100}, Vec2{-100, 100})
		got, ok := evalRotate(a, b)
		assert.True(t, ok)
		assert.InDelta(t, 90*RotateGain, got, 1e-6)
	})

	t.Run("small opposite turns have opposite signs", func(t *testing.T) {
		a := moved(1, Vec2{0, 0}, Vec2{})
		cw, ok1 := evalRotate(a, moved(2, Vec2{100, 2}, Vec2{0, 2}))
		ccw, ok2 := evalRotate(a, moved(2, Vec2{100, -2}, Vec2{0, -2}))
		assert.True(t, ok1)
		assert.True(t, ok2)
		assert.InDelta(t, -cw, ccw, 1e-9)
		assert.Less(t, abs(cw), 60.0)
	})

	t.Run("coincident contacts are suppressed", func(t *testing.T) {
		_, ok := evalRotate(moved(1, Vec2{50, 50}, Vec2{1, 0}), moved(2, Vec2{50, 50}, Vec2{0, 1}))
		assert.False(t, ok)
	})
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func TestEvalPan2(t *testing.T) {
	t.Run("identical deltas pan by the shared delta", func(t *testing.T) {
		got, ok := evalPan2(moved(1, Vec2{103, 4}, Vec2{3, 4}), moved(2, Vec2{203, 4}, Vec2{3, 4}))
		assert.True(t, ok)
		assert.InDelta(t, 3, got.X, 1e-9)
		assert.InDelta(t, 4, got.Y, 1e-9)
	})

	t.Run("pure pinch is zero", func(t *testing.T) {
		got, ok := evalPan2(moved(1, Vec2{90, 0}, Vec2{-10, 0}), moved(2, Vec2{210, 0}, Vec2{10, 0}))
		assert.True(t, ok)
		assert.InDelta(t, 0, got.Len(), 1e-9)
	})

	t.Run("pure rotation is zero", func(t *testing.T) {
		got, ok := evalPan2(moved(1, Vec2{0, -5}, Vec2{0, -5}), moved(2, Vec2{100, 5}, Vec2{0, 5}))
		assert.True(t, ok)
		assert.InDelta(t, 0, got.Len(), 1e-9)
	})

	t.Run("one stationary contact gives no confidence", func(t *testing.T) {
		got, ok := evalPan2(moved(1, Vec2{10, 0}, Vec2{10, 0}), moved(2, Vec2{100, 0}, Vec2{}))
		assert.True(t, ok)
		assert.Equal(t, Vec2{}, got)
	})

	t.Run("diverging fingers are damped", func(t *testing.T) {
		got, ok := evalPan2(moved(1, Vec2{10, 0}, Vec2{10, 0}), moved(2, Vec2{100, 10}, Vec2{0, 10}))
		assert.True(t, ok)
		mean := Vec2{5, 5}
		assert.Less(t, got.Len(), mean.Len())
		assert.Greater(t, got.Len(), 0.0)
	})
}

func TestEvalPan3(t *testing.T) {
	t.Run("all agree", func(t *testing.T) {
		d := Vec2{2, 0}
		got, ok := evalPan3(moved(1, Vec2{2, 0}, d), moved(2, Vec2{52, 0}, d), moved(3, Vec2{102, 0}, d))
		assert.True(t, ok)
		assert.InDelta(t, 4, got.X, 1e-9)
		assert.InDelta(t, 0, got.Y, 1e-9)
	})

	t.Run("third contact against the others", func(t *testing.T) {
		d := Vec2{2, 0}
		got, ok := evalPan3(moved(1, Vec2{2, 0}, d), moved(2, Vec2{52, 0}, d), moved(3, Vec2{98, 0}, Vec2{-2, 0}))
		assert.True(t, ok)
		assert.Equal(t, Vec2{}, got)
	})

	t.Run("stationary third contact is suppressed", func(t *testing.T) {
		d := Vec2{2, 0}
		_, ok := evalPan3(moved(1, Vec2{2, 0}, d), moved(2, Vec2{52, 0}, d), moved(3, Vec2{100, 0}, Vec2{}))
		assert.False(t, ok)
	})

	t.Run("first two disagreeing is suppressed", func(t *testing.T) {
		_, ok := evalPan3(
			moved(1, Vec2{-2, 0}, Vec2{-2, 0}),
			moved(2, Vec2{52, 0}, Vec2{2, 0}),
			moved(3, Vec2{102, 0}, Vec2{2, 0}))
		assert.False(t, ok)
	})

	t.Run("weight is capped by two-finger confidence", func(t *testing.T) {
		a := moved(1, Vec2{10, 0}, Vec2{10, 0})
		b := moved(2, Vec2{100, 10}, Vec2{0, 10})
		c := moved(3, Vec2{205, 5}, Vec2{5, 5})
		got, ok := evalPan3(a, b, c)
		assert.True(t, ok)
		conf := twoFingerConfidence(a, b)
		want := Vec2{5, 5}.Add(c.Delta).Scale(conf)
		assert.InDelta(t, want.X, got.X, 1e-9)
		assert.InDelta(t, want.Y, got.Y, 1e-9)
	})
}
