package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(cs []Contact) []int {
	out := make([]int, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func TestContactTracker_Begin(t *testing.T) {
	var tr contactTracker
	assert.True(t, tr.begin(1, Vec2{10, 10}))
	assert.True(t, tr.begin(2, Vec2{20, 20}))
	assert.False(t, tr.begin(1, Vec2{99, 99}), "duplicate id is ignored")

	require.Equal(t, 2, tr.len())
	c, ok := tr.find(1)
	require.True(t, ok)
	assert.Equal(t, Vec2{10, 10}, c.Position, "duplicate start must not overwrite")
	assert.Equal(t, Vec2{}, c.Delta)
}

func TestContactTracker_UpdatePreservesOrder(t *testing.T) {
	var tr contactTracker
	tr.begin(5, Vec2{0, 0})
	tr.begin(3, Vec2{10, 0})
	tr.begin(9, Vec2{20, 0})

	assert.True(t, tr.update(3, Vec2{13, 4}))
	assert.Equal(t, []int{5, 3, 9}, ids(tr.snapshot()))

	c := tr.at(1)
	assert.Equal(t, Vec2{13, 4}, c.Position)
	assert.Equal(t, Vec2{3, 4}, c.Delta)
	assert.Equal(t, Vec2{10, 0}, c.Previous())

	// Delta is relative to the previous sample, not the start.
	tr.update(3, Vec2{14, 4})
	assert.Equal(t, Vec2{1, 0}, tr.at(1).Delta)
}

func TestContactTracker_UnknownIDs(t *testing.T) {
	var tr contactTracker
	tr.begin(1, Vec2{})

	assert.False(t, tr.update(2, Vec2{5, 5}))
	assert.False(t, tr.remove(2))
	_, ok := tr.find(2)
	assert.False(t, ok)
	assert.Equal(t, 1, tr.len())
}

func TestContactTracker_Remove(t *testing.T) {
	var tr contactTracker
	tr.begin(1, Vec2{})
	tr.begin(2, Vec2{})
	tr.begin(3, Vec2{})

	assert.True(t, tr.remove(2))
	assert.Equal(t, []int{1, 3}, ids(tr.snapshot()))

	// Ids may be reused after release.
	assert.True(t, tr.begin(2, Vec2{7, 7}))
	assert.Equal(t, []int{1, 3, 2}, ids(tr.snapshot()))
}

func TestContactTracker_SnapshotIsCopy(t *testing.T) {
	var tr contactTracker
	assert.Nil(t, tr.snapshot())

	tr.begin(1, Vec2{1, 1})
	snap := tr.snapshot()
	snap[0].Position = Vec2{100, 100}
	assert.Equal(t, Vec2{1, 1}, tr.at(0).Position)
}

func TestContactTracker_Clear(t *testing.T) {
	var tr contactTracker
	tr.begin(1, Vec2{})
	tr.begin(2, Vec2{})
	tr.clear()
	assert.Equal(t, 0, tr.len())
	assert.True(t, tr.begin(1, Vec2{}))
}
