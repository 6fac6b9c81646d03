package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnboundedWindowShowsEverything(t *testing.T) {
	s := NewService(10, 0)
	s.Follow(9)

	assert.Equal(t, Window{Start: 0, End: 10}, s.Window())
	assert.False(t, s.MoreBelow())
	assert.False(t, s.Window().MoreAbove())
}

func TestWindowLargerThanList(t *testing.T) {
	s := NewService(3, 10)
	s.Follow(2)
	assert.Equal(t, Window{Start: 0, End: 3}, s.Window())
}

func TestFollowScrollsDownAndUp(t *testing.T) {
	s := NewService(10, 3)

	s.Follow(2)
	assert.Equal(t, 0, s.Offset())

	s.Follow(3)
	assert.Equal(t, 1, s.Offset())
	assert.Equal(t, Window{Start: 1, End: 4}, s.Window())
	assert.True(t, s.Window().MoreAbove())
	assert.True(t, s.MoreBelow())

	s.Follow(0)
	assert.Equal(t, 0, s.Offset())
}

func TestFollowHandlesWrapAround(t *testing.T) {
	s := NewService(10, 4)

	// cursor wraps from 0 to the last option
	s.Follow(9)
	assert.Equal(t, Window{Start: 6, End: 10}, s.Window())
	assert.False(t, s.MoreBelow())

	// and back to the first
	s.Follow(0)
	assert.Equal(t, Window{Start: 0, End: 4}, s.Window())
}

func TestShrinkingHeightClampsOffset(t *testing.T) {
	s := NewService(5, 2)
	s.Follow(4)
	assert.Equal(t, 3, s.Offset())

	s.SetHeight(10)
	assert.Equal(t, 0, s.Offset())
	assert.Equal(t, 5, s.Window().Len())

	s.SetHeight(-1)
	assert.Equal(t, 0, s.Height())
}
