package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstFollowSnaps(t *testing.T) {
	c := New(320, 180, 20, 8)
	c.Follow(500, 300, 1000, 600)

	assert.Equal(t, 500.0, c.X)
	assert.Equal(t, 300.0, c.Y)
	assert.False(t, c.Moving())
}

func TestFollowEasesToTarget(t *testing.T) {
	c := New(320, 180, 20, 8)
	c.Follow(500, 300, 1000, 600)
	c.Follow(600, 300, 1000, 600)
	assert.True(t, c.Moving())

	c.Update()
	assert.Greater(t, c.X, 500.0)
	assert.Less(t, c.X, 600.0)

	for i := 0; i < 19; i++ {
		c.Update()
	}
	assert.False(t, c.Moving())
	assert.Equal(t, 600.0, c.X)
	assert.Equal(t, 300.0, c.Y)
}

func TestSmallMovesDoNotRetarget(t *testing.T) {
	c := New(320, 180, 20, 8)
	c.Follow(500, 300, 1000, 600)
	c.Follow(505, 303, 1000, 600)

	assert.False(t, c.Moving())
	assert.Equal(t, 500.0, c.X)
}

func TestFollowClampsToLevel(t *testing.T) {
	c := New(320, 180, 20, 8)
	c.Follow(0, 0, 1000, 600)
	assert.Equal(t, 160.0, c.X)
	assert.Equal(t, 90.0, c.Y)

	c.Snap(0, 0)
	c.Follow(2000, 2000, 1000, 600)
	for c.Moving() {
		c.Update()
	}
	assert.Equal(t, 840.0, c.X)
	assert.Equal(t, 510.0, c.Y)
}

func TestSmallLevelIsCentered(t *testing.T) {
	c := New(320, 180, 20, 8)
	c.Follow(10, 10, 192, 96)

	assert.Equal(t, 96.0, c.X)
	assert.Equal(t, 48.0, c.Y)
	x, y := c.Offset()
	assert.Equal(t, 64.0, x)
	assert.Equal(t, 42.0, y)
}

func TestResetSnapsOnNextFollow(t *testing.T) {
	c := New(320, 180, 20, 8)
	c.Follow(500, 300, 1000, 600)
	c.Follow(700, 300, 1000, 600)
	c.Reset()
	assert.False(t, c.Moving())

	c.Follow(200, 200, 1000, 600)
	assert.Equal(t, 200.0, c.X)
	assert.Equal(t, 200.0, c.Y)
}
