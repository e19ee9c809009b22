// Package camera eases a view rectangle toward a followed point, clamped so
// the level always fills the view.
package camera

import (
	"math"

	"github.com/automoto/doomerang-tiles/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type Camera struct {
	// Center of the view in world units.
	X, Y float64

	ViewW, ViewH     float64
	FollowTicks      int     // Length of one easing
	RetargetDistance float64 // Target movement that starts a new easing

	tweenX, tweenY   *gween.Tween
	targetX, targetY float64
	hasTarget        bool
}

func New(viewW, viewH float64, followTicks int, retargetDistance float64) *Camera {
	return &Camera{
		ViewW:            viewW,
		ViewH:            viewH,
		FollowTicks:      followTicks,
		RetargetDistance: retargetDistance,
	}
}

// Follow aims the camera at (x, y). The first call snaps; later calls ease.
func (c *Camera) Follow(x, y, levelW, levelH float64) {
	tx := clampAxis(x, c.ViewW, levelW)
	ty := clampAxis(y, c.ViewH, levelH)

	if !c.hasTarget {
		c.Snap(tx, ty)
		return
	}
	if math.Hypot(tx-c.targetX, ty-c.targetY) < c.RetargetDistance {
		return
	}

	c.targetX, c.targetY = tx, ty
	duration := float32(max(c.FollowTicks, 1))
	c.tweenX = gween.New(float32(c.X), float32(tx), duration, ease.OutQuad)
	c.tweenY = gween.New(float32(c.Y), float32(ty), duration, ease.OutQuad)
}

// Snap jumps to (x, y) and drops any easing in progress.
func (c *Camera) Snap(x, y float64) {
	c.X, c.Y = x, y
	c.targetX, c.targetY = x, y
	c.tweenX, c.tweenY = nil, nil
	c.hasTarget = true
}

// Reset forgets the target so the next Follow snaps.
func (c *Camera) Reset() {
	c.tweenX, c.tweenY = nil, nil
	c.hasTarget = false
}

// Update advances the easing by one tick.
func (c *Camera) Update() {
	if c.tweenX != nil {
		v, done := c.tweenX.Update(1)
		c.X = float64(v)
		if done {
			c.X, c.tweenX = c.targetX, nil
		}
	}
	if c.tweenY != nil {
		v, done := c.tweenY.Update(1)
		c.Y = float64(v)
		if done {
			c.Y, c.tweenY = c.targetY, nil
		}
	}
}

// Moving reports an easing in progress.
func (c *Camera) Moving() bool {
	return c.tweenX != nil || c.tweenY != nil
}

// Offset is the translation from world to screen coordinates.
func (c *Camera) Offset() (float64, float64) {
	return c.ViewW/2 - c.X, c.ViewH/2 - c.Y
}

func clampAxis(v, view, level float64) float64 {
	if level <= view {
		return level / 2
	}
	return gamemath.ClampFloat(v, view/2, level-view/2)
}
