package kinematics

import (
	"fmt"
	"math"

	"github.com/automoto/doomerang-tiles/shared/collision"
	dmath "github.com/yohamta/donburi/features/math"
)

// Removed bodies are parked here instead of shrinking their hitbox to zero.
const (
	NullX = -1 << 20
	NullY = -1 << 20

	minExtent = 1.0
)

// Body is the mutable kinematic state of one entity. It owns its hitbox.
type Body struct {
	Position   dmath.Vec2
	VelocityX  float64
	VelocityY  float64
	Grounded   bool
	FacingLeft bool
	Support    collision.Support
	Hitbox     collision.Hitbox
	Profile    Profile

	removed bool
}

// NewBody places a body with its draw position at (x, y).
func NewBody(p Profile, x, y float64) *Body {
	b := &Body{Profile: p}
	b.Hitbox.W = p.HitboxW
	b.Hitbox.H = p.HitboxH
	b.Teleport(x, y)
	return b
}

// Teleport moves the body and clears its motion.
func (b *Body) Teleport(x, y float64) {
	b.Position = dmath.NewVec2(x, y)
	b.Hitbox.X = x + b.Profile.OffsetX
	b.Hitbox.Y = y + b.Profile.OffsetY
	b.VelocityX = 0
	b.VelocityY = 0
	b.Grounded = false
	b.Support = collision.SupportOffMap
	b.removed = false
}

// Nullify removes the body from play. Its hitbox keeps a valid size but is
// parked far outside any level.
func (b *Body) Nullify() {
	b.Hitbox.X = NullX
	b.Hitbox.Y = NullY
	b.syncPosition()
	b.VelocityX = 0
	b.VelocityY = 0
	b.Grounded = false
	b.Support = collision.SupportOffMap
	b.removed = true
}

func (b *Body) Active() bool {
	return !b.removed
}

// Resize changes the hitbox extent keeping the left and bottom edges fixed.
func (b *Body) Resize(w, h float64) {
	bottom := b.Hitbox.Bottom()
	b.Hitbox.W = w
	b.Hitbox.H = h
	b.Hitbox.Y = bottom - h
	b.enforceHitbox()
}

// ApplyGravity integrates one tick of gravity and caps the fall speed.
func (b *Body) ApplyGravity() {
	b.VelocityY += b.Profile.Gravity
	if b.VelocityY > b.Profile.MaxFallSpeed {
		b.VelocityY = b.Profile.MaxFallSpeed
	}
}

func (b *Body) syncPosition() {
	b.Position.X = b.Hitbox.X - b.Profile.OffsetX
	b.Position.Y = b.Hitbox.Y - b.Profile.OffsetY
}

// enforceHitbox panics under the debug build tag and clamps otherwise.
func (b *Body) enforceHitbox() {
	if b.Hitbox.Valid() {
		return
	}
	if strictInvariants {
		panic(fmt.Sprintf("kinematics: hitbox %vx%v must be positive", b.Hitbox.W, b.Hitbox.H))
	}
	b.Hitbox.W = math.Max(b.Hitbox.W, minExtent)
	b.Hitbox.H = math.Max(b.Hitbox.H, minExtent)
}

// BelowMap reports a hitbox whose top edge has left the bottom of the grid.
func (b *Body) BelowMap(res collision.Resolver) bool {
	return b.Active() && b.Hitbox.Y >= res.Grid.PixelHeight(res.TileSize)
}

// Snapshot is a read-only copy of a body for consumers outside the tick.
type Snapshot struct {
	Position   dmath.Vec2
	VelocityX  float64
	VelocityY  float64
	Grounded   bool
	FacingLeft bool
	Support    collision.Support
	Hitbox     collision.Hitbox
	Active     bool
}

func (b *Body) Snapshot() Snapshot {
	return Snapshot{
		Position:   b.Position,
		VelocityX:  b.VelocityX,
		VelocityY:  b.VelocityY,
		Grounded:   b.Grounded,
		FacingLeft: b.FacingLeft,
		Support:    b.Support,
		Hitbox:     b.Hitbox,
		Active:     b.Active(),
	}
}
