package kinematics

import (
	"github.com/automoto/doomerang-tiles/shared/collision"
	dmath "github.com/yohamta/donburi/features/math"
)

// Policy picks a body's velocity for the coming tick. It runs after gravity
// and before the horizontal sweep.
type Policy interface {
	Decide(res collision.Resolver, b *Body)
}

// Observer is implemented by policies that react to the resolved tick.
type Observer interface {
	Observe(r Result)
}

// Result is the resolved outcome of one tick for one body.
type Result struct {
	Position    dmath.Vec2
	VelocityX   float64
	VelocityY   float64
	Grounded    bool
	Support     collision.Support
	FacingLeft  bool
	WallBlocked bool
	HitCeiling  bool
	Landed      bool
}

// Lethal reports that the body is standing on or falling into a lethal tile.
func (r Result) Lethal() bool {
	return r.Support == collision.SupportLethal
}

// Step advances a body by one tick: gravity, policy, horizontal sweep, facing,
// vertical sweep, position write-back. A nil policy keeps the current
// velocity. Removed bodies are left untouched.
func Step(res collision.Resolver, b *Body, p Policy) Result {
	if !b.Active() {
		return b.result()
	}
	b.enforceHitbox()
	wasGrounded := b.Grounded

	if !b.Grounded {
		b.ApplyGravity()
	}

	if p != nil {
		p.Decide(res, b)
	}

	var r Result

	// Horizontal.
	b.Hitbox.X += b.VelocityX
	switch {
	case b.VelocityX > 0 && res.HitsWall(b.Hitbox, true):
		b.Hitbox.X = res.WallContactX(b.Hitbox, true)
		b.VelocityX = 0
		r.WallBlocked = true
	case b.VelocityX < 0 && res.HitsWall(b.Hitbox, false):
		b.Hitbox.X = res.WallContactX(b.Hitbox, false)
		b.VelocityX = 0
		r.WallBlocked = true
	}
	if res.HitsCeiling(b.Hitbox) {
		b.VelocityY = res.CeilingNudge
		r.HitCeiling = true
	}

	// Facing holds while the resolved speed is zero.
	if b.VelocityX < 0 {
		b.FacingLeft = true
	} else if b.VelocityX > 0 {
		b.FacingLeft = false
	}

	// Vertical.
	b.Hitbox.Y += b.VelocityY
	b.Support = res.ClassifySupport(b.Hitbox)
	switch {
	case b.VelocityY > 0:
		if b.Support == collision.SupportSolid {
			b.land(res)
			r.Landed = !wasGrounded
		} else {
			b.Grounded = false
		}
	case b.VelocityY < 0:
		b.Grounded = false
	default:
		if b.Support == collision.SupportSolid {
			if !wasGrounded {
				b.land(res)
				r.Landed = true
			}
			b.Grounded = true
		} else {
			b.Grounded = false
		}
	}

	b.syncPosition()

	out := b.result()
	out.WallBlocked = r.WallBlocked
	out.HitCeiling = r.HitCeiling
	out.Landed = r.Landed
	if o, ok := p.(Observer); ok {
		o.Observe(out)
	}
	return out
}

func (b *Body) land(res collision.Resolver) {
	b.Hitbox = res.SnapToGround(b.Hitbox)
	b.VelocityY = 0
	b.Grounded = true
}

func (b *Body) result() Result {
	return Result{
		Position:   b.Position,
		VelocityX:  b.VelocityX,
		VelocityY:  b.VelocityY,
		Grounded:   b.Grounded,
		Support:    b.Support,
		FacingLeft: b.FacingLeft,
	}
}
