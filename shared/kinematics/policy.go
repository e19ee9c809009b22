package kinematics

import (
	"github.com/automoto/doomerang-tiles/shared/collision"
	"github.com/automoto/doomerang-tiles/shared/gamemath"
)

// Intent is what a player (or a script standing in for one) asks for this
// tick. MoveX is -1..1; Jump and Attack are read as edge-triggered pulses.
type Intent struct {
	MoveX  float64
	Jump   bool
	Crouch bool
	Attack bool
}

// PlayerPolicy turns an Intent into velocity: run, crouch, and jumps with a
// per-airtime jump budget refilled on landing.
type PlayerPolicy struct {
	Intent Intent

	Speed       float64
	CrouchSpeed float64
	JumpSpeed   float64
	MaxJumps    int
	StandH      float64
	CrouchH     float64

	airJumps int
	jumpHeld bool
	crouched bool
}

func NewPlayerPolicy(p Profile, crouchSpeed, crouchH float64) *PlayerPolicy {
	return &PlayerPolicy{
		Speed:       p.Speed,
		CrouchSpeed: crouchSpeed,
		JumpSpeed:   p.JumpSpeed,
		MaxJumps:    p.MaxJumps,
		StandH:      p.HitboxH,
		CrouchH:     crouchH,
		airJumps:    p.MaxJumps - 1,
	}
}

func (p *PlayerPolicy) Crouching() bool { return p.crouched }

// AirJumps is the number of jumps left before landing.
func (p *PlayerPolicy) AirJumps() int { return p.airJumps }

func (p *PlayerPolicy) Decide(res collision.Resolver, b *Body) {
	p.updateCrouch(res, b)

	speed := p.Speed
	if p.crouched {
		speed = p.CrouchSpeed
	}
	b.VelocityX = gamemath.ClampSpeed(p.Intent.MoveX, 1) * speed

	pressed := p.Intent.Jump && !p.jumpHeld
	p.jumpHeld = p.Intent.Jump
	if !pressed || p.crouched || p.MaxJumps == 0 {
		return
	}
	switch {
	case b.Grounded:
		p.airJumps = p.MaxJumps - 1
	case p.airJumps > 0:
		p.airJumps--
	default:
		return
	}
	b.VelocityY = -p.JumpSpeed
	b.Grounded = false
}

func (p *PlayerPolicy) updateCrouch(res collision.Resolver, b *Body) {
	want := p.Intent.Crouch && b.Grounded
	switch {
	case want && !p.crouched && p.CrouchH > 0:
		b.Resize(b.Hitbox.W, p.CrouchH)
		p.crouched = true
	case !want && p.crouched:
		stand := b.Hitbox
		stand.H = p.StandH
		stand.Y = b.Hitbox.Bottom() - p.StandH
		if res.OverlapsSolid(stand) {
			return // no headroom, stay down
		}
		b.Resize(b.Hitbox.W, p.StandH)
		p.crouched = false
	}
}

// Reset forgets held buttons, crouch and spent jumps, as on respawn.
func (p *PlayerPolicy) Reset() {
	p.airJumps = p.MaxJumps - 1
	p.jumpHeld = false
	p.crouched = false
}

func (p *PlayerPolicy) Observe(r Result) {
	if r.Landed {
		p.airJumps = p.MaxJumps - 1
	}
}

// PatrolPolicy walks back and forth, turning at ledges and walls. After a
// turn the decision is locked for Cooldown ticks so a body standing exactly
// on a ledge boundary cannot flip every tick.
type PatrolPolicy struct {
	Speed     float64
	Direction float64
	Cooldown  int

	cooldownLeft int
	blocked      bool
	reversals    int
}

func NewPatrolPolicy(speed float64, direction float64, cooldown int) *PatrolPolicy {
	direction = gamemath.Sign(direction)
	if direction == 0 {
		direction = 1
	}
	return &PatrolPolicy{Speed: speed, Direction: direction, Cooldown: cooldown}
}

func (p *PatrolPolicy) Decide(res collision.Resolver, b *Body) {
	if p.cooldownLeft > 0 {
		p.cooldownLeft--
	} else if b.Grounded && (p.blocked || !res.IsGroundAhead(b.Hitbox, p.Direction < 0)) {
		p.Direction = -p.Direction
		p.cooldownLeft = p.Cooldown
		p.reversals++
	}
	p.blocked = false
	b.VelocityX = p.Direction * p.Speed
}

func (p *PatrolPolicy) Observe(r Result) {
	if r.WallBlocked {
		p.blocked = true
	}
}

// Reversals counts direction changes since creation.
func (p *PatrolPolicy) Reversals() int { return p.reversals }

// Still holds a body in place; used for entities with no controller.
type Still struct{}

func (Still) Decide(_ collision.Resolver, b *Body) {
	b.VelocityX = 0
}
