// Package kinematics moves bodies through a tile grid one tick at a time.
// One Step implementation serves every entity kind; kinds differ only in
// their Profile and in the Policy that chooses their velocity.
package kinematics

import (
	"errors"
	"fmt"
)

var ErrInvalidProfile = errors.New("invalid kinematic profile")

// Profile holds the per-kind movement constants of an entity.
type Profile struct {
	Gravity      float64
	MaxFallSpeed float64
	Speed        float64
	JumpSpeed    float64
	MaxJumps     int

	HitboxW float64
	HitboxH float64

	// Offset of the hitbox from the entity's draw position.
	OffsetX float64
	OffsetY float64
}

// Validate rejects profiles the resolver cannot handle. Speeds of a tile or
// more per tick would let a body skip over a whole tile between checks.
func (p Profile) Validate(tileSize float64) error {
	switch {
	case p.HitboxW <= 0 || p.HitboxH <= 0:
		return fmt.Errorf("%w: hitbox %vx%v must be positive", ErrInvalidProfile, p.HitboxW, p.HitboxH)
	case p.Gravity < 0:
		return fmt.Errorf("%w: negative gravity %v", ErrInvalidProfile, p.Gravity)
	case p.MaxFallSpeed <= 0 || p.MaxFallSpeed >= tileSize:
		return fmt.Errorf("%w: max fall speed %v outside (0, %v)", ErrInvalidProfile, p.MaxFallSpeed, tileSize)
	case p.Speed < 0 || p.Speed >= tileSize:
		return fmt.Errorf("%w: speed %v outside [0, %v)", ErrInvalidProfile, p.Speed, tileSize)
	case p.JumpSpeed < 0 || p.JumpSpeed >= tileSize:
		return fmt.Errorf("%w: jump speed %v outside [0, %v)", ErrInvalidProfile, p.JumpSpeed, tileSize)
	case p.MaxJumps < 0:
		return fmt.Errorf("%w: negative jump count %d", ErrInvalidProfile, p.MaxJumps)
	}
	return nil
}
