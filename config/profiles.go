package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/automoto/doomerang-tiles/shared/kinematics"
)

var ErrUnknownEnemyKind = errors.New("unknown enemy kind")

// PlayerProfile builds the player's kinematic profile from Player.
func PlayerProfile() kinematics.Profile {
	return kinematics.Profile{
		Gravity:      Player.Gravity,
		MaxFallSpeed: Player.MaxFallSpeed,
		Speed:        Player.Speed,
		JumpSpeed:    Player.JumpSpeed,
		MaxJumps:     Player.MaxJumps,
		HitboxW:      Player.CollisionWidth,
		HitboxH:      Player.CollisionHeight,
		OffsetX:      Player.OffsetX,
		OffsetY:      Player.OffsetY,
	}
}

// EnemyType looks up a kind. Unknown kinds return ErrUnknownEnemyKind.
func EnemyType(kind string) (EnemyTypeConfig, error) {
	t, ok := Enemy.Types[kind]
	if !ok {
		return EnemyTypeConfig{}, fmt.Errorf("%w: %q", ErrUnknownEnemyKind, kind)
	}
	return t, nil
}

// EnemyProfile builds the kinematic profile of an enemy kind. Gravity and
// fall speed fall back to Physics when the kind leaves them at zero.
func EnemyProfile(kind string) (kinematics.Profile, error) {
	t, err := EnemyType(kind)
	if err != nil {
		return kinematics.Profile{}, err
	}
	p := kinematics.Profile{
		Gravity:      t.Gravity,
		MaxFallSpeed: t.MaxFallSpeed,
		Speed:        t.PatrolSpeed,
		HitboxW:      t.CollisionWidth,
		HitboxH:      t.CollisionHeight,
		OffsetX:      t.OffsetX,
		OffsetY:      t.OffsetY,
	}
	if p.Gravity == 0 {
		p.Gravity = Physics.Gravity
	}
	if p.MaxFallSpeed == 0 {
		p.MaxFallSpeed = Physics.MaxFallSpeed
	}
	return p, nil
}

// EnemyKinds returns the configured kinds in sorted order.
func EnemyKinds() []string {
	kinds := make([]string, 0, len(Enemy.Types))
	for k := range Enemy.Types {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Validate checks every profile against the tile size and the loop settings.
func Validate() error {
	if Physics.TileSize <= 0 {
		return fmt.Errorf("physics: tile size %v must be positive", Physics.TileSize)
	}
	if Physics.Epsilon <= 0 || Physics.Epsilon >= Physics.TileSize {
		return fmt.Errorf("physics: epsilon %v outside (0, %v)", Physics.Epsilon, Physics.TileSize)
	}
	if Sim.TPS <= 0 {
		return fmt.Errorf("sim: tps %d must be positive", Sim.TPS)
	}
	if err := PlayerProfile().Validate(Physics.TileSize); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if Player.CrouchHeight > Player.CollisionHeight {
		return fmt.Errorf("player: crouch height %v above standing height %v", Player.CrouchHeight, Player.CollisionHeight)
	}
	if Player.CrouchSpeed >= Physics.TileSize {
		return fmt.Errorf("player: %w: crouch speed %v", kinematics.ErrInvalidProfile, Player.CrouchSpeed)
	}
	for _, kind := range EnemyKinds() {
		p, _ := EnemyProfile(kind)
		if err := p.Validate(Physics.TileSize); err != nil {
			return fmt.Errorf("enemy %s: %w", kind, err)
		}
		if Enemy.Types[kind].ReversalCooldown < 0 {
			return fmt.Errorf("enemy %s: negative reversal cooldown", kind)
		}
	}
	return nil
}
