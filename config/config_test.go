package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/doomerang-tiles/shared/kinematics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetAfter(t *testing.T) {
	t.Helper()
	t.Cleanup(Reset)
}

func TestDefaultsAreValid(t *testing.T) {
	resetAfter(t)
	require.NoError(t, Validate())
	assert.Equal(t, []string{KindGuard, KindHeavyGuard, KindLightGuard}, EnemyKinds())
}

func TestPlayerProfile(t *testing.T) {
	resetAfter(t)
	p := PlayerProfile()
	assert.Equal(t, Player.Speed, p.Speed)
	assert.Equal(t, Player.CollisionHeight, p.HitboxH)
	assert.Equal(t, Player.MaxJumps, p.MaxJumps)
}

func TestEnemyProfileFallsBackToPhysics(t *testing.T) {
	resetAfter(t)
	guard := Enemy.Types[KindGuard]
	guard.Gravity = 0
	guard.MaxFallSpeed = 0
	Enemy.Types[KindGuard] = guard

	p, err := EnemyProfile(KindGuard)
	require.NoError(t, err)
	assert.Equal(t, Physics.Gravity, p.Gravity)
	assert.Equal(t, Physics.MaxFallSpeed, p.MaxFallSpeed)
	assert.Equal(t, guard.PatrolSpeed, p.Speed)
	assert.Zero(t, p.JumpSpeed)
}

func TestEnemyProfileUnknownKind(t *testing.T) {
	_, err := EnemyProfile("dragon")
	assert.ErrorIs(t, err, ErrUnknownEnemyKind)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	resetAfter(t)
	speed := Player.Speed

	err := Load([]byte(`
[physics]
gravity = 0.25

[player]
jump_speed = 6.5
max_jumps = 1

[enemies.guard]
patrol_speed = 2.0

[enemies.sentry]
name = "Sentry"
patrol_speed = 0.5
reversal_cooldown = 5
collision_width = 10.0
collision_height = 20.0

[sim]
tps = 30
auto_finish_attacks = false
`))
	require.NoError(t, err)

	assert.Equal(t, 0.25, Physics.Gravity)
	assert.Equal(t, 6.5, Player.JumpSpeed)
	assert.Equal(t, 1, Player.MaxJumps)
	assert.Equal(t, speed, Player.Speed, "untouched key keeps its default")
	assert.Equal(t, 2.0, Enemy.Types[KindGuard].PatrolSpeed)
	assert.Equal(t, "Guard", Enemy.Types[KindGuard].Name)
	assert.Equal(t, 30, Sim.TPS)
	assert.False(t, Sim.AutoFinishAttacks)

	p, err := EnemyProfile("sentry")
	require.NoError(t, err)
	assert.Equal(t, Physics.Gravity, p.Gravity)
	assert.Equal(t, White, Enemy.Types["sentry"].TintColor)
}

func TestLoadAcceptsIntegersForFloatKeys(t *testing.T) {
	resetAfter(t)

	err := Load([]byte(`
[window]
scale = 3

[physics]
gravity = 1
ceiling_nudge = 2

[player]
speed = 4
max_jumps = 3

[enemies.guard]
patrol_speed = 2
collision_height = 26
`))
	require.NoError(t, err)

	assert.Equal(t, 3.0, C.Scale)
	assert.Equal(t, 1.0, Physics.Gravity)
	assert.Equal(t, 2.0, Physics.CeilingNudge)
	assert.Equal(t, 4.0, Player.Speed)
	assert.Equal(t, 3, Player.MaxJumps)
	assert.Equal(t, 2.0, Enemy.Types[KindGuard].PatrolSpeed)
	assert.Equal(t, 26.0, Enemy.Types[KindGuard].CollisionHeight)
}

func TestLoadRejectsTunnellingSpeeds(t *testing.T) {
	resetAfter(t)
	before := Player

	err := Load([]byte("[player]\nmax_fall_speed = 16.0\n"))

	assert.ErrorIs(t, err, kinematics.ErrInvalidProfile)
	assert.Equal(t, before, Player, "globals restored on failure")
}

func TestLoadRejectsBadToml(t *testing.T) {
	resetAfter(t)
	assert.Error(t, Load([]byte("[player\nspeed = 1")))
}

func TestLoadFile(t *testing.T) {
	resetAfter(t)
	path := filepath.Join(t.TempDir(), "tiles.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nscale = 3.0\n"), 0o644))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, 3.0, C.Scale)

	assert.ErrorIs(t, LoadFile(filepath.Join(t.TempDir(), "missing.toml")), os.ErrNotExist)
}
