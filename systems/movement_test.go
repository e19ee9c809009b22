package systems

import (
	"testing"

	"github.com/automoto/doomerang-tiles/components"
	"github.com/automoto/doomerang-tiles/shared/collision"
	"github.com/automoto/doomerang-tiles/shared/entitystate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerSettlesOnFloor(t *testing.T) {
	ctx, _ := newTestContext(t, floorLevel, floorSpawn)
	run(ctx, 3)

	e := player(t, ctx)
	body := components.Body.Get(e)
	last := components.Motion.Get(e).Last

	assert.True(t, last.Grounded)
	assert.Equal(t, collision.SupportSolid, last.Support)
	assert.Equal(t, 80.0, body.Hitbox.Bottom())
	assert.Equal(t, entitystate.Idle, components.State.Get(e).Machine.Current())
	assert.True(t, e.HasComponent(components.Idle))

	p := components.Player.Get(e)
	assert.True(t, p.HasSafeSpot)
	assert.Equal(t, floorSpawn.X, p.LastSafeX)
	assert.Equal(t, floorSpawn.Y, p.LastSafeY)
	assert.Equal(t, uint64(3), ctx.Tick)
}

func TestRunningSwapsStateTags(t *testing.T) {
	ctx, hook := newTestContext(t, floorLevel, floorSpawn)
	run(ctx, 1)

	setIntent(t, ctx, func(p *components.PlayerData) { p.Intent.MoveX = 1 })
	run(ctx, 1)

	e := player(t, ctx)
	state := components.State.Get(e)
	assert.Equal(t, entitystate.Running, state.Machine.Current())
	assert.True(t, state.Changed)
	assert.True(t, e.HasComponent(components.Running))
	assert.False(t, e.HasComponent(components.Idle))
	assert.True(t, hasMessage(hook, "State changed"))

	run(ctx, 1)
	assert.False(t, state.Changed)
	assert.Equal(t, 1, state.Machine.Ticks())
}

func TestJumpGoesThroughJumpingAndFalling(t *testing.T) {
	ctx, _ := newTestContext(t, floorLevel, floorSpawn)
	run(ctx, 1)
	e := player(t, ctx)

	setIntent(t, ctx, func(p *components.PlayerData) { p.Intent.Jump = true })
	run(ctx, 1)
	assert.Equal(t, entitystate.Jumping, components.State.Get(e).Machine.Current())
	assert.True(t, e.HasComponent(components.Jumping))

	seenFalling := false
	for i := 0; i < 200 && !components.Motion.Get(e).Last.Grounded; i++ {
		run(ctx, 1)
		if components.State.Get(e).Machine.Current() == entitystate.Falling {
			seenFalling = true
		}
	}
	assert.True(t, seenFalling)
	assert.Equal(t, entitystate.Idle, components.State.Get(e).Machine.Current())
}

func TestCrouchShrinksHitbox(t *testing.T) {
	ctx, _ := newTestContext(t, floorLevel, floorSpawn)
	setIntent(t, ctx, func(p *components.PlayerData) { p.Intent.Crouch = true })
	run(ctx, 2)

	e := player(t, ctx)
	body := components.Body.Get(e)
	assert.Equal(t, entitystate.Crouching, components.State.Get(e).Machine.Current())
	assert.True(t, e.HasComponent(components.Crouching))
	assert.Equal(t, 14.0, body.Hitbox.H)
	assert.Equal(t, 80.0, body.Hitbox.Bottom())

	setIntent(t, ctx, func(p *components.PlayerData) { p.Intent.Crouch = false })
	run(ctx, 1)
	assert.Equal(t, 28.0, body.Hitbox.H)
	assert.Equal(t, entitystate.Idle, components.State.Get(e).Machine.Current())
}

func TestObjectsFollowBodies(t *testing.T) {
	ctx, _ := newTestContext(t, floorLevel, floorSpawn)
	setIntent(t, ctx, func(p *components.PlayerData) { p.Intent.MoveX = 1 })
	run(ctx, 5)

	e := player(t, ctx)
	body := components.Body.Get(e)
	obj := components.Object.Get(e)
	require.NotNil(t, obj.Space)
	assert.Equal(t, body.Hitbox.X, obj.X)
	assert.Equal(t, body.Hitbox.Y, obj.Y)
	assert.Equal(t, body.Hitbox.H, obj.H)
}
