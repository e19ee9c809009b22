package systems

import (
	"testing"

	"github.com/automoto/doomerang-tiles/components"
	cfg "github.com/automoto/doomerang-tiles/config"
	"github.com/automoto/doomerang-tiles/shared/entitystate"
	"github.com/automoto/doomerang-tiles/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runUntil(ctx *Context, limit int, done func() bool) bool {
	for i := 0; i < limit; i++ {
		if done() {
			return true
		}
		Update(ctx)
	}
	return done()
}

func TestLethalTileKillsAndRespawnsPlayer(t *testing.T) {
	ctx, hook := newTestContext(t, floorLevel, floorSpawn)
	run(ctx, 1)
	e := player(t, ctx)
	components.Body.Get(e).Teleport(140, 20)

	require.True(t, runUntil(ctx, 60, func() bool { return e.HasComponent(components.Death) }))
	assert.Equal(t, components.DeathLethalTile, components.Death.Get(e).Reason)
	assert.True(t, hasMessage(hook, "Entity died"))

	// Dying bodies freeze and leave the broadphase.
	frozen := components.Body.Get(e).Position
	run(ctx, 1)
	assert.Equal(t, frozen, components.Body.Get(e).Position)
	assert.Nil(t, components.Object.Get(e).Space)

	require.True(t, runUntil(ctx, cfg.Player.RespawnDelayTicks+1, func() bool { return !e.HasComponent(components.Death) }))
	lives := components.Lives.Get(e)
	assert.Equal(t, cfg.Player.StartingLives-1, lives.Lives)
	assert.Equal(t, 1, lives.Deaths)

	body := components.Body.Get(e)
	assert.True(t, body.Active())
	assert.Equal(t, floorSpawn.X, body.Position.X)
	assert.Equal(t, floorSpawn.Y, body.Position.Y)
	assert.True(t, hasMessage(hook, "Player respawned"))

	run(ctx, 1)
	assert.True(t, body.Grounded)
	assert.Equal(t, floorSpawn.Y, body.Position.Y)
	assert.Equal(t, entitystate.Idle, components.State.Get(e).Machine.Current())
	assert.True(t, e.HasComponent(components.Idle))
	assert.NotNil(t, components.Object.Get(e).Space)
}

func TestPlayerOutOfLivesIsNullified(t *testing.T) {
	ctx, hook := newTestContext(t, floorLevel, floorSpawn)
	run(ctx, 1)
	e := player(t, ctx)
	components.Lives.Get(e).Lives = 1
	components.Body.Get(e).Teleport(140, 20)

	require.True(t, runUntil(ctx, 200, func() bool { return !components.Body.Get(e).Active() }))
	assert.True(t, components.Lives.Get(e).Exhausted())
	assert.False(t, e.HasComponent(components.Death))
	assert.Same(t, e, ctx.Order[0], "removed entities keep their slot")
	assert.True(t, hasMessage(hook, "Player out of lives"))

	// A removed body is left alone by every system.
	pos := components.Body.Get(e).Position
	run(ctx, 10)
	assert.Equal(t, pos, components.Body.Get(e).Position)
	assert.False(t, e.HasComponent(components.Death))
}

func TestEnemyFallingOutIsNullified(t *testing.T) {
	rows := []string{
		"........",
		"........",
		"........",
		"##...###",
	}
	ctx, _ := newTestContext(t, rows, leveldata.Spawn{X: 0, Y: 20},
		leveldata.EnemySpawn{X: 40, Y: 0, Kind: cfg.KindGuard, Direction: 1})
	enemy := ctx.Order[1]

	require.True(t, runUntil(ctx, 100, func() bool { return enemy.HasComponent(components.Death) }))
	assert.Equal(t, components.DeathFellOut, components.Death.Get(enemy).Reason)

	require.True(t, runUntil(ctx, 60, func() bool { return !components.Body.Get(enemy).Active() }))
	assert.False(t, enemy.HasComponent(components.Death))
	assert.Equal(t, cfg.Player.StartingLives, components.Lives.Get(ctx.Order[0]).Lives)
}

func TestRespawnFallsBackToLevelSpawn(t *testing.T) {
	ctx, _ := newTestContext(t, floorLevel, floorSpawn)
	run(ctx, 1)
	e := player(t, ctx)

	p := components.Player.Get(e)
	p.LastSafeX, p.LastSafeY = 140, 52 // above the lethal stretch

	RespawnPlayerNearDeath(ctx, e)
	body := components.Body.Get(e)
	assert.Equal(t, floorSpawn.X, body.Position.X)
	assert.Equal(t, floorSpawn.Y, body.Position.Y)
}

func TestRespawnPlayerRefillsLives(t *testing.T) {
	ctx, _ := newTestContext(t, floorLevel, floorSpawn)
	e := player(t, ctx)
	components.Lives.Get(e).Lives = 1
	components.Health.Get(e).Current = 5
	components.Body.Get(e).Teleport(100, 0)

	RespawnPlayer(ctx, e)

	assert.Equal(t, components.Lives.Get(e).MaxLives, components.Lives.Get(e).Lives)
	assert.Equal(t, components.Health.Get(e).Max, components.Health.Get(e).Current)
	assert.Equal(t, floorSpawn.X, components.Body.Get(e).Position.X)
}

func TestEntityName(t *testing.T) {
	ctx, _ := newTestContext(t, floorLevel, floorSpawn,
		leveldata.EnemySpawn{X: 60, Y: 52, Kind: cfg.KindHeavyGuard},
		leveldata.EnemySpawn{X: 90, Y: 52, Kind: "dragon"})

	assert.Equal(t, "player", entityName(ctx.Order[0]))
	assert.Equal(t, cfg.KindHeavyGuard, entityName(ctx.Order[1]))
	assert.Equal(t, cfg.KindGuard, entityName(ctx.Order[2]), "unknown kinds spawn as guards")

	other := ctx.World.Entry(ctx.World.Create(components.Health))
	assert.Equal(t, "entity", entityName(other))
}
