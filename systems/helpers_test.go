package systems

import (
	"testing"

	"github.com/automoto/doomerang-tiles/components"
	cfg "github.com/automoto/doomerang-tiles/config"
	"github.com/automoto/doomerang-tiles/shared/collision"
	"github.com/automoto/doomerang-tiles/shared/leveldata"
	"github.com/automoto/doomerang-tiles/shared/tilegrid"
	"github.com/automoto/doomerang-tiles/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/yohamta/donburi"
)

// floorLevel is 16 tiles wide with a solid floor at y=80 and a lethal
// stretch from x=128 to x=192.
var floorLevel = []string{
	"................",
	"................",
	"................",
	"................",
	"................",
	"########xxxx####",
}

// Standing on the floor with the default 12x28 player hitbox.
var floorSpawn = leveldata.Spawn{X: 16, Y: 52}

func gridFor(rows ...string) *tilegrid.Grid {
	width := len(rows[0])
	codes := make([]int, 0, width*len(rows))
	for _, row := range rows {
		for _, c := range row {
			switch c {
			case '#':
				codes = append(codes, tilegrid.CodeSolid)
			case 'x':
				codes = append(codes, tilegrid.CodeLethalOpen)
			default:
				codes = append(codes, tilegrid.CodeAir)
			}
		}
	}
	return tilegrid.New(width, len(rows), codes)
}

// newTestContext builds a world with the player and the given enemies in
// update order. Log output goes to the returned hook.
func newTestContext(t *testing.T, rows []string, spawn leveldata.Spawn, enemies ...leveldata.EnemySpawn) (*Context, *test.Hook) {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	level := &leveldata.Level{
		Name:        t.Name(),
		Grid:        gridFor(rows...),
		TileSize:    cfg.Physics.TileSize,
		PlayerSpawn: spawn,
		EnemySpawns: enemies,
	}
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	w := donburi.NewWorld()
	space := factory.CreateSpace(level, level.TileSize)
	ctx := &Context{
		World:             w,
		Level:             level,
		Resolver:          collision.NewResolver(level.Grid, level.TileSize),
		Space:             space,
		Log:               logger,
		AutoFinishAttacks: true,
	}
	ctx.Order = append(ctx.Order, factory.CreatePlayer(w, space, spawn.X, spawn.Y))
	for i, es := range enemies {
		ctx.Order = append(ctx.Order, factory.CreateEnemy(w, space, es, i))
	}
	return ctx, hook
}

func run(ctx *Context, ticks int) {
	for i := 0; i < ticks; i++ {
		Update(ctx)
	}
}

func player(t *testing.T, ctx *Context) *donburi.Entry {
	t.Helper()
	e, ok := ctx.Player()
	if !ok {
		t.Fatal("no player in update order")
	}
	return e
}

func setIntent(t *testing.T, ctx *Context, fn func(p *components.PlayerData)) {
	t.Helper()
	fn(components.Player.Get(player(t, ctx)))
}

func hasMessage(hook *test.Hook, msg string) bool {
	for _, entry := range hook.AllEntries() {
		if entry.Message == msg {
			return true
		}
	}
	return false
}
