package systems

import (
	"github.com/automoto/doomerang-tiles/components"
	"github.com/automoto/doomerang-tiles/shared/collision"
	"github.com/automoto/doomerang-tiles/shared/leveldata"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Context is handed to every system. It carries the current level instead
// of systems looking the level up from the world.
type Context struct {
	World    donburi.World
	Level    *leveldata.Level
	Resolver collision.Resolver
	Space    *resolv.Space
	Log      logrus.FieldLogger

	// Order is the fixed update order: the player first, then enemies in
	// spawn order.
	Order []*donburi.Entry
	Tick  uint64

	AutoFinishAttacks bool
}

func (c *Context) logger() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

// Player returns the first entry of Order if it is the player.
func (c *Context) Player() (*donburi.Entry, bool) {
	if len(c.Order) == 0 || !c.Order[0].HasComponent(components.Player) {
		return nil, false
	}
	return c.Order[0], true
}
