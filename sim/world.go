// Package sim runs levels headless: it builds the ECS world for a level,
// advances it one fixed tick at a time and publishes read-only snapshots.
package sim

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-tiles/components"
	cfg "github.com/automoto/doomerang-tiles/config"
	"github.com/automoto/doomerang-tiles/shared/collision"
	"github.com/automoto/doomerang-tiles/shared/kinematics"
	"github.com/automoto/doomerang-tiles/shared/leveldata"
	"github.com/automoto/doomerang-tiles/systems"
	"github.com/automoto/doomerang-tiles/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

var ErrNoGrid = errors.New("level has no tile grid")

// Options tunes a World. The zero value logs to the standard logger and
// waits for NotifyAttackFinished to end attacks.
type Options struct {
	Log               logrus.FieldLogger
	AutoFinishAttacks bool
}

// DefaultOptions follows the loaded configuration.
func DefaultOptions() Options {
	return Options{
		Log:               logrus.StandardLogger(),
		AutoFinishAttacks: cfg.Sim.AutoFinishAttacks,
	}
}

// World is one level in play. It is not safe for concurrent use; Loop
// serializes access for concurrent readers.
type World struct {
	ctx *systems.Context
}

// NewWorld builds the entities of level: the player first, then enemies in
// spawn order. A degraded level is logged and played as loaded.
func NewWorld(level *leveldata.Level, opts Options) (*World, error) {
	if level == nil || level.Grid == nil {
		return nil, ErrNoGrid
	}
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	log := opts.Log.WithField("level", level.Name)

	tileSize := level.TileSize
	if tileSize <= 0 {
		tileSize = cfg.Physics.TileSize
	}
	res := collision.NewResolver(level.Grid, tileSize)
	if cfg.Physics.Epsilon > 0 {
		res.Epsilon = cfg.Physics.Epsilon
	}
	if cfg.Physics.WallProbeShrink > 0 {
		res.WallProbeShrink = cfg.Physics.WallProbeShrink
	}
	if cfg.Physics.CeilingNudge > 0 {
		res.CeilingNudge = cfg.Physics.CeilingNudge
	}

	if level.Degraded != nil {
		log.WithError(level.Degraded).Warn("Level data degraded, missing tiles read as air")
	}

	w := donburi.NewWorld()
	space := factory.CreateSpace(level, tileSize)
	ctx := &systems.Context{
		World:             w,
		Level:             level,
		Resolver:          res,
		Space:             space,
		Log:               log,
		AutoFinishAttacks: opts.AutoFinishAttacks,
	}

	ctx.Order = append(ctx.Order, factory.CreatePlayer(w, space, level.PlayerSpawn.X, level.PlayerSpawn.Y))
	for i, spawn := range level.EnemySpawns {
		e := factory.CreateEnemy(w, space, spawn, i)
		if kind := components.Enemy.Get(e).Kind; kind != spawn.Kind && spawn.Kind != "" {
			log.WithFields(logrus.Fields{"kind": spawn.Kind, "spawned": kind}).Warn("Unknown enemy kind")
		}
		ctx.Order = append(ctx.Order, e)
	}

	log.WithFields(logrus.Fields{
		"width":   level.Grid.Width(),
		"height":  level.Grid.Height(),
		"enemies": len(level.EnemySpawns),
	}).Info("Loaded level")

	return &World{ctx: ctx}, nil
}

// Step advances the world by one tick.
func (w *World) Step() {
	systems.Update(w.ctx)
}

func (w *World) Tick() uint64 { return w.ctx.Tick }

func (w *World) Level() *leveldata.Level { return w.ctx.Level }

func (w *World) Resolver() collision.Resolver { return w.ctx.Resolver }

// SetPlayerIntent sets what the player asks for on the following ticks.
func (w *World) SetPlayerIntent(in kinematics.Intent) {
	if e, ok := w.ctx.Player(); ok {
		components.Player.Get(e).Intent = in
	}
}

// SetEngaged reports engagement from outside the simulation for the entity
// at index in update order (0 is the player). Overlaps found by the
// simulation are added on top.
func (w *World) SetEngaged(index int, engaged bool) error {
	if index < 0 || index >= len(w.ctx.Order) {
		return fmt.Errorf("set engaged: no entity %d", index)
	}
	components.State.Get(w.ctx.Order[index]).External = engaged
	return nil
}

// NotifyAttackFinished ends the player's current attack.
func (w *World) NotifyAttackFinished() {
	if e, ok := w.ctx.Player(); ok {
		systems.NotifyAttackFinished(e)
	}
}

// RespawnPlayer puts the player back on the level spawn with full lives.
func (w *World) RespawnPlayer() {
	if e, ok := w.ctx.Player(); ok {
		systems.RespawnPlayer(w.ctx, e)
	}
}

// Save writes the player's progress to slot.
func (w *World) Save(store systems.SaveStore, slot string) error {
	return systems.SaveGame(w.ctx, store, slot)
}

// Load restores the player from slot.
func (w *World) Load(store systems.SaveStore, slot string) error {
	saved, err := systems.LoadGame(store, slot)
	if err != nil {
		return err
	}
	return systems.ApplySavedGame(w.ctx, saved)
}
