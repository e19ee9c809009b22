package systems

import (
	"github.com/automoto/doomerang-tiles/components"
	cfg "github.com/automoto/doomerang-tiles/config"
	"github.com/automoto/doomerang-tiles/shared/collision"
	"github.com/automoto/doomerang-tiles/shared/kinematics"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// UpdateHazards starts a death sequence for bodies on a lethal tile or below
// the map, and finishes sequences whose timer ran out. The resolver only
// reports these verdicts; acting on them is the entity's business.
func UpdateHazards(ctx *Context) {
	for _, e := range ctx.Order {
		if e.HasComponent(components.Death) {
			death := components.Death.Get(e)
			death.Timer--
			if death.Timer <= 0 {
				finishDeath(ctx, e)
			}
			continue
		}

		body := components.Body.Get(e)
		if !body.Active() {
			continue
		}
		last := components.Motion.Get(e).Last
		switch {
		case last.Lethal():
			startDeath(ctx, e, components.DeathLethalTile)
		case body.BelowMap(ctx.Resolver):
			startDeath(ctx, e, components.DeathFellOut)
		}
	}
}

func startDeath(ctx *Context, e *donburi.Entry, reason components.DeathReason) {
	timer := cfg.Player.RespawnDelayTicks
	if e.HasComponent(components.Enemy) {
		timer = components.Enemy.Get(e).DeathTicks
	}

	body := components.Body.Get(e)
	body.VelocityX = 0
	body.VelocityY = 0

	donburi.Add(e, components.Death, &components.DeathData{Timer: timer, Reason: reason})
	ctx.logger().WithFields(logrus.Fields{
		"tick":   ctx.Tick,
		"entity": entityName(e),
		"reason": reason.String(),
		"x":      body.Position.X,
		"y":      body.Position.Y,
	}).Info("Entity died")

	if timer <= 0 {
		finishDeath(ctx, e)
	}
}

func finishDeath(ctx *Context, e *donburi.Entry) {
	donburi.Remove[components.DeathData](e, components.Death)

	if !e.HasComponent(components.Player) {
		components.Body.Get(e).Nullify()
		return
	}

	lives := components.Lives.Get(e)
	lives.Lives--
	lives.Deaths++
	if lives.Exhausted() {
		components.Body.Get(e).Nullify()
		ctx.logger().WithFields(logrus.Fields{
			"tick":   ctx.Tick,
			"deaths": lives.Deaths,
		}).Info("Player out of lives")
		return
	}
	RespawnPlayerNearDeath(ctx, e)
}

// RespawnPlayer resets the player to the level spawn with full health and
// lives.
func RespawnPlayer(ctx *Context, e *donburi.Entry) {
	spawn := ctx.Level.PlayerSpawn
	resetPlayerAtPosition(e, spawn.X, spawn.Y)

	lives := components.Lives.Get(e)
	lives.Lives = lives.MaxLives
}

// RespawnPlayerNearDeath puts the player back on the last safe ground it
// stood on, or on the level spawn when that spot is no longer safe.
func RespawnPlayerNearDeath(ctx *Context, e *donburi.Entry) {
	player := components.Player.Get(e)
	body := components.Body.Get(e)

	spawnX, spawnY := ctx.Level.PlayerSpawn.X, ctx.Level.PlayerSpawn.Y
	if player.HasSafeSpot && isPositionSafe(ctx.Resolver, body, player.LastSafeX, player.LastSafeY) {
		spawnX, spawnY = player.LastSafeX, player.LastSafeY
	}

	resetPlayerAtPosition(e, spawnX, spawnY)
	ctx.logger().WithFields(logrus.Fields{
		"tick":  ctx.Tick,
		"x":     spawnX,
		"y":     spawnY,
		"lives": components.Lives.Get(e).Lives,
	}).Info("Player respawned")
}

func resetPlayerAtPosition(e *donburi.Entry, spawnX, spawnY float64) {
	body := components.Body.Get(e)
	if body.Hitbox.H != body.Profile.HitboxH {
		body.Resize(body.Profile.HitboxW, body.Profile.HitboxH)
	}
	body.Teleport(spawnX, spawnY)
	components.Motion.Get(e).Last = kinematics.Result{Position: body.Position}
	if pp, ok := components.Controller.Get(e).Policy.(*kinematics.PlayerPolicy); ok {
		pp.Reset()
	}

	state := components.State.Get(e)
	state.Machine.Reset()
	state.Changed = true
	updateStateTags(e, state.Machine.Current())
	if e.HasComponent(components.Attack) {
		components.Attack.Get(e).TicksLeft = 0
	}

	health := components.Health.Get(e)
	health.Current = health.Max
}

// isPositionSafe reports whether the body would stand on solid ground at
// (x, y) without overlapping any solid tile.
func isPositionSafe(res collision.Resolver, body *kinematics.Body, x, y float64) bool {
	h := collision.Hitbox{
		X: x + body.Profile.OffsetX,
		Y: y + body.Profile.OffsetY,
		W: body.Profile.HitboxW,
		H: body.Profile.HitboxH,
	}
	return !res.OverlapsSolid(h) && res.ClassifySupport(h) == collision.SupportSolid
}

func entityName(e *donburi.Entry) string {
	if e.HasComponent(components.Player) {
		return "player"
	}
	if e.HasComponent(components.Enemy) {
		return components.Enemy.Get(e).Kind
	}
	return "entity"
}
