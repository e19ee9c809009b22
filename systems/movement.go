package systems

import (
	"github.com/automoto/doomerang-tiles/components"
	"github.com/automoto/doomerang-tiles/shared/collision"
	"github.com/automoto/doomerang-tiles/shared/kinematics"
)

// UpdateMovement resolves every body against the tile grid in update order.
func UpdateMovement(ctx *Context) {
	for _, e := range ctx.Order {
		// Dying entities freeze in place until the death sequence ends
		if e.HasComponent(components.Death) {
			continue
		}

		body := components.Body.Get(e)
		if !body.Active() {
			continue
		}

		var policy kinematics.Policy
		if e.HasComponent(components.Controller) {
			policy = components.Controller.Get(e).Policy
		}
		if e.HasComponent(components.Player) {
			player := components.Player.Get(e)
			if pp, ok := policy.(*kinematics.PlayerPolicy); ok {
				pp.Intent = player.Intent
			}
		}

		r := kinematics.Step(ctx.Resolver, body, policy)
		components.Motion.Get(e).Last = r

		// Track last safe ground position for player respawn
		if e.HasComponent(components.Player) && r.Grounded && r.Support == collision.SupportSolid {
			player := components.Player.Get(e)
			player.LastSafeX = body.Position.X
			player.LastSafeY = body.Position.Y
			player.HasSafeSpot = true
		}
	}
}
