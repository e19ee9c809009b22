package systems

import (
	"github.com/automoto/doomerang-tiles/components"
	"github.com/automoto/doomerang-tiles/shared/collision"
	"github.com/automoto/doomerang-tiles/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateEngagement flags the player and every enemy whose hitboxes overlap.
// It runs before movement, so it sees the positions resolved last tick: the
// broadphase objects are only synced at the end of a tick.
func UpdateEngagement(ctx *Context) {
	for _, e := range ctx.Order {
		if e.HasComponent(components.State) {
			state := components.State.Get(e)
			state.Engaged = state.External
		}
	}

	playerEntry, ok := ctx.Player()
	if !ok || !engageable(playerEntry) {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvEnemy) {
		enemyEntry, ok := obj.Data.(*donburi.Entry)
		if !ok || !engageable(enemyEntry) {
			continue
		}
		// Cells are shared by near misses too; confirm the boxes overlap.
		if !hitboxOf(playerObj.Object).Overlaps(hitboxOf(obj)) {
			continue
		}
		components.State.Get(enemyEntry).Engaged = true
		components.State.Get(playerEntry).Engaged = true
	}
}

func engageable(e *donburi.Entry) bool {
	if !e.Valid() || e.HasComponent(components.Death) {
		return false
	}
	obj := components.Object.Get(e)
	return obj.Object != nil && obj.Space != nil && components.Body.Get(e).Active()
}

func hitboxOf(obj *resolv.Object) collision.Hitbox {
	return collision.Hitbox{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}
