package systems

import (
	"github.com/automoto/doomerang-tiles/components"
)

// UpdateObjects mirrors resolved hitboxes into the broadphase space. Removed
// and dying bodies leave the space so nothing can engage them.
func UpdateObjects(ctx *Context) {
	for _, e := range ctx.Order {
		if !e.HasComponent(components.Object) {
			continue
		}
		obj := components.Object.Get(e)
		body := components.Body.Get(e)

		if !body.Active() || e.HasComponent(components.Death) {
			if obj.Space != nil {
				ctx.Space.Remove(obj.Object)
			}
			continue
		}
		if obj.Space == nil {
			ctx.Space.Add(obj.Object)
		}

		obj.X = body.Hitbox.X
		obj.Y = body.Hitbox.Y
		obj.W = body.Hitbox.W
		obj.H = body.Hitbox.H
		obj.Update()
	}
}
