package systems

// Update runs one tick of every system in its fixed order. Engagement reads
// the broadphase before anything moves, so every cross-entity read sees the
// previous tick.
func Update(ctx *Context) {
	UpdateEngagement(ctx)
	UpdateAttacks(ctx)
	UpdateMovement(ctx)
	UpdateHazards(ctx)
	UpdateStates(ctx)
	UpdateObjects(ctx)
	ctx.Tick++
}
