package systems

import (
	"github.com/automoto/doomerang-tiles/components"
	"github.com/automoto/doomerang-tiles/shared/entitystate"
	"github.com/automoto/doomerang-tiles/shared/kinematics"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// UpdateStates derives each entity's logical state from the tick it just
// resolved and keeps the state tag components in sync.
func UpdateStates(ctx *Context) {
	for _, e := range ctx.Order {
		state := components.State.Get(e)
		last := components.Motion.Get(e).Last

		state.Crouch = false
		if e.HasComponent(components.Player) {
			intent := components.Player.Get(e).Intent
			pp, _ := components.Controller.Get(e).Policy.(*kinematics.PlayerPolicy)
			state.Crouch = intent.Crouch || (pp != nil && pp.Crouching())
		}

		prev := state.Machine.Current()
		current, changed := state.Machine.Update(entitystate.Inputs{
			Grounded:  last.Grounded,
			VelocityX: last.VelocityX,
			VelocityY: last.VelocityY,
			Crouch:    state.Crouch,
			Engaged:   state.Engaged,
		})
		state.Changed = changed
		if !changed {
			continue
		}

		updateStateTags(e, current)
		ctx.logger().WithFields(logrus.Fields{
			"tick":   ctx.Tick,
			"entity": entityName(e),
			"from":   prev.String(),
			"to":     current.String(),
		}).Debug("State changed")
	}
}

func updateStateTags(e *donburi.Entry, s entitystate.State) {
	// Remove all state tags
	removeAllStateTags(e)

	// Add the current state tag
	switch s {
	case entitystate.Idle:
		donburi.Add(e, components.Idle, &components.IdleState{})
	case entitystate.Running:
		donburi.Add(e, components.Running, &components.RunningState{})
	case entitystate.Jumping:
		donburi.Add(e, components.Jumping, &components.JumpingState{})
	case entitystate.Falling:
		donburi.Add(e, components.Falling, &components.FallingState{})
	case entitystate.Crouching:
		donburi.Add(e, components.Crouching, &components.CrouchingState{})
	case entitystate.Attacking:
		donburi.Add(e, components.Attacking, &components.AttackingState{})
	case entitystate.EngagedIdle:
		donburi.Add(e, components.Engaged, &components.EngagedState{})
	case entitystate.EngagedAttacking:
		donburi.Add(e, components.Engaged, &components.EngagedState{})
		donburi.Add(e, components.Attacking, &components.AttackingState{})
	}
}

func removeAllStateTags(e *donburi.Entry) {
	if e.HasComponent(components.Idle) {
		donburi.Remove[components.IdleState](e, components.Idle)
	}
	if e.HasComponent(components.Running) {
		donburi.Remove[components.RunningState](e, components.Running)
	}
	if e.HasComponent(components.Jumping) {
		donburi.Remove[components.JumpingState](e, components.Jumping)
	}
	if e.HasComponent(components.Falling) {
		donburi.Remove[components.FallingState](e, components.Falling)
	}
	if e.HasComponent(components.Crouching) {
		donburi.Remove[components.CrouchingState](e, components.Crouching)
	}
	if e.HasComponent(components.Attacking) {
		donburi.Remove[components.AttackingState](e, components.Attacking)
	}
	if e.HasComponent(components.Engaged) {
		donburi.Remove[components.EngagedState](e, components.Engaged)
	}
}
