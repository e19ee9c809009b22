package components

import (
	"github.com/automoto/doomerang-tiles/shared/entitystate"
	"github.com/yohamta/donburi"
)

type StateData struct {
	Machine  entitystate.Machine
	Engaged  bool // Overlapping an opponent as of the previous tick
	External bool // Engagement reported by a collaborator, e.g. a fight scene
	Crouch   bool
	Changed  bool // State changed on the last update
}

var State = donburi.NewComponentType[StateData]()

type IdleState struct{}
type RunningState struct{}
type JumpingState struct{}
type FallingState struct{}
type CrouchingState struct{}
type AttackingState struct{}
type EngagedState struct{}

var Idle = donburi.NewComponentType[IdleState]()
var Running = donburi.NewComponentType[RunningState]()
var Jumping = donburi.NewComponentType[JumpingState]()
var Falling = donburi.NewComponentType[FallingState]()
var Crouching = donburi.NewComponentType[CrouchingState]()
var Attacking = donburi.NewComponentType[AttackingState]()
var Engaged = donburi.NewComponentType[EngagedState]()
