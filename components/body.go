package components

import (
	"github.com/automoto/doomerang-tiles/shared/kinematics"
	"github.com/yohamta/donburi"
)

// Body is the kinematic state resolved against the tile grid each tick.
var Body = donburi.NewComponentType[kinematics.Body]()

// MotionData keeps the outcome of the last resolved tick. Other systems read
// it instead of re-running collision queries.
type MotionData struct {
	Last kinematics.Result
}

var Motion = donburi.NewComponentType[MotionData]()

// ControllerData holds the policy that picks the body's velocity.
type ControllerData struct {
	Policy kinematics.Policy
}

var Controller = donburi.NewComponentType[ControllerData]()
