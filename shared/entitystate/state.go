// Package entitystate derives the discrete logical state of an entity from
// its resolved kinematics. It has no dependency on ebiten so the headless
// simulation and the desktop client share it.
package entitystate

// State identifies an entity's logical state for animation selection and AI.
type State int

const (
	Idle State = iota
	Running
	Jumping
	Falling
	Crouching
	Attacking
	EngagedIdle
	EngagedAttacking
)

// stateNames maps State to the animation prefix used by renderers.
var stateNames = map[State]string{
	Idle:             "idle",
	Running:          "running",
	Jumping:          "jump",
	Falling:          "fall",
	Crouching:        "crouch",
	Attacking:        "attack",
	EngagedIdle:      "engaged_idle",
	EngagedAttacking: "engaged_attack",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Airborne reports the two states that only occur off the ground.
func (s State) Airborne() bool {
	return s == Jumping || s == Falling
}

// IsAttacking covers both the free and the engaged attack.
func (s State) IsAttacking() bool {
	return s == Attacking || s == EngagedAttacking
}

// Inputs is the resolved per-tick data the derivation reads.
type Inputs struct {
	Grounded  bool
	VelocityX float64
	VelocityY float64
	Crouch    bool
	Engaged   bool
}

// Derive computes the state for one tick. An unfinished attack wins over
// everything, then engagement, then ground contact.
func Derive(attacking bool, in Inputs) State {
	switch {
	case attacking && in.Engaged:
		return EngagedAttacking
	case attacking:
		return Attacking
	case in.Engaged:
		return EngagedIdle
	case in.Grounded:
		if in.Crouch {
			return Crouching
		}
		if in.VelocityX != 0 {
			return Running
		}
		return Idle
	case in.VelocityY < 0:
		return Jumping
	default:
		return Falling
	}
}
