package client

import (
	"github.com/automoto/doomerang-tiles/shared/kinematics"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionCrouch
	ActionFinishAttack
	ActionRestart
	ActionNextLevel
	ActionSave
	ActionLoad
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// AnalogDeadzone is the stick deflection (0.0 to 1.0) below which the left
// stick reads as centered.
var AnalogDeadzone = 0.25

// Bindings maps every action to its keys and buttons.
var Bindings = map[ActionID]InputBinding{
	ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	ActionJump: {
		Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyW, ebiten.KeyUp},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	ActionAttack: {
		Keys: []ebiten.Key{ebiten.KeyZ},
		// X / Square button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	ActionCrouch: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	ActionFinishAttack: {
		Keys: []ebiten.Key{ebiten.KeyC},
	},
	ActionRestart: {
		Keys: []ebiten.Key{ebiten.KeyR},
		// Select / Share button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	ActionNextLevel: {
		Keys: []ebiten.Key{ebiten.KeyN, ebiten.KeyTab},
	},
	ActionSave: {
		Keys: []ebiten.Key{ebiten.KeyF5},
	},
	ActionLoad: {
		Keys: []ebiten.Key{ebiten.KeyF9},
	},
	ActionToggleDebug: {
		Keys: []ebiten.Key{ebiten.KeyF1},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// inputState double-buffers the polled actions so presses can be told
// apart from holds.
type inputState struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
	AnalogX  float64
}

func (s *inputState) poll() {
	s.Previous = s.Current
	s.Current = [ActionCount]bool{}
	s.AnalogX = 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					s.Current[actionID] = true
				}
			}
		}
	}

	// Left stick: horizontal is proportional, down crouches.
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal < -AnalogDeadzone || horizontal > AnalogDeadzone {
			s.AnalogX = horizontal
		}
		if vertical > AnalogDeadzone {
			s.Current[ActionCrouch] = true
		}
	}
}

func (s *inputState) pressed(id ActionID) bool {
	return s.Current[id]
}

func (s *inputState) justPressed(id ActionID) bool {
	return s.Current[id] && !s.Previous[id]
}

// intent turns held actions into the player's intent. Jump and attack are
// passed as held; the simulation does its own edge detection.
func (s *inputState) intent() kinematics.Intent {
	in := kinematics.Intent{
		MoveX:  s.AnalogX,
		Jump:   s.pressed(ActionJump),
		Crouch: s.pressed(ActionCrouch),
		Attack: s.pressed(ActionAttack),
	}
	if s.pressed(ActionMoveLeft) {
		in.MoveX--
	}
	if s.pressed(ActionMoveRight) {
		in.MoveX++
	}
	return in
}
