package components

import (
	"github.com/automoto/doomerang-tiles/shared/kinematics"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Intent      kinematics.Intent
	AttackHeld  bool    // Attack was pressed last tick; attacks trigger on the press edge
	LastSafeX   float64 // Last position where player was safely grounded
	LastSafeY   float64
	HasSafeSpot bool
}

var Player = donburi.NewComponentType[PlayerData]()
