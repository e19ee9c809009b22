package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has started its death sequence.
// Timer counts down each tick; when it reaches 0 the player respawns or the
// entity's body is nullified.
type DeathData struct {
	Timer  int
	Reason DeathReason
}

type DeathReason int

const (
	DeathLethalTile DeathReason = iota
	DeathFellOut
)

func (r DeathReason) String() string {
	if r == DeathFellOut {
		return "fell out"
	}
	return "lethal tile"
}

var Death = donburi.NewComponentType[DeathData]()
