package components

import "github.com/yohamta/donburi"

// HealthData is carried through save slots; hazards do not drain it.
type HealthData struct {
	Current int
	Max     int
}

// LivesData counts respawns left. A player with no lives is nullified
// instead of respawned.
type LivesData struct {
	Lives    int
	MaxLives int
	Deaths   int
}

func (l *LivesData) Exhausted() bool {
	return l.Lives <= 0
}

var Health = donburi.NewComponentType[HealthData]()
var Lives = donburi.NewComponentType[LivesData]()
