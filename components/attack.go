package components

import "github.com/yohamta/donburi"

// AttackData times an attack when nothing external reports its end.
type AttackData struct {
	TicksLeft int
	Count     int // Attacks started since spawn
}

var Attack = donburi.NewComponentType[AttackData]()
