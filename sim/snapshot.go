package sim

import (
	"github.com/automoto/doomerang-tiles/components"
	"github.com/automoto/doomerang-tiles/shared/collision"
	"github.com/automoto/doomerang-tiles/shared/entitystate"
	"github.com/automoto/doomerang-tiles/shared/kinematics"
	"github.com/yohamta/donburi"
)

// Entity is the published view of one entity after a tick.
type Entity struct {
	Index   int    // Position in update order
	Kind    string // "player" or the enemy kind
	Body    kinematics.Snapshot
	State   entitystate.State
	Engaged bool
	Dying   bool
	Health  int
	Lives   int // Player only
}

func (e Entity) Grounded() bool             { return e.Body.Grounded }
func (e Entity) Support() collision.Support { return e.Body.Support }
func (e Entity) Active() bool               { return e.Body.Active }

// Snapshot is an immutable copy of the world after a tick. Renderers and
// other readers only ever see snapshots.
type Snapshot struct {
	Tick     uint64
	Level    string
	Entities []Entity
}

// Player returns the player entity, if the world has one.
func (s Snapshot) Player() (Entity, bool) {
	if len(s.Entities) == 0 || s.Entities[0].Kind != kindPlayer {
		return Entity{}, false
	}
	return s.Entities[0], true
}

const kindPlayer = "player"

// Snapshot copies the current state of every entity.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     w.ctx.Tick,
		Level:    w.ctx.Level.Name,
		Entities: make([]Entity, 0, len(w.ctx.Order)),
	}
	for i, e := range w.ctx.Order {
		snap.Entities = append(snap.Entities, entitySnapshot(i, e))
	}
	return snap
}

func entitySnapshot(index int, e *donburi.Entry) Entity {
	state := components.State.Get(e)
	out := Entity{
		Index:   index,
		Body:    components.Body.Get(e).Snapshot(),
		State:   state.Machine.Current(),
		Engaged: state.Engaged,
		Dying:   e.HasComponent(components.Death),
		Health:  components.Health.Get(e).Current,
	}
	if e.HasComponent(components.Player) {
		out.Kind = kindPlayer
		out.Lives = components.Lives.Get(e).Lives
	} else if e.HasComponent(components.Enemy) {
		out.Kind = components.Enemy.Get(e).Kind
	}
	return out
}
