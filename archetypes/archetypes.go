package archetypes

import (
	"github.com/automoto/doomerang-tiles/components"
	"github.com/automoto/doomerang-tiles/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Motion,
		components.Controller,
		components.Object,
		components.State,
		components.Idle,
		components.Attack,
		components.Health,
		components.Lives,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Motion,
		components.Controller,
		components.Object,
		components.State,
		components.Idle,
		components.Health,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
