// Package leveldata loads levels from TMX (Tiled) or CSV sources into a
// behavior grid plus spawn points. It has no dependencies on ebitengine,
// donburi, or resolv.
package leveldata

import (
	"errors"

	"github.com/automoto/doomerang-tiles/shared/tilegrid"
)

// Layer and object group names read from TMX files.
const (
	LayerVisual       = "visual"
	LayerBehavior     = "behavior"
	GroupPlayerSpawn  = "PlayerSpawn"
	GroupEnemies      = "Enemies"
	PropertyBehavior  = "behavior"
	PropertyDirection = "direction"
)

var (
	ErrNoBehaviorLayer = errors.New("level has no behavior layer")
	ErrNoPlayerSpawn   = errors.New("level has no player spawn")
	ErrBadDimensions   = errors.New("level dimensions must be positive")
)

// Level is everything the simulation needs from a level file.
type Level struct {
	Name        string
	Grid        *tilegrid.Grid
	TileSize    float64
	PlayerSpawn Spawn
	EnemySpawns []EnemySpawn

	// Degraded is set when the behavior data was truncated or malformed and
	// part of the grid fell back to Air. The level is still playable.
	Degraded error
}

// Spawn is a draw position in world units.
type Spawn struct {
	X, Y float64
}

// EnemySpawn places one enemy. Kind selects its profile; Direction is the
// initial patrol heading (-1 or 1).
type EnemySpawn struct {
	X, Y      float64
	Kind      string
	Direction float64
}

// PixelSize is the level extent in world units.
func (l *Level) PixelSize() (w, h float64) {
	return l.Grid.PixelWidth(l.TileSize), l.Grid.PixelHeight(l.TileSize)
}
