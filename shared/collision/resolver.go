package collision

import (
	"math"

	"github.com/automoto/doomerang-tiles/shared/tilegrid"
)

const (
	DefaultTileSize        = 16.0
	DefaultEpsilon         = 0.001
	DefaultWallProbeShrink = 2.0
	DefaultCeilingNudge    = 1.0
)

// Support is what lies directly beneath a hitbox's bottom edge.
type Support uint8

const (
	SupportOffMap Support = iota
	SupportLethal
	SupportSolid
)

func (s Support) String() string {
	switch s {
	case SupportLethal:
		return "lethal"
	case SupportSolid:
		return "solid"
	default:
		return "off_map"
	}
}

// Resolver answers collision queries for one level. It holds no mutable
// state and is safe to copy and to share between goroutines.
type Resolver struct {
	Grid     *tilegrid.Grid
	TileSize float64
	// Epsilon keeps an edge lying exactly on a tile boundary from being
	// attributed to the next tile.
	Epsilon float64
	// WallProbeShrink trims the bottom of the wall probe so the ground row
	// under the feet is never read as a wall.
	WallProbeShrink float64
	// CeilingNudge is the downward speed forced on a body whose head
	// touches a solid tile. Tuned for jump feel; it is not a reflection.
	CeilingNudge float64
}

// NewResolver uses the default epsilon, wall probe shrink and ceiling nudge.
func NewResolver(grid *tilegrid.Grid, tileSize float64) Resolver {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return Resolver{
		Grid:            grid,
		TileSize:        tileSize,
		Epsilon:         DefaultEpsilon,
		WallProbeShrink: DefaultWallProbeShrink,
		CeilingNudge:    DefaultCeilingNudge,
	}
}

func (r Resolver) tile(v float64) int {
	return int(math.Floor(v / r.TileSize))
}

// TileAt converts a world position to tile coordinates.
func (r Resolver) TileAt(px, py float64) (tx, ty int) {
	return r.tile(px), r.tile(py)
}

// columns returns the inclusive tile-column range under the hitbox.
func (r Resolver) columns(h Hitbox) (first, last int) {
	return r.tile(h.X), r.tile(h.Right() - r.Epsilon)
}

// ClassifySupport scans the tile row containing the hitbox's bottom edge
// from left to right. The leftmost lethal or solid column decides.
func (r Resolver) ClassifySupport(h Hitbox) Support {
	row := r.tile(h.Bottom())
	if row < 0 || row >= r.Grid.Height() {
		return SupportOffMap
	}

	first, last := r.columns(h)
	for col := first; col <= last; col++ {
		switch b := r.Grid.BehaviorAt(col, row); {
		case b.IsLethal():
			return SupportLethal
		case b == tilegrid.Solid:
			return SupportSolid
		}
	}
	return SupportOffMap
}

// leadingColumn is the tile column just inside the hitbox's leading edge.
func (r Resolver) leadingColumn(h Hitbox, movingRight bool) int {
	if movingRight {
		return r.tile(h.Right() - r.Epsilon)
	}
	return r.tile(h.X + r.Epsilon)
}

// HitsWall reports a solid tile in the leading column, or a leading column
// past the world edge in the direction of travel.
func (r Resolver) HitsWall(h Hitbox, movingRight bool) bool {
	firstRow := r.tile(h.Y)
	lastRow := r.tile(h.Bottom() - r.WallProbeShrink)
	if lastRow < firstRow {
		return false
	}

	col := r.leadingColumn(h, movingRight)
	if movingRight && col >= r.Grid.Width() {
		return true
	}
	if !movingRight && col < 0 {
		return true
	}

	for row := firstRow; row <= lastRow; row++ {
		if r.Grid.IsSolid(col, row) {
			return true
		}
	}
	return false
}

// WallContactX returns the X that puts the hitbox's leading edge on the
// boundary of the tile column it is currently pushing into.
func (r Resolver) WallContactX(h Hitbox, movingRight bool) float64 {
	col := r.leadingColumn(h, movingRight)
	if movingRight {
		return float64(col)*r.TileSize - h.W
	}
	return float64(col+1) * r.TileSize
}

// HitsCeiling checks the row just above the top edge. Rows above the map are
// open sky.
func (r Resolver) HitsCeiling(h Hitbox) bool {
	row := r.tile(h.Y - r.Epsilon)
	if row < 0 {
		return false
	}

	first, last := r.columns(h)
	for col := first; col <= last; col++ {
		if r.Grid.IsSolid(col, row) {
			return true
		}
	}
	return false
}

// SnapToGround aligns the bottom edge with the top of the tile row it rests
// in. Applying it twice changes nothing.
func (r Resolver) SnapToGround(h Hitbox) Hitbox {
	h.Y = float64(r.tile(h.Bottom()))*r.TileSize - h.H
	return h
}

func (r Resolver) IsTileSolid(tx, ty int) bool {
	return r.Grid.IsSolid(tx, ty)
}

// IsGroundAhead checks the tile one column past the leading edge on the row
// the hitbox stands on. AI patrols use it to turn around at ledges.
func (r Resolver) IsGroundAhead(h Hitbox, headingLeft bool) bool {
	row := r.tile(h.Bottom())
	col := r.leadingColumn(h, !headingLeft)
	if headingLeft {
		col--
	} else {
		col++
	}
	return r.IsTileSolid(col, row)
}

// Bounds is the grid extent in world units.
func (r Resolver) Bounds() Hitbox {
	return Hitbox{W: r.Grid.PixelWidth(r.TileSize), H: r.Grid.PixelHeight(r.TileSize)}
}

// OverlapsSolid reports whether any tile covered by the hitbox is solid.
func (r Resolver) OverlapsSolid(h Hitbox) bool {
	first, last := r.columns(h)
	top, bottom := r.tile(h.Y), r.tile(h.Bottom()-r.Epsilon)
	for row := top; row <= bottom; row++ {
		for col := first; col <= last; col++ {
			if r.Grid.IsSolid(col, row) {
				return true
			}
		}
	}
	return false
}
