package factory

import (
	"math"

	"github.com/automoto/doomerang-tiles/shared/leveldata"
	"github.com/solarlune/resolv"
)

// spaceCellTiles is the broadphase cell size in tiles.
const spaceCellTiles = 2

// CreateSpace builds the broadphase space covering the level.
func CreateSpace(level *leveldata.Level, tileSize float64) *resolv.Space {
	w, h := level.Grid.PixelWidth(tileSize), level.Grid.PixelHeight(tileSize)
	cell := int(tileSize) * spaceCellTiles
	if cell <= 0 {
		cell = 32
	}
	return resolv.NewSpace(int(math.Ceil(w)), int(math.Ceil(h)), cell, cell)
}
