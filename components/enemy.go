package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind       string // "guard", "light_guard", "heavy_guard" etc...
	SpawnIndex int    // Position in the level's enemy list
	TintColor  color.RGBA
	DeathTicks int
}

var Enemy = donburi.NewComponentType[EnemyData]()
