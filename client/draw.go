package client

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/doomerang-tiles/config"
	"github.com/automoto/doomerang-tiles/fonts"
	"github.com/automoto/doomerang-tiles/shared/tilegrid"
	"github.com/automoto/doomerang-tiles/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor  = color.RGBA{R: 20, G: 20, B: 28, A: 255}
	fallThroughColor = color.RGBA{R: 140, G: 30, B: 30, A: 255}
	hitboxColor      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

func behaviorColor(b tilegrid.Behavior) (color.Color, bool) {
	switch b {
	case tilegrid.Solid:
		return cfg.DarkBlue, true
	case tilegrid.LethalOpen:
		return cfg.Red, true
	case tilegrid.LethalFallThrough:
		return fallThroughColor, true
	}
	return nil, false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawTiles(screen)
	g.drawEntities(screen)
	g.drawHUD(screen)
}

func (g *Game) drawTiles(screen *ebiten.Image) {
	res := g.world.Resolver()
	camX, camY := g.camera.Offset()
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	ts := res.TileSize

	// Only the tiles inside the viewport.
	firstCol, firstRow := res.TileAt(-camX, -camY)
	lastCol, lastRow := res.TileAt(float64(width)-camX, float64(height)-camY)
	firstCol, firstRow = max(firstCol, 0), max(firstRow, 0)
	lastCol, lastRow = min(lastCol, res.Grid.Width()-1), min(lastRow, res.Grid.Height()-1)

	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			c, ok := behaviorColor(res.Grid.BehaviorAt(col, row))
			if !ok {
				continue
			}
			x := float32(math.Round(float64(col)*ts + camX))
			y := float32(math.Round(float64(row)*ts + camY))
			vector.FillRect(screen, x, y, float32(ts), float32(ts), c, false)
		}
	}
}

func (g *Game) drawEntities(screen *ebiten.Image) {
	camX, camY := g.camera.Offset()
	label := fonts.Small.Get()

	for _, e := range g.snap.Entities {
		if !e.Active() {
			continue
		}
		h := e.Body.Hitbox
		x := float32(math.Round(h.X + camX))
		y := float32(math.Round(h.Y + camY))

		vector.FillRect(screen, x, y, float32(h.W), float32(h.H), entityColor(e), false)
		if g.debug {
			strokeRect(screen, x, y, float32(h.W), float32(h.H), hitboxColor)
			text.Draw(screen, e.State.String(), label, int(x), int(y)-2, cfg.White)
		}
	}
}

func entityColor(e sim.Entity) color.Color {
	switch {
	case e.Dying:
		return cfg.LightRed
	case e.Kind == "player" && !e.Grounded():
		return cfg.Purple
	case e.Kind == "player":
		return cfg.LightBlue
	}
	if t, ok := cfg.Enemy.Types[e.Kind]; ok {
		return t.TintColor
	}
	return cfg.White
}

func strokeRect(screen *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	face := fonts.Mono.Get()
	lines := []string{g.world.Level().Name}
	if p, ok := g.snap.Player(); ok {
		lines = append(lines, fmt.Sprintf("lives %d  %s", p.Lives, p.State))
		if g.debug {
			lines = append(lines,
				fmt.Sprintf("tick %d", g.snap.Tick),
				fmt.Sprintf("pos %.1f,%.1f  vel %.2f,%.2f", p.Body.Position.X, p.Body.Position.Y, p.Body.VelocityX, p.Body.VelocityY),
				fmt.Sprintf("support %s  grounded %t  engaged %t", p.Support(), p.Grounded(), p.Engaged),
			)
		}
		if !p.Active() {
			lines = append(lines, "out of lives - R to restart")
		}
	}
	if g.statusTimer > 0 {
		lines = append(lines, g.status)
	}

	lineHeight := face.Metrics().Height.Ceil()
	for i, line := range lines {
		text.Draw(screen, line, face, 4, 4+lineHeight*(i+1), cfg.White)
	}
}
