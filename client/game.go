// Package client is the desktop debug client: it plays one level at a time
// through sim.World and draws tiles by behavior with hitboxes and states.
package client

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-tiles/client/camera"
	cfg "github.com/automoto/doomerang-tiles/config"
	"github.com/automoto/doomerang-tiles/shared/leveldata"
	"github.com/automoto/doomerang-tiles/sim"
	"github.com/automoto/doomerang-tiles/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// statusTicks is how long a status line stays on screen.
const statusTicks = 120

type Game struct {
	levels map[string]*leveldata.Level
	names  []string
	index  int

	world  *sim.World
	snap   sim.Snapshot
	camera *camera.Camera
	input  inputState

	store systems.SaveStore // nil disables saving
	log   logrus.FieldLogger

	debug       bool
	status      string
	statusTimer int
}

// NewGame starts on the level called start, or the first level when start
// is empty. store may be nil.
func NewGame(levels map[string]*leveldata.Level, names []string, start string, store systems.SaveStore, log logrus.FieldLogger) (*Game, error) {
	if len(names) == 0 {
		return nil, errors.New("no levels to play")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	viewW, viewH := viewSize()
	g := &Game{
		levels: levels,
		names:  names,
		store:  store,
		log:    log,
		camera: camera.New(viewW, viewH, cfg.Camera.FollowTicks, cfg.Camera.RetargetDistance),
	}

	index := 0
	if start != "" {
		index = -1
		for i, name := range names {
			if name == start {
				index = i
			}
		}
		if index < 0 {
			return nil, fmt.Errorf("unknown level %q", start)
		}
	}
	if err := g.loadLevel(index); err != nil {
		return nil, err
	}
	return g, nil
}

func viewSize() (float64, float64) {
	return float64(cfg.C.Width) / cfg.C.Scale, float64(cfg.C.Height) / cfg.C.Scale
}

func (g *Game) loadLevel(index int) error {
	level := g.levels[g.names[index]]
	w, err := sim.NewWorld(level, sim.Options{
		Log:               g.log,
		AutoFinishAttacks: cfg.Sim.AutoFinishAttacks,
	})
	if err != nil {
		return fmt.Errorf("load level %s: %w", g.names[index], err)
	}
	g.index = index
	g.world = w
	g.snap = w.Snapshot()

	// Start the camera on the player rather than easing in from the old level.
	g.camera.Reset()
	g.followPlayer()
	g.setStatus("Level " + level.Name)
	return nil
}

func (g *Game) Update() error {
	g.input.poll()

	switch {
	case g.input.justPressed(ActionToggleDebug):
		g.debug = !g.debug
	case g.input.justPressed(ActionNextLevel):
		if err := g.loadLevel((g.index + 1) % len(g.names)); err != nil {
			return err
		}
	case g.input.justPressed(ActionRestart):
		g.world.RespawnPlayer()
		g.setStatus("Restarted")
	case g.input.justPressed(ActionSave):
		g.save()
	case g.input.justPressed(ActionLoad):
		g.load()
	case g.input.justPressed(ActionFinishAttack):
		g.world.NotifyAttackFinished()
	}

	g.world.SetPlayerIntent(g.input.intent())
	g.world.Step()
	g.snap = g.world.Snapshot()

	g.followPlayer()
	g.camera.Update()

	if g.statusTimer > 0 {
		g.statusTimer--
	}
	return nil
}

func (g *Game) followPlayer() {
	p, ok := g.snap.Player()
	if !ok || !p.Active() {
		return
	}
	levelW, levelH := g.world.Level().PixelSize()
	h := p.Body.Hitbox
	g.camera.Follow(h.X+h.W/2, h.Y+h.H/2, levelW, levelH)
}

func (g *Game) save() {
	if g.store == nil {
		g.setStatus("Saving unavailable")
		return
	}
	if err := g.world.Save(g.store, cfg.Sim.SaveSlot); err != nil {
		g.log.WithError(err).Warn("Could not save game")
		g.setStatus("Save failed")
		return
	}
	g.setStatus("Saved")
}

func (g *Game) load() {
	if g.store == nil {
		g.setStatus("Saving unavailable")
		return
	}
	err := g.world.Load(g.store, cfg.Sim.SaveSlot)
	switch {
	case errors.Is(err, systems.ErrNoSave):
		g.setStatus("No save in slot " + cfg.Sim.SaveSlot)
	case errors.Is(err, systems.ErrLevelMismatch):
		g.setStatus("Save is for another level")
	case err != nil:
		g.log.WithError(err).Warn("Could not load game")
		g.setStatus("Load failed")
	default:
		g.snap = g.world.Snapshot()
		g.setStatus("Loaded")
	}
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusTimer = statusTicks
}

func (g *Game) Layout(width, height int) (int, int) {
	w, h := viewSize()
	return int(w), int(h)
}

// Run opens the window and plays until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("doomerang tiles")
	ebiten.SetTPS(cfg.Sim.TPS)
	return ebiten.RunGame(g)
}
