package systems

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/automoto/doomerang-tiles/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

// ErrNoSave is returned by LoadGame when the slot has never been written.
var ErrNoSave = errors.New("no saved game")

// ErrLevelMismatch is returned when a save belongs to another level.
var ErrLevelMismatch = errors.New("saved game is for a different level")

// SaveStore is the part of gdata.Manager the save slots need.
type SaveStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var _ SaveStore = (*gdata.Manager)(nil)

// OpenStore opens the per-user data directory for appName.
func OpenStore(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save store: %w", err)
	}
	return m, nil
}

// SavedGame is what a save slot holds for the player.
type SavedGame struct {
	Level     string  `json:"level"`
	Tick      uint64  `json:"tick"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Health    int     `json:"health"`
	MaxHealth int     `json:"maxHealth"`
	Lives     int     `json:"lives"`
	Deaths    int     `json:"deaths"`
}

func slotKey(slot string) string {
	return "save_" + slot
}

// SaveGame writes the player's progress to slot.
func SaveGame(ctx *Context, store SaveStore, slot string) error {
	playerEntry, ok := ctx.Player()
	if !ok {
		return errors.New("save game: no player")
	}
	body := components.Body.Get(playerEntry)
	health := components.Health.Get(playerEntry)
	lives := components.Lives.Get(playerEntry)

	saved := SavedGame{
		Level:     ctx.Level.Name,
		Tick:      ctx.Tick,
		X:         body.Position.X,
		Y:         body.Position.Y,
		Health:    health.Current,
		MaxHealth: health.Max,
		Lives:     lives.Lives,
		Deaths:    lives.Deaths,
	}
	// Save the last safe spot rather than a point in mid-air.
	if player := components.Player.Get(playerEntry); player.HasSafeSpot && !body.Grounded {
		saved.X, saved.Y = player.LastSafeX, player.LastSafeY
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	if err := store.SaveItem(slotKey(slot), data); err != nil {
		return fmt.Errorf("save game %q: %w", slot, err)
	}
	ctx.logger().WithField("slot", slot).WithField("level", saved.Level).Info("Game saved")
	return nil
}

// LoadGame reads slot. A slot that was never written yields ErrNoSave.
func LoadGame(store SaveStore, slot string) (*SavedGame, error) {
	data, err := store.LoadItem(slotKey(slot))
	if err != nil {
		return nil, fmt.Errorf("load game %q: %w", slot, err)
	}
	if len(data) == 0 {
		return nil, ErrNoSave
	}

	var saved SavedGame
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("load game %q: %w", slot, err)
	}
	return &saved, nil
}

// ApplySavedGame puts the player back where saved left it.
func ApplySavedGame(ctx *Context, saved *SavedGame) error {
	if saved.Level != ctx.Level.Name {
		return fmt.Errorf("%w: %q, playing %q", ErrLevelMismatch, saved.Level, ctx.Level.Name)
	}
	playerEntry, ok := ctx.Player()
	if !ok {
		return errors.New("apply saved game: no player")
	}

	x, y := saved.X, saved.Y
	if !isPositionSafe(ctx.Resolver, components.Body.Get(playerEntry), x, y) {
		x, y = ctx.Level.PlayerSpawn.X, ctx.Level.PlayerSpawn.Y
	}
	resetPlayerAtPosition(playerEntry, x, y)
	removeDeath(playerEntry)

	health := components.Health.Get(playerEntry)
	if saved.MaxHealth > 0 {
		health.Max = saved.MaxHealth
	}
	health.Current = min(max(saved.Health, 1), health.Max)

	lives := components.Lives.Get(playerEntry)
	lives.Lives = min(max(saved.Lives, 1), lives.MaxLives)
	lives.Deaths = saved.Deaths

	ctx.logger().WithField("level", saved.Level).WithField("lives", lives.Lives).Info("Game loaded")
	return nil
}

func removeDeath(e *donburi.Entry) {
	if e.HasComponent(components.Death) {
		donburi.Remove[components.DeathData](e, components.Death)
	}
}
