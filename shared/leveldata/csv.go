package leveldata

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/doomerang-tiles/shared/tilegrid"
	"github.com/automoto/doomerang-tiles/shared/tomlconv"
)

// Manifest describes a CSV level: its dimensions and spawns. It lives next
// to the tile sources as <stem>.toml.
type Manifest struct {
	Name     string          `toml:"name"`
	Width    int             `toml:"width"`
	Height   int             `toml:"height"`
	TileSize float64         `toml:"tile_size"`
	Player   ManifestSpawn   `toml:"player"`
	Enemies  []ManifestEnemy `toml:"enemies"`
}

type ManifestSpawn struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

type ManifestEnemy struct {
	Kind      string  `toml:"kind"`
	X         float64 `toml:"x"`
	Y         float64 `toml:"y"`
	Direction string  `toml:"direction"`
}

// LoadCSV reads <stem>.toml, <stem>.visual.csv and <stem>.behavior.csv. A
// missing visual source is tolerated; a missing behavior source is not.
// Malformed or short behavior data does not fail the load: the grid is
// zero-filled past the fault and Level.Degraded describes it.
func LoadCSV(fsys fs.FS, stem string) (*Level, error) {
	manifestPath := stem + ".toml"
	data, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", manifestPath, err)
	}
	var m Manifest
	if err := tomlconv.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", manifestPath, err)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", manifestPath, m.Width, m.Height, ErrBadDimensions)
	}
	if m.Name == "" {
		m.Name = path.Base(stem)
	}

	behavior, err := fsys.Open(stem + ".behavior.csv")
	if err != nil {
		return nil, fmt.Errorf("open behavior source: %w", err)
	}
	defer behavior.Close()

	var visual fs.File
	if f, err := fsys.Open(stem + ".visual.csv"); err == nil {
		visual = f
		defer f.Close()
	}

	grid, degraded := tilegrid.Parse(visual, behavior, m.Width, m.Height)

	level := &Level{
		Name:        m.Name,
		Grid:        grid,
		TileSize:    m.TileSize,
		PlayerSpawn: Spawn{X: m.Player.X, Y: m.Player.Y},
		Degraded:    degraded,
	}
	for _, e := range m.Enemies {
		kind := e.Kind
		if kind == "" {
			kind = DefaultEnemyKind
		}
		level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
			X:         e.X,
			Y:         e.Y,
			Kind:      kind,
			Direction: direction(e.Direction),
		})
	}
	return level, nil
}
