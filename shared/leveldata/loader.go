package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/doomerang-tiles/shared/tilegrid"
	"github.com/lafriks/go-tiled"
)

// DefaultEnemyKind is used for enemy objects without a type.
const DefaultEnemyKind = "guard"

// LoadTMX parses a Tiled map. It takes an fs.FS so callers can pass embed.FS
// (client) or os.DirFS (tools).
//
// The behavior layer holds one tile per cell. A tile's "behavior" property is
// its code; tiles without one use their local tile ID. Empty cells are Air.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Width <= 0 || levelMap.Height <= 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrBadDimensions)
	}

	level := &Level{
		Name:     strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		TileSize: float64(levelMap.TileWidth),
	}

	var behavior *tiled.Layer
	for _, layer := range levelMap.Layers {
		if layer.Name == LayerBehavior {
			behavior = layer
			break
		}
	}
	if behavior == nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoBehaviorLayer)
	}

	expected := levelMap.Width * levelMap.Height
	codes := make([]int, 0, expected)
	for i, tile := range behavior.Tiles {
		if i >= expected {
			break
		}
		code, bad := tileCode(tile)
		if bad != "" {
			// Same policy as the CSV reader: stop at the first bad cell.
			level.Degraded = &tilegrid.LoadError{
				Source:    LayerBehavior,
				Expected:  expected,
				Read:      len(codes),
				Line:      i/levelMap.Width + 1,
				Token:     bad,
				Truncated: true,
			}
			break
		}
		codes = append(codes, code)
	}
	if level.Degraded == nil && len(codes) < expected {
		level.Degraded = &tilegrid.LoadError{
			Source:    LayerBehavior,
			Expected:  expected,
			Read:      len(codes),
			Truncated: true,
		}
	}
	level.Grid = tilegrid.New(levelMap.Width, levelMap.Height, codes)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlayerSpawn:
			spawns := make([]Spawn, 0, len(og.Objects))
			for _, o := range og.Objects {
				spawns = append(spawns, Spawn{X: o.X, Y: o.Y})
			}
			// Leftmost spawn wins for consistent placement.
			sort.SliceStable(spawns, func(i, j int) bool {
				return spawns[i].X < spawns[j].X
			})
			if len(spawns) > 0 {
				level.PlayerSpawn = spawns[0]
			}
		case GroupEnemies:
			for _, o := range og.Objects {
				kind := o.Class
				if kind == "" {
					kind = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				if kind == "" {
					kind = DefaultEnemyKind
				}
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					X:         o.X,
					Y:         o.Y,
					Kind:      kind,
					Direction: direction(o.Properties.GetString(PropertyDirection)),
				})
			}
		}
	}

	if !hasGroup(levelMap, GroupPlayerSpawn) {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	return level, nil
}

// tileCode returns the behavior code of a cell, or the offending property
// value when it is not a non-negative integer.
func tileCode(tile *tiled.LayerTile) (int, string) {
	if tile == nil || tile.IsNil() {
		return tilegrid.CodeAir, ""
	}
	if tile.Tileset != nil {
		if ts, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
			if raw := ts.Properties.GetString(PropertyBehavior); raw != "" {
				code, err := strconv.Atoi(strings.TrimSpace(raw))
				if err != nil || code < 0 {
					return 0, raw
				}
				return code, ""
			}
		}
	}
	return int(tile.ID), ""
}

func hasGroup(m *tiled.Map, name string) bool {
	for _, og := range m.ObjectGroups {
		if og.Name == name && len(og.Objects) > 0 {
			return true
		}
	}
	return false
}

// direction maps a "left"/"right" property (or a signed number) to -1 or 1.
func direction(raw string) float64 {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "left", "-1":
		return -1
	default:
		return 1
	}
}

// LoadAllLevels discovers all .tmx and CSV manifest (.toml) levels in
// levelsDir within fsys and returns them keyed by stem name plus a sorted
// list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	tmx, err := fs.Glob(fsys, path.Join(levelsDir, "*.tmx"))
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", levelsDir, err)
	}
	manifests, err := fs.Glob(fsys, path.Join(levelsDir, "*.toml"))
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", levelsDir, err)
	}
	if len(tmx)+len(manifests) == 0 {
		return nil, nil, fmt.Errorf("no levels found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(tmx)+len(manifests))
	names := make([]string, 0, len(tmx)+len(manifests))
	add := func(l *Level) error {
		if _, dup := levels[l.Name]; dup {
			return fmt.Errorf("duplicate level name %q in %s", l.Name, levelsDir)
		}
		levels[l.Name] = l
		names = append(names, l.Name)
		return nil
	}

	for _, p := range tmx {
		l, err := LoadTMX(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		if err := add(l); err != nil {
			return nil, nil, err
		}
	}
	for _, p := range manifests {
		l, err := LoadCSV(fsys, strings.TrimSuffix(p, ".toml"))
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		if err := add(l); err != nil {
			return nil, nil, err
		}
	}

	sort.Strings(names)
	return levels, names, nil
}
