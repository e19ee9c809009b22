// Package assets embeds the bundled levels.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/doomerang-tiles/shared/leveldata"
)

// LevelsDir is the directory inside FS that holds the level files.
const LevelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS exposes the embedded files for tools that read them directly.
func FS() fs.FS {
	return assetFS
}

type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader reads the embedded levels.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, dir: LevelsDir}
}

// NewDirLevelLoader reads levels from dir within fsys, for level files kept
// outside the binary.
func NewDirLevelLoader(fsys fs.FS, dir string) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: dir}
}

// LoadLevels returns every level keyed by name plus the names in order.
func (l *LevelLoader) LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAllLevels(l.fsys, l.dir)
}

func (l *LevelLoader) MustLoadLevels() (map[string]*leveldata.Level, []string) {
	levels, names, err := l.LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return levels, names
}
