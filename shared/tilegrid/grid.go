// Package tilegrid holds the immutable per-level lookup from tile coordinate
// to behavior. It has no dependencies on ebitengine, donburi, or resolv.
package tilegrid

// Behavior classifies a tile independently of its visual appearance.
type Behavior uint8

const (
	// Air is the zero value so unread cells of a truncated source stay open.
	Air Behavior = iota
	LethalOpen
	LethalFallThrough
	Solid

	// OutOfBounds is a query verdict only and is never stored in a Grid.
	OutOfBounds
)

// Behavior codes as they appear in level sources. Any other value is Air.
const (
	CodeLethalOpen        = 0
	CodeLethalFallThrough = 1
	CodeSolid             = 2
	CodeAir               = 3
)

var behaviorNames = map[Behavior]string{
	Air:               "air",
	LethalOpen:        "lethal_open",
	LethalFallThrough: "lethal_fall_through",
	Solid:             "solid",
	OutOfBounds:       "out_of_bounds",
}

func (b Behavior) String() string {
	if name, ok := behaviorNames[b]; ok {
		return name
	}
	return "unknown"
}

// IsLethal reports whether touching the tile kills.
func (b Behavior) IsLethal() bool {
	return b == LethalOpen || b == LethalFallThrough
}

// FromCode maps a source behavior code to a Behavior.
func FromCode(code int) Behavior {
	switch code {
	case CodeLethalOpen:
		return LethalOpen
	case CodeLethalFallThrough:
		return LethalFallThrough
	case CodeSolid:
		return Solid
	default:
		return Air
	}
}

// Code is the inverse of FromCode; Air encodes as CodeAir.
func (b Behavior) Code() int {
	switch b {
	case LethalOpen:
		return CodeLethalOpen
	case LethalFallThrough:
		return CodeLethalFallThrough
	case Solid:
		return CodeSolid
	default:
		return CodeAir
	}
}

// Grid is a row-major tile behavior map. A Grid is never mutated after
// construction, so it can be shared by every reader without locking.
type Grid struct {
	width     int
	height    int
	behaviors []Behavior
}

// New builds a grid from raw behavior codes. Cells past the end of codes are
// Air; codes past width*height are ignored.
func New(width, height int, codes []int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:     width,
		height:    height,
		behaviors: make([]Behavior, width*height),
	}
	for i := 0; i < len(codes) && i < len(g.behaviors); i++ {
		g.behaviors[i] = FromCode(codes[i])
	}
	return g
}

func (g *Grid) Width() int {
	if g == nil {
		return 0
	}
	return g.width
}

func (g *Grid) Height() int {
	if g == nil {
		return 0
	}
	return g.height
}

// PixelWidth is the grid width in world units.
func (g *Grid) PixelWidth(tileSize float64) float64 {
	return float64(g.Width()) * tileSize
}

// PixelHeight is the grid height in world units.
func (g *Grid) PixelHeight(tileSize float64) float64 {
	return float64(g.Height()) * tileSize
}

// BehaviorAt returns the behavior of a tile, or OutOfBounds for any
// coordinate the grid does not store. It never panics.
func (g *Grid) BehaviorAt(tx, ty int) Behavior {
	if g == nil || tx < 0 || ty < 0 || tx >= g.width || ty >= g.height {
		return OutOfBounds
	}
	idx := ty*g.width + tx
	if idx < 0 || idx >= len(g.behaviors) {
		return OutOfBounds
	}
	return g.behaviors[idx]
}

// IsSolid is false for OutOfBounds.
func (g *Grid) IsSolid(tx, ty int) bool {
	return g.BehaviorAt(tx, ty) == Solid
}

// Codes returns a copy of the grid as source behavior codes.
func (g *Grid) Codes() []int {
	codes := make([]int, len(g.behaviors))
	for i, b := range g.behaviors {
		codes[i] = b.Code()
	}
	return codes
}

// Count returns how many tiles carry the given behavior.
func (g *Grid) Count(b Behavior) int {
	n := 0
	for _, v := range g.behaviors {
		if v == b {
			n++
		}
	}
	return n
}
