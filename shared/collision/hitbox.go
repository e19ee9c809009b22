// Package collision resolves axis-aligned hitboxes against a tile grid. Every
// query is a pure function of its arguments and the immutable grid.
package collision

// Hitbox is an axis-aligned rectangle in world units, anchored top-left.
type Hitbox struct {
	X, Y float64
	W, H float64
}

func (h Hitbox) Right() float64  { return h.X + h.W }
func (h Hitbox) Bottom() float64 { return h.Y + h.H }

// Valid reports whether both extents are positive.
func (h Hitbox) Valid() bool {
	return h.W > 0 && h.H > 0
}

// Overlaps is a strict AABB test; touching edges do not overlap.
func (h Hitbox) Overlaps(o Hitbox) bool {
	return h.X < o.Right() && o.X < h.Right() && h.Y < o.Bottom() && o.Y < h.Bottom()
}
