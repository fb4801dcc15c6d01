package component

import (
	"slices"

	"github.com/jakecoffman/cp"
)

// Tags read by skill-up collectibles from their own collider.
const (
	TagAddProjectile = "add_projectile"
	TagPierce        = "pierce"
	TagPower         = "power"
)

// Collider is the axis-aligned rect used for overlap tests. Rects that only
// share an edge count as overlapping.
type Collider struct {
	Rect cp.BB
	Tags []string
}

// Center returns the collider's center point.
func (c *Collider) Center() cp.Vector {
	return RectCenter(c.Rect)
}

// SetCenter moves the collider so its center is at p, keeping its size.
func (c *Collider) SetCenter(p cp.Vector) {
	c.Rect = RectAt(p, RectSize(c.Rect))
}

func (c *Collider) HasTag(tag string) bool {
	return c != nil && slices.Contains(c.Tags, tag)
}

// Overlaps reports whether r intersects the collider.
func (c *Collider) Overlaps(r cp.BB) bool {
	return c != nil && c.Rect.Intersects(r)
}

var ColliderComponent = NewComponent[Collider]("collider")
