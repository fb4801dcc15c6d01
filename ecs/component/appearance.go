package component

import "github.com/jakecoffman/cp"

// Appearance is the drawn rect of an entity. Attacks launch from its center.
type Appearance struct {
	Rect  cp.BB
	Color string
}

func (a *Appearance) Center() cp.Vector {
	return RectCenter(a.Rect)
}

var AppearanceComponent = NewComponent[Appearance]("appearance")
