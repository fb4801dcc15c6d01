package component

import "github.com/jakecoffman/cp"

// Direction is the facing vector that attack velocities are scaled from.
type Direction struct {
	cp.Vector
}

var DirectionComponent = NewComponent[Direction]("direction")
