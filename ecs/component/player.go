package component

// Player links a player entity to its orb, the sub-entity whose appearance is
// the origin of the player's attacks.
type Player struct {
	Orb uint64
}

var PlayerComponent = NewComponent[Player]("player")

// PlayerTag marks the single player that collectibles react to.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]("player_tag")

// OrbTag marks orb sub-entities. Orbs have no collider of their own.
type OrbTag struct{}

var OrbTagComponent = NewComponent[OrbTag]("orb_tag")
