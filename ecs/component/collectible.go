package component

import "github.com/jakecoffman/cp"

// CollectibleKind selects the reaction a collectible has when the player
// touches it.
type CollectibleKind string

const (
	CollectibleHeal    CollectibleKind = "heal"
	CollectibleSkillUp CollectibleKind = "skill_up"
	CollectiblePortal  CollectibleKind = "portal"
)

// Collectible is a pickup placed in the level. Recovery is used by heal
// potions, Destination by portals; skill-ups read their collider tags.
type Collectible struct {
	Kind        CollectibleKind
	Recovery    int
	Destination cp.Vector
}

var CollectibleComponent = NewComponent[Collectible]("collectible")

// Collected marks a collectible whose removal has been requested so it does
// not react twice before the removal system destroys it.
type Collected struct{}

var CollectedComponent = NewComponent[Collected]("collected")
