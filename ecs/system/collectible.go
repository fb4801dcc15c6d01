package system

import (
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"go.uber.org/zap"
)

// PowerUpAmount is the volley size a "power" skill-up adds.
const PowerUpAmount = 15

// Reaction is what a collectible does when another entity touches it.
// Reactions only act when other is the tracked player.
type Reaction interface {
	HandleCollision(w *ecs.World, self, other ecs.Entity)
}

// Reactions maps each collectible kind to its reaction.
var Reactions = map[component.CollectibleKind]Reaction{
	component.CollectibleHeal:    HealReaction{},
	component.CollectibleSkillUp: SkillUpReaction{},
	component.CollectiblePortal:  PortalReaction{},
}

// React runs the reaction registered for self's collectible kind. Unknown
// kinds and entities that are not collectibles are ignored.
func React(w *ecs.World, self, other ecs.Entity) {
	c, ok := ecs.Get(w, self, component.CollectibleComponent.Kind())
	if !ok {
		return
	}
	if ecs.Has(w, self, component.CollectedComponent.Kind()) {
		return
	}
	r, ok := Reactions[c.Kind]
	if !ok {
		common.Logger().Debug("collectible: unknown kind", zap.Stringer("entity", self), zap.String("kind", string(c.Kind)))
		return
	}
	r.HandleCollision(w, self, other)
}

func isPlayer(w *ecs.World, e ecs.Entity) bool {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	return ok && player == e
}

// removeCollectible asks the removal system to destroy self.
func removeCollectible(w *ecs.World, self ecs.Entity) {
	_ = ecs.Add(w, self, component.CollectedComponent.Kind(), &component.Collected{})
	w.Events().Post(ecs.Event{Type: ecs.EventEntityRemoved, Entity: self})
}

// HealReaction restores the player's health by the collectible's Recovery.
type HealReaction struct{}

func (HealReaction) HandleCollision(w *ecs.World, self, other ecs.Entity) {
	if !isPlayer(w, other) {
		return
	}
	c, ok := ecs.Get(w, self, component.CollectibleComponent.Kind())
	if !ok {
		return
	}
	health, ok := ecs.Get(w, other, component.HealthComponent.Kind())
	if !ok {
		common.Logger().Debug("collectible: player has no health record", zap.Stringer("player", other))
		return
	}

	health.Heal(c.Recovery)
	w.Events().Post(ecs.Event{Type: ecs.EventPlayerHPChanged, Entity: other})
	removeCollectible(w, self)
}

// SkillUpReaction upgrades the player's primary attack according to the
// first matching tag on the collectible's collider.
type SkillUpReaction struct{}

func (SkillUpReaction) HandleCollision(w *ecs.World, self, other ecs.Entity) {
	if !isPlayer(w, other) {
		return
	}

	collider, _ := ecs.Get(w, self, component.ColliderComponent.Kind())
	var primary *component.Attack
	if attacks, ok := ecs.Get(w, other, component.AttacksComponent.Kind()); ok {
		primary = attacks.Primary()
	}

	switch {
	case primary == nil:
		common.Logger().Debug("collectible: player has no primary attack", zap.Stringer("player", other))
	case collider.HasTag(component.TagAddProjectile):
		primary.AddAmount(1)
	case collider.HasTag(component.TagPierce):
		primary.SetPiercing()
	case collider.HasTag(component.TagPower):
		primary.AddAmount(PowerUpAmount)
	}

	removeCollectible(w, self)
}

// PortalReaction moves the colliding player's collider to the portal's
// destination. Portals stay in the level.
type PortalReaction struct{}

func (PortalReaction) HandleCollision(w *ecs.World, self, other ecs.Entity) {
	if !isPlayer(w, other) {
		return
	}
	c, ok := ecs.Get(w, self, component.CollectibleComponent.Kind())
	if !ok {
		return
	}
	collider, ok := ecs.Get(w, other, component.ColliderComponent.Kind())
	if !ok {
		return
	}

	collider.SetCenter(c.Destination)
	w.Events().Post(ecs.Event{Type: ecs.EventPositionUpdated, Entity: other, Position: collider.Center()})
}
