package system

import (
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

// PickupCollectSystem finds collectibles overlapping the player's collider
// and runs their reactions.
type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	playerCollider, ok := ecs.Get(w, player, component.ColliderComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.CollectibleComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, _ *component.Collectible, c *component.Collider) {
		if e == player || !c.Overlaps(playerCollider.Rect) {
			return
		}
		React(w, e, player)
	})
}
