package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml")
}

func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return BuildEntityAt(w, "player.yaml", cp.Vector{X: x, Y: y})
}

// MovePlayer shifts the player's collider and appearance by d and carries
// the orb along.
func MovePlayer(w *ecs.World, player ecs.Entity, d cp.Vector) error {
	collider, ok := ecs.Get(w, player, component.ColliderComponent.Kind())
	if !ok {
		return fmt.Errorf("move player: %v has no collider", player)
	}
	collider.Rect = component.Translate(collider.Rect, d)
	SyncPlayer(w, player, d)
	return nil
}

// SyncPlayer moves the player's appearance and orb by d. It is used after
// something else, such as a portal, has already moved the collider.
func SyncPlayer(w *ecs.World, player ecs.Entity, d cp.Vector) {
	if app, ok := ecs.Get(w, player, component.AppearanceComponent.Kind()); ok {
		app.Rect = component.Translate(app.Rect, d)
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok || p.Orb == 0 {
		return
	}
	if orb, ok := ecs.Get(w, ecs.Entity(p.Orb), component.AppearanceComponent.Kind()); ok {
		orb.Rect = component.Translate(orb.Rect, d)
	}
}

// FollowCollider moves the player's appearance and orb so the appearance is
// centered on the collider again. It handles EventPositionUpdated.
func FollowCollider(w *ecs.World, player ecs.Entity) {
	collider, ok := ecs.Get(w, player, component.ColliderComponent.Kind())
	if !ok {
		return
	}
	app, ok := ecs.Get(w, player, component.AppearanceComponent.Kind())
	if !ok {
		return
	}
	SyncPlayer(w, player, collider.Center().Sub(app.Center()))
}
