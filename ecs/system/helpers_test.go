package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/stretchr/testify/require"
)

var unit = cp.Vector{X: 10, Y: 10}

func addComponent[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T], v *T) {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, h.Kind(), v))
}

// newShooter creates an entity at pos facing dir with the given attacks and
// an empty attack request.
func newShooter(t *testing.T, w *ecs.World, pos, dir cp.Vector, attacks ...*component.Attack) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	addComponent(t, w, e, component.AppearanceComponent, &component.Appearance{Rect: component.RectAt(pos, unit)})
	addComponent(t, w, e, component.ColliderComponent, &component.Collider{Rect: component.RectAt(pos, unit)})
	addComponent(t, w, e, component.DirectionComponent, &component.Direction{Vector: dir})
	addComponent(t, w, e, component.AttacksComponent, &component.Attacks{List: attacks})
	addComponent(t, w, e, component.AttackRequestComponent, &component.AttackRequest{})
	return e
}

func newTarget(t *testing.T, w *ecs.World, pos cp.Vector, tags ...string) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	addComponent(t, w, e, component.ColliderComponent, &component.Collider{Rect: component.RectAt(pos, unit), Tags: tags})
	return e
}

// newPlayer creates the tracked player with a collider, health, a primary
// attack and an orb at orbPos.
func newPlayer(t *testing.T, w *ecs.World, pos, orbPos cp.Vector, health *component.Health, primary *component.Attack) ecs.Entity {
	t.Helper()
	orb := ecs.CreateEntity(w)
	addComponent(t, w, orb, component.AppearanceComponent, &component.Appearance{Rect: component.RectAt(orbPos, cp.Vector{X: 4, Y: 4})})
	addComponent(t, w, orb, component.OrbTagComponent, &component.OrbTag{})

	var attacks []*component.Attack
	if primary != nil {
		attacks = append(attacks, primary)
	}
	e := newShooter(t, w, pos, cp.Vector{X: 1}, attacks...)
	addComponent(t, w, e, component.PlayerComponent, &component.Player{Orb: uint64(orb)})
	addComponent(t, w, e, component.PlayerTagComponent, &component.PlayerTag{})
	if health != nil {
		addComponent(t, w, e, component.HealthComponent, health)
	}
	return e
}

func newCollectible(t *testing.T, w *ecs.World, pos cp.Vector, c component.Collectible, tags ...string) ecs.Entity {
	t.Helper()
	e := newTarget(t, w, pos, tags...)
	addComponent(t, w, e, component.CollectibleComponent, &c)
	return e
}

// recordEvents counts every event of the listed types posted on w's bus.
func recordEvents(w *ecs.World, types ...ecs.EventType) *[]ecs.Event {
	var got []ecs.Event
	for _, typ := range types {
		w.Events().Subscribe(typ, func(evt ecs.Event) { got = append(got, evt) })
	}
	return &got
}

func countEvents(events []ecs.Event, typ ecs.EventType) int {
	n := 0
	for _, evt := range events {
		if evt.Type == typ {
			n++
		}
	}
	return n
}
