package entity

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/levels"
	"github.com/milk9111/arena/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrefabs(t *testing.T) {
	tests := []struct {
		prefab string
		check  func(t *testing.T, w *ecs.World, e ecs.Entity)
	}{
		{
			prefab: "player.yaml",
			check: func(t *testing.T, w *ecs.World, e ecs.Entity) {
				assert.True(t, ecs.Has(w, e, component.PlayerTagComponent.Kind()))
				assert.True(t, ecs.Has(w, e, component.AttackRequestComponent.Kind()))
				h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
				require.True(t, ok)
				assert.Equal(t, 100, h.Max)

				p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
				require.True(t, ok)
				orb := ecs.Entity(p.Orb)
				assert.True(t, ecs.Has(w, orb, component.OrbTagComponent.Kind()))
				assert.False(t, ecs.Has(w, orb, component.ColliderComponent.Kind()))
			},
		},
		{
			prefab: "turret.yaml",
			check: func(t *testing.T, w *ecs.World, e ecs.Entity) {
				attacks, ok := ecs.Get(w, e, component.AttacksComponent.Kind())
				require.True(t, ok)
				require.Len(t, attacks.List, 1)
				assert.Equal(t, component.PatternFan, attacks.Primary().Pattern)
				assert.Equal(t, 3, attacks.Primary().Amount)
				s, ok := ecs.Get(w, e, component.AttackScriptComponent.Kind())
				require.True(t, ok)
				assert.Equal(t, "turret.tengo", s.Path)
			},
		},
		{
			prefab: "heal_potion.yaml",
			check: func(t *testing.T, w *ecs.World, e ecs.Entity) {
				c, ok := ecs.Get(w, e, component.CollectibleComponent.Kind())
				require.True(t, ok)
				assert.Equal(t, component.CollectibleHeal, c.Kind)
				assert.Equal(t, 30, c.Recovery)
			},
		},
		{
			prefab: "skill_up_pierce.yaml",
			check: func(t *testing.T, w *ecs.World, e ecs.Entity) {
				c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
				require.True(t, ok)
				assert.True(t, c.HasTag(component.TagPierce))
			},
		},
		{
			prefab: "portal.yaml",
			check: func(t *testing.T, w *ecs.World, e ecs.Entity) {
				c, ok := ecs.Get(w, e, component.CollectibleComponent.Kind())
				require.True(t, ok)
				assert.Equal(t, component.CollectiblePortal, c.Kind)
				assert.Equal(t, cp.Vector{X: 80, Y: 240}, c.Destination)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.prefab, func(t *testing.T) {
			w := ecs.NewWorld()
			pos := cp.Vector{X: 50, Y: 60}
			e, err := BuildEntityAt(w, tc.prefab, pos)
			require.NoError(t, err)

			app, ok := ecs.Get(w, e, component.AppearanceComponent.Kind())
			require.True(t, ok)
			assert.Equal(t, pos, app.Center())
			tc.check(t, w, e)
		})
	}
}

func TestBuildEntityErrors(t *testing.T) {
	w := ecs.NewWorld()
	_, err := BuildEntity(w, "does_not_exist.yaml")
	assert.Error(t, err)

	_, err = BuildEntity(nil, "player.yaml")
	assert.Error(t, err)

	assert.Empty(t, ecs.Entities(w))
}

func TestAttackFromSpecRejectsUnknownPattern(t *testing.T) {
	_, err := attackFromSpec(prefabsAttack("spiral"))
	assert.Error(t, err)

	a, err := attackFromSpec(prefabsAttack(""))
	require.NoError(t, err)
	assert.Equal(t, component.PatternStraight, a.Pattern)
}

func TestLoadArenaLevel(t *testing.T) {
	w := ecs.NewWorld()
	player, err := LoadLevelByName(w, "arena.json")
	require.NoError(t, err)

	first, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, player, first)

	var portals, heals int
	ecs.ForEach(w, component.CollectibleComponent.Kind(), func(_ ecs.Entity, c *component.Collectible) {
		switch c.Kind {
		case component.CollectiblePortal:
			portals++
			assert.Equal(t, cp.Vector{X: 80, Y: 60}, c.Destination, "level props override the prefab")
		case component.CollectibleHeal:
			heals++
		}
	})
	assert.Equal(t, 1, portals)
	assert.Equal(t, 1, heals)
}

func TestLoadLevelRequiresOnePlayer(t *testing.T) {
	tests := []struct {
		name     string
		entities []levels.Entity
	}{
		{"none", []levels.Entity{{Type: "heal_potion", X: 1, Y: 1}}},
		{"two", []levels.Entity{{Type: "player"}, {Type: "player.yaml", X: 100}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadLevel(ecs.NewWorld(), &levels.Level{Entities: tc.entities})
			assert.Error(t, err)
		})
	}
}

func TestMovePlayerCarriesOrb(t *testing.T) {
	w := ecs.NewWorld()
	player, err := NewPlayerAt(w, 10, 10)
	require.NoError(t, err)
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	orb, _ := ecs.Get(w, ecs.Entity(p.Orb), component.AppearanceComponent.Kind())
	before := orb.Center()

	require.NoError(t, MovePlayer(w, player, cp.Vector{X: 5, Y: -2}))

	collider, _ := ecs.Get(w, player, component.ColliderComponent.Kind())
	assert.Equal(t, cp.Vector{X: 15, Y: 8}, collider.Center())
	assert.Equal(t, before.Add(cp.Vector{X: 5, Y: -2}), orb.Center())

	collider.SetCenter(cp.Vector{X: 200, Y: 100})
	FollowCollider(w, player)
	app, _ := ecs.Get(w, player, component.AppearanceComponent.Kind())
	assert.Equal(t, cp.Vector{X: 200, Y: 100}, app.Center())
}

func prefabsAttack(pattern string) prefabs.AttackSpec {
	return prefabs.AttackSpec{Name: "a", Amount: 1, Pattern: pattern}
}

func TestComponentRegistryCoversBuildOrder(t *testing.T) {
	require.Len(t, componentRegistry, len(componentBuildOrder))
	for _, name := range componentBuildOrder {
		assert.Contains(t, componentRegistry, name)
	}
}

func TestBuildPlayerLinksOrbThroughRegistry(t *testing.T) {
	w := ecs.NewWorld()
	player, err := BuildEntityAt(w, "player.yaml", cp.Vector{X: 30, Y: 40})
	require.NoError(t, err)

	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	require.True(t, ok)
	require.NotZero(t, p.Orb)
	orb, ok := ecs.Get(w, ecs.Entity(p.Orb), component.AppearanceComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: 30, Y: 20}, orb.Center())
	assert.Len(t, ecs.Entities(w), 2)
}
