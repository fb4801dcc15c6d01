package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/prefabs"
)

type buildContext struct {
	PrefabPath string
	Position   cp.Vector
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry map[string]componentBuildFn

// The registry is filled in init because addPlayer builds the orb through
// BuildEntityAt, which reads the registry.
func init() {
	componentRegistry = map[string]componentBuildFn{
		"player":        addPlayer,
		"appearance":    addAppearance,
		"collider":      addCollider,
		"direction":     addDirection,
		"health":        addHealth,
		"attacks":       addAttacks,
		"attack_script": addAttackScript,
		"collectible":   addCollectible,
	}
}

// player runs before appearance so that the orb is created before the
// owning entity's own components.
var componentBuildOrder = []string{
	"player",
	"appearance",
	"collider",
	"direction",
	"health",
	"attacks",
	"attack_script",
	"collectible",
}

// BuildEntity creates an entity from a prefab YAML file, centered at the
// origin.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	return BuildEntityAt(w, prefabPath, cp.Vector{})
}

// BuildEntityAt creates an entity from a prefab YAML file with its
// appearance and collider centered on pos.
func BuildEntityAt(w *ecs.World, prefabPath string, pos cp.Vector) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	names := make([]string, 0, len(spec.Components))
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		sort.Strings(names)
		return 0, fmt.Errorf("build entity: %q: no builder for components %s", prefabPath, strings.Join(names, ", "))
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Position: pos}

	for _, name := range componentBuildOrder {
		raw, ok := spec.Components[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			destroyWithOrb(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

// destroyWithOrb removes a half-built entity and the orb it may already own.
func destroyWithOrb(w *ecs.World, e ecs.Entity) {
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok && p.Orb != 0 {
		ecs.DestroyEntity(w, ecs.Entity(p.Orb))
	}
	ecs.DestroyEntity(w, e)
}

func vec(v prefabs.VectorSpec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func addPlayer(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PlayerComponentSpec](raw)
	if err != nil {
		return err
	}

	player := &component.Player{}
	if spec.Orb != "" {
		orb, err := BuildEntityAt(w, spec.Orb, ctx.Position.Add(vec(spec.OrbOffs)))
		if err != nil {
			return fmt.Errorf("orb: %w", err)
		}
		if err := ecs.Add(w, orb, component.OrbTagComponent.Kind(), &component.OrbTag{}); err != nil {
			ecs.DestroyEntity(w, orb)
			return err
		}
		player.Orb = uint64(orb)
	}

	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), player); err != nil {
		return err
	}
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addAppearance(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AppearanceComponentSpec](raw)
	if err != nil {
		return err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("appearance needs a positive size")
	}
	return ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{
		Rect:  component.RectAt(ctx.Position, cp.Vector{X: spec.Width, Y: spec.Height}),
		Color: spec.Color,
	})
}

func addCollider(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ColliderComponentSpec](raw)
	if err != nil {
		return err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("collider needs a positive size")
	}
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Rect: component.RectAt(ctx.Position, cp.Vector{X: spec.Width, Y: spec.Height}),
		Tags: append([]string(nil), spec.Tags...),
	})
}

func addDirection(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.DirectionComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.DirectionComponent.Kind(), &component.Direction{Vector: cp.Vector{X: spec.X, Y: spec.Y}})
}

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.HealthComponentSpec](raw)
	if err != nil {
		return err
	}
	h := component.NewHealth(spec.Max)
	if spec.Current > 0 && spec.Current < h.Max {
		h.Points = spec.Current
	}
	return ecs.Add(w, e, component.HealthComponent.Kind(), h)
}

func addAttacks(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AttacksComponentSpec](raw)
	if err != nil {
		return err
	}

	list := make([]*component.Attack, 0, len(spec.Attacks))
	for i, as := range spec.Attacks {
		a, err := attackFromSpec(as)
		if err != nil {
			return fmt.Errorf("attack %d: %w", i, err)
		}
		list = append(list, a)
	}

	if err := ecs.Add(w, e, component.AttacksComponent.Kind(), &component.Attacks{List: list}); err != nil {
		return err
	}
	if ecs.Has(w, e, component.AttackRequestComponent.Kind()) {
		return nil
	}
	return ecs.Add(w, e, component.AttackRequestComponent.Kind(), &component.AttackRequest{})
}

func attackFromSpec(spec prefabs.AttackSpec) (*component.Attack, error) {
	pattern := component.AttackPattern(spec.Pattern)
	switch pattern {
	case "":
		pattern = component.PatternStraight
	case component.PatternStraight, component.PatternFan:
	default:
		return nil, fmt.Errorf("unknown pattern %q", spec.Pattern)
	}
	if spec.Amount < 0 {
		return nil, fmt.Errorf("amount must not be negative")
	}

	a := &component.Attack{
		Name:           spec.Name,
		Amount:         spec.Amount,
		CooldownFrames: spec.CooldownFrames,
		LifeFrames:     spec.LifeFrames,
		Pattern:        pattern,
		Spread:         spec.Spread,
		ParticleSize:   vec(spec.ParticleSize),
	}
	if spec.Piercing {
		a.SetPiercing()
	}
	return a, nil
}

func addAttackScript(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AttackScriptComponentSpec](raw)
	if err != nil {
		return err
	}
	if strings.TrimSpace(spec.Script) == "" {
		return fmt.Errorf("attack_script needs a script")
	}
	return ecs.Add(w, e, component.AttackScriptComponent.Kind(), &component.AttackScript{Path: spec.Script})
}

func addCollectible(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CollectibleComponentSpec](raw)
	if err != nil {
		return err
	}

	kind := component.CollectibleKind(spec.Kind)
	switch kind {
	case component.CollectibleHeal, component.CollectibleSkillUp, component.CollectiblePortal:
	default:
		return fmt.Errorf("unknown collectible kind %q", spec.Kind)
	}

	return ecs.Add(w, e, component.CollectibleComponent.Kind(), &component.Collectible{
		Kind:        kind,
		Recovery:    spec.Recovery,
		Destination: vec(spec.Destination),
	})
}
