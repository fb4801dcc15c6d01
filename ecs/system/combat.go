package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"go.uber.org/zap"
)

// DefaultProjectileSpeed scales an entity's direction into particle velocity.
const DefaultProjectileSpeed = 3.0

// CombatConfig holds the tunables of CombatSystem.
type CombatConfig struct {
	Speed    float64
	Piercing component.PiercingMode
}

func DefaultCombatConfig() CombatConfig {
	return CombatConfig{Speed: DefaultProjectileSpeed, Piercing: component.PierceOnce}
}

// CombatSystem fires pending attacks, advances every attack's particles and
// expires particles that overlap a collider they do not own.
type CombatSystem struct {
	cfg CombatConfig
}

func NewCombatSystem(cfg CombatConfig) *CombatSystem {
	s := &CombatSystem{}
	s.SetConfig(cfg)
	return s
}

// SetConfig replaces the tunables; zero fields fall back to defaults.
func (s *CombatSystem) SetConfig(cfg CombatConfig) {
	def := DefaultCombatConfig()
	if cfg.Speed == 0 {
		cfg.Speed = def.Speed
	}
	switch cfg.Piercing {
	case component.PierceOnce, component.PierceIgnore:
	default:
		cfg.Piercing = def.Piercing
	}
	s.cfg = cfg
}

func (s *CombatSystem) Config() CombatConfig {
	return s.cfg
}

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.AttackRequestComponent.Kind(), func(e ecs.Entity, req *component.AttackRequest) {
		idx, ok := req.Pending()
		if !ok {
			return
		}
		s.executeAttack(w, e, idx)
		// a failed attempt still consumes the request
		req.Clear()
	})

	ecs.ForEach(w, component.AttacksComponent.Kind(), func(_ ecs.Entity, attacks *component.Attacks) {
		for _, a := range attacks.List {
			a.Advance()
		}
	})

	s.checkProjectileCollision(w)
}

// executeAttack fires attack idx of e if its cooldown allows and posts
// EventEntityAttacked when particles were spawned.
func (s *CombatSystem) executeAttack(w *ecs.World, e ecs.Entity, idx int) bool {
	log := common.Logger().With(zap.Stringer("entity", e), zap.Int("attack", idx))

	attacks, ok := ecs.Get(w, e, component.AttacksComponent.Kind())
	if !ok {
		log.Debug("combat: attack requested by entity without attacks")
		return false
	}
	attack := attacks.At(idx)
	if attack == nil {
		log.Debug("combat: attack index out of range", zap.Int("attacks", len(attacks.List)))
		return false
	}
	origin, ok := s.attackOrigin(w, e)
	if !ok {
		log.Debug("combat: no origin for attack")
		return false
	}
	dir, ok := ecs.Get(w, e, component.DirectionComponent.Kind())
	if !ok {
		log.Debug("combat: no direction for attack")
		return false
	}

	velocity := dir.Vector.Mult(s.cfg.Speed)
	if !attack.SpawnParticles(velocity, origin) {
		return false
	}
	w.Events().Post(ecs.Event{Type: ecs.EventEntityAttacked, Entity: e})
	return true
}

// attackOrigin is the orb's center for players and the entity's own
// appearance center otherwise.
func (s *CombatSystem) attackOrigin(w *ecs.World, e ecs.Entity) (cp.Vector, bool) {
	source := e
	if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		source = ecs.Entity(player.Orb)
	}
	app, ok := ecs.Get(w, source, component.AppearanceComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	return app.Center(), true
}

type colliderEntry struct {
	entity   ecs.Entity
	collider *component.Collider
}

// checkProjectileCollision tests every live particle against every collider
// except its owner's. Cost is particles x colliders.
func (s *CombatSystem) checkProjectileCollision(w *ecs.World) {
	var colliders []colliderEntry
	ecs.ForEach(w, component.ColliderComponent.Kind(), func(e ecs.Entity, c *component.Collider) {
		colliders = append(colliders, colliderEntry{entity: e, collider: c})
	})
	if len(colliders) == 0 {
		return
	}

	ecs.ForEach(w, component.AttacksComponent.Kind(), func(owner ecs.Entity, attacks *component.Attacks) {
		for _, attack := range attacks.List {
			if attack == nil {
				continue
			}
			for _, p := range attack.Particles {
				for _, target := range colliders {
					if !p.Alive() {
						break
					}
					if target.entity == owner {
						continue
					}
					if target.collider.Overlaps(p.Rect) {
						p.Strike(uint64(target.entity), s.cfg.Piercing)
					}
				}
			}
		}
	})
}
