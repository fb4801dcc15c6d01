package game

import (
	"fmt"

	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/ecs/entity"
	"github.com/milk9111/arena/ecs/system"
	"github.com/milk9111/arena/prefabs"
	"go.uber.org/zap"
)

// DefaultLevel is the level loaded when none is named.
const DefaultLevel = "arena.json"

// Session is one running arena: the world, its systems, and the scheduler
// bound to the world's tick event.
type Session struct {
	World     *ecs.World
	Player    ecs.Entity
	Scheduler *ecs.Scheduler
	Combat    *system.CombatSystem
	Scripts   *system.AttackScriptSystem
	Removal   *system.RemovalSystem

	subs []*ecs.Subscription
}

// New loads levelName into a fresh world and wires the per-tick systems.
func New(levelName string) (*Session, error) {
	if levelName == "" {
		levelName = DefaultLevel
	}

	cfg, err := LoadCombatConfig()
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	player, err := entity.LoadLevelByName(w, levelName)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		World:   w,
		Player:  player,
		Combat:  system.NewCombatSystem(cfg),
		Scripts: system.NewAttackScriptSystem(),
		Removal: system.NewRemovalSystem(w),
	}
	s.Scheduler = ecs.NewScheduler(
		s.Scripts,
		s.Combat,
		system.NewPickupCollectSystem(),
	)
	s.subs = append(s.subs,
		s.Scheduler.Bind(w),
		w.Events().Subscribe(ecs.EventPositionUpdated, func(evt ecs.Event) {
			if evt.Entity == s.Player {
				entity.FollowCollider(w, s.Player)
			}
		}),
	)

	common.Logger().Info("session started",
		zap.String("level", levelName),
		zap.Stringer("player", player),
		zap.Int("entities", len(ecs.Entities(w))),
	)
	return s, nil
}

// Step runs one tick.
func (s *Session) Step() {
	ecs.Tick(s.World)
}

// RequestAttack asks the player to use attack i on the next tick.
func (s *Session) RequestAttack(i int) {
	if req, ok := ecs.Get(s.World, s.Player, component.AttackRequestComponent.Kind()); ok {
		req.Request(i)
	}
}

// PlayerHealth returns the player's health record, if any.
func (s *Session) PlayerHealth() (*component.Health, bool) {
	return ecs.Get(s.World, s.Player, component.HealthComponent.Kind())
}

// Reload applies an edited prefab or script file to the running session.
func (s *Session) Reload(c prefabs.Change) {
	switch c.Kind {
	case prefabs.ScriptChanged:
		s.Scripts.Invalidate(c.Name())
		common.Logger().Info("reloaded script", zap.String("script", c.Name()))
	case prefabs.SpecChanged:
		if c.Name() != CombatFile {
			return
		}
		cfg, err := LoadCombatConfig()
		if err != nil {
			common.Logger().Warn("reload combat config", zap.Error(err))
			return
		}
		s.Combat.SetConfig(cfg)
		common.Logger().Info("reloaded combat config",
			zap.Float64("speed", cfg.Speed),
			zap.String("piercing", string(cfg.Piercing)),
		)
	}
}

// Close detaches the session's event handlers.
func (s *Session) Close() {
	for _, sub := range s.subs {
		sub.Cancel()
	}
	s.subs = nil
	s.Removal.Close()
}
