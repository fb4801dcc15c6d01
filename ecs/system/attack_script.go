package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/prefabs"
	"go.uber.org/zap"
)

// ScriptLoader returns the source of a script by path.
type ScriptLoader func(path string) ([]byte, error)

// AttackScriptSystem lets tengo scripts choose which attack an entity
// requests each tick. A script sees the globals tick, entity and ready (one
// bool per attack) and sets attack to an index, or to -1 to hold fire.
type AttackScriptSystem struct {
	load     ScriptLoader
	compiled map[string]*tengo.Compiled
	failed   map[string]error
}

func NewAttackScriptSystem() *AttackScriptSystem {
	return NewAttackScriptSystemWithLoader(prefabs.LoadScript)
}

func NewAttackScriptSystemWithLoader(load ScriptLoader) *AttackScriptSystem {
	return &AttackScriptSystem{
		load:     load,
		compiled: map[string]*tengo.Compiled{},
		failed:   map[string]error{},
	}
}

// Invalidate drops the cached compilation of path so the next tick reloads it.
func (s *AttackScriptSystem) Invalidate(path string) {
	delete(s.compiled, path)
	delete(s.failed, path)
}

func (s *AttackScriptSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.AttackScriptComponent.Kind(), component.AttackRequestComponent.Kind(), func(e ecs.Entity, sc *component.AttackScript, req *component.AttackRequest) {
		compiled, err := s.script(sc.Path)
		if err != nil {
			return
		}

		ready := []any{}
		if attacks, ok := ecs.Get(w, e, component.AttacksComponent.Kind()); ok {
			for _, a := range attacks.List {
				ready = append(ready, a.Ready())
			}
		}

		run := compiled.Clone()
		if err := setScriptGlobals(run, int(w.Frame()), int(e), ready); err != nil {
			common.Logger().Warn("attack script: set globals", zap.Stringer("entity", e), zap.Error(err))
			return
		}
		if err := run.Run(); err != nil {
			common.Logger().Warn("attack script: run", zap.Stringer("entity", e), zap.String("script", sc.Path), zap.Error(err))
			return
		}

		v := run.Get("attack")
		if v == nil || v.IsUndefined() {
			return
		}
		if idx := v.Int(); idx >= 0 {
			req.Request(idx)
		}
	})
}

func setScriptGlobals(c *tengo.Compiled, tick, entity int, ready []any) error {
	if err := c.Set("tick", tick); err != nil {
		return err
	}
	if err := c.Set("entity", entity); err != nil {
		return err
	}
	if err := c.Set("ready", ready); err != nil {
		return err
	}
	return c.Set("attack", -1)
}

// script compiles path once; a failed compile is logged once and not retried
// until Invalidate.
func (s *AttackScriptSystem) script(path string) (*tengo.Compiled, error) {
	if c, ok := s.compiled[path]; ok {
		return c, nil
	}
	if err, ok := s.failed[path]; ok {
		return nil, err
	}

	c, err := s.compile(path)
	if err != nil {
		s.failed[path] = err
		common.Logger().Warn("attack script: load", zap.String("script", path), zap.Error(err))
		return nil, err
	}
	s.compiled[path] = c
	return c, nil
}

func (s *AttackScriptSystem) compile(path string) (*tengo.Compiled, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty script path")
	}
	if s.load == nil {
		return nil, fmt.Errorf("no script loader")
	}
	src, err := s.load(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	_ = script.Add("entity", 0)
	_ = script.Add("ready", []any{})
	_ = script.Add("attack", -1)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	return script.Compile()
}
