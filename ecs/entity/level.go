package entity

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/levels"
	"go.uber.org/zap"
)

// LoadLevel builds every prefab placed in lvl and returns the player entity.
// A level without a player is an error.
func LoadLevel(w *ecs.World, lvl *levels.Level) (ecs.Entity, error) {
	if w == nil || lvl == nil {
		return 0, fmt.Errorf("load level: nil world or level")
	}

	var player ecs.Entity
	for i, placed := range lvl.Entities {
		prefab := prefabName(placed.Type)
		e, err := BuildEntityAt(w, prefab, cp.Vector{X: float64(placed.X), Y: float64(placed.Y)})
		if err != nil {
			return 0, fmt.Errorf("load level: entity %d: %w", i, err)
		}
		applyProps(w, e, placed)

		if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			if player != 0 {
				return 0, fmt.Errorf("load level: entity %d: second player", i)
			}
			player = e
		}
		common.Logger().Debug("level: placed entity",
			zap.String("prefab", prefab),
			zap.Stringer("entity", e),
			zap.Int("x", placed.X),
			zap.Int("y", placed.Y),
		)
	}

	if player == 0 {
		return 0, fmt.Errorf("load level: no player placed")
	}
	return player, nil
}

func LoadLevelByName(w *ecs.World, name string) (ecs.Entity, error) {
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return 0, err
	}
	return LoadLevel(w, lvl)
}

func prefabName(t string) string {
	if strings.HasSuffix(t, ".yaml") {
		return t
	}
	return t + ".yaml"
}

func applyProps(w *ecs.World, e ecs.Entity, placed levels.Entity) {
	c, ok := ecs.Get(w, e, component.CollectibleComponent.Kind())
	if !ok {
		return
	}
	if v, ok := placed.Float("recovery"); ok {
		c.Recovery = int(v)
	}
	x, okX := placed.Float("dest_x")
	y, okY := placed.Float("dest_y")
	if okX && okY {
		c.Destination = cp.Vector{X: x, Y: y}
	}
}
