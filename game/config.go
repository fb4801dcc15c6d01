package game

import (
	"fmt"

	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/ecs/system"
	"github.com/milk9111/arena/prefabs"
)

// CombatFile is the prefab file holding combat tuning.
const CombatFile = "combat.yaml"

func LoadCombatConfig() (system.CombatConfig, error) {
	spec, err := prefabs.LoadCombatSpec()
	if err != nil {
		return system.CombatConfig{}, err
	}
	return CombatConfigFromSpec(spec)
}

// CombatConfigFromSpec converts the YAML tuning into a CombatConfig. Zero
// values fall back to the defaults.
func CombatConfigFromSpec(spec prefabs.CombatSpec) (system.CombatConfig, error) {
	cfg := system.DefaultCombatConfig()
	if spec.ProjectileSpeed < 0 {
		return cfg, fmt.Errorf("combat: projectile_speed must not be negative, got %v", spec.ProjectileSpeed)
	}
	if spec.ProjectileSpeed > 0 {
		cfg.Speed = spec.ProjectileSpeed
	}

	switch mode := component.PiercingMode(spec.Piercing); mode {
	case "":
	case component.PierceOnce, component.PierceIgnore:
		cfg.Piercing = mode
	default:
		return cfg, fmt.Errorf("combat: unknown piercing mode %q", spec.Piercing)
	}
	return cfg, nil
}
