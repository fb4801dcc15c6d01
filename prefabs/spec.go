package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec loads and decodes a prefab YAML file.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// CombatSpec is the combat.yaml tuning file.
type CombatSpec struct {
	// ProjectileSpeed multiplies an entity's direction into particle velocity.
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	// Piercing is "once" or "ignore".
	Piercing string `yaml:"piercing"`
}

func LoadCombatSpec() (CombatSpec, error) {
	return LoadSpec[CombatSpec]("combat.yaml")
}
