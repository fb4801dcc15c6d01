package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab: a name and a map of component name to the
// component's YAML body.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-decodes a raw component body into T.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RectComponentSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type AppearanceComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

type ColliderComponentSpec struct {
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Tags   []string `yaml:"tags"`
}

type DirectionComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type HealthComponentSpec struct {
	Max     int `yaml:"max"`
	Current int `yaml:"current"`
}

type AttackSpec struct {
	Name           string     `yaml:"name"`
	Amount         int        `yaml:"amount"`
	Piercing       bool       `yaml:"piercing"`
	CooldownFrames int        `yaml:"cooldown_frames"`
	LifeFrames     int        `yaml:"life_frames"`
	Pattern        string     `yaml:"pattern"`
	Spread         float64    `yaml:"spread"`
	ParticleSize   VectorSpec `yaml:"particle_size"`
}

type AttacksComponentSpec struct {
	Attacks []AttackSpec `yaml:"attacks"`
}

type CollectibleComponentSpec struct {
	Kind        string     `yaml:"kind"`
	Recovery    int        `yaml:"recovery"`
	Destination VectorSpec `yaml:"destination"`
}

type AttackScriptComponentSpec struct {
	Script string `yaml:"script"`
}

type PlayerComponentSpec struct {
	// Orb is the prefab built as the player's orb sub-entity.
	Orb     string     `yaml:"orb"`
	OrbOffs VectorSpec `yaml:"orb_offset"`
}
