package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is an arena layout: its pixel size and the prefabs placed in it.
type Level struct {
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Entities []Entity `json:"entities,omitempty"`
}

// Entity places one prefab with its center at X, Y. Props override fields
// of the built components.
type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Float returns a numeric prop. JSON numbers decode as float64.
func (e Entity) Float(key string) (float64, bool) {
	v, ok := e.Props[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return &lvl, nil
}
