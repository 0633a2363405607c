package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a scenario plan from a YAML file and checks it for obvious
// authoring mistakes before the build step sees it.
func Load(path string) (Plan, error) {
	var p Plan
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("parse %s: %w", path, err)
	}
	for name, windows := range p.Characters {
		for _, w := range windows {
			if len(w.Skills) == 0 {
				return Plan{}, fmt.Errorf("%s: window at %v names no skills", name, w.Start)
			}
		}
	}
	return p, nil
}
