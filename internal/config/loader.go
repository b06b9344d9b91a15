package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadScenario reads <dir>/scenarios/<id>.yaml and applies defaults for
// omitted timing and radius fields.
func LoadScenario(dir, id string) (*ScenarioConfig, error) {
	var sc ScenarioConfig
	if err := loadYAML(filepath.Join(dir, "scenarios", id+".yaml"), &sc); err != nil {
		return nil, err
	}
	if sc.ID == "" {
		sc.ID = id
	}
	if sc.World.Width <= 0 || sc.World.Height <= 0 {
		return nil, fmt.Errorf("scenario %s: world bounds must be positive", id)
	}
	if sc.World.Dt <= 0 {
		sc.World.Dt = 0.05
	}
	if sc.World.Steps <= 0 {
		sc.World.Steps = 1000
	}
	if sc.World.ArriveRadius <= 0 {
		sc.World.ArriveRadius = 1.0
	}
	if sc.World.SeparationRadius <= 0 {
		sc.World.SeparationRadius = 2.0
	}
	if sc.World.SnapshotEvery <= 0 {
		sc.World.SnapshotEvery = 50
	}
	for i := range sc.Groups {
		g := &sc.Groups[i]
		if g.Count <= 0 {
			g.Count = 1
		}
		if g.MaxSpeed <= 0 {
			g.MaxSpeed = 4.0
		}
		if g.MaxForce <= 0 {
			g.MaxForce = 8.0
		}
		if g.Wander.Jitter <= 0 {
			g.Wander.Jitter = 0.4
		}
		if g.Wander.Strength <= 0 {
			g.Wander.Strength = 1.0
		}
	}
	return &sc, nil
}
