package data

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/skirmish/internal/battle"
	"github.com/udisondev/skirmish/internal/game/grid"
)

//go:embed scenarios.yaml
var defaultScenarios []byte

// Placement puts a catalog unit on the grid.
type Placement struct {
	Unit string        `yaml:"unit"`
	At   grid.Position `yaml:"at"`
}

// Scenario is a scripted battle.
type Scenario struct {
	Name   string        `yaml:"name"`
	ArmyA  []Placement   `yaml:"army_a"`
	ArmyB  []Placement   `yaml:"army_b"`
	Script []battle.Step `yaml:"script"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads scenarios from path. An empty path loads the built-in set.
func LoadScenarios(path string) ([]Scenario, error) {
	raw := defaultScenarios
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading scenarios %s: %w", path, err)
		}
	}

	var f scenarioFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing scenarios: %w", err)
	}
	return f.Scenarios, nil
}

// Build places the scenario armies from the catalog into a new battle.
func (c *Catalog) Build(s Scenario, layout grid.Layout, reserveLines int) (*battle.Battle, error) {
	b := battle.New(layout, reserveLines)
	for army, placements := range [2][]Placement{s.ArmyA, s.ArmyB} {
		for _, p := range placements {
			u, err := c.NewUnit(p.Unit, army)
			if err != nil {
				return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
			}
			if err := b.Place(army, p.At, u); err != nil {
				return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
			}
		}
	}
	return b, nil
}
