package testutil

import (
	"testing"
	"time"

	"github.com/udisondev/skirmish/internal/battle"
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/grid"
)

// PlayedBattle runs the first built-in scenario to completion and returns
// the battle together with the scenario name.
func PlayedBattle(tb testing.TB) (*battle.Battle, string) {
	tb.Helper()

	catalog, err := data.LoadCatalog("")
	if err != nil {
		tb.Fatalf("loading catalog: %v", err)
	}
	scenarios, err := data.LoadScenarios("")
	if err != nil {
		tb.Fatalf("loading scenarios: %v", err)
	}
	if len(scenarios) == 0 {
		tb.Fatal("no built-in scenarios")
	}

	s := scenarios[0]
	b, err := catalog.Build(s, grid.DefaultLayout, 1)
	if err != nil {
		tb.Fatalf("building scenario %q: %v", s.Name, err)
	}
	if _, err := b.Run(ContextWithTimeout(tb, 10*time.Second), s.Script); err != nil {
		tb.Fatalf("running scenario %q: %v", s.Name, err)
	}
	return b, s.Name
}
