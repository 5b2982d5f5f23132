package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/battle"
	"github.com/udisondev/skirmish/internal/config"
	"github.com/udisondev/skirmish/internal/data"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in))
		})
	}
}

func TestSimulateWithoutJournal(t *testing.T) {
	catalog, err := data.LoadCatalog("")
	require.NoError(t, err)
	scenarios, err := data.LoadScenarios("")
	require.NoError(t, err)

	cfg := config.DefaultSimulator()
	for _, s := range scenarios {
		require.NoError(t, simulate(t.Context(), cfg, catalog, nil, s), s.Name)
	}
}

func TestStrength(t *testing.T) {
	catalog, err := data.LoadCatalog("")
	require.NoError(t, err)
	scenarios, err := data.LoadScenarios("")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	cfg := config.DefaultSimulator()
	b, err := catalog.Build(scenarios[0], cfg.Layout(), cfg.ReserveLines)
	require.NoError(t, err)

	assert.Positive(t, strength(b, battle.ArmyA))
	assert.Positive(t, strength(b, battle.ArmyB))
	assert.Zero(t, strength(b, 7), "unknown army")

	units, err := b.Units(battle.ArmyB)
	require.NoError(t, err)
	for _, u := range units {
		u.Kill()
	}
	assert.Zero(t, strength(b, battle.ArmyB))
}
