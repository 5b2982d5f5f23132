package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/skirmish/internal/battle"
	"github.com/udisondev/skirmish/internal/config"
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/db"
	"github.com/udisondev/skirmish/internal/game/rating"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadSimulator(config.Path())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("battlesim starting",
		"log_level", cfg.LogLevel,
		"troops_per_line", cfg.TroopsPerLine,
		"reserve_lines", cfg.ReserveLines,
		"workers", cfg.Workers)

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	catalog, err := data.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	scenarios, err := data.LoadScenarios(cfg.ScenarioPath)
	if err != nil {
		return fmt.Errorf("loading scenarios: %w", err)
	}

	var journal *db.JournalRepository
	if cfg.JournalEnabled {
		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		journal = db.NewJournalRepository(database.Pool())
		slog.Info("battle journal enabled")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for _, s := range scenarios {
		g.Go(func() error {
			return simulate(gctx, cfg, catalog, journal, s)
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Info("simulation interrupted")
			return nil
		}
		return err
	}

	slog.Info("all battles finished", "count", len(scenarios))
	return nil
}

func simulate(ctx context.Context, cfg config.Simulator, catalog *data.Catalog, journal *db.JournalRepository, s data.Scenario) error {
	b, err := catalog.Build(s, cfg.Layout(), cfg.ReserveLines)
	if err != nil {
		return fmt.Errorf("building %q: %w", s.Name, err)
	}

	slog.Info("battle prepared",
		"scenario", s.Name,
		"battle", b.ID(),
		"strength_a", strength(b, battle.ArmyA),
		"strength_b", strength(b, battle.ArmyB))

	result, err := b.Run(ctx, s.Script)
	if err != nil {
		return fmt.Errorf("running %q: %w", s.Name, err)
	}

	digest := b.Digest()
	slog.Info("battle finished",
		"scenario", s.Name,
		"battle", b.ID(),
		"result", result,
		"turns", b.Turn(),
		"actions", len(b.Journal()),
		"digest", hex.EncodeToString(digest[:]))

	if journal == nil {
		return nil
	}

	summary := db.BattleSummary{
		ID:       b.ID(),
		Scenario: s.Name,
		Result:   result,
		Turns:    b.Turn(),
		Digest:   digest[:],
	}
	if err := journal.SaveBattle(ctx, summary, b.Journal()); err != nil {
		return fmt.Errorf("saving %q: %w", s.Name, err)
	}
	return nil
}

// strength sums the power scores of the living units of an army.
func strength(b *battle.Battle, army int) float32 {
	units, err := b.Units(army)
	if err != nil {
		return 0
	}
	var total float32
	for _, u := range units {
		if !u.IsDead() {
			total += rating.Score(u)
		}
	}
	return total
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
