package db

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/skirmish/internal/battle"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/game/grid"
)

// BattleSummary is the stored outcome of a finished battle.
type BattleSummary struct {
	ID        uuid.UUID
	Scenario  string
	Result    battle.Result
	Turns     int
	Digest    []byte
	CreatedAt time.Time
}

// JournalRepository stores battle outcomes and their action journals.
type JournalRepository struct {
	pool *pgxpool.Pool
}

// NewJournalRepository creates a repository on pool.
func NewJournalRepository(pool *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{pool: pool}
}

// SaveBattle stores the summary and every journal record in a single transaction.
func (r *JournalRepository) SaveBattle(ctx context.Context, s BattleSummary, records []battle.Record) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for battle %s: %w", s.ID, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "battle", s.ID, "error", err)
		}
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO battles (id, scenario, result, turns, digest)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.Scenario, int16(s.Result), int32(s.Turns), s.Digest,
	)
	if err != nil {
		return fmt.Errorf("inserting battle %s: %w", s.ID, err)
	}

	if len(records) > 0 {
		rows := make([][]any, 0, len(records))
		for _, rec := range records {
			rows = append(rows, []any{
				s.ID, int32(rec.Seq), int32(rec.Turn), int16(rec.Kind), int16(rec.Army),
				int16(rec.From.Column), int16(rec.From.Line),
				int16(rec.TargetArmy), int16(rec.To.Column), int16(rec.To.Line),
				rec.HPChange,
			})
		}

		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"battle_actions"},
			[]string{"battle_id", "seq", "turn", "kind", "army", "from_column", "from_line",
				"target_army", "to_column", "to_line", "hp_change"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("inserting actions for battle %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction for battle %s: %w", s.ID, err)
	}

	slog.Debug("battle journal saved",
		"battle", s.ID,
		"scenario", s.Scenario,
		"actions", len(records))

	return nil
}

// GetBattle returns the stored summary.
// Returns nil, nil if the battle does not exist.
func (r *JournalRepository) GetBattle(ctx context.Context, id uuid.UUID) (*BattleSummary, error) {
	var (
		s      BattleSummary
		result int16
		turns  int32
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, scenario, result, turns, digest, created_at
		 FROM battles WHERE id = $1`, id,
	).Scan(&s.ID, &s.Scenario, &result, &turns, &s.Digest, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying battle %s: %w", id, err)
	}
	s.Result = battle.Result(result)
	s.Turns = int(turns)
	return &s, nil
}

// ListActions returns the journal of a battle in execution order.
func (r *JournalRepository) ListActions(ctx context.Context, id uuid.UUID) ([]battle.Record, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT seq, turn, kind, army, from_column, from_line, target_army, to_column, to_line, hp_change
		 FROM battle_actions WHERE battle_id = $1 ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("querying actions for battle %s: %w", id, err)
	}
	defer rows.Close()

	var result []battle.Record
	for rows.Next() {
		var (
			seq, turn                     int32
			kind, army, fromCol, fromLine int16
			targetArmy, toCol, toLine     int16
			hpChange                      int64
		)
		if err := rows.Scan(&seq, &turn, &kind, &army, &fromCol, &fromLine,
			&targetArmy, &toCol, &toLine, &hpChange); err != nil {
			return nil, fmt.Errorf("scanning action row: %w", err)
		}
		result = append(result, battle.Record{
			Seq:        int(seq),
			Turn:       int(turn),
			Kind:       combat.ActionKind(kind),
			Army:       int(army),
			From:       grid.Position{Column: int(fromCol), Line: int(fromLine)},
			TargetArmy: int(targetArmy),
			To:         grid.Position{Column: int(toCol), Line: int(toLine)},
			HPChange:   hpChange,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating action rows: %w", err)
	}
	return result, nil
}

// VerifyDigest reports whether the stored digest of battle id equals digest.
// A missing battle never matches.
func (r *JournalRepository) VerifyDigest(ctx context.Context, id uuid.UUID, digest []byte) (bool, error) {
	s, err := r.GetBattle(ctx, id)
	if err != nil {
		return false, err
	}
	if s == nil {
		return false, nil
	}
	return bytes.Equal(s.Digest, digest), nil
}

// ListByScenario returns the most recent battles of a scenario, newest first.
func (r *JournalRepository) ListByScenario(ctx context.Context, scenario string, limit int) ([]BattleSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, scenario, result, turns, digest, created_at
		 FROM battles WHERE scenario = $1 ORDER BY created_at DESC, id LIMIT $2`,
		scenario, limit)
	if err != nil {
		return nil, fmt.Errorf("querying battles of %q: %w", scenario, err)
	}
	defer rows.Close()

	var result []BattleSummary
	for rows.Next() {
		var (
			s     BattleSummary
			res   int16
			turns int32
		)
		if err := rows.Scan(&s.ID, &s.Scenario, &res, &turns, &s.Digest, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning battle row: %w", err)
		}
		s.Result = battle.Result(res)
		s.Turns = int(turns)
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating battle rows: %w", err)
	}
	return result, nil
}
