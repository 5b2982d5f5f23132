package battle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/skirmish/internal/game/grid"
)

// Op is a scripted step kind.
type Op string

const (
	OpAct  Op = "act"
	OpMove Op = "move"
	OpSkip Op = "skip"
	OpTick Op = "tick"
)

// Step is one scripted driver command.
type Step struct {
	Op         Op            `yaml:"op"`
	Army       int           `yaml:"army"`
	From       grid.Position `yaml:"from"`
	TargetArmy int           `yaml:"target_army"`
	To         grid.Position `yaml:"to"`
}

// Run executes steps in order until the script ends, the battle is decided
// or ctx is done. Illegal actions are logged and skipped; any other error aborts.
func (b *Battle) Run(ctx context.Context, steps []Step) (Result, error) {
	b.Start()

	for i, s := range steps {
		if err := ctx.Err(); err != nil {
			return ResultContinue, err
		}
		if r := b.Result(); r != ResultContinue {
			return r, nil
		}

		var err error
		switch s.Op {
		case OpAct:
			_, err = b.Act(s.Army, s.From, s.TargetArmy, s.To)
		case OpMove:
			err = b.Move(s.Army, s.From, s.To)
		case OpSkip:
			err = b.Skip(s.Army, s.From)
		case OpTick:
			_, err = b.Tick()
		default:
			err = fmt.Errorf("unknown op %q", s.Op)
		}

		switch {
		case err == nil:
		case errors.Is(err, ErrIllegalAction):
			slog.Warn("skipping illegal step", "battle", b.id, "step", i, "op", s.Op, "error", err)
		default:
			return ResultContinue, fmt.Errorf("step %d (%s): %w", i, s.Op, err)
		}
	}
	return b.Result(), nil
}
