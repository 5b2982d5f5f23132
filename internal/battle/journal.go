package battle

import (
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/game/grid"
)

// Record is one journaled action.
type Record struct {
	Seq        int
	Turn       int
	Kind       combat.ActionKind
	Army       int
	From       grid.Position
	TargetArmy int
	To         grid.Position
	HPChange   int64 // Target hp after minus before
}

func (b *Battle) record(r Record) {
	r.Seq = len(b.journal)
	r.Turn = b.turn
	b.journal = append(b.journal, r)
}

// Journal returns a copy of the action journal in execution order.
func (b *Battle) Journal() []Record {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Record, len(b.journal))
	copy(out, b.journal)
	return out
}
