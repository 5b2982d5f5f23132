package combat

import (
	"github.com/udisondev/skirmish/internal/game/bonus"
	"github.com/udisondev/skirmish/internal/game/effect"
	"github.com/udisondev/skirmish/internal/model"
)

// Tick advances u by one unit of time.
//
// Every effect ticks once in insertion order; expired ones are unwound and
// returned. The active bonus OnTick fires exactly once regardless of expiries,
// then effective stats are recomputed.
func Tick(u *model.Unit) []effect.Effect {
	expired := u.AdvanceEffects()
	bonus.OnTick(u)
	u.Recompute()
	return expired
}
