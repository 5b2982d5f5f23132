package effect

import (
	"log/slog"

	"github.com/udisondev/skirmish/internal/game/stats"
)

// List is the ordered set of effects active on one unit.
//
// The running delta is folded on Add and unwound on expiry, so Delta is
// always the sum of the contributions of the effects currently held.
// List is not safe for concurrent use; a battle is owned by one caller.
type List struct {
	effects []Effect
	delta   stats.Delta
}

// NewList creates a list holding effects in the given order.
// Duplicate kinds after the first are dropped.
func NewList(effects ...Effect) List {
	var l List
	for _, e := range effects {
		l.Add(e)
	}
	return l
}

// Add appends e and folds its contribution.
// Returns false without change if an effect of the same kind is active.
func (l *List) Add(e Effect) bool {
	if l.Has(e.Kind) {
		return false
	}
	l.effects = append(l.effects, e)
	l.delta = l.delta.Add(e.Delta())
	slog.Debug("effect added", "type", e.Type, "kind", e.Kind, "magnitude", e.Magnitude, "remaining", e.Remaining)
	return true
}

// Has reports whether an effect of kind is active.
func (l *List) Has(kind Kind) bool {
	for _, e := range l.effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Remove drops the effect of kind and unwinds it.
func (l *List) Remove(kind Kind) (Effect, bool) {
	var removed Effect
	found := false
	n := 0
	for _, e := range l.effects {
		if !found && e.Kind == kind {
			removed = e
			found = true
			l.delta = l.delta.Sub(e.Delta())
			continue
		}
		l.effects[n] = e
		n++
	}
	l.effects = l.effects[:n]
	return removed, found
}

// Advance moves every effect forward by one tick in insertion order.
//
// Returns the summed hp change produced this tick and the effects that
// expired, whose contributions have already been unwound. Survivors keep
// their relative order.
func (l *List) Advance() (hpChange int64, expired []Effect) {
	kept := l.effects[:0]
	for _, e := range l.effects {
		e.Remaining--
		hpChange += e.HPPerTick()
		if e.IsExpired() {
			l.delta = l.delta.Sub(e.Delta())
			expired = append(expired, e)
			slog.Debug("effect expired", "type", e.Type, "kind", e.Kind)
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so expired values are not retained by the backing array.
	for i := len(kept); i < len(l.effects); i++ {
		l.effects[i] = Effect{}
	}
	l.effects = kept
	return hpChange, expired
}

// Delta returns the summed contribution of all active effects.
func (l *List) Delta() stats.Delta {
	return l.delta
}

// Len returns the number of active effects.
func (l *List) Len() int {
	return len(l.effects)
}

// All returns a copy of the active effects in insertion order.
func (l *List) All() []Effect {
	out := make([]Effect, len(l.effects))
	copy(out, l.effects)
	return out
}

// Clone returns an independent copy of the list.
func (l *List) Clone() List {
	return List{effects: l.All(), delta: l.delta}
}
