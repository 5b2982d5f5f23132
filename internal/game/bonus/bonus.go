package bonus

import (
	"fmt"

	"github.com/udisondev/skirmish/internal/game/grid"
	"github.com/udisondev/skirmish/internal/game/stats"
	"github.com/udisondev/skirmish/internal/model"
)

// AttackContext is what attack hooks see. Attacker and Defender may be the
// same unit on self-targeting.
type AttackContext struct {
	Layout      grid.Layout
	Attacker    *model.Unit
	Defender    *model.Unit
	AttackerPos grid.Position
	DefenderPos grid.Position
}

// AttackerZone returns the attacker's zone.
func (c AttackContext) AttackerZone() grid.Zone { return c.Layout.Zone(c.AttackerPos) }

// DefenderZone returns the defender's zone.
func (c AttackContext) DefenderZone() grid.Zone { return c.Layout.Zone(c.DefenderPos) }

// Time is the campaign clock passed to OnHour.
type Time struct {
	Day  int
	Hour int
}

// Hooks is the optional behaviour of one bonus. A nil hook is identity for
// power hooks and a no-op returning false for event hooks.
type Hooks struct {
	OnAttacking   func(ctx AttackContext, p stats.Power) stats.Power
	OnAttacked    func(ctx AttackContext, p stats.Power) stats.Power
	OnKill        func(killer, victim *model.Unit) bool
	OnTick        func(u *model.Unit) bool
	OnHour        func(u *model.Unit, t Time) bool
	OnBattleStart func(u *model.Unit) bool
	OnMoveSkip    func(u *model.Unit) bool

	// ReserveAttack lets the unit strike enemies from the reserve.
	ReserveAttack bool
}

func lookup(kind model.BonusKind) Hooks {
	h, ok := registry[kind]
	if !ok {
		panic(fmt.Sprintf("bonus: no hooks registered for %v", kind))
	}
	return h
}

// OnAttacking runs the attacker's hook.
func OnAttacking(ctx AttackContext, p stats.Power) stats.Power {
	if h := lookup(ctx.Attacker.Bonus()); h.OnAttacking != nil {
		return clampPower(h.OnAttacking(ctx, p))
	}
	return p
}

// OnAttacked runs the defender's hook.
func OnAttacked(ctx AttackContext, p stats.Power) stats.Power {
	if h := lookup(ctx.Defender.Bonus()); h.OnAttacked != nil {
		return clampPower(h.OnAttacked(ctx, p))
	}
	return p
}

// OnKill runs the killer's hook.
func OnKill(killer, victim *model.Unit) bool {
	if h := lookup(killer.Bonus()); h.OnKill != nil {
		return h.OnKill(killer, victim)
	}
	return false
}

// OnTick runs u's hook once per tick.
func OnTick(u *model.Unit) bool {
	if h := lookup(u.Bonus()); h.OnTick != nil {
		return h.OnTick(u)
	}
	return false
}

// OnHour runs u's hook when the campaign clock advances.
func OnHour(u *model.Unit, t Time) bool {
	if h := lookup(u.Bonus()); h.OnHour != nil {
		return h.OnHour(u, t)
	}
	return false
}

// OnBattleStart runs u's hook when a battle begins.
func OnBattleStart(u *model.Unit) bool {
	if h := lookup(u.Bonus()); h.OnBattleStart != nil {
		return h.OnBattleStart(u)
	}
	return false
}

// OnMoveSkip runs u's hook when the unit passes its move.
func OnMoveSkip(u *model.Unit) bool {
	if h := lookup(u.Bonus()); h.OnMoveSkip != nil {
		return h.OnMoveSkip(u)
	}
	return false
}

// CanAttackFromReserve reports whether kind grants reserve attacks.
func CanAttackFromReserve(kind model.BonusKind) bool {
	return lookup(kind).ReserveAttack
}

func clampPower(p stats.Power) stats.Power {
	return stats.Power{Hand: max(p.Hand, 0), Ranged: max(p.Ranged, 0), Magic: max(p.Magic, 0)}
}
