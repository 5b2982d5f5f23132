package combat

import (
	"log/slog"

	"github.com/udisondev/skirmish/internal/game/bonus"
	"github.com/udisondev/skirmish/internal/game/stats"
	"github.com/udisondev/skirmish/internal/model"
)

// DefenseCorrect applies the defender's absorption to p.
//
// Per channel: (100% − percent) × max(0, raw − flat). The magic channel uses
// the percent of the source school and is zero when the source has no magic.
// Death magic against undead is doubled before correction.
func DefenseCorrect(defender *model.Unit, p stats.Power, magic *model.MagicType) stats.Power {
	def := defender.Effective().Defense

	out := stats.Power{
		Hand:   remaining(def.HandPercent).Of(p.Hand - def.HandUnits),
		Ranged: remaining(def.RangedPercent).Of(p.Ranged - def.RangedUnits),
	}

	if magic != nil {
		raw := p.Magic
		if defender.Info.Type.AmplifiesHarm(magic.School) {
			raw *= 2
		}
		var pct stats.Percent
		switch magic.School {
		case model.SchoolLife:
			pct = def.LifePercent
		case model.SchoolDeath:
			pct = def.DeathPercent
		case model.SchoolElemental:
			pct = def.ElementalPercent
		}
		out.Magic = remaining(pct).Of(raw - def.MagicUnits)
	}

	return out
}

// ApplyDamage runs the full damage pipeline against ctx.Defender.
//
// Order: defense correction, attacker OnAttacking, defender OnAttacked, sum.
// A hit whose raw sum was positive deals at least 1. Effective hp is clamped
// at −max hp. When the hit kills, the attacker's OnKill fires.
// Returns the hp removed.
func ApplyDamage(ctx bonus.AttackContext, p stats.Power) int64 {
	raw := p.Sum()

	corrected := DefenseCorrect(ctx.Defender, p, ctx.Attacker.Magic())
	corrected = bonus.OnAttacking(ctx, corrected)
	corrected = bonus.OnAttacked(ctx, corrected)

	total := corrected.Sum()
	if raw > 0 && total < 1 {
		total = 1
	}

	wasAlive := !ctx.Defender.IsDead()
	dealt := ctx.Defender.TakeDamage(total)

	slog.Debug("damage applied",
		"attacker", ctx.Attacker.Info.Name,
		"defender", ctx.Defender.Info.Name,
		"raw", raw,
		"total", total,
		"hp", ctx.Defender.Effective().HP)

	if wasAlive && ctx.Defender.IsDead() {
		bonus.OnKill(ctx.Attacker, ctx.Defender)
	}
	return dealt
}

func remaining(pct stats.Percent) stats.Percent {
	return 100 - pct.Clamp()
}
