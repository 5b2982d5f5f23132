package bonus

import "github.com/udisondev/skirmish/internal/model"

// Multipliers weight the power score terms for a bonus.
type Multipliers struct {
	Defense float32
	Attack  float32
	Health  float32
}

// MultipliersFor returns the score weights of kind. Some bonuses scale with
// the unit's own attack points, which the caller passes in.
func MultipliersFor(kind model.BonusKind, attackPoints float32) Multipliers {
	lookup(kind)

	switch kind {
	case model.BonusSpearDefence:
		return Multipliers{1.5, 1, 1}
	case model.BonusGodAnger:
		return Multipliers{1, 1.1, 1}
	case model.BonusGodStrike:
		return Multipliers{1, 1.2, 1}
	case model.BonusAncientVampiresGist:
		return Multipliers{1, 1 + attackPoints, 1.3}
	case model.BonusArtillery:
		return Multipliers{1, 2 + attackPoints, 1}
	case model.BonusBerserk:
		return Multipliers{1, 1.5, 1}
	case model.BonusBlock:
		return Multipliers{1.3, 1, 1}
	case model.BonusDeadDodging, model.BonusDodging:
		return Multipliers{1, 1, 1.3}
	case model.BonusFast, model.BonusFastDead:
		return Multipliers{1, 2, 1}
	case model.BonusDeadRessurect:
		return Multipliers{1, 1, 1.25}
	case model.BonusFireAttack, model.BonusPoisonAttack:
		return Multipliers{1, 1.3, 1}
	case model.BonusGhost:
		return Multipliers{1, 1.5, 2}
	case model.BonusInvulnerable:
		return Multipliers{1, 1, 2}
	case model.BonusDefencePiercing:
		return Multipliers{1, 1 + attackPoints, 1}
	case model.BonusFlankStrike, model.BonusStealth:
		return Multipliers{1, 1.5, 1}
	case model.BonusGarrison:
		return Multipliers{1.5, 1.5, 1.5}
	default:
		return Multipliers{1, 1, 1}
	}
}
