package bonus

import (
	"github.com/udisondev/skirmish/internal/game/effect"
	"github.com/udisondev/skirmish/internal/game/grid"
	"github.com/udisondev/skirmish/internal/game/stats"
	"github.com/udisondev/skirmish/internal/model"
)

// registry maps every bonus variant to its hooks. It must stay total over
// model.AllBonuses; lookup panics on a missing entry.
var registry = map[model.BonusKind]Hooks{
	model.BonusNone: {},

	model.BonusSpearDefence: {
		OnAttacked: func(_ AttackContext, p stats.Power) stats.Power {
			p.Hand /= 2
			return p
		},
	},

	model.BonusGodAnger: {
		OnAttacking: func(_ AttackContext, p stats.Power) stats.Power {
			return p.Scale(11, 10)
		},
	},

	model.BonusGodStrike: {
		OnAttacking: func(_ AttackContext, p stats.Power) stats.Power {
			return p.Scale(6, 5)
		},
	},

	model.BonusAncientVampiresGist: {
		OnKill: func(killer, _ *model.Unit) bool {
			return killer.Heal(killer.Effective().MaxHP)
		},
	},

	model.BonusArtillery: {
		ReserveAttack: true,
		OnAttacking: func(_ AttackContext, p stats.Power) stats.Power {
			p.Ranged = p.Ranged * 3 / 2
			return p
		},
	},

	model.BonusBerserk: {
		OnAttacking: func(ctx AttackContext, p stats.Power) stats.Power {
			s := ctx.Attacker.Effective()
			if s.HP*2 < s.MaxHP {
				p.Hand *= 2
			}
			return p
		},
	},

	model.BonusBlock: {
		OnAttacked: func(_ AttackContext, p stats.Power) stats.Power {
			p.Ranged /= 2
			return p
		},
	},

	model.BonusDeadDodging: {
		OnAttacked: func(ctx AttackContext, p stats.Power) stats.Power {
			if ctx.AttackerZone() == grid.ZoneBack {
				p.Ranged /= 2
				p.Magic /= 2
			}
			return p
		},
	},

	model.BonusDodging: {
		OnAttacked: func(ctx AttackContext, p stats.Power) stats.Power {
			if ctx.AttackerZone() == grid.ZoneBack {
				p.Ranged /= 2
			}
			return p
		},
	},

	model.BonusFast: {
		OnBattleStart: extraMove,
		OnMoveSkip:    regainMove,
	},

	model.BonusDeadRessurect: {
		OnHour: func(u *model.Unit, t Time) bool {
			if !u.IsDead() || t.Hour != 0 {
				return false
			}
			s := u.Effective()
			return u.Heal(s.MaxHP/2 - s.HP)
		},
	},

	model.BonusFireAttack: {
		OnAttacking: func(ctx AttackContext, p stats.Power) stats.Power {
			ctx.Defender.AddEffect(effect.Burn(max(1, p.Hand/5)))
			return p
		},
	},

	model.BonusPoisonAttack: {
		OnAttacking: func(ctx AttackContext, p stats.Power) stats.Power {
			ctx.Defender.AddEffect(effect.Poison(max(1, (p.Hand+p.Ranged)/5)))
			return p
		},
	},

	model.BonusGhost: {
		OnAttacked: func(_ AttackContext, p stats.Power) stats.Power {
			p.Hand = 0
			return p
		},
	},

	model.BonusInvulnerable: {
		OnAttacked: func(_ AttackContext, p stats.Power) stats.Power {
			return p.Scale(1, 2)
		},
	},

	model.BonusDefencePiercing: {
		OnAttacking: func(ctx AttackContext, p stats.Power) stats.Power {
			def := ctx.Defender.Effective().Defense
			if p.Hand > 0 {
				p.Hand += def.HandUnits
			}
			if p.Ranged > 0 {
				p.Ranged += def.RangedUnits
			}
			return p
		},
	},

	model.BonusFastDead: {
		OnBattleStart: extraMove,
		OnTick: func(u *model.Unit) bool {
			s := u.Effective()
			if s.Moves >= s.MaxMoves {
				return false
			}
			u.SetMoves(u.Base().MaxMoves)
			return true
		},
	},

	model.BonusFlankStrike: {
		OnAttacking: func(ctx AttackContext, p stats.Power) stats.Power {
			if ctx.AttackerPos.Column != ctx.DefenderPos.Column {
				p.Hand = p.Hand * 3 / 2
			}
			return p
		},
	},

	model.BonusGarrison: {
		OnAttacked: func(_ AttackContext, p stats.Power) stats.Power {
			return p.Scale(2, 3)
		},
	},

	model.BonusStealth: {
		OnAttacked: func(ctx AttackContext, p stats.Power) stats.Power {
			if ctx.DefenderZone() == grid.ZoneBack {
				p.Ranged = 0
			}
			return p
		},
	},
}

func extraMove(u *model.Unit) bool {
	u.SetMoves(u.Base().MaxMoves + 1)
	return true
}

func regainMove(u *model.Unit) bool {
	b := u.Base()
	if b.Moves >= b.MaxMoves {
		return false
	}
	u.SetMoves(b.Moves + 1)
	return true
}
