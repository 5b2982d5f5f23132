package combat

import (
	"github.com/udisondev/skirmish/internal/game/bonus"
	"github.com/udisondev/skirmish/internal/game/grid"
	"github.com/udisondev/skirmish/internal/game/stats"
	"github.com/udisondev/skirmish/internal/model"
)

// Test positions in the default layout.
var (
	backPos    = grid.Position{Column: 1, Line: grid.BackLine}
	frontPos   = grid.Position{Column: 1, Line: grid.FrontLine}
	reservePos = grid.Position{Column: 1, Line: 2}
)

type unitOption func(*model.UnitInfo, *stats.Stats, *model.BonusKind)

func withHand(v int64) unitOption {
	return func(_ *model.UnitInfo, s *stats.Stats, _ *model.BonusKind) { s.Power.Hand = v }
}

func withRanged(v int64) unitOption {
	return func(_ *model.UnitInfo, s *stats.Stats, _ *model.BonusKind) { s.Power.Ranged = v }
}

func withMagic(m *model.MagicType, power int64) unitOption {
	return func(i *model.UnitInfo, s *stats.Stats, _ *model.BonusKind) {
		i.Magic = m
		s.Power.Magic = power
	}
}

func withType(t model.UnitType) unitOption {
	return func(i *model.UnitInfo, _ *stats.Stats, _ *model.BonusKind) { i.Type = t }
}

func withHP(hp, maxHP int64) unitOption {
	return func(_ *model.UnitInfo, s *stats.Stats, _ *model.BonusKind) {
		s.HP = hp
		s.MaxHP = maxHP
	}
}

func withLevelUp(l model.LevelUpInfo) unitOption {
	return func(info *model.UnitInfo, _ *stats.Stats, _ *model.BonusKind) { info.LevelUp = l }
}

func withDefense(d stats.Defense) unitOption {
	return func(_ *model.UnitInfo, s *stats.Stats, _ *model.BonusKind) { s.Defense = d }
}

func withBonus(b model.BonusKind) unitOption {
	return func(_ *model.UnitInfo, _ *stats.Stats, k *model.BonusKind) { *k = b }
}

// newTestUnit builds a 30 hp unit of army with no power unless options say otherwise.
func newTestUnit(name string, army int, opts ...unitOption) *model.Unit {
	info := model.UnitInfo{Name: name, Type: model.UnitPeople}
	base := stats.Stats{HP: 30, MaxHP: 30, Moves: 1, MaxMoves: 1, Speed: 10}
	kind := model.BonusNone
	for _, opt := range opts {
		opt(&info, &base, &kind)
	}
	return model.NewUnit(info, base, army, kind)
}

func attackCtx(attacker, defender *model.Unit, attackerPos, defenderPos grid.Position) bonus.AttackContext {
	return bonus.AttackContext{
		Layout:      grid.DefaultLayout,
		Attacker:    attacker,
		Defender:    defender,
		AttackerPos: attackerPos,
		DefenderPos: defenderPos,
	}
}
