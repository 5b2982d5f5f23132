package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/game/effect"
	"github.com/udisondev/skirmish/internal/game/grid"
	"github.com/udisondev/skirmish/internal/game/stats"
	"github.com/udisondev/skirmish/internal/model"
)

func TestExecute_MeleeAgainstArmor(t *testing.T) {
	knight := newTestUnit("knight", 0, withHand(10))
	guard := newTestUnit("guard", 1, withDefense(stats.Defense{HandUnits: 3, HandPercent: 20}))

	kind, ok := Execute(layout, knight, guard, frontPos, frontPos)
	require.True(t, ok)
	assert.Equal(t, ActionMelee, kind)
	assert.Equal(t, int64(25), guard.Effective().HP)
}

func TestExecute_RangedUsesOnlyRangedChannel(t *testing.T) {
	archer := newTestUnit("archer", 0, withHand(5), withRanged(7), withMagic(model.Death(model.StrikeOnly), 9))
	enemy := newTestUnit("enemy", 1)

	kind, ok := Execute(layout, archer, enemy, backPos, frontPos)
	require.True(t, ok)
	assert.Equal(t, ActionRanged, kind)
	assert.Equal(t, int64(23), enemy.Effective().HP)
}

func TestExecute_MeleeUsesOnlyHandChannel(t *testing.T) {
	knight := newTestUnit("knight", 0, withHand(5), withMagic(model.Elemental(model.StrikeOnly), 9))
	enemy := newTestUnit("enemy", 1)

	kind, ok := Execute(layout, knight, enemy, frontPos, grid.Position{Column: 0, Line: grid.FrontLine})
	require.True(t, ok)
	assert.Equal(t, ActionMelee, kind)
	assert.Equal(t, int64(25), enemy.Effective().HP)
}

func TestExecute_ArtilleryFromReserve(t *testing.T) {
	ram := newTestUnit("ram", 0, withHand(10), withBonus(model.BonusArtillery))
	enemy := newTestUnit("enemy", 1)

	kind, ok := Execute(layout, ram, enemy, reservePos, frontPos)
	require.True(t, ok)
	assert.Equal(t, ActionMelee, kind)
	assert.Equal(t, int64(20), enemy.Effective().HP)

	gun := newTestUnit("gun", 0, withRanged(10), withBonus(model.BonusArtillery))
	kind, ok = Execute(layout, gun, enemy, reservePos, backPos)
	assert.False(t, ok)
	assert.Equal(t, ActionNone, kind)
	assert.Equal(t, int64(20), enemy.Effective().HP)
}

func TestExecute_MagicAttackCursesThenStrikes(t *testing.T) {
	necro := newTestUnit("necro", 0, withMagic(model.Death(model.ToEnemy), 6))
	enemy := newTestUnit("enemy", 1)

	kind, ok := Execute(layout, necro, enemy, backPos, frontPos)
	require.True(t, ok)
	assert.Equal(t, ActionDebuff, kind)
	assert.True(t, enemy.HasEffect(effect.KindMageCurse))
	assert.Equal(t, int64(30), enemy.Effective().HP, "first cast only curses")

	kind, ok = Execute(layout, necro, enemy, backPos, frontPos)
	require.True(t, ok)
	assert.Equal(t, ActionDebuff, kind)
	assert.Equal(t, int64(24), enemy.Effective().HP)
	assert.Len(t, enemy.Effects(), 1)
}

func TestExecute_ElementalAttackDisablesMagic(t *testing.T) {
	mage := newTestUnit("mage", 0, withMagic(model.Elemental(model.ToEnemy), 4))
	enemy := newTestUnit("enemy", 1, withMagic(model.Life(model.ToAlly), 10))

	kind, ok := Execute(layout, mage, enemy, backPos, backPos)
	require.True(t, ok)
	assert.Equal(t, ActionDebuff, kind)

	effects := enemy.Effects()
	require.Len(t, effects, 1)
	assert.Equal(t, effect.TypeDisableMagic, effects[0].Type)
	assert.Equal(t, int64(6), enemy.Effective().Power.Magic)
}

func TestExecute_CurseOnAlreadyCursedTarget(t *testing.T) {
	witch := newTestUnit("witch", 0, withMagic(model.Life(model.CurseOnly), 5))
	enemy := newTestUnit("enemy", 1)
	require.True(t, enemy.AddEffect(effect.AttackMagic(1)))

	assert.True(t, CanTarget(layout, witch, enemy, backPos, frontPos))
	kind, ok := Execute(layout, witch, enemy, backPos, frontPos)
	assert.False(t, ok)
	assert.Equal(t, ActionNone, kind)
}

func TestExecute_StrikeDoublesOnUndead(t *testing.T) {
	lich := newTestUnit("lich", 0, withMagic(model.Death(model.StrikeOnly), 10))
	zombie := newTestUnit("zombie", 1, withType(model.UnitUndead))

	kind, ok := Execute(layout, lich, zombie, backPos, frontPos)
	require.True(t, ok)
	assert.Equal(t, ActionDebuff, kind)
	assert.Equal(t, int64(10), zombie.Effective().HP)
	assert.Empty(t, zombie.Effects(), "strike never curses")
}

func TestExecute_Benefits(t *testing.T) {
	tests := []struct {
		name       string
		magic      *model.MagicType
		hp         int64
		wantHP     int64
		wantEffect []effect.Type
		check      func(t *testing.T, s stats.Stats)
	}{
		{
			name:       "heal and bless",
			magic:      model.Life(model.ToAlly),
			hp:         10,
			wantHP:     18,
			wantEffect: []effect.Type{effect.TypeHealMagic},
			check: func(t *testing.T, s stats.Stats) {
				assert.Equal(t, int64(8), s.Defense.HandUnits)
				assert.Equal(t, int64(8), s.Defense.RangedUnits)
			},
		},
		{
			name:       "heal is capped at max hp",
			magic:      model.Life(model.ToAll),
			hp:         27,
			wantHP:     30,
			wantEffect: []effect.Type{effect.TypeHealMagic},
		},
		{
			name:       "elemental support",
			magic:      model.Elemental(model.ToAlly),
			hp:         10,
			wantHP:     10,
			wantEffect: []effect.Type{effect.TypeElementalSupport},
			check: func(t *testing.T, s stats.Stats) {
				assert.Equal(t, int64(8), s.Power.Hand)
				assert.Equal(t, int64(8), s.Power.Ranged)
			},
		},
		{
			name:       "bless only",
			magic:      model.Death(model.BlessOnly),
			hp:         10,
			wantHP:     10,
			wantEffect: []effect.Type{effect.TypeHealMagic},
		},
		{
			name:       "elemental bless only",
			magic:      model.Elemental(model.BlessOnly),
			hp:         10,
			wantHP:     10,
			wantEffect: []effect.Type{effect.TypeElementalSupport},
		},
		{
			name:   "cure only",
			magic:  model.Life(model.CureOnly),
			hp:     10,
			wantHP: 18,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caster := newTestUnit("caster", 0, withMagic(tt.magic, 8))
			ally := newTestUnit("ally", 0, withType(model.UnitAnimal), withHP(tt.hp, 30))

			kind, ok := Execute(layout, caster, ally, backPos, frontPos)
			require.True(t, ok)
			assert.Equal(t, ActionBuff, kind)
			assert.Equal(t, tt.wantHP, ally.Effective().HP)

			var got []effect.Type
			for _, e := range ally.Effects() {
				got = append(got, e.Type)
			}
			assert.Equal(t, tt.wantEffect, got)

			if tt.check != nil {
				tt.check(t, ally.Effective())
			}
		})
	}
}

func TestExecute_IllegalIsNoop(t *testing.T) {
	knight := newTestUnit("knight", 0, withHand(10))
	enemy := newTestUnit("enemy", 1)

	kind, ok := Execute(layout, knight, enemy, frontPos, backPos)
	assert.False(t, ok)
	assert.Equal(t, ActionNone, kind)
	assert.Equal(t, int64(30), enemy.Effective().HP)
}

func TestExecute_AgreesWithCanTarget(t *testing.T) {
	actors := []func() *model.Unit{
		func() *model.Unit { return newTestUnit("archer", 0, withRanged(4)) },
		func() *model.Unit { return newTestUnit("knight", 0, withHand(4)) },
		func() *model.Unit { return newTestUnit("healer", 0, withMagic(model.Life(model.ToAll), 4)) },
		func() *model.Unit { return newTestUnit("striker", 0, withMagic(model.Elemental(model.StrikeOnly), 4)) },
		func() *model.Unit { return newTestUnit("gun", 0, withRanged(4), withBonus(model.BonusArtillery)) },
	}
	targets := []func() *model.Unit{
		func() *model.Unit { return newTestUnit("enemy", 1) },
		func() *model.Unit { return newTestUnit("ally", 0, withHP(5, 30)) },
	}

	slots := layout.Slots(1)
	for _, newActor := range actors {
		for _, newTarget := range targets {
			for a := 0; a < slots; a++ {
				for b := 0; b < slots; b++ {
					actor, target := newActor(), newTarget()
					from, to := layout.PositionAt(a), layout.PositionAt(b)
					legal := CanTarget(layout, actor, target, from, to)
					_, ok := Execute(layout, actor, target, from, to)
					assert.Equal(t, legal, ok, "%s -> %s %v->%v", actor.Info.Name, target.Info.Name, from, to)
				}
			}
		}
	}
}
