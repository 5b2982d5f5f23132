package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/skirmish/internal/game/effect"
	"github.com/udisondev/skirmish/internal/game/grid"
	"github.com/udisondev/skirmish/internal/model"
)

var layout = grid.DefaultLayout

func TestCanTarget_ReachGate(t *testing.T) {
	archer := newTestUnit("archer", 0, withRanged(5), withHand(5))
	enemy := newTestUnit("enemy", 1)
	ally := newTestUnit("ally", 0)
	healer := newTestUnit("healer", 0, withMagic(model.Life(model.ToAlly), 5))

	tests := []struct {
		name              string
		actor, target     *model.Unit
		actorPos, tgtPos  grid.Position
		want              bool
	}{
		{"enemy from back", archer, enemy, backPos, frontPos, true},
		{"enemy in reserve", archer, enemy, backPos, reservePos, false},
		{"actor in reserve", archer, enemy, reservePos, frontPos, false},
		{"ally both reserve", healer, ally, reservePos, reservePos, true},
		{"ally both in field", healer, ally, backPos, frontPos, true},
		{"ally across reserve boundary", healer, ally, reservePos, frontPos, false},
		{"ally field to reserve", healer, ally, frontPos, reservePos, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTarget(layout, tt.actor, tt.target, tt.actorPos, tt.tgtPos))
		})
	}
}

// A reserve actor without reserve attack can reach no enemy by any branch.
func TestCanTarget_ReserveActorWithoutBonus(t *testing.T) {
	actors := []*model.Unit{
		newTestUnit("ranged", 0, withRanged(10)),
		newTestUnit("melee", 0, withHand(10)),
		newTestUnit("striker", 0, withMagic(model.Death(model.StrikeOnly), 10)),
		newTestUnit("caster", 0, withMagic(model.Elemental(model.ToAll), 10)),
		newTestUnit("all", 0, withHand(10), withRanged(10), withMagic(model.Life(model.ToEnemy), 10)),
	}
	enemy := newTestUnit("enemy", 1)

	for _, actor := range actors {
		for idx := 0; idx < layout.Slots(1); idx++ {
			pos := layout.PositionAt(idx)
			assert.False(t, CanTarget(layout, actor, enemy, reservePos, pos), "%s -> %v", actor.Info.Name, pos)
			_, ok := Execute(layout, actor, enemy, reservePos, pos)
			assert.False(t, ok)
		}
	}
}

func TestCanTarget_ArtilleryFromReserve(t *testing.T) {
	enemy := newTestUnit("enemy", 1)

	tests := []struct {
		name   string
		unit   *model.Unit
		target grid.Position
		want   bool
	}{
		{"ranged to front", newTestUnit("gun", 0, withRanged(10), withBonus(model.BonusArtillery)), frontPos, false},
		{"ranged to back", newTestUnit("gun", 0, withRanged(10), withBonus(model.BonusArtillery)), backPos, false},
		{"hand to front", newTestUnit("ram", 0, withHand(10), withBonus(model.BonusArtillery)), frontPos, true},
		{"strike to front", newTestUnit("mage", 0, withMagic(model.Death(model.StrikeOnly), 10), withBonus(model.BonusArtillery)), frontPos, false},
		{"reserve target", newTestUnit("ram", 0, withHand(10), withBonus(model.BonusArtillery)), reservePos, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTarget(layout, tt.unit, enemy, reservePos, tt.target))
		})
	}
}

func TestCanTarget_Ranged(t *testing.T) {
	archer := newTestUnit("archer", 0, withRanged(5))
	enemy := newTestUnit("enemy", 1)

	tests := []struct {
		name     string
		from, to grid.Position
		want     bool
	}{
		{"back reaches anywhere", backPos, grid.Position{Column: 0, Line: grid.BackLine}, true},
		{"same line adjacent", grid.Position{Column: 0, Line: 1}, grid.Position{Column: 1, Line: 1}, true},
		{"same line same column", frontPos, frontPos, true},
		{"same line two apart", grid.Position{Column: 0, Line: 1}, grid.Position{Column: 2, Line: 1}, false},
		{"front to back line", frontPos, backPos, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTarget(layout, archer, enemy, tt.from, tt.to))
		})
	}

	assert.False(t, CanTarget(layout, archer, newTestUnit("friend", 0), backPos, frontPos), "ranged never hits allies")
}

func TestCanTarget_Melee(t *testing.T) {
	knight := newTestUnit("knight", 0, withHand(5))
	enemy := newTestUnit("enemy", 1)

	assert.True(t, CanTarget(layout, knight, enemy, frontPos, grid.Position{Column: 2, Line: grid.FrontLine}))
	assert.False(t, CanTarget(layout, knight, enemy, frontPos, backPos), "only the front line is attackable")
	assert.False(t, CanTarget(layout, knight, enemy, backPos, frontPos), "melee from the back line")
	assert.False(t, CanTarget(layout, knight, newTestUnit("friend", 0), frontPos, frontPos))
}

func TestCanTarget_Magic(t *testing.T) {
	enemy := newTestUnit("enemy", 1)
	ally := newTestUnit("ally", 0)

	tests := []struct {
		name   string
		magic  *model.MagicType
		target *model.Unit
		from   grid.Position
		want   bool
	}{
		{"to ally heals ally", model.Life(model.ToAlly), ally, frontPos, true},
		{"to ally refuses enemy", model.Life(model.ToAlly), enemy, backPos, false},
		{"to all ally", model.Death(model.ToAll), newTestUnit("wolf", 0, withType(model.UnitAnimal)), frontPos, true},
		{"to all enemy from back", model.Death(model.ToAll), enemy, backPos, true},
		{"to all enemy from front", model.Death(model.ToAll), enemy, frontPos, false},
		{"to enemy from back", model.Elemental(model.ToEnemy), enemy, backPos, true},
		{"to enemy from front", model.Elemental(model.ToEnemy), enemy, frontPos, false},
		{"to enemy refuses ally", model.Elemental(model.ToEnemy), ally, backPos, false},
		{"curse from back", model.Life(model.CurseOnly), enemy, backPos, true},
		{"curse from front", model.Life(model.CurseOnly), enemy, frontPos, false},
		{"strike from back", model.Death(model.StrikeOnly), enemy, backPos, true},
		{"strike refuses ally", model.Death(model.StrikeOnly), ally, backPos, false},
		{"bless ally", model.Life(model.BlessOnly), ally, frontPos, true},
		{"bless elemental ally", model.Elemental(model.BlessOnly), ally, frontPos, true},
		{"bless refuses enemy", model.Life(model.BlessOnly), enemy, backPos, false},
		{"cure full hp ally", model.Life(model.CureOnly), ally, frontPos, false},
		{"cure elemental", model.Elemental(model.CureOnly), newTestUnit("hurt", 0, withHP(5, 30)), frontPos, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mage := newTestUnit("mage", 0, withMagic(tt.magic, 6))
			assert.Equal(t, tt.want, CanTarget(layout, mage, tt.target, tt.from, frontPos))
		})
	}
}

func TestCanTarget_CureWoundedAlly(t *testing.T) {
	mage := newTestUnit("mage", 0, withMagic(model.Life(model.CureOnly), 6))
	assert.True(t, CanTarget(layout, mage, newTestUnit("hurt", 0, withHP(5, 30)), backPos, frontPos))
}

func TestCanTarget_ImmunityMatrix(t *testing.T) {
	types := []model.UnitType{model.UnitPeople, model.UnitHero, model.UnitAnimal, model.UnitMecha, model.UnitUndead, model.UnitRogue}
	want := map[model.School]map[model.UnitType]bool{
		model.SchoolLife: {
			model.UnitPeople: true, model.UnitHero: true, model.UnitAnimal: true,
			model.UnitMecha: false, model.UnitUndead: false, model.UnitRogue: true,
		},
		model.SchoolDeath: {
			model.UnitPeople: false, model.UnitHero: false, model.UnitAnimal: true,
			model.UnitMecha: false, model.UnitUndead: true, model.UnitRogue: false,
		},
		model.SchoolElemental: {
			model.UnitPeople: true, model.UnitHero: true, model.UnitAnimal: true,
			model.UnitMecha: true, model.UnitUndead: true, model.UnitRogue: true,
		},
	}

	for _, dir := range []model.Direction{model.ToAlly, model.ToAll, model.BlessOnly} {
		for school, byType := range want {
			for _, ut := range types {
				magic := &model.MagicType{School: school, Direction: dir}
				mage := newTestUnit("mage", 0, withMagic(magic, 5))
				target := newTestUnit("target", 0, withType(ut))
				assert.Equal(t, byType[ut], CanTarget(layout, mage, target, frontPos, backPos), "%v on %v", magic, ut)
			}
		}
	}
}

// Life heal on an allied undead is illegal.
func TestCanTarget_LifeHealOnUndead(t *testing.T) {
	healer := newTestUnit("priest", 0, withMagic(model.Life(model.ToAlly), 8))
	skeleton := newTestUnit("skeleton", 0, withType(model.UnitUndead), withHP(10, 30))
	assert.False(t, CanTarget(layout, healer, skeleton, backPos, frontPos))
}

func TestCanTarget_NoDuplicateSupport(t *testing.T) {
	healer := newTestUnit("priest", 0, withMagic(model.Life(model.ToAlly), 8))
	ally := newTestUnit("ally", 0)
	ally.AddEffect(effect.ElementalSupport(2))
	assert.False(t, CanTarget(layout, healer, ally, backPos, frontPos))
}

func TestCanTarget_Self(t *testing.T) {
	healer := newTestUnit("priest", 0, withMagic(model.Life(model.ToAlly), 8), withHand(5))
	assert.True(t, CanTarget(layout, healer, healer, frontPos, frontPos), "self is an ally")

	kind, ok := Execute(layout, healer, healer, frontPos, frontPos)
	assert.True(t, ok)
	assert.Equal(t, ActionBuff, kind)
	assert.Equal(t, int64(30), healer.Effective().HP, "melee is never chosen against self")
}

func TestCanTarget_NoPowerNoMagic(t *testing.T) {
	peasant := newTestUnit("peasant", 0)
	assert.False(t, CanTarget(layout, peasant, newTestUnit("enemy", 1), frontPos, frontPos))
}
