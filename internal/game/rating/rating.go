// Package rating scores units for matchmaking and AI.
package rating

import (
	"github.com/udisondev/skirmish/internal/game/bonus"
	"github.com/udisondev/skirmish/internal/model"
)

// Score returns the power score of u from its effective stats and active bonus.
//
// Scores are compared across platforms, so every product is wrapped in an
// explicit float32 conversion; that keeps the compiler from fusing it into a
// multiply-add.
func Score(u *model.Unit) float32 {
	s := u.Effective()

	health := float32(s.MaxHP)
	handDef, rangedDef := float32(s.Defense.HandUnits), float32(s.Defense.RangedUnits)
	death := float32(s.Defense.DeathPercent)
	elemental := float32(s.Defense.ElementalPercent)
	life := float32(s.Defense.LifePercent)
	hand, ranged, magic := float32(s.Power.Hand), float32(s.Power.Ranged), float32(s.Power.Magic)
	speed := float32(s.Speed)
	moves := float32(s.MaxMoves)
	regen := float32(s.Regen)
	vamp := float32(s.Vamp)

	healthPoints := health / 50
	attackPoints := float32(float32(hand/45)+float32(ranged/45)) + float32(magic/30)
	speedPoints := speed / 20
	defencePoints := float32(handDef/10) + float32(rangedDef/10)
	magicPoints := float32(float32(death/100)+float32(float32(elemental/100)*2)) + float32(float32(life/100)*2)
	regenPoints := regen / 100
	vampPoints := vamp / 100

	m := bonus.MultipliersFor(u.Bonus(), attackPoints)

	total := float32(float32(float32(float32(attackPoints*m.Attack)+speedPoints)/2) * moves)
	total = float32(total + float32(defencePoints*m.Defense))
	total = float32(total + float32(magicPoints*2))
	total = float32(total + float32(regenPoints*2))
	total = float32(total + float32(vampPoints*3))
	total = float32(total + float32(healthPoints*m.Health))
	return total
}
