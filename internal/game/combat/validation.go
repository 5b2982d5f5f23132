package combat

import (
	"github.com/udisondev/skirmish/internal/game/bonus"
	"github.com/udisondev/skirmish/internal/game/effect"
	"github.com/udisondev/skirmish/internal/game/grid"
	"github.com/udisondev/skirmish/internal/model"
)

// branch is the action chosen for an (actor, target) pair. CanTarget and
// Execute both go through selectBranch, so an executed action is always one
// the legality probe accepts.
type branch uint8

const (
	branchNone branch = iota
	branchRanged
	branchMelee
	branchHealBless
	branchElementalBless
	branchMagicAttack
	branchElementalAttack
	branchCurse
	branchStrike
	branchBless
	branchCure
)

// CanTarget reports whether actor may act on target from the given positions.
// Positions must lie inside the grid; that is checked by the caller.
func CanTarget(layout grid.Layout, actor, target *model.Unit, actorPos, targetPos grid.Position) bool {
	return selectBranch(layout, actor, target, actorPos, targetPos) != branchNone
}

func selectBranch(layout grid.Layout, actor, target *model.Unit, actorPos, targetPos grid.Position) branch {
	actorZone := layout.Zone(actorPos)
	targetZone := layout.Zone(targetPos)
	enemy := actor != target && actor.Army != target.Army

	if !inReach(actor, enemy, actorZone, targetZone) {
		return branchNone
	}

	power := actor.Effective().Power
	inBack := actorZone == grid.ZoneBack

	if enemy && power.Ranged > 0 &&
		((targetPos.Line == actorPos.Line && abs(targetPos.Column-actorPos.Column) < 2) || inBack) {
		return branchRanged
	}
	if enemy && power.Hand > 0 && !inBack && targetPos.Line == grid.FrontLine {
		return branchMelee
	}

	magic := actor.Magic()
	if magic == nil {
		return branchNone
	}

	switch magic.Direction {
	case model.ToAlly:
		if enemy {
			return branchNone
		}
		return allyBenefit(*magic, target)

	case model.ToAll:
		if !enemy {
			return allyBenefit(*magic, target)
		}
		if !inBack {
			return branchNone
		}
		return enemyAttack(*magic)

	case model.ToEnemy:
		if !enemy || !inBack {
			return branchNone
		}
		return enemyAttack(*magic)

	case model.CurseOnly:
		if !enemy || !inBack {
			return branchNone
		}
		return branchCurse

	case model.StrikeOnly:
		if !enemy || !inBack {
			return branchNone
		}
		return branchStrike

	case model.BlessOnly:
		if enemy || rejects(*magic, target) || target.HasEffect(effect.KindMageSupport) {
			return branchNone
		}
		if magic.IsAligned() {
			return branchBless
		}
		return branchElementalBless

	case model.CureOnly:
		if enemy || !magic.IsAligned() || rejects(*magic, target) || target.IsFullHP() {
			return branchNone
		}
		return branchCure
	}

	return branchNone
}

// inReach is the zone gate. Enemies are reached from outside the reserve
// (unless the bonus allows it) and only when they are outside it too;
// allies only within the same side of the reserve boundary.
func inReach(actor *model.Unit, enemy bool, actorZone, targetZone grid.Zone) bool {
	actorReserve := actorZone == grid.ZoneReserve
	targetReserve := targetZone == grid.ZoneReserve
	if enemy {
		if actorReserve && !bonus.CanAttackFromReserve(actor.Bonus()) {
			return false
		}
		return !targetReserve
	}
	return actorReserve == targetReserve
}

func allyBenefit(magic model.MagicType, target *model.Unit) branch {
	if rejects(magic, target) || target.HasEffect(effect.KindMageSupport) {
		return branchNone
	}
	if magic.IsAligned() {
		return branchHealBless
	}
	return branchElementalBless
}

func enemyAttack(magic model.MagicType) branch {
	if magic.IsAligned() {
		return branchMagicAttack
	}
	return branchElementalAttack
}

func rejects(magic model.MagicType, target *model.Unit) bool {
	return magic.IsAligned() && target.Info.Type.RejectsBenefit(magic.School)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
