package combat

import (
	"fmt"

	"github.com/udisondev/skirmish/internal/game/bonus"
	"github.com/udisondev/skirmish/internal/game/effect"
	"github.com/udisondev/skirmish/internal/game/grid"
	"github.com/udisondev/skirmish/internal/game/stats"
	"github.com/udisondev/skirmish/internal/model"
)

// ActionKind tags the outcome of an action for animation and journaling.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionMelee
	ActionRanged
	ActionBuff
	ActionDebuff
	ActionMove
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionMelee:
		return "melee"
	case ActionRanged:
		return "ranged"
	case ActionBuff:
		return "buff"
	case ActionDebuff:
		return "debuff"
	case ActionMove:
		return "move"
	default:
		return fmt.Sprintf("action(%d)", uint8(k))
	}
}

// Execute performs the action actor would take against target.
// ok is false when no branch applies; that is a no-op, not a fault.
// actor and target may be the same unit.
func Execute(layout grid.Layout, actor, target *model.Unit, actorPos, targetPos grid.Position) (kind ActionKind, ok bool) {
	br := selectBranch(layout, actor, target, actorPos, targetPos)
	if br == branchNone {
		return ActionNone, false
	}

	ctx := bonus.AttackContext{
		Layout:      layout,
		Attacker:    actor,
		Defender:    target,
		AttackerPos: actorPos,
		DefenderPos: targetPos,
	}
	power := actor.Effective().Power

	switch br {
	case branchRanged:
		ApplyDamage(ctx, power.RangedOnly())
		return ActionRanged, true

	case branchMelee:
		ApplyDamage(ctx, power.HandOnly())
		return ActionMelee, true

	case branchHealBless:
		healed := target.Heal(power.Magic)
		blessed := target.AddEffect(effect.HealMagic(power.Magic))
		return outcome(ActionBuff, healed || blessed)

	case branchElementalBless:
		return outcome(ActionBuff, target.AddEffect(effect.ElementalSupport(power.Magic)))

	case branchBless:
		return outcome(ActionBuff, target.AddEffect(effect.HealMagic(power.Magic)))

	case branchCure:
		return outcome(ActionBuff, target.Heal(power.Magic))

	case branchMagicAttack, branchElementalAttack:
		// Curse first; an already cursed target takes a direct magic hit instead.
		if !curse(ctx, *actor.Magic(), power.Magic) {
			ApplyDamage(ctx, power.MagicOnly())
		}
		return ActionDebuff, true

	case branchCurse:
		return outcome(ActionDebuff, curse(ctx, *actor.Magic(), power.Magic))

	case branchStrike:
		ApplyDamage(ctx, power.MagicOnly())
		return ActionDebuff, true
	}

	return ActionNone, false
}

// curse attaches the school's curse with a defense-corrected magnitude.
// Returns false if the target is already cursed.
func curse(ctx bonus.AttackContext, magic model.MagicType, raw int64) bool {
	if ctx.Defender.HasEffect(effect.KindMageCurse) {
		return false
	}
	magnitude := DefenseCorrect(ctx.Defender, stats.Power{Magic: raw}, &magic).Magic
	if magic.IsAligned() {
		return ctx.Defender.AddEffect(effect.AttackMagic(magnitude))
	}
	return ctx.Defender.AddEffect(effect.DisableMagic(magnitude))
}

func outcome(kind ActionKind, ok bool) (ActionKind, bool) {
	if !ok {
		return ActionNone, false
	}
	return kind, true
}
