package effect

import (
	"fmt"

	"github.com/udisondev/skirmish/internal/game/stats"
)

// Kind is the stacking class of an effect. A unit carries at most one
// active effect per kind.
type Kind uint8

const (
	KindMageSupport Kind = iota
	KindMageCurse
	KindPoison
	KindBurn
)

func (k Kind) String() string {
	switch k {
	case KindMageSupport:
		return "mage_support"
	case KindMageCurse:
		return "mage_curse"
	case KindPoison:
		return "poison"
	case KindBurn:
		return "burn"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Type identifies the concrete behaviour of an effect.
type Type uint8

const (
	TypeHealMagic Type = iota
	TypeElementalSupport
	TypeAttackMagic
	TypeDisableMagic
	TypePoison
	TypeBurn
)

func (t Type) String() string {
	switch t {
	case TypeHealMagic:
		return "heal_magic"
	case TypeElementalSupport:
		return "elemental_support"
	case TypeAttackMagic:
		return "attack_magic"
	case TypeDisableMagic:
		return "disable_magic"
	case TypePoison:
		return "poison"
	case TypeBurn:
		return "burn"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// Durations in ticks.
const (
	MagicDuration = 3
	BonusDuration = 2
)

// Effect is a timed modifier attached to a unit.
type Effect struct {
	Type      Type
	Kind      Kind
	Magnitude int64
	Remaining int
}

// HealMagic hardens the target: +m flat hand and ranged absorption.
func HealMagic(m int64) Effect {
	return Effect{Type: TypeHealMagic, Kind: KindMageSupport, Magnitude: m, Remaining: MagicDuration}
}

// ElementalSupport empowers the target: +m hand and ranged power.
func ElementalSupport(m int64) Effect {
	return Effect{Type: TypeElementalSupport, Kind: KindMageSupport, Magnitude: m, Remaining: MagicDuration}
}

// AttackMagic drains m hp every tick.
func AttackMagic(m int64) Effect {
	return Effect{Type: TypeAttackMagic, Kind: KindMageCurse, Magnitude: m, Remaining: MagicDuration}
}

// DisableMagic suppresses m points of magic power.
func DisableMagic(m int64) Effect {
	return Effect{Type: TypeDisableMagic, Kind: KindMageCurse, Magnitude: m, Remaining: MagicDuration}
}

// Poison drains m hp every tick.
func Poison(m int64) Effect {
	return Effect{Type: TypePoison, Kind: KindPoison, Magnitude: m, Remaining: BonusDuration}
}

// Burn drains m hp every tick and strips m flat hand absorption.
func Burn(m int64) Effect {
	return Effect{Type: TypeBurn, Kind: KindBurn, Magnitude: m, Remaining: BonusDuration}
}

// Delta is the stat modifier contributed while the effect is active.
func (e Effect) Delta() stats.Delta {
	switch e.Type {
	case TypeHealMagic:
		return stats.Delta{Defense: stats.Defense{HandUnits: e.Magnitude, RangedUnits: e.Magnitude}}
	case TypeElementalSupport:
		return stats.Delta{Power: stats.Power{Hand: e.Magnitude, Ranged: e.Magnitude}}
	case TypeDisableMagic:
		return stats.Delta{Power: stats.Power{Magic: -e.Magnitude}}
	case TypeBurn:
		return stats.Delta{Defense: stats.Defense{HandUnits: -e.Magnitude}}
	default:
		return stats.Delta{}
	}
}

// HPPerTick is the hp change applied to the base block on every tick.
func (e Effect) HPPerTick() int64 {
	switch e.Type {
	case TypeAttackMagic, TypePoison, TypeBurn:
		return -e.Magnitude
	default:
		return 0
	}
}

// IsExpired returns true once the duration has run out.
func (e Effect) IsExpired() bool {
	return e.Remaining <= 0
}
