package model

import (
	"slices"

	"github.com/udisondev/skirmish/internal/game/stats"
)

// Item is an equippable piece resolved from the item catalog.
// Its delta is folded into the wearer's stats while equipped, and a non-nil
// Bonus replaces the wearer's innate bonus.
type Item struct {
	Name         string      `yaml:"name"`
	Delta        stats.Delta `yaml:"modify"`
	Bonus        *BonusKind  `yaml:"bonus,omitempty"`
	AllowedTypes []UnitType  `yaml:"allowed_types,omitempty"`
}

// CanEquip reports whether u may wear the item.
// An empty AllowedTypes list allows every unit type.
func (it *Item) CanEquip(u *Unit) bool {
	if it == nil {
		return false
	}
	if len(it.AllowedTypes) == 0 {
		return true
	}
	return slices.Contains(it.AllowedTypes, u.Info.Type)
}
