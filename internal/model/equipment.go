package model

import "log/slog"

// MaxItemSlots is the size of a unit's equipment array.
const MaxItemSlots = 4

// Equipment is a fixed-size slot array.
type Equipment [MaxItemSlots]*Item

// Equip puts item into slot and folds its delta.
//
// Returns false without change if the slot is out of range, already
// occupied, or the item cannot be worn by u.
func (u *Unit) Equip(item *Item, slot int) bool {
	if slot < 0 || slot >= MaxItemSlots {
		return false
	}
	if u.equipment[slot] != nil {
		return false
	}
	if !item.CanEquip(u) {
		return false
	}

	u.equipment[slot] = item
	u.itemDelta = u.itemDelta.Add(item.Delta)
	u.Recompute()

	slog.Debug("item equipped", "unit", u.Info.Name, "item", item.Name, "slot", slot)
	return true
}

// Unequip removes the item in slot and unwinds its delta.
// If the lowered max hp is now below current hp, hp is capped.
func (u *Unit) Unequip(slot int) (*Item, bool) {
	if slot < 0 || slot >= MaxItemSlots {
		return nil, false
	}
	item := u.equipment[slot]
	if item == nil {
		return nil, false
	}

	u.equipment[slot] = nil
	u.itemDelta = u.itemDelta.Sub(item.Delta)
	u.Recompute()
	if over := u.modified.HP - u.modified.MaxHP; over > 0 {
		u.base.HP -= over
		u.Recompute()
	}

	slog.Debug("item unequipped", "unit", u.Info.Name, "item", item.Name, "slot", slot)
	return item, true
}

// ItemAt returns the item in slot, nil when empty or out of range.
func (u *Unit) ItemAt(slot int) *Item {
	if slot < 0 || slot >= MaxItemSlots {
		return nil
	}
	return u.equipment[slot]
}

// Equipment returns a copy of the slot array.
func (u *Unit) Equipment() Equipment {
	return u.equipment
}

// Bonus returns the active bonus: the one granted by the last equipped item
// carrying a bonus, otherwise the innate one.
func (u *Unit) Bonus() BonusKind {
	for i := MaxItemSlots - 1; i >= 0; i-- {
		if it := u.equipment[i]; it != nil && it.Bonus != nil {
			return *it.Bonus
		}
	}
	return u.innate
}

// InnateBonus returns the bonus the unit has without items.
func (u *Unit) InnateBonus() BonusKind {
	return u.innate
}
