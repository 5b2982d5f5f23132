package model

import (
	"log/slog"

	"github.com/udisondev/skirmish/internal/game/effect"
	"github.com/udisondev/skirmish/internal/game/stats"
)

// LevelUpInfo describes how a unit grows.
type LevelUpInfo struct {
	Stats stats.Delta   `yaml:"stats"`
	XPUp  stats.Percent `yaml:"xp_up"`
	MaxXP int64         `yaml:"max_xp"`
}

// UnitInfo is the static part of a unit definition.
type UnitInfo struct {
	Name    string      `yaml:"name"`
	Type    UnitType    `yaml:"type"`
	Magic   *MagicType  `yaml:"magic,omitempty"`
	LevelUp LevelUpInfo `yaml:"level_up"`
}

// Level tracks experience.
type Level struct {
	Level int64
	XP    int64
	MaxXP int64
}

// Unit is a combatant.
//
// The effective snapshot is recomputed synchronously after every mutation,
// so Effective never returns stale values. A unit belongs to one battle and
// is not safe for concurrent use.
type Unit struct {
	Info UnitInfo
	Army int

	base      stats.Stats
	itemDelta stats.Delta
	effects   effect.List
	modified  stats.Stats

	equipment Equipment
	innate    BonusKind
	level     Level
}

// NewUnit creates a unit and computes its effective stats.
func NewUnit(info UnitInfo, base stats.Stats, army int, innate BonusKind, effects ...effect.Effect) *Unit {
	u := &Unit{
		Info:    info,
		Army:    army,
		base:    base,
		effects: effect.NewList(effects...),
		innate:  innate,
		level:   Level{MaxXP: info.LevelUp.MaxXP},
	}
	u.Recompute()
	return u
}

// Recompute rebuilds the effective snapshot from base, item and effect deltas.
func (u *Unit) Recompute() {
	u.modified = stats.Apply(u.base, u.itemDelta, u.effects.Delta())
}

// Effective returns the effective stats.
func (u *Unit) Effective() stats.Stats {
	return u.modified
}

// Base returns the base stats.
func (u *Unit) Base() stats.Stats {
	return u.base
}

// SetBase replaces the base stats.
func (u *Unit) SetBase(s stats.Stats) {
	u.base = s
	u.Recompute()
}

// ItemDelta returns the accumulated delta of equipped items.
func (u *Unit) ItemDelta() stats.Delta {
	return u.itemDelta
}

// Magic returns the unit's spell, nil for non-casters.
func (u *Unit) Magic() *MagicType {
	return u.Info.Magic
}

// Level returns the experience state.
func (u *Unit) Level() Level {
	return u.level
}

// IsDead reports whether effective hp dropped below 1.
func (u *Unit) IsDead() bool {
	return u.modified.HP < 1
}

// IsFullHP reports whether effective hp is at max.
func (u *Unit) IsFullHP() bool {
	return u.modified.HP >= u.modified.MaxHP
}

// Heal restores up to amount hp, capped at effective max hp.
// Returns true if any hp was restored.
func (u *Unit) Heal(amount int64) bool {
	if amount <= 0 || u.IsFullHP() {
		return false
	}
	restored := min(amount, u.modified.MaxHP-u.modified.HP)
	u.base.HP += restored
	u.Recompute()
	return true
}

// TakeDamage removes total hp. Effective hp never drops below -max hp nor
// stays above max hp. Returns the hp actually removed.
func (u *Unit) TakeDamage(total int64) int64 {
	before := u.modified.HP
	after := before - total
	if after < -u.modified.MaxHP {
		after = -u.modified.MaxHP
	}
	if after > u.modified.MaxHP {
		after = u.modified.MaxHP
	}
	u.base.HP += after - before
	u.Recompute()

	if u.IsDead() && before >= 1 {
		slog.Debug("unit killed", "unit", u.Info.Name, "army", u.Army, "hp", u.modified.HP)
	}
	return before - after
}

// Kill drops effective hp to -max hp.
func (u *Unit) Kill() {
	u.TakeDamage(u.modified.HP + u.modified.MaxHP)
}

// SetMoves sets the remaining moves on the base block.
func (u *Unit) SetMoves(moves int64) {
	u.base.Moves = moves
	u.Recompute()
}

// AddEffect attaches e and folds it into the effective stats.
// Returns false if an effect of the same kind is already active.
func (u *Unit) AddEffect(e effect.Effect) bool {
	if !u.effects.Add(e) {
		return false
	}
	u.Recompute()
	return true
}

// RemoveEffect dispels the active effect of kind.
func (u *Unit) RemoveEffect(kind effect.Kind) bool {
	if _, ok := u.effects.Remove(kind); !ok {
		return false
	}
	u.Recompute()
	return true
}

// HasEffect reports whether an effect of kind is active.
func (u *Unit) HasEffect(kind effect.Kind) bool {
	return u.effects.Has(kind)
}

// Effects returns the active effects in insertion order.
func (u *Unit) Effects() []effect.Effect {
	return u.effects.All()
}

// AdvanceEffects ticks every effect once, applies their hp change and unwinds
// expired contributions. Returns the expired effects.
func (u *Unit) AdvanceEffects() []effect.Effect {
	hpChange, expired := u.effects.Advance()
	u.Recompute()
	if hpChange < 0 {
		u.TakeDamage(-hpChange)
	} else if hpChange > 0 {
		u.Heal(hpChange)
	}
	return expired
}

// GrantXP adds experience and applies level-ups. Returns the levels gained.
func (u *Unit) GrantXP(xp int64) int {
	if xp <= 0 || u.level.MaxXP <= 0 {
		return 0
	}
	u.level.XP += xp
	gained := 0
	for u.level.MaxXP > 0 && u.level.XP >= u.level.MaxXP {
		u.level.XP -= u.level.MaxXP
		u.level.Level++
		u.level.MaxXP += u.Info.LevelUp.XPUp.Of(u.level.MaxXP)
		u.base = stats.Apply(u.base, u.Info.LevelUp.Stats)
		gained++
	}
	if gained > 0 {
		u.Recompute()
		slog.Debug("unit leveled up", "unit", u.Info.Name, "level", u.level.Level)
	}
	return gained
}

// Clone returns a deep copy that shares only immutable item definitions.
func (u *Unit) Clone() *Unit {
	c := *u
	c.effects = u.effects.Clone()
	if u.Info.Magic != nil {
		m := *u.Info.Magic
		c.Info.Magic = &m
	}
	return &c
}
