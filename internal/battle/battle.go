// Package battle drives a fight between two armies on top of the combat engine.
// Manages placement, checked actions, time and the action journal.
package battle

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/udisondev/skirmish/internal/game/bonus"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/game/grid"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	ErrOutOfGrid     = errors.New("position out of grid")
	ErrEmptySlot     = errors.New("empty slot")
	ErrOccupied      = errors.New("slot occupied")
	ErrUnknownArmy   = errors.New("unknown army")
	ErrIllegalAction = errors.New("illegal action")
	ErrFinished      = errors.New("battle finished")
)

// Armies in a battle.
const (
	ArmyA = 0
	ArmyB = 1
)

// Result is the outcome of a battle.
type Result int

const (
	ResultContinue Result = iota // Both armies have living units
	ResultArmyAWin
	ResultArmyBWin
	ResultDraw // Nobody left standing
)

func (r Result) String() string {
	switch r {
	case ResultContinue:
		return "continue"
	case ResultArmyAWin:
		return "army_a_win"
	case ResultArmyBWin:
		return "army_b_win"
	case ResultDraw:
		return "draw"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}

// HoursPerDay wraps Time.Hour.
const HoursPerDay = 24

// Battle owns two armies and every unit placed in them.
// Methods are safe for concurrent use; units must not be mutated outside the battle.
type Battle struct {
	mu sync.Mutex

	id           uuid.UUID
	layout       grid.Layout
	reserveLines int
	armies       [2][]*model.Unit
	turn         int
	time         bonus.Time
	journal      []Record
}

// New creates an empty battle for layout with reserveLines reserve rows per army.
func New(layout grid.Layout, reserveLines int) *Battle {
	if reserveLines < 0 {
		reserveLines = 0
	}
	slots := layout.Slots(reserveLines)
	return &Battle{
		id:           uuid.New(),
		layout:       layout,
		reserveLines: reserveLines,
		armies:       [2][]*model.Unit{make([]*model.Unit, slots), make([]*model.Unit, slots)},
	}
}

// ID returns the battle identifier.
func (b *Battle) ID() uuid.UUID { return b.id }

// Layout returns the grid layout.
func (b *Battle) Layout() grid.Layout { return b.layout }

// Turn returns the number of completed ticks.
func (b *Battle) Turn() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.turn
}

// Time returns the battle clock.
func (b *Battle) Time() bonus.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.time
}

// Place puts u into army at pos. u.Army is overwritten with army.
func (b *Battle) Place(army int, pos grid.Position, u *model.Unit) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx, err := b.slot(army, pos)
	if err != nil {
		return err
	}
	if b.armies[army][idx] != nil {
		return fmt.Errorf("place %s at %v: %w", u.Info.Name, pos, ErrOccupied)
	}
	u.Army = army
	b.armies[army][idx] = u
	return nil
}

// UnitAt returns the unit of army at pos.
func (b *Battle) UnitAt(army int, pos grid.Position) (*model.Unit, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.unitAt(army, pos)
}

// Units returns every unit of army keyed by position.
func (b *Battle) Units(army int) (map[grid.Position]*model.Unit, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if army != ArmyA && army != ArmyB {
		return nil, ErrUnknownArmy
	}
	out := make(map[grid.Position]*model.Unit)
	for idx, u := range b.armies[army] {
		if u != nil {
			out[b.layout.PositionAt(idx)] = u
		}
	}
	return out, nil
}

// Start fires OnBattleStart for every placed unit.
func (b *Battle) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.each(func(_ int, _ grid.Position, u *model.Unit) {
		if bonus.OnBattleStart(u) {
			slog.Debug("battle start bonus", "battle", b.id, "unit", u.Info.Name, "bonus", u.Bonus())
		}
	})
	slog.Info("battle started", "battle", b.id)
}

// CanAct reports whether the unit at (actorArmy, from) may act on the unit at
// (targetArmy, to). Dead units neither act nor are targeted.
func (b *Battle) CanAct(actorArmy int, from grid.Position, targetArmy int, to grid.Position) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	actor, target, err := b.pair(actorArmy, from, targetArmy, to)
	if err != nil {
		return false, err
	}
	return b.legal(actor, target, from, to), nil
}

// Act executes the action of the unit at (actorArmy, from) against the unit
// at (targetArmy, to) and journals it.
func (b *Battle) Act(actorArmy int, from grid.Position, targetArmy int, to grid.Position) (combat.ActionKind, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.result() != ResultContinue {
		return combat.ActionNone, ErrFinished
	}
	actor, target, err := b.pair(actorArmy, from, targetArmy, to)
	if err != nil {
		return combat.ActionNone, err
	}
	if !b.legal(actor, target, from, to) {
		return combat.ActionNone, fmt.Errorf("%s %v -> %s %v: %w", actor.Info.Name, from, target.Info.Name, to, ErrIllegalAction)
	}

	hpBefore := target.Effective().HP
	kind, ok := combat.Execute(b.layout, actor, target, from, to)
	if !ok {
		// Legal but without effect, e.g. a curse on an already cursed unit.
		kind = combat.ActionNone
	}
	if target.IsDead() {
		combat.RewardKill(actor, target)
	}

	b.record(Record{
		Kind:       kind,
		Army:       actorArmy,
		From:       from,
		TargetArmy: targetArmy,
		To:         to,
		HPChange:   target.Effective().HP - hpBefore,
	})
	return kind, nil
}

// Move swaps the unit at from with whatever occupies to, within one army.
func (b *Battle) Move(army int, from, to grid.Position) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.result() != ResultContinue {
		return ErrFinished
	}
	src, err := b.slot(army, from)
	if err != nil {
		return err
	}
	dst, err := b.slot(army, to)
	if err != nil {
		return err
	}
	u := b.armies[army][src]
	if u == nil {
		return fmt.Errorf("move from %v: %w", from, ErrEmptySlot)
	}
	if u.IsDead() {
		return fmt.Errorf("move %s: %w", u.Info.Name, ErrIllegalAction)
	}

	b.armies[army][src], b.armies[army][dst] = b.armies[army][dst], u
	b.record(Record{Kind: combat.ActionMove, Army: army, From: from, TargetArmy: army, To: to})
	return nil
}

// Skip passes the turn of the unit at pos and fires its OnMoveSkip hook.
func (b *Battle) Skip(army int, pos grid.Position) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.result() != ResultContinue {
		return ErrFinished
	}
	u, err := b.unitAt(army, pos)
	if err != nil {
		return err
	}
	if u.IsDead() {
		return fmt.Errorf("skip %s: %w", u.Info.Name, ErrIllegalAction)
	}
	bonus.OnMoveSkip(u)
	b.record(Record{Kind: combat.ActionNone, Army: army, From: pos, TargetArmy: army, To: pos})
	return nil
}

// Tick advances every unit by one tick and the clock by one hour.
// Returns the number of effects that expired.
func (b *Battle) Tick() (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.result() != ResultContinue {
		return 0, ErrFinished
	}
	b.turn++
	b.time.Hour++
	if b.time.Hour >= HoursPerDay {
		b.time.Hour = 0
		b.time.Day++
	}

	expired := 0
	b.each(func(_ int, _ grid.Position, u *model.Unit) {
		expired += len(combat.Tick(u))
		if bonus.OnHour(u, b.time) {
			slog.Debug("hour bonus", "battle", b.id, "unit", u.Info.Name, "bonus", u.Bonus())
		}
	})
	return expired, nil
}

// Result reports whether the battle is over and who won.
func (b *Battle) Result() Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.result()
}

func (b *Battle) result() Result {
	aliveA, aliveB := b.alive(ArmyA), b.alive(ArmyB)
	switch {
	case aliveA && aliveB:
		return ResultContinue
	case aliveA:
		return ResultArmyAWin
	case aliveB:
		return ResultArmyBWin
	default:
		return ResultDraw
	}
}

func (b *Battle) alive(army int) bool {
	for _, u := range b.armies[army] {
		if u != nil && !u.IsDead() {
			return true
		}
	}
	return false
}

func (b *Battle) legal(actor, target *model.Unit, from, to grid.Position) bool {
	if actor.IsDead() || target.IsDead() {
		return false
	}
	return combat.CanTarget(b.layout, actor, target, from, to)
}

func (b *Battle) pair(actorArmy int, from grid.Position, targetArmy int, to grid.Position) (*model.Unit, *model.Unit, error) {
	actor, err := b.unitAt(actorArmy, from)
	if err != nil {
		return nil, nil, fmt.Errorf("actor: %w", err)
	}
	target, err := b.unitAt(targetArmy, to)
	if err != nil {
		return nil, nil, fmt.Errorf("target: %w", err)
	}
	return actor, target, nil
}

func (b *Battle) unitAt(army int, pos grid.Position) (*model.Unit, error) {
	idx, err := b.slot(army, pos)
	if err != nil {
		return nil, err
	}
	u := b.armies[army][idx]
	if u == nil {
		return nil, fmt.Errorf("%v: %w", pos, ErrEmptySlot)
	}
	return u, nil
}

func (b *Battle) slot(army int, pos grid.Position) (int, error) {
	if army != ArmyA && army != ArmyB {
		return 0, fmt.Errorf("army %d: %w", army, ErrUnknownArmy)
	}
	if !b.layout.Contains(pos, b.reserveLines) {
		return 0, fmt.Errorf("%v: %w", pos, ErrOutOfGrid)
	}
	return b.layout.Index(pos), nil
}

// each visits every placed unit, army A first, in slot order.
func (b *Battle) each(fn func(army int, pos grid.Position, u *model.Unit)) {
	for army, slots := range b.armies {
		for idx, u := range slots {
			if u != nil {
				fn(army, b.layout.PositionAt(idx), u)
			}
		}
	}
}
