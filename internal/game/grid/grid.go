package grid

import "fmt"

// DefaultTroopsPerLine is the number of columns in a battle line.
const DefaultTroopsPerLine = 3

// Lines of an army layout. Line 0 is the back line, line 1 faces the enemy,
// every line past FrontLine belongs to the reserve.
const (
	BackLine  = 0
	FrontLine = 1
)

// Zone classifies a position within an army's layout.
type Zone uint8

const (
	ZoneFront Zone = iota
	ZoneBack
	ZoneReserve
)

func (z Zone) String() string {
	switch z {
	case ZoneFront:
		return "front"
	case ZoneBack:
		return "back"
	case ZoneReserve:
		return "reserve"
	default:
		return fmt.Sprintf("zone(%d)", uint8(z))
	}
}

// Position is a (column, line) slot inside one army's grid.
type Position struct {
	Column int `yaml:"column"`
	Line   int `yaml:"line"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Column, p.Line)
}

// Layout describes the shape of an army grid.
type Layout struct {
	TroopsPerLine int
}

// DefaultLayout is the layout used when nothing else is configured.
var DefaultLayout = Layout{TroopsPerLine: DefaultTroopsPerLine}

// Index flattens a position into a slot index.
func (l Layout) Index(p Position) int {
	return p.Column + p.Line*l.TroopsPerLine
}

// PositionAt is the inverse of Index.
func (l Layout) PositionAt(index int) Position {
	return Position{Column: index % l.TroopsPerLine, Line: index / l.TroopsPerLine}
}

// Zone returns the zone of p. Every position maps to exactly one zone;
// anything past the two battle lines is reserve.
func (l Layout) Zone(p Position) Zone {
	idx := l.Index(p)
	switch {
	case idx < l.TroopsPerLine:
		return ZoneBack
	case idx < 2*l.TroopsPerLine:
		return ZoneFront
	default:
		return ZoneReserve
	}
}

// Contains reports whether p is a valid slot for a grid with reserveLines reserve lines.
func (l Layout) Contains(p Position, reserveLines int) bool {
	return p.Column >= 0 && p.Column < l.TroopsPerLine &&
		p.Line >= 0 && p.Line < 2+reserveLines
}

// Slots returns the total slot count for reserveLines reserve lines.
func (l Layout) Slots(reserveLines int) int {
	return (2 + reserveLines) * l.TroopsPerLine
}
