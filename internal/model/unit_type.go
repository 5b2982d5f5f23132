package model

import "fmt"

// UnitType governs magic immunities.
type UnitType uint8

const (
	UnitPeople UnitType = iota
	UnitHero
	UnitAnimal
	UnitMecha
	UnitUndead
	UnitRogue
)

var unitTypeNames = map[UnitType]string{
	UnitPeople: "people",
	UnitHero:   "hero",
	UnitAnimal: "animal",
	UnitMecha:  "mecha",
	UnitUndead: "undead",
	UnitRogue:  "rogue",
}

func (t UnitType) String() string {
	if n, ok := unitTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("unit_type(%d)", uint8(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t UnitType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *UnitType) UnmarshalText(text []byte) error {
	for k, n := range unitTypeNames {
		if n == string(text) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown unit type %q", text)
}

// RejectsBenefit reports whether a unit of type t cannot receive a beneficial
// spell of school s.
//
//	Rogue, Hero, People: Death
//	Undead:              Life
//	Mecha:               Life and Death
//
// Elemental benefits are accepted by everyone.
func (t UnitType) RejectsBenefit(s School) bool {
	switch s {
	case SchoolDeath:
		return t == UnitRogue || t == UnitHero || t == UnitPeople || t == UnitMecha
	case SchoolLife:
		return t == UnitUndead || t == UnitMecha
	default:
		return false
	}
}

// AmplifiesHarm reports whether harmful magic of school s is doubled against t.
func (t UnitType) AmplifiesHarm(s School) bool {
	return s == SchoolDeath && t == UnitUndead
}
