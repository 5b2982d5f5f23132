package model

import "fmt"

// School is the alignment of a unit's magic.
type School uint8

const (
	SchoolLife School = iota
	SchoolDeath
	SchoolElemental
)

var schoolNames = map[School]string{
	SchoolLife:      "life",
	SchoolDeath:     "death",
	SchoolElemental: "elemental",
}

func (s School) String() string {
	if n, ok := schoolNames[s]; ok {
		return n
	}
	return fmt.Sprintf("school(%d)", uint8(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s School) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *School) UnmarshalText(text []byte) error {
	for k, n := range schoolNames {
		if n == string(text) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown magic school %q", text)
}

// Direction restricts which relation a spell may target.
type Direction uint8

const (
	ToAlly Direction = iota
	ToAll
	ToEnemy
	CurseOnly
	StrikeOnly
	BlessOnly
	CureOnly
)

var directionNames = map[Direction]string{
	ToAlly:     "to_ally",
	ToAll:      "to_all",
	ToEnemy:    "to_enemy",
	CurseOnly:  "curse_only",
	StrikeOnly: "strike_only",
	BlessOnly:  "bless_only",
	CureOnly:   "cure_only",
}

func (d Direction) String() string {
	if n, ok := directionNames[d]; ok {
		return n
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	for k, n := range directionNames {
		if n == string(text) {
			*d = k
			return nil
		}
	}
	return fmt.Errorf("unknown magic direction %q", text)
}

// MagicType is the school and direction of a unit's spell.
type MagicType struct {
	School    School    `yaml:"school"`
	Direction Direction `yaml:"direction"`
}

// Life returns a life spell with direction d.
func Life(d Direction) *MagicType { return &MagicType{School: SchoolLife, Direction: d} }

// Death returns a death spell with direction d.
func Death(d Direction) *MagicType { return &MagicType{School: SchoolDeath, Direction: d} }

// Elemental returns an elemental spell with direction d.
func Elemental(d Direction) *MagicType { return &MagicType{School: SchoolElemental, Direction: d} }

// IsAligned reports whether the school is Life or Death.
func (m MagicType) IsAligned() bool {
	return m.School == SchoolLife || m.School == SchoolDeath
}

func (m MagicType) String() string {
	return m.School.String() + "/" + m.Direction.String()
}
