package model

import "fmt"

// BonusKind is a unit's single passive capability. The set is closed;
// hook behaviour for every variant lives in package bonus.
type BonusKind uint8

const (
	BonusNone BonusKind = iota
	BonusSpearDefence
	BonusGodAnger
	BonusGodStrike
	BonusAncientVampiresGist
	BonusArtillery
	BonusBerserk
	BonusBlock
	BonusDeadDodging
	BonusDodging
	BonusFast
	BonusDeadRessurect
	BonusFireAttack
	BonusPoisonAttack
	BonusGhost
	BonusInvulnerable
	BonusDefencePiercing
	BonusFastDead
	BonusFlankStrike
	BonusGarrison
	BonusStealth

	bonusCount
)

var bonusNames = [bonusCount]string{
	BonusNone:                "none",
	BonusSpearDefence:        "spear_defence",
	BonusGodAnger:            "god_anger",
	BonusGodStrike:           "god_strike",
	BonusAncientVampiresGist: "ancient_vampires_gist",
	BonusArtillery:           "artillery",
	BonusBerserk:             "berserk",
	BonusBlock:               "block",
	BonusDeadDodging:         "dead_dodging",
	BonusDodging:             "dodging",
	BonusFast:                "fast",
	BonusDeadRessurect:       "dead_ressurect",
	BonusFireAttack:          "fire_attack",
	BonusPoisonAttack:        "poison_attack",
	BonusGhost:               "ghost",
	BonusInvulnerable:        "invulnerable",
	BonusDefencePiercing:     "defence_piercing",
	BonusFastDead:            "fast_dead",
	BonusFlankStrike:         "flank_strike",
	BonusGarrison:            "garrison",
	BonusStealth:             "stealth",
}

// AllBonuses returns every variant in declaration order.
func AllBonuses() []BonusKind {
	out := make([]BonusKind, bonusCount)
	for i := range out {
		out[i] = BonusKind(i)
	}
	return out
}

func (b BonusKind) String() string {
	if b < bonusCount {
		return bonusNames[b]
	}
	return fmt.Sprintf("bonus(%d)", uint8(b))
}

// MarshalText implements encoding.TextMarshaler.
func (b BonusKind) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BonusKind) UnmarshalText(text []byte) error {
	for i, n := range bonusNames {
		if n == string(text) {
			*b = BonusKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown bonus %q", text)
}
