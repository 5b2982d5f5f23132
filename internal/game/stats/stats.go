package stats

// Percent is an integer percentage used for defenses, vampirism and regeneration.
// Values outside [0, 100] are legal in deltas; Of clamps before applying.
type Percent int64

// Of returns ⌊x × p / 100⌋ with p clamped to [0, 100].
func (p Percent) Of(x int64) int64 {
	if x <= 0 {
		return 0
	}
	return x * int64(p.Clamp()) / 100
}

// Clamp returns p limited to [0, 100].
func (p Percent) Clamp() Percent {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Power is a damage or healing magnitude split into channels.
type Power struct {
	Hand   int64 `yaml:"hand"`
	Ranged int64 `yaml:"ranged"`
	Magic  int64 `yaml:"magic"`
}

// Sum returns the total of all channels.
func (p Power) Sum() int64 {
	return p.Hand + p.Ranged + p.Magic
}

// HandOnly returns a copy with ranged and magic channels zeroed.
func (p Power) HandOnly() Power { return Power{Hand: p.Hand} }

// RangedOnly returns a copy with hand and magic channels zeroed.
func (p Power) RangedOnly() Power { return Power{Ranged: p.Ranged} }

// MagicOnly returns a copy with hand and ranged channels zeroed.
func (p Power) MagicOnly() Power { return Power{Magic: p.Magic} }

// Scale multiplies every channel by num/den using integer arithmetic.
func (p Power) Scale(num, den int64) Power {
	return Power{
		Hand:   p.Hand * num / den,
		Ranged: p.Ranged * num / den,
		Magic:  p.Magic * num / den,
	}
}

// Defense holds percent and flat absorption per channel.
// Magic percent is chosen by school; flat magic absorption is shared.
type Defense struct {
	HandPercent      Percent `yaml:"hand_percent"`
	RangedPercent    Percent `yaml:"ranged_percent"`
	LifePercent      Percent `yaml:"life_percent"`
	DeathPercent     Percent `yaml:"death_percent"`
	ElementalPercent Percent `yaml:"elemental_percent"`
	HandUnits        int64   `yaml:"hand_units"`
	RangedUnits      int64   `yaml:"ranged_units"`
	MagicUnits       int64   `yaml:"magic_units"`
}

// Stats is a unit's stat block. The same shape is used for base and effective values.
type Stats struct {
	HP       int64   `yaml:"hp"`
	MaxHP    int64   `yaml:"max_hp"`
	Power    Power   `yaml:"power"`
	Defense  Defense `yaml:"defense"`
	Moves    int64   `yaml:"moves"`
	MaxMoves int64   `yaml:"max_moves"`
	Speed    int64   `yaml:"speed"`
	Vamp     Percent `yaml:"vamp"`
	Regen    Percent `yaml:"regen"`
}

// Delta is a signed modifier folded into base stats by items and effects.
// It has the same shape as Stats so that deltas from any source can be summed.
type Delta Stats

// Add returns d + o.
func (d Delta) Add(o Delta) Delta {
	return Delta{
		HP:    d.HP + o.HP,
		MaxHP: d.MaxHP + o.MaxHP,
		Power: Power{
			Hand:   d.Power.Hand + o.Power.Hand,
			Ranged: d.Power.Ranged + o.Power.Ranged,
			Magic:  d.Power.Magic + o.Power.Magic,
		},
		Defense: Defense{
			HandPercent:      d.Defense.HandPercent + o.Defense.HandPercent,
			RangedPercent:    d.Defense.RangedPercent + o.Defense.RangedPercent,
			LifePercent:      d.Defense.LifePercent + o.Defense.LifePercent,
			DeathPercent:     d.Defense.DeathPercent + o.Defense.DeathPercent,
			ElementalPercent: d.Defense.ElementalPercent + o.Defense.ElementalPercent,
			HandUnits:        d.Defense.HandUnits + o.Defense.HandUnits,
			RangedUnits:      d.Defense.RangedUnits + o.Defense.RangedUnits,
			MagicUnits:       d.Defense.MagicUnits + o.Defense.MagicUnits,
		},
		Moves:    d.Moves + o.Moves,
		MaxMoves: d.MaxMoves + o.MaxMoves,
		Speed:    d.Speed + o.Speed,
		Vamp:     d.Vamp + o.Vamp,
		Regen:    d.Regen + o.Regen,
	}
}

// Neg returns -d.
func (d Delta) Neg() Delta {
	return Delta{}.Sub(d)
}

// Sub returns d - o.
func (d Delta) Sub(o Delta) Delta {
	return Delta{
		HP:    d.HP - o.HP,
		MaxHP: d.MaxHP - o.MaxHP,
		Power: Power{
			Hand:   d.Power.Hand - o.Power.Hand,
			Ranged: d.Power.Ranged - o.Power.Ranged,
			Magic:  d.Power.Magic - o.Power.Magic,
		},
		Defense: Defense{
			HandPercent:      d.Defense.HandPercent - o.Defense.HandPercent,
			RangedPercent:    d.Defense.RangedPercent - o.Defense.RangedPercent,
			LifePercent:      d.Defense.LifePercent - o.Defense.LifePercent,
			DeathPercent:     d.Defense.DeathPercent - o.Defense.DeathPercent,
			ElementalPercent: d.Defense.ElementalPercent - o.Defense.ElementalPercent,
			HandUnits:        d.Defense.HandUnits - o.Defense.HandUnits,
			RangedUnits:      d.Defense.RangedUnits - o.Defense.RangedUnits,
			MagicUnits:       d.Defense.MagicUnits - o.Defense.MagicUnits,
		},
		Moves:    d.Moves - o.Moves,
		MaxMoves: d.MaxMoves - o.MaxMoves,
		Speed:    d.Speed - o.Speed,
		Vamp:     d.Vamp - o.Vamp,
		Regen:    d.Regen - o.Regen,
	}
}

// IsZero reports whether d changes nothing.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// Apply returns base with every delta folded in.
//
// Power channels and flat absorptions floor at zero: a curse can disable a
// channel but never turn it into a negative value. HP is not floored here,
// negative hp is the death marker.
func Apply(base Stats, deltas ...Delta) Stats {
	sum := Delta(base)
	for _, d := range deltas {
		sum = sum.Add(d)
	}
	out := Stats(sum)

	out.Power.Hand = floor0(out.Power.Hand)
	out.Power.Ranged = floor0(out.Power.Ranged)
	out.Power.Magic = floor0(out.Power.Magic)
	out.Defense.HandUnits = floor0(out.Defense.HandUnits)
	out.Defense.RangedUnits = floor0(out.Defense.RangedUnits)
	out.Defense.MagicUnits = floor0(out.Defense.MagicUnits)
	out.MaxHP = floor0(out.MaxHP)
	return out
}

func floor0(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
