package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name string
		p    Percent
		x    int64
		want int64
	}{
		{"eighty percent floors", 80, 7, 5},
		{"zero percent", 0, 50, 0},
		{"full", 100, 50, 50},
		{"over hundred clamps", 150, 10, 10},
		{"negative percent clamps", -20, 10, 0},
		{"negative input", 50, -4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Of(tt.x))
		})
	}
}

func TestDeltaAddSubRoundTrip(t *testing.T) {
	a := Delta{HP: 3, MaxHP: 5, Power: Power{Hand: 4, Magic: -2}, Defense: Defense{HandPercent: 10, RangedUnits: 2}, Speed: 1, Vamp: 5}
	b := Delta{MaxHP: -1, Power: Power{Ranged: 7}, Defense: Defense{DeathPercent: 25}, Moves: 1, Regen: 3}

	assert.Equal(t, a, a.Add(b).Sub(b))
	assert.Equal(t, Delta{}, a.Add(a.Neg()))
	assert.True(t, Delta{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestApply(t *testing.T) {
	base := Stats{
		HP: 20, MaxHP: 20,
		Power:   Power{Hand: 10, Magic: 3},
		Defense: Defense{HandUnits: 2},
		Speed:   5,
	}

	t.Run("no deltas is identity", func(t *testing.T) {
		assert.Equal(t, base, Apply(base))
	})

	t.Run("sums deltas", func(t *testing.T) {
		got := Apply(base, Delta{Power: Power{Hand: 2}}, Delta{MaxHP: 5, Speed: -1})
		assert.Equal(t, int64(12), got.Power.Hand)
		assert.Equal(t, int64(25), got.MaxHP)
		assert.Equal(t, int64(4), got.Speed)
	})

	t.Run("channels floor at zero", func(t *testing.T) {
		got := Apply(base, Delta{Power: Power{Magic: -10}, Defense: Defense{HandUnits: -5}})
		assert.Equal(t, int64(0), got.Power.Magic)
		assert.Equal(t, int64(0), got.Defense.HandUnits)
	})

	t.Run("hp is not floored", func(t *testing.T) {
		got := Apply(Stats{HP: -5, MaxHP: 20})
		assert.Equal(t, int64(-5), got.HP)
	})

	t.Run("idempotent", func(t *testing.T) {
		d := Delta{Power: Power{Ranged: 3}}
		assert.Equal(t, Apply(base, d), Apply(base, d))
	})
}

func TestPowerHelpers(t *testing.T) {
	p := Power{Hand: 4, Ranged: 6, Magic: 8}
	assert.Equal(t, int64(18), p.Sum())
	assert.Equal(t, Power{Hand: 4}, p.HandOnly())
	assert.Equal(t, Power{Ranged: 6}, p.RangedOnly())
	assert.Equal(t, Power{Magic: 8}, p.MagicOnly())
	assert.Equal(t, Power{Hand: 2, Ranged: 3, Magic: 4}, p.Scale(1, 2))
}
