package battle

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/blake2b"

	"github.com/udisondev/skirmish/internal/game/stats"
	"github.com/udisondev/skirmish/internal/model"
)

// DigestSize is the length of a state digest.
const DigestSize = blake2b.Size256

// Digest hashes the observable battle state: the clock and every slot with
// its unit's effective stats, experience, bonus and active effects. Two
// battles that went through the same actions produce the same digest
// regardless of their IDs.
func (b *Battle) Digest() [DigestSize]byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	h, err := blake2b.New256(nil)
	if err != nil {
		// Only a key longer than 64 bytes fails.
		panic(err)
	}

	w := digestWriter{h: h}
	w.putInt(int64(b.layout.TroopsPerLine))
	w.putInt(int64(b.reserveLines))
	w.putInt(int64(b.turn))
	w.putInt(int64(b.time.Day))
	w.putInt(int64(b.time.Hour))

	for _, slots := range b.armies {
		for _, u := range slots {
			if u == nil {
				w.putInt(0)
				continue
			}
			w.putInt(1)
			w.unit(u)
		}
	}

	var out [DigestSize]byte
	h.Sum(out[:0])
	return out
}

type digestWriter struct {
	h   hash.Hash
	buf [8]byte
}

func (w *digestWriter) putInt(v int64) {
	binary.LittleEndian.PutUint64(w.buf[:], uint64(v))
	w.h.Write(w.buf[:])
}

func (w *digestWriter) unit(u *model.Unit) {
	w.putInt(int64(len(u.Info.Name)))
	w.h.Write([]byte(u.Info.Name))
	w.putInt(int64(u.Bonus()))
	w.stats(u.Effective())
	lvl := u.Level()
	w.putInt(lvl.Level)
	w.putInt(lvl.XP)
	for _, e := range u.Effects() {
		w.putInt(int64(e.Type))
		w.putInt(e.Magnitude)
		w.putInt(int64(e.Remaining))
	}
	w.putInt(-1)
}

func (w *digestWriter) stats(s stats.Stats) {
	for _, v := range []int64{
		s.HP, s.MaxHP,
		s.Power.Hand, s.Power.Ranged, s.Power.Magic,
		int64(s.Defense.HandPercent), int64(s.Defense.RangedPercent),
		int64(s.Defense.LifePercent), int64(s.Defense.DeathPercent), int64(s.Defense.ElementalPercent),
		s.Defense.HandUnits, s.Defense.RangedUnits, s.Defense.MagicUnits,
		s.Moves, s.MaxMoves, s.Speed, int64(s.Vamp), int64(s.Regen),
	} {
		w.putInt(v)
	}
}
