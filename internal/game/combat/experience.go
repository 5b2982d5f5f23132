package combat

import (
	"log/slog"

	"github.com/udisondev/skirmish/internal/model"
)

// KillXP is the experience earned for defeating victim: its max hp per level,
// counting level zero as one.
func KillXP(victim *model.Unit) int64 {
	return victim.Effective().MaxHP * (victim.Level().Level + 1)
}

// RewardKill grants killer the experience for victim and returns the levels
// gained. Dead killers and victims that are still standing earn nothing.
func RewardKill(killer, victim *model.Unit) int {
	if killer == nil || victim == nil || killer.IsDead() || !victim.IsDead() {
		return 0
	}

	xp := KillXP(victim)
	gained := killer.GrantXP(xp)

	slog.Debug("kill rewarded",
		"killer", killer.Info.Name,
		"victim", victim.Info.Name,
		"xp", xp,
		"levels", gained)

	return gained
}
