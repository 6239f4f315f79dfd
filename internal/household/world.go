package household

import (
	"log/slog"

	"github.com/talgya/households/internal/rng"
)

// World is the top-level container: a set of Communities sharing one RNG
// and one monotonic year counter. It is created once and progressed
// repeatedly by Advance.
type World struct {
	Communities []*Community
	Year        int
	RNG         *rng.Source

	library map[string][]*Diary
	log     *slog.Logger
}

// New constructs an empty World seeded with the given RNG source. Pass a
// logger to receive phase-transition diagnostics; nil disables logging.
func New(source *rng.Source, logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &World{
		RNG:     source,
		library: make(map[string][]*Diary),
		log:     logger,
	}
}

// AddCommunity attaches a Community to the World and sets its back
// reference.
func (w *World) AddCommunity(c *Community) {
	c.World = w
	w.Communities = append(w.Communities, c)
}

// registerDiary indexes a newly created Diary under the given entity kind
// ("person" or "house") so it remains queryable after the owning entity
// dies or is demolished.
func (w *World) registerDiary(kind string, d *Diary) {
	w.library[kind] = append(w.library[kind], d)
}

// Diaries returns every Diary of the given kind ever registered with the
// World, living or dead entities alike.
func (w *World) Diaries(kind string) []*Diary {
	return w.library[kind]
}

// Advance runs one simulated year across every Community in the World: a
// stable-snapshot death phase, then mobility, then marriage, then birth,
// each internally shuffled by the World's RNG, followed by a statistics
// rollup and the year increment. This is the sole entry point the
// scheduler design names; callers drive the simulation purely by invoking
// Advance repeatedly.
func (w *World) Advance() error {
	for _, c := range w.Communities {
		c.BirthsThisYear = 0
		c.DeathsThisYear = 0
		c.MarriagesThisYear = 0
		c.MovesThisYear = 0

		if err := w.runPhase(c, phaseDeath); err != nil {
			return err
		}
		if err := w.runPhase(c, phaseMobility); err != nil {
			return err
		}
		if err := w.runPhase(c, phaseMarriage); err != nil {
			return err
		}
		if err := w.runPhase(c, phaseBirth); err != nil {
			return err
		}
	}

	w.Year++
	for _, c := range w.Communities {
		c.refreshStats()
	}
	w.log.Debug("year advanced", "year", w.Year)
	return nil
}

type phaseKind int

const (
	phaseDeath phaseKind = iota
	phaseMobility
	phaseMarriage
	phaseBirth
)

// runPhase takes a stable snapshot of the Community's living population,
// shuffles it with the World RNG, and invokes the phase's handler on each
// Person in turn. Persons born mid-phase are not part of this snapshot and
// so are not iterated again until next year; Persons who died earlier in
// the same phase are skipped by their handler's own liveness check.
func (w *World) runPhase(c *Community, phase phaseKind) error {
	snapshot := c.LivingSnapshot()
	w.RNG.Shuffle(len(snapshot), func(i, j int) {
		snapshot[i], snapshot[j] = snapshot[j], snapshot[i]
	})

	for _, p := range snapshot {
		if !p.IsAlive() {
			continue
		}
		var happened bool
		var err error
		switch phase {
		case phaseDeath:
			happened, err = p.Die()
			if happened {
				c.DeathsThisYear++
			}
		case phaseMobility:
			happened, err = p.LeaveHome()
			if happened {
				c.MovesThisYear++
			}
		case phaseMarriage:
			happened, err = p.Marry()
			if happened {
				c.MarriagesThisYear++
			}
		case phaseBirth:
			happened, err = p.GiveBirth()
			if happened {
				c.BirthsThisYear++
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
