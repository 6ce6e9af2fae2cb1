package astro

import (
	"math"

	"github.com/astrointeract/astropulse/internal/domain/models"
)

// aspectState is the constant state label stamped on every record. True
// applying/separating detection needs relative angular velocity and is not
// derived yet.
const aspectState = "Applying"

// Matcher matches planet pairs against the fixed, priority-ordered aspect
// table. It is safe for concurrent use; the configuration it closes over is
// immutable.
type Matcher struct {
	cfg Config
}

// NewMatcher constructs a Matcher over the given configuration.
func NewMatcher(cfg Config) *Matcher {
	return &Matcher{cfg: cfg}
}

// Match tests a single planet pair and returns the matched aspect, if any.
//
// The circular separation is folded to at most 180 degrees, then checked
// against each aspect in priority order. The first aspect whose deviation is
// strictly below the applicable orb threshold wins, even if a later aspect
// would be a tighter match. The luminary orb table applies when either
// planet is the Sun or Moon.
func (m *Matcher) Match(p1, p2 models.PlanetPosition) (models.AspectRecord, bool) {
	sep := math.Abs(p1.Longitude - p2.Longitude)
	if sep > 180 {
		sep = 360 - sep
	}

	orbs := m.cfg.DefaultOrbs
	if m.cfg.Luminaries[p1.Name] || m.cfg.Luminaries[p2.Name] {
		orbs = m.cfg.LuminaryOrbs
	}

	for _, a := range m.cfg.Aspects {
		orb := math.Abs(sep - a.Angle)
		if orb < orbs[a.Kind] {
			return models.AspectRecord{
				Planet1: p1.Name,
				Sign1:   p1.Sign,
				Planet2: p2.Name,
				Sign2:   p2.Sign,
				Kind:    a.Kind,
				Orb:     orb,
				State:   aspectState,
			}, true
		}
	}
	return models.AspectRecord{}, false
}

// ChartAspects computes the aspect list for every planet pair across two
// charts. When same is set the charts are the same chart and only pairs with
// the first planet index strictly before the second are compared, so a
// planet never aspects itself and symmetric duplicates are not emitted.
func (m *Matcher) ChartAspects(c1, c2 models.Chart, same bool) []models.AspectRecord {
	records := make([]models.AspectRecord, 0)
	for i, p1 := range c1.Planets {
		for j, p2 := range c2.Planets {
			if same && i >= j {
				continue
			}
			if rec, ok := m.Match(p1, p2); ok {
				records = append(records, rec)
			}
		}
	}
	return records
}
