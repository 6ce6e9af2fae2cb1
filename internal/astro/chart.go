package astro

import (
	"context"
	"fmt"
	"math"

	"github.com/astrointeract/astropulse/internal/domain/models"
)

// normalize folds a longitude into [0, 360).
func normalize(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	return lon
}

// builder assembles planet lists for one moment from raw provider positions.
type builder struct {
	cfg Config
	pos PositionProvider
}

// planetPosition derives the sign and in-sign degree for a longitude.
func (b *builder) planetPosition(name string, lon float64, retro bool) models.PlanetPosition {
	lon = normalize(lon)
	idx := int(lon / 30)
	return models.PlanetPosition{
		Name:       name,
		Longitude:  lon,
		SignIndex:  idx,
		Sign:       b.cfg.Signs[idx],
		Degree:     math.Mod(lon, 30),
		Retrograde: retro,
	}
}

// planets resolves every body of the set at the given Julian day, preserving
// the set's enumeration order. Any provider error aborts the whole list;
// degradation decisions belong to the caller.
func (b *builder) planets(ctx context.Context, jd float64, bodies []Body, helio bool) ([]models.PlanetPosition, error) {
	out := make([]models.PlanetPosition, 0, len(bodies))
	for _, body := range bodies {
		p, err := b.pos.Position(ctx, jd, body.ID, helio)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", body.Name, err)
		}
		out = append(out, b.planetPosition(body.Name, p.Longitude, p.Retrograde))
	}
	return out, nil
}
