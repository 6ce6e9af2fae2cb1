package astro

import "context"

// Position is a single body placement as reported by the ephemeris boundary.
// Retrograde is true exactly when the body's longitudinal speed was negative.
type Position struct {
	Longitude  float64
	Retrograde bool
}

// Houses is a house-system result from the ephemeris boundary: the 12 cusp
// longitudes in house order plus the ascendant (the house-1 cusp).
type Houses struct {
	Cusps     []float64
	Ascendant float64
}

// PositionProvider resolves a body's ecliptic longitude at a Julian day,
// geocentric by default or heliocentric when helio is set.
type PositionProvider interface {
	Position(ctx context.Context, jd float64, body int, helio bool) (Position, error)
}

// HouseProvider resolves Placidus house cusps for a moment and place, and
// locates solar-return moments.
//
// Houses may legitimately fail (e.g. at polar latitudes); callers treat that
// as non-fatal and leave the chart without houses. A SolarReturn error
// degrades that one chart to empty, never the whole request.
type HouseProvider interface {
	Houses(ctx context.Context, jd, lat, lon float64) (Houses, error)
	SolarReturn(ctx context.Context, natalJD float64, year int) (float64, error)
}

// GeoProvider maps a free-text location to coordinates. A failed lookup
// yields the (0, 0) sentinel rather than an error; the engine computes
// houses against it as if it were a valid place.
type GeoProvider interface {
	Geocode(ctx context.Context, location string) (lat, lon float64)
}
