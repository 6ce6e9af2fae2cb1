package astro

import "github.com/astrointeract/astropulse/internal/domain/models"

// AssignHouse buckets an ecliptic longitude into one of the 12 house sectors
// described by cusps (a circular, nominally ascending 12-entry sequence that
// may wrap past 360 between consecutive cusps).
//
// Sector i spans [cusps[i], cusps[i+1]) going forward around the circle; when
// the sector crosses 0 degrees, membership is pos >= cusps[i] OR pos < the
// next cusp. The first matching sector in cusp order wins and its house
// number (i+1) is returned. A well-formed cusp sequence partitions the circle
// exactly once, so a miss indicates malformed input and ok is false.
func AssignHouse(cusps []float64, pos float64) (house int, ok bool) {
	if len(cusps) != 12 {
		return 0, false
	}
	for i := 0; i < 12; i++ {
		c1, c2 := cusps[i], cusps[(i+1)%12]
		switch {
		case c1 < c2:
			if pos >= c1 && pos < c2 {
				return i + 1, true
			}
		case c1 > c2:
			// Sector wraps across 0 degrees.
			if pos >= c1 || pos < c2 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// assignHouses stamps a house number onto every planet that falls inside a
// sector. Planets that cannot be bucketed are left without a house.
func assignHouses(planets []models.PlanetPosition, cusps []float64) {
	for i := range planets {
		if h, ok := AssignHouse(cusps, planets[i].Longitude); ok {
			planets[i].House = &h
		}
	}
}
