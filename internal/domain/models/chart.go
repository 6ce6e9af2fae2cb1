package models

// ChartType identifies one of the six chart kinds computed per horoscope.
type ChartType string

const (
	ChartNatal        ChartType = "natal"
	ChartProgressed   ChartType = "progressed"
	ChartTransit      ChartType = "transit"
	ChartSolarArc     ChartType = "solarArc"
	ChartSolarReturn  ChartType = "solarReturn"
	ChartHeliocentric ChartType = "heliocentric"
)

// ChartOrder is the canonical enumeration order of chart types. It decides
// the order charts are derived in and the order chart pairs are keyed in the
// aspect matrix; map iteration order is never relied on.
var ChartOrder = []ChartType{
	ChartNatal,
	ChartProgressed,
	ChartTransit,
	ChartSolarArc,
	ChartSolarReturn,
	ChartHeliocentric,
}

// ChartCodes maps each chart type to the short code used in aspect pair keys
// (e.g. "N-T" for natal vs. transit).
var ChartCodes = map[ChartType]string{
	ChartNatal:        "N",
	ChartProgressed:   "P",
	ChartTransit:      "T",
	ChartSolarArc:     "SA",
	ChartSolarReturn:  "SR",
	ChartHeliocentric: "H",
}

// PlanetPosition is the computed placement of a single body within one chart.
//
// Invariants:
//   - Longitude is in [0, 360).
//   - SignIndex = floor(Longitude / 30), in [0, 11]; Sign is its zodiac name.
//   - Degree = Longitude mod 30, in [0, 30).
//   - House is non-nil only when the owning chart carries cusps and the
//     bucketing succeeded; it is then in [1, 12].
type PlanetPosition struct {
	Name       string
	Longitude  float64
	SignIndex  int
	Sign       string
	Degree     float64
	Retrograde bool
	House      *int
}

// Chart is one computed chart: an ordered planet list plus optional house
// cusps. Planets keeps the fixed body enumeration order so that aspect
// matching and serialization are deterministic.
//
// A chart whose upstream computation failed (e.g. an unsolvable solar return)
// is still present, with an empty planet list and nil cusps; it is never
// absent from a horoscope.
type Chart struct {
	Type    ChartType
	Planets []PlanetPosition
	Cusps   []float64
}

// Planet returns the named planet's position and whether it is present.
func (c Chart) Planet(name string) (PlanetPosition, bool) {
	for _, p := range c.Planets {
		if p.Name == name {
			return p, true
		}
	}
	return PlanetPosition{}, false
}

// Horoscope is the full result of one computation: the six charts keyed by
// type, and the aspect matrix keyed by "<code1>-<code2>" pair keys.
type Horoscope struct {
	Charts  map[ChartType]Chart
	Aspects map[string][]AspectRecord
}
