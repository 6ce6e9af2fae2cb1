package astro

import (
	"context"
	"fmt"
	"time"

	"github.com/astrointeract/astropulse/internal/domain/models"
	"github.com/astrointeract/astropulse/internal/logger"
)

// NatalInput describes the birth moment and place.
type NatalInput struct {
	Date     string
	Time     string
	Location string
}

// DateInput is a date-only event chart request.
type DateInput struct {
	Date string
}

// SolarReturnInput requests the solar-return chart for a year and place.
type SolarReturnInput struct {
	Year     int
	Location string
}

// Request carries everything one horoscope computation needs.
type Request struct {
	Natal        NatalInput
	Progressed   DateInput
	Transit      DateInput
	SolarArc     DateInput
	SolarReturn  SolarReturnInput
	Heliocentric DateInput
}

// Engine derives the six charts and the cross-chart aspect matrix. It holds
// no per-request state; one Engine serves concurrent requests.
type Engine struct {
	cfg     Config
	builder *builder
	matcher *Matcher
	houses  HouseProvider
	geo     GeoProvider
}

// NewEngine wires the engine with its boundary providers and immutable
// configuration.
func NewEngine(cfg Config, pos PositionProvider, houses HouseProvider, geo GeoProvider) *Engine {
	return &Engine{
		cfg:     cfg,
		builder: &builder{cfg: cfg, pos: pos},
		matcher: NewMatcher(cfg),
		houses:  houses,
		geo:     geo,
	}
}

// Horoscope computes all six charts in the fixed enumeration order, then the
// full pairwise aspect matrix.
//
// Degradation rules: a failed geocode falls back to (0, 0), a failed house
// computation leaves planets unhoused, and a failed solar-return solve
// yields an empty solar-return chart. Only failures outside those paths
// abort the request.
func (e *Engine) Horoscope(ctx context.Context, req Request) (*models.Horoscope, error) {
	natalMoment, err := ParseMoment(req.Natal.Date, req.Natal.Time)
	if err != nil {
		return nil, fmt.Errorf("natal moment: %w", err)
	}
	natalJD := JulianDay(natalMoment)

	charts := make(map[models.ChartType]models.Chart, len(models.ChartOrder))

	// Natal: full set with houses at the birth place.
	lat, lon := e.geo.Geocode(ctx, req.Natal.Location)
	natal, err := e.locatedChart(ctx, models.ChartNatal, natalJD, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("natal chart: %w", err)
	}
	charts[models.ChartNatal] = natal

	// Progressed: day-for-a-year rule from the natal moment.
	progJD, err := progressedJulianDay(natalMoment, natalJD, req.Progressed.Date)
	if err != nil {
		return nil, fmt.Errorf("progressed chart: %w", err)
	}
	progPlanets, err := e.builder.planets(ctx, progJD, e.cfg.Bodies, false)
	if err != nil {
		return nil, fmt.Errorf("progressed chart: %w", err)
	}
	progressed := models.Chart{Type: models.ChartProgressed, Planets: progPlanets}
	charts[models.ChartProgressed] = progressed

	// Transit: plain positions at the event date, no houses.
	transit, err := e.dateChart(ctx, models.ChartTransit, req.Transit.Date, e.cfg.Bodies, false)
	if err != nil {
		return nil, fmt.Errorf("transit chart: %w", err)
	}
	charts[models.ChartTransit] = transit

	// Solar arc: the natal chart rotated by the progressed Sun's arc.
	solarArc, err := e.solarArcChart(natal, progressed)
	if err != nil {
		return nil, fmt.Errorf("solar arc chart: %w", err)
	}
	charts[models.ChartSolarArc] = solarArc

	// Solar return: located by the provider, degraded to empty on a failed solve.
	solarReturn, err := e.solarReturnChart(ctx, natalJD, req.SolarReturn)
	if err != nil {
		return nil, fmt.Errorf("solar return chart: %w", err)
	}
	charts[models.ChartSolarReturn] = solarReturn

	// Heliocentric: Earth plus outer bodies around the Sun, no houses.
	helio, err := e.dateChart(ctx, models.ChartHeliocentric, req.Heliocentric.Date, e.cfg.HelioBodies, true)
	if err != nil {
		return nil, fmt.Errorf("heliocentric chart: %w", err)
	}
	charts[models.ChartHeliocentric] = helio

	return &models.Horoscope{
		Charts:  charts,
		Aspects: e.aspectMatrix(charts),
	}, nil
}

// aspectMatrix walks every ordered chart-type pair (i <= j), skipping pairs
// where exactly one side is heliocentric: heliocentric positions share no
// reference frame with geocentric ones, so H only aspects itself.
func (e *Engine) aspectMatrix(charts map[models.ChartType]models.Chart) map[string][]models.AspectRecord {
	order := models.ChartOrder
	aspects := make(map[string][]models.AspectRecord)
	for i := 0; i < len(order); i++ {
		for j := i; j < len(order); j++ {
			t1, t2 := order[i], order[j]
			if (t1 == models.ChartHeliocentric) != (t2 == models.ChartHeliocentric) {
				continue
			}
			key := models.ChartCodes[t1] + "-" + models.ChartCodes[t2]
			aspects[key] = e.matcher.ChartAspects(charts[t1], charts[t2], i == j)
		}
	}
	return aspects
}

// locatedChart builds a chart with houses at the given place. A house
// computation failure (possible at polar latitudes) is non-fatal: the chart
// keeps its planets and simply carries no houses.
func (e *Engine) locatedChart(ctx context.Context, typ models.ChartType, jd, lat, lon float64) (models.Chart, error) {
	planets, err := e.builder.planets(ctx, jd, e.cfg.Bodies, false)
	if err != nil {
		return models.Chart{}, err
	}

	houses, err := e.houses.Houses(ctx, jd, lat, lon)
	if err != nil {
		logger.L().Warn().Str("chart", string(typ)).Float64("lat", lat).Float64("lon", lon).
			Err(err).Msg("house computation failed, chart left unhoused")
		return models.Chart{Type: typ, Planets: planets}, nil
	}

	assignHouses(planets, houses.Cusps)
	return models.Chart{Type: typ, Planets: planets, Cusps: houses.Cusps}, nil
}

// dateChart builds a houseless chart for a date-only event, at the default
// noon clock time.
func (e *Engine) dateChart(ctx context.Context, typ models.ChartType, date string, bodies []Body, helio bool) (models.Chart, error) {
	moment, err := ParseMoment(date, DefaultClock)
	if err != nil {
		return models.Chart{}, err
	}
	planets, err := e.builder.planets(ctx, JulianDay(moment), bodies, helio)
	if err != nil {
		return models.Chart{}, err
	}
	return models.Chart{Type: typ, Planets: planets}, nil
}

// progressedJulianDay applies the secondary-progression day-for-a-year rule:
// the progressed moment is the natal moment advanced by one ephemeris day per
// whole calendar day between the midnight-normalized birth date and the
// requested target date. The day count is used directly, not rescaled.
func progressedJulianDay(natalMoment time.Time, natalJD float64, progDate string) (float64, error) {
	target, err := ParseDate(progDate)
	if err != nil {
		return 0, err
	}
	birth := time.Date(natalMoment.Year(), natalMoment.Month(), natalMoment.Day(), 0, 0, 0, 0, time.UTC)
	days := int(target.Sub(birth).Hours() / 24)
	return natalJD + float64(days), nil
}

// solarArcChart rotates every natal planet by the solar arc, the progressed
// Sun's displacement from the natal Sun. House assignments and retrograde
// flags are copied from natal unchanged; only longitudes (and therefore
// signs and degrees) move. The natal cusps are reused as-is.
func (e *Engine) solarArcChart(natal, progressed models.Chart) (models.Chart, error) {
	natalSun, ok := natal.Planet("Sun")
	if !ok {
		return models.Chart{}, fmt.Errorf("natal chart has no Sun")
	}
	progSun, ok := progressed.Planet("Sun")
	if !ok {
		return models.Chart{}, fmt.Errorf("progressed chart has no Sun")
	}
	arc := normalize(progSun.Longitude - natalSun.Longitude)

	planets := make([]models.PlanetPosition, 0, len(natal.Planets))
	for _, p := range natal.Planets {
		np := e.builder.planetPosition(p.Name, p.Longitude+arc, p.Retrograde)
		if p.House != nil {
			h := *p.House
			np.House = &h
		}
		planets = append(planets, np)
	}
	return models.Chart{Type: models.ChartSolarArc, Planets: planets, Cusps: natal.Cusps}, nil
}

// solarReturnChart asks the provider for the solar-return moment of the
// requested year. A failed solve degrades this one chart to empty planets
// and no cusps instead of failing the request; a successful solve computes
// planets and houses at the geocoded return location exactly as for natal.
func (e *Engine) solarReturnChart(ctx context.Context, natalJD float64, in SolarReturnInput) (models.Chart, error) {
	lat, lon := e.geo.Geocode(ctx, in.Location)

	jd, err := e.houses.SolarReturn(ctx, natalJD, in.Year)
	if err != nil {
		logger.L().Error().Int("year", in.Year).Err(err).
			Msg("solar return solve failed, chart degraded to empty")
		return models.Chart{Type: models.ChartSolarReturn, Planets: []models.PlanetPosition{}}, nil
	}

	chart, err := e.locatedChart(ctx, models.ChartSolarReturn, jd, lat, lon)
	if err != nil {
		return models.Chart{}, err
	}
	return chart, nil
}
