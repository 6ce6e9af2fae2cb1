package astro

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/astrointeract/astropulse/internal/domain/models"
)

const (
	natalJD = 2451545.0 // 2000-01-01 12:00:00 UT
	progJD  = natalJD + 30
	srJD    = 2461200.25
)

type fakePositions struct {
	fn func(jd float64, body int, helio bool) (Position, error)
}

func (f *fakePositions) Position(_ context.Context, jd float64, body int, helio bool) (Position, error) {
	return f.fn(jd, body, helio)
}

type houseCall struct {
	jd, lat, lon float64
}

type fakeHouses struct {
	cusps     []float64
	housesErr error
	srErr     error
	calls     []houseCall
}

func (f *fakeHouses) Houses(_ context.Context, jd, lat, lon float64) (Houses, error) {
	f.calls = append(f.calls, houseCall{jd, lat, lon})
	if f.housesErr != nil {
		return Houses{}, f.housesErr
	}
	return Houses{Cusps: f.cusps, Ascendant: f.cusps[0]}, nil
}

func (f *fakeHouses) SolarReturn(_ context.Context, _ float64, _ int) (float64, error) {
	if f.srErr != nil {
		return 0, f.srErr
	}
	return srJD, nil
}

type fakeGeo struct {
	coords map[string][2]float64
}

func (f *fakeGeo) Geocode(_ context.Context, location string) (float64, float64) {
	c, ok := f.coords[location]
	if !ok {
		return 0, 0
	}
	return c[0], c[1]
}

var (
	_ PositionProvider = (*fakePositions)(nil)
	_ HouseProvider    = (*fakeHouses)(nil)
	_ GeoProvider      = (*fakeGeo)(nil)
)

// testPositions drives the scenario: natal Sun at 100, progressed Sun at
// 101.5 (solar arc 1.5), Mars retrograde at 358.9.
func testPositions() *fakePositions {
	return &fakePositions{fn: func(jd float64, body int, helio bool) (Position, error) {
		switch {
		case body == BodySun && jd == natalJD:
			return Position{Longitude: 100}, nil
		case body == BodySun && jd == progJD:
			return Position{Longitude: 101.5}, nil
		case body == BodyMars:
			return Position{Longitude: 358.9, Retrograde: true}, nil
		default:
			return Position{Longitude: math.Mod(float64(body)*17+3, 360)}, nil
		}
	}}
}

func testRequest() Request {
	return Request{
		Natal:        NatalInput{Date: "2000-01-01", Time: "12:00:00", Location: "Tokyo"},
		Progressed:   DateInput{Date: "2000-01-31"},
		Transit:      DateInput{Date: "2026-08-30"},
		SolarArc:     DateInput{Date: "2026-08-30"},
		SolarReturn:  SolarReturnInput{Year: 2026, Location: "Osaka"},
		Heliocentric: DateInput{Date: "2026-08-30"},
	}
}

func testGeo() *fakeGeo {
	return &fakeGeo{coords: map[string][2]float64{
		"Tokyo": {35.68, 139.69},
		"Osaka": {34.69, 135.5},
	}}
}

func newTestEngine(houses *fakeHouses, geo *fakeGeo) *Engine {
	return NewEngine(DefaultConfig(), testPositions(), houses, geo)
}

func TestHoroscope_AllChartsPresent(t *testing.T) {
	houses := &fakeHouses{cusps: equalCusps}
	h, err := newTestEngine(houses, testGeo()).Horoscope(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, typ := range models.ChartOrder {
		chart, ok := h.Charts[typ]
		if !ok {
			t.Fatalf("chart %s missing", typ)
		}
		if chart.Type != typ {
			t.Fatalf("chart %s has type %s", typ, chart.Type)
		}
	}

	cfg := DefaultConfig()
	for _, typ := range []models.ChartType{models.ChartNatal, models.ChartProgressed, models.ChartTransit, models.ChartSolarArc, models.ChartSolarReturn} {
		if got := len(h.Charts[typ].Planets); got != len(cfg.Bodies) {
			t.Fatalf("chart %s has %d planets, want %d", typ, got, len(cfg.Bodies))
		}
	}
	if got := len(h.Charts[models.ChartHeliocentric].Planets); got != len(cfg.HelioBodies) {
		t.Fatalf("heliocentric chart has %d planets, want %d", got, len(cfg.HelioBodies))
	}
}

func TestHoroscope_LongitudeInvariants(t *testing.T) {
	houses := &fakeHouses{cusps: equalCusps}
	h, err := newTestEngine(houses, testGeo()).Horoscope(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for typ, chart := range h.Charts {
		for _, p := range chart.Planets {
			if p.Longitude < 0 || p.Longitude >= 360 {
				t.Fatalf("%s %s longitude %v out of range", typ, p.Name, p.Longitude)
			}
			if p.SignIndex != int(p.Longitude/30) {
				t.Fatalf("%s %s sign index %d does not match longitude %v", typ, p.Name, p.SignIndex, p.Longitude)
			}
			if p.Degree < 0 || p.Degree >= 30 {
				t.Fatalf("%s %s degree %v out of range", typ, p.Name, p.Degree)
			}
		}
	}
}

func TestHoroscope_NatalHousesAndRetro(t *testing.T) {
	houses := &fakeHouses{cusps: equalCusps}
	h, err := newTestEngine(houses, testGeo()).Horoscope(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	natal := h.Charts[models.ChartNatal]
	if len(natal.Cusps) != 12 {
		t.Fatalf("natal cusps missing: %v", natal.Cusps)
	}

	sun, _ := natal.Planet("Sun")
	if sun.Longitude != 100 || sun.Sign != "Cancer" || sun.House == nil || *sun.House != 4 {
		t.Fatalf("unexpected natal sun: %+v", sun)
	}
	mars, _ := natal.Planet("Mars")
	if !mars.Retrograde || mars.House == nil || *mars.House != 12 {
		t.Fatalf("unexpected natal mars: %+v", mars)
	}

	// Houses must have been computed at the geocoded birth place.
	if houses.calls[0].lat != 35.68 || houses.calls[0].lon != 139.69 {
		t.Fatalf("natal houses computed at wrong place: %+v", houses.calls[0])
	}
}

func TestHoroscope_SolarArcRotation(t *testing.T) {
	houses := &fakeHouses{cusps: equalCusps}
	h, err := newTestEngine(houses, testGeo()).Horoscope(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	natal := h.Charts[models.ChartNatal]
	sa := h.Charts[models.ChartSolarArc]

	// Progressed Sun 101.5 minus natal Sun 100.
	const arc = 1.5

	for _, np := range natal.Planets {
		sp, ok := sa.Planet(np.Name)
		if !ok {
			t.Fatalf("solar arc chart missing %s", np.Name)
		}
		want := math.Mod(np.Longitude+arc, 360)
		if math.Abs(sp.Longitude-want) > 1e-6 {
			t.Fatalf("%s solar arc longitude %v, want %v", np.Name, sp.Longitude, want)
		}
		if sp.Retrograde != np.Retrograde {
			t.Fatalf("%s retro flag changed", np.Name)
		}
		if (sp.House == nil) != (np.House == nil) || (np.House != nil && *sp.House != *np.House) {
			t.Fatalf("%s house changed: %v vs %v", np.Name, sp.House, np.House)
		}
	}

	// 358.9 + 1.5 wraps to 0.4 Aries.
	mars, _ := sa.Planet("Mars")
	if math.Abs(mars.Longitude-0.4) > 1e-6 || mars.Sign != "Aries" || math.Abs(mars.Degree-0.4) > 1e-6 {
		t.Fatalf("unexpected solar arc mars: %+v", mars)
	}

	// Natal cusps are reused unchanged.
	if len(sa.Cusps) != 12 || sa.Cusps[0] != natal.Cusps[0] {
		t.Fatalf("solar arc cusps differ from natal: %v", sa.Cusps)
	}
}

func TestHoroscope_SolarReturnFailureDegrades(t *testing.T) {
	houses := &fakeHouses{cusps: equalCusps, srErr: errors.New("no convergence")}
	h, err := newTestEngine(houses, testGeo()).Horoscope(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("solve failure must not fail the request: %v", err)
	}

	sr := h.Charts[models.ChartSolarReturn]
	if len(sr.Planets) != 0 || len(sr.Cusps) != 0 {
		t.Fatalf("expected empty solar return chart, got %+v", sr)
	}

	// The other five charts are untouched.
	if len(h.Charts[models.ChartNatal].Planets) == 0 || len(h.Charts[models.ChartTransit].Planets) == 0 {
		t.Fatalf("sibling charts degraded unexpectedly")
	}

	// Pair keys involving SR are still present, just empty.
	if records, ok := h.Aspects["N-SR"]; !ok || len(records) != 0 {
		t.Fatalf("expected empty N-SR entry, got %v (present=%v)", records, ok)
	}
}

func TestHoroscope_SolarReturnLocation(t *testing.T) {
	houses := &fakeHouses{cusps: equalCusps}
	_, err := newTestEngine(houses, testGeo()).Horoscope(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Second houses call is the solar return, at the Osaka coordinates and
	// the solved moment.
	if len(houses.calls) != 2 {
		t.Fatalf("expected 2 houses calls, got %d", len(houses.calls))
	}
	call := houses.calls[1]
	if call.jd != srJD || call.lat != 34.69 || call.lon != 135.5 {
		t.Fatalf("unexpected solar return houses call: %+v", call)
	}
}

func TestHoroscope_GeocodeMissFallsBackToZero(t *testing.T) {
	houses := &fakeHouses{cusps: equalCusps}
	req := testRequest()
	req.Natal.Location = "Atlantis"

	h, err := newTestEngine(houses, testGeo()).Horoscope(context.Background(), req)
	if err != nil {
		t.Fatalf("geocode miss must not fail the request: %v", err)
	}

	if houses.calls[0].lat != 0 || houses.calls[0].lon != 0 {
		t.Fatalf("expected (0,0) fallback, got %+v", houses.calls[0])
	}
	if len(h.Charts[models.ChartNatal].Cusps) != 12 {
		t.Fatalf("natal houses should still be computed at (0,0)")
	}
}

func TestHoroscope_HouseFailureLeavesChartUnhoused(t *testing.T) {
	houses := &fakeHouses{cusps: equalCusps, housesErr: errors.New("polar latitude")}
	h, err := newTestEngine(houses, testGeo()).Horoscope(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("house failure must not fail the request: %v", err)
	}

	natal := h.Charts[models.ChartNatal]
	if len(natal.Cusps) != 0 {
		t.Fatalf("expected no cusps, got %v", natal.Cusps)
	}
	if len(natal.Planets) == 0 {
		t.Fatalf("planets must survive a house failure")
	}
	for _, p := range natal.Planets {
		if p.House != nil {
			t.Fatalf("%s should be unhoused, got %d", p.Name, *p.House)
		}
	}
}

func TestHoroscope_AspectMatrixKeys(t *testing.T) {
	houses := &fakeHouses{cusps: equalCusps}
	h, err := newTestEngine(houses, testGeo()).Horoscope(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"N-N", "N-P", "N-T", "N-SA", "N-SR",
		"P-P", "P-T", "P-SA", "P-SR",
		"T-T", "T-SA", "T-SR",
		"SA-SA", "SA-SR",
		"SR-SR",
		"H-H",
	}
	if len(h.Aspects) != len(want) {
		t.Fatalf("expected %d keys, got %d: %v", len(want), len(h.Aspects), keys(h.Aspects))
	}
	for _, k := range want {
		if _, ok := h.Aspects[k]; !ok {
			t.Fatalf("missing aspect key %s", k)
		}
	}
	// Heliocentric never pairs with a geocentric chart.
	for _, k := range []string{"N-H", "P-H", "T-H", "SA-H", "SR-H", "H-N"} {
		if _, ok := h.Aspects[k]; ok {
			t.Fatalf("forbidden key %s present", k)
		}
	}
}

func TestHoroscope_HeliocentricBodySet(t *testing.T) {
	houses := &fakeHouses{cusps: equalCusps}
	h, err := newTestEngine(houses, testGeo()).Horoscope(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	helio := h.Charts[models.ChartHeliocentric]
	if _, ok := helio.Planet("Earth"); !ok {
		t.Fatalf("heliocentric chart is missing Earth")
	}
	for _, name := range []string{"Sun", "Moon", "Mean North Node", "Mean Black Moon Lilith"} {
		if _, ok := helio.Planet(name); ok {
			t.Fatalf("heliocentric chart must not contain %s", name)
		}
	}
	if len(helio.Cusps) != 0 {
		t.Fatalf("heliocentric chart must not carry houses")
	}
}

func TestHoroscope_ProviderErrorAbortsRequest(t *testing.T) {
	broken := &fakePositions{fn: func(float64, int, bool) (Position, error) {
		return Position{}, errors.New("ephemeris down")
	}}
	engine := NewEngine(DefaultConfig(), broken, &fakeHouses{cusps: equalCusps}, testGeo())
	if _, err := engine.Horoscope(context.Background(), testRequest()); err == nil {
		t.Fatalf("expected error when the position provider fails")
	}
}

func TestHoroscope_BadNatalMoment(t *testing.T) {
	engine := newTestEngine(&fakeHouses{cusps: equalCusps}, testGeo())
	req := testRequest()
	req.Natal.Time = "25:00:00"
	if _, err := engine.Horoscope(context.Background(), req); err == nil {
		t.Fatalf("expected error for invalid natal time")
	}
}

func TestProgressedJulianDay(t *testing.T) {
	cases := []struct {
		name     string
		natal    time.Time
		progDate string
		want     float64
	}{
		{"thirty days", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), "2000-01-31", natalJD + 30},
		{"same day", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), "2000-01-01", natalJD},
		{"birth clock ignored", time.Date(2000, 1, 1, 23, 59, 59, 0, time.UTC), "2000-01-31", natalJD + 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := progressedJulianDay(tc.natal, natalJD, tc.progDate)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}

	if _, err := progressedJulianDay(time.Now(), natalJD, "not-a-date"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func keys(m map[string][]models.AspectRecord) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
