package dto

import "github.com/astrointeract/astropulse/internal/domain/models"

// PlanetResponse is one planet placement as serialized in a chart.
type PlanetResponse struct {
	Sign     string  `json:"sign" example:"Aries"`        // Zodiac sign name
	Degree   float64 `json:"degree" example:"12.34"`      // Degrees within the sign, [0,30)
	IsRetro  bool    `json:"isRetro" example:"false"`     // Apparent backward motion
	Position float64 `json:"position" example:"12.34"`    // Absolute ecliptic longitude, [0,360)
	House    *int    `json:"house,omitempty" example:"7"` // House number when the chart carries cusps
}

// ChartResponse serializes one chart: planets keyed by name plus the
// optional 12 cusp longitudes.
type ChartResponse struct {
	Planets map[string]PlanetResponse `json:"planets"`
	Houses  []float64                 `json:"houses,omitempty"`
}

// AspectResponse is one matched aspect between two planets.
type AspectResponse struct {
	P1     string  `json:"p1" example:"Sun"`
	P1Sign string  `json:"p1Sign" example:"Taurus"`
	P2     string  `json:"p2" example:"Mars"`
	P2Sign string  `json:"p2Sign" example:"Scorpio"`
	Aspect string  `json:"aspect" example:"Opposition"`
	Orb    float64 `json:"orb" example:"1.25"`
	State  string  `json:"state" example:"Applying"`
}

// HoroscopeResponse is the body of a successful POST /api/v1/horoscope.
// Aspect lists are keyed by chart-pair code (e.g. "N-T", "H-H").
type HoroscopeResponse struct {
	Natal        ChartResponse               `json:"natal"`
	Progressed   ChartResponse               `json:"progressed"`
	Transit      ChartResponse               `json:"transit"`
	SolarArc     ChartResponse               `json:"solarArc"`
	SolarReturn  ChartResponse               `json:"solarReturn"`
	Heliocentric ChartResponse               `json:"heliocentric"`
	Aspects      map[string][]AspectResponse `json:"aspects"`
}

// NewHoroscopeResponse maps a computed horoscope onto the response contract.
func NewHoroscopeResponse(h *models.Horoscope) HoroscopeResponse {
	aspects := make(map[string][]AspectResponse, len(h.Aspects))
	for key, records := range h.Aspects {
		list := make([]AspectResponse, 0, len(records))
		for _, rec := range records {
			list = append(list, AspectResponse{
				P1:     rec.Planet1,
				P1Sign: rec.Sign1,
				P2:     rec.Planet2,
				P2Sign: rec.Sign2,
				Aspect: string(rec.Kind),
				Orb:    rec.Orb,
				State:  rec.State,
			})
		}
		aspects[key] = list
	}

	return HoroscopeResponse{
		Natal:        newChartResponse(h.Charts[models.ChartNatal]),
		Progressed:   newChartResponse(h.Charts[models.ChartProgressed]),
		Transit:      newChartResponse(h.Charts[models.ChartTransit]),
		SolarArc:     newChartResponse(h.Charts[models.ChartSolarArc]),
		SolarReturn:  newChartResponse(h.Charts[models.ChartSolarReturn]),
		Heliocentric: newChartResponse(h.Charts[models.ChartHeliocentric]),
		Aspects:      aspects,
	}
}

func newChartResponse(c models.Chart) ChartResponse {
	planets := make(map[string]PlanetResponse, len(c.Planets))
	for _, p := range c.Planets {
		planets[p.Name] = PlanetResponse{
			Sign:     p.Sign,
			Degree:   p.Degree,
			IsRetro:  p.Retrograde,
			Position: p.Longitude,
			House:    p.House,
		}
	}
	return ChartResponse{Planets: planets, Houses: c.Cusps}
}
