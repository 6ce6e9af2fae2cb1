package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/astrointeract/astropulse/internal/astro"
)

// NatalRequest is the birth data of the person the horoscope is computed for.
type NatalRequest struct {
	Date     string `json:"date" binding:"required,dateformat" example:"1990-05-17"` // Calendar date, YYYY-MM-DD
	Time     string `json:"time" binding:"required,timeformat" example:"14:30:00"`   // Local clock time, HH:MM:SS
	Location string `json:"location" binding:"required" example:"Tokyo, Japan"`      // Free-text birth place
}

// EventRequest is a date-only chart request (progressed, transit, solar arc,
// heliocentric).
type EventRequest struct {
	Date string `json:"date" binding:"required,dateformat" example:"2026-08-30"`
}

// SolarReturnRequest selects the solar-return year and the place the person
// will be at during that return.
type SolarReturnRequest struct {
	Year     int    `json:"year" binding:"required" example:"2026"`
	Location string `json:"location" binding:"required" example:"Osaka, Japan"`
}

// EventsRequest groups the five event chart requests.
type EventsRequest struct {
	Progressed   EventRequest       `json:"progressed" binding:"required"`
	Transit      EventRequest       `json:"transit" binding:"required"`
	SolarArc     EventRequest       `json:"solarArc" binding:"required"`
	SolarReturn  SolarReturnRequest `json:"solarReturn" binding:"required"`
	Heliocentric EventRequest       `json:"heliocentric" binding:"required"`
}

// HoroscopeRequest is the body of POST /api/v1/horoscope.
type HoroscopeRequest struct {
	Natal  NatalRequest  `json:"natal" binding:"required"`
	Events EventsRequest `json:"events" binding:"required"`
}

// ToInput maps the validated request onto the engine's input type.
func (r HoroscopeRequest) ToInput() astro.Request {
	return astro.Request{
		Natal: astro.NatalInput{
			Date:     r.Natal.Date,
			Time:     r.Natal.Time,
			Location: r.Natal.Location,
		},
		Progressed:   astro.DateInput{Date: r.Events.Progressed.Date},
		Transit:      astro.DateInput{Date: r.Events.Transit.Date},
		SolarArc:     astro.DateInput{Date: r.Events.SolarArc.Date},
		SolarReturn:  astro.SolarReturnInput{Year: r.Events.SolarReturn.Year, Location: r.Events.SolarReturn.Location},
		Heliocentric: astro.DateInput{Date: r.Events.Heliocentric.Date},
	}
}

// RegisterValidations installs the custom date/time format rules on gin's
// validator engine. Call once during router setup.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("dateformat", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(astro.DateLayout, fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("timeformat", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(astro.ClockLayout, fl.Field().String())
		return err == nil
	})
}
