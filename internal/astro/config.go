package astro

import "github.com/astrointeract/astropulse/internal/domain/models"

// Body pairs a planet name with its Swiss Ephemeris body number.
type Body struct {
	Name string
	ID   int
}

// Swiss Ephemeris body numbers for every body the engine computes.
const (
	BodySun        = 0
	BodyMoon       = 1
	BodyMercury    = 2
	BodyVenus      = 3
	BodyMars       = 4
	BodyJupiter    = 5
	BodySaturn     = 6
	BodyUranus     = 7
	BodyNeptune    = 8
	BodyPluto      = 9
	BodyMeanNode   = 10
	BodyMeanLilith = 12
	BodyEarth      = 14
	BodyChiron     = 15
)

// AspectAngle is one entry of the priority-ordered aspect table.
type AspectAngle struct {
	Kind  models.AspectKind
	Angle float64
}

// Config is the immutable lookup configuration the engine is constructed
// with: body sets, sign names, the priority-ordered aspect table and the two
// orb tables. Build it once with DefaultConfig and never mutate it.
type Config struct {
	// Bodies is the full planetary set for geocentric charts, in the fixed
	// enumeration order charts list their planets in.
	Bodies []Body
	// HelioBodies is the heliocentric set: Earth plus the non-luminary,
	// non-node bodies. The Sun is the reference center and is excluded.
	HelioBodies []Body
	// Signs are the 12 zodiac sign names indexed by sign number.
	Signs [12]string
	// Aspects is the aspect table in matching priority order; the first
	// in-orb entry wins regardless of which is the tighter match.
	Aspects []AspectAngle
	// LuminaryOrbs applies when either planet of the pair is a luminary,
	// DefaultOrbs otherwise. Both key by aspect kind, values in degrees.
	LuminaryOrbs map[models.AspectKind]float64
	DefaultOrbs  map[models.AspectKind]float64
	// Luminaries marks the bodies that widen the orb table.
	Luminaries map[string]bool
}

// DefaultConfig returns the fixed production configuration.
func DefaultConfig() Config {
	return Config{
		Bodies: []Body{
			{"Sun", BodySun},
			{"Moon", BodyMoon},
			{"Mercury", BodyMercury},
			{"Venus", BodyVenus},
			{"Mars", BodyMars},
			{"Jupiter", BodyJupiter},
			{"Saturn", BodySaturn},
			{"Uranus", BodyUranus},
			{"Neptune", BodyNeptune},
			{"Pluto", BodyPluto},
			{"Chiron", BodyChiron},
			{"Mean North Node", BodyMeanNode},
			{"Mean Black Moon Lilith", BodyMeanLilith},
		},
		HelioBodies: []Body{
			{"Earth", BodyEarth},
			{"Mercury", BodyMercury},
			{"Venus", BodyVenus},
			{"Mars", BodyMars},
			{"Jupiter", BodyJupiter},
			{"Saturn", BodySaturn},
			{"Uranus", BodyUranus},
			{"Neptune", BodyNeptune},
			{"Pluto", BodyPluto},
			{"Chiron", BodyChiron},
		},
		Signs: [12]string{
			"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
			"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
		},
		Aspects: []AspectAngle{
			{models.Conjunction, 0},
			{models.Opposition, 180},
			{models.Trine, 120},
			{models.Square, 90},
			{models.Sextile, 60},
		},
		LuminaryOrbs: map[models.AspectKind]float64{
			models.Conjunction: 8,
			models.Opposition:  8,
			models.Trine:       7,
			models.Square:      7,
			models.Sextile:     5,
		},
		DefaultOrbs: map[models.AspectKind]float64{
			models.Conjunction: 6,
			models.Opposition:  6,
			models.Trine:       5,
			models.Square:      5,
			models.Sextile:     4,
		},
		Luminaries: map[string]bool{"Sun": true, "Moon": true},
	}
}
