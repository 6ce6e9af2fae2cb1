package models

// AspectKind names one of the five major aspects matched by the engine.
type AspectKind string

const (
	Conjunction AspectKind = "Conjunction"
	Opposition  AspectKind = "Opposition"
	Trine       AspectKind = "Trine"
	Square      AspectKind = "Square"
	Sextile     AspectKind = "Sextile"
)

// AspectRecord is a single matched angular relationship between two planets,
// possibly from different charts.
//
// Invariant: Orb is the deviation from the aspect's exact angle and is
// strictly below the orb threshold that admitted the match.
type AspectRecord struct {
	Planet1 string
	Sign1   string
	Planet2 string
	Sign2   string
	Kind    AspectKind
	Orb     float64
	State   string
}
