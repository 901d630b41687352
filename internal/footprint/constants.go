// Package footprint computes soil footprints of food selections
// from static per-kilogram coefficient tables.
package footprint

const (
	// GramsPerKilogram converts selection quantities (grams) to the
	// kilogram basis of coefficients.
	GramsPerKilogram = 1000.0

	// DaysPerYear is used to annualize daily consumption profiles.
	DaysPerYear = 365.0

	// PercentScale converts a fraction to a percentage.
	PercentScale = 100.0
)
