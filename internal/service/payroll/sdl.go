package payroll

import "github.com/shopspring/decimal"

var (
	sdlRate         = d("0.0025")
	sdlMinimum      = d("2")
	sdlMaximum      = d("11.25")
	sdlLowWageFloor = d("800")
)

// ComputeSDL returns the monthly skills levy for a total wage amount.
// Wages at or below zero attract no levy; wages under the low-wage floor pay
// the flat minimum; everything else is the percentage clamped to the
// statutory band.
func ComputeSDL(totalWages decimal.Decimal) decimal.Decimal {
	if !totalWages.IsPositive() {
		return decimal.Zero
	}

	if totalWages.LessThan(sdlLowWageFloor) {
		return sdlMinimum
	}

	levy := totalWages.Mul(sdlRate)
	if levy.LessThan(sdlMinimum) {
		levy = sdlMinimum
	}
	if levy.GreaterThan(sdlMaximum) {
		levy = sdlMaximum
	}
	return levy.Round(2)
}
