package payroll

import (
	"github.com/samat2k5/hrms-singapore-sub000/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// taxBracket - One row of the resident rate schedule: the bracket's inclusive
// upper bound (negative for the open top bracket), its floor, the marginal
// rate inside the bracket, and the cumulative tax owed at the floor.
type taxBracket struct {
	upper      decimal.Decimal
	floor      decimal.Decimal
	rate       decimal.Decimal
	cumAtFloor decimal.Decimal
}

var residentBrackets = []taxBracket{
	{upper: d("20000"), floor: d("0"), rate: d("0"), cumAtFloor: d("0")},
	{upper: d("30000"), floor: d("20000"), rate: d("0.02"), cumAtFloor: d("0")},
	{upper: d("40000"), floor: d("30000"), rate: d("0.035"), cumAtFloor: d("200")},
	{upper: d("80000"), floor: d("40000"), rate: d("0.07"), cumAtFloor: d("550")},
	{upper: d("120000"), floor: d("80000"), rate: d("0.115"), cumAtFloor: d("3350")},
	{upper: d("160000"), floor: d("120000"), rate: d("0.15"), cumAtFloor: d("7950")},
	{upper: d("200000"), floor: d("160000"), rate: d("0.18"), cumAtFloor: d("13950")},
	{upper: d("240000"), floor: d("200000"), rate: d("0.19"), cumAtFloor: d("21150")},
	{upper: d("280000"), floor: d("240000"), rate: d("0.195"), cumAtFloor: d("28750")},
	{upper: d("320000"), floor: d("280000"), rate: d("0.20"), cumAtFloor: d("36550")},
	{upper: d("500000"), floor: d("320000"), rate: d("0.22"), cumAtFloor: d("44550")},
	{upper: d("1000000"), floor: d("500000"), rate: d("0.23"), cumAtFloor: d("84150")},
	{upper: d("-1"), floor: d("1000000"), rate: d("0.24"), cumAtFloor: d("199150")},
}

var nonResidentFlatRate = d("0.15")

func residentProgressiveTax(income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}

	for _, bracket := range residentBrackets {
		if bracket.upper.IsNegative() || income.LessThanOrEqual(bracket.upper) {
			return bracket.cumAtFloor.Add(income.Sub(bracket.floor).Mul(bracket.rate))
		}
	}
	return decimal.Zero
}

// EstimateTax computes the annual tax estimate for an income. Non-residents
// pay the higher of the flat employment rate and the resident progressive
// amount.
func EstimateTax(annualIncome decimal.Decimal, resident bool) payroll.TaxEstimate {
	tax := residentProgressiveTax(annualIncome)
	if !resident {
		flat := annualIncome.Mul(nonResidentFlatRate)
		tax = decimal.Max(flat, tax)
	}
	tax = tax.Round(2)

	monthly := tax.Div(d("12")).Round(2)

	effective := decimal.Zero
	if annualIncome.IsPositive() {
		effective = tax.Div(annualIncome).Round(4)
	}

	return payroll.TaxEstimate{
		AnnualIncome:  annualIncome,
		AnnualTax:     tax,
		MonthlyTax:    monthly,
		EffectiveRate: effective,
	}
}
