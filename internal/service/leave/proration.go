package leave

import (
	"time"

	"github.com/samat2k5/hrms-singapore-sub000/internal/pkg/dateutil"
	"github.com/shopspring/decimal"
)

const (
	statutoryBaseAnnualDays = 7
	statutoryMaxAnnualDays  = 14
	probationServiceMonths  = 3
)

var twelveMonths = decimal.NewFromInt(12)

// medicalTier maps completed service months to statutory outpatient and
// hospitalization day entitlements. Service below three months earns nothing.
type medicalTier struct {
	serviceMonths   int
	outpatientDays  int64
	hospitalization int64
}

var medicalTiers = []medicalTier{
	{3, 5, 15},
	{4, 8, 30},
	{5, 11, 45},
	{6, 14, 60},
}

// annualEntitlement returns the yearly annual-leave entitlement: the
// statutory scale of 7 days plus one per completed year of service capped at
// 14, or the grade policy when that grants more.
func annualEntitlement(joined, asOf time.Time, gradeEntitlement *decimal.Decimal) decimal.Decimal {
	years := dateutil.YearsBetween(joined, asOf)
	statutory := statutoryBaseAnnualDays + years
	if statutory > statutoryMaxAnnualDays {
		statutory = statutoryMaxAnnualDays
	}

	entitled := decimal.NewFromInt(int64(statutory))
	if gradeEntitlement != nil && gradeEntitlement.GreaterThan(entitled) {
		entitled = *gradeEntitlement
	}
	return entitled
}

// prorateEntitlement scales the full-year figure by the months an employee
// joining mid-year can still work, rounded to the nearest half day.
func prorateEntitlement(fullYear decimal.Decimal, joined time.Time, year int) decimal.Decimal {
	possible := dateutil.PossibleMonthsInYear(joined, year)
	if possible >= 12 {
		return fullYear
	}
	return roundToHalfDay(fullYear.Mul(decimal.NewFromInt(int64(possible))).Div(twelveMonths))
}

// prorateAnnual earns the entitlement month by month across the calendar
// year of asOf. Employees still in the first three months of service have
// earned nothing yet; the result rounds to the nearest half day.
func prorateAnnual(entitled decimal.Decimal, joined, asOf time.Time) decimal.Decimal {
	if dateutil.MonthsBetween(joined, asOf) < probationServiceMonths {
		return decimal.Zero
	}

	completed := dateutil.CompletedMonthsInYear(joined, asOf)
	earned := entitled.Mul(decimal.NewFromInt(int64(completed))).Div(twelveMonths)
	return roundToHalfDay(earned)
}

// medicalEntitlement returns the outpatient and hospitalization day counts
// for the completed months of service.
func medicalEntitlement(joined, asOf time.Time) (decimal.Decimal, decimal.Decimal) {
	months := dateutil.MonthsBetween(joined, asOf)

	outpatient := decimal.Zero
	hospitalization := decimal.Zero
	for _, tier := range medicalTiers {
		if months < tier.serviceMonths {
			break
		}
		outpatient = decimal.NewFromInt(tier.outpatientDays)
		hospitalization = decimal.NewFromInt(tier.hospitalization)
	}
	return outpatient, hospitalization
}

func roundToHalfDay(days decimal.Decimal) decimal.Decimal {
	return days.Mul(decimal.NewFromInt(2)).Round(0).Div(decimal.NewFromInt(2))
}
