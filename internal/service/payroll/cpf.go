package payroll

import (
	"time"

	"github.com/samat2k5/hrms-singapore-sub000/internal/domain/payroll"
	"github.com/samat2k5/hrms-singapore-sub000/internal/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// CPFInput enumerates every input of one social-contribution calculation.
// Wages are assumed non-negative; clamping out-of-range values is the
// caller's responsibility.
type CPFInput struct {
	DateOfBirth        time.Time
	OrdinaryWages      decimal.Decimal
	AdditionalWages    decimal.Decimal
	YTDOrdinaryWages   decimal.Decimal
	YTDAdditionalWages decimal.Decimal
	Residency          payroll.ResidencyStatus
	PRStartDate        *time.Time
	FullRateAgreed     bool
	ReferenceDate      time.Time
	TableYear          int
}

// sprBucket resolves the graduated-rate year for a permanent resident from
// the months elapsed since PR status began. Citizens and full-rate-agreed
// PRs always contribute at the full table.
func sprBucket(in CPFInput) int {
	if in.Residency != payroll.ResidencyPermanentResident || in.FullRateAgreed {
		return 3
	}
	if in.PRStartDate == nil {
		return 3
	}

	months := dateutil.MonthsBetween(*in.PRStartDate, in.ReferenceDate)
	switch {
	case months < 12:
		return 1
	case months < 24:
		return 2
	default:
		return 3
	}
}

// ComputeCPF applies the year's wage ceilings and age-banded rate table to
// one month of wages, splitting the result into employer and employee
// contributions and the three sub-account allocations.
func ComputeCPF(in CPFInput) payroll.CPFComputation {
	table := lookupCPFTable(in.TableYear)
	age := dateutil.AgeAt(in.DateOfBirth, in.ReferenceDate)

	bucket := sprBucket(in)
	var rows []cpfRateRow
	switch bucket {
	case 1:
		rows = table.sprYear1
	case 2:
		rows = table.sprYear2
	default:
		rows = table.full
	}
	rate := lookupRateRow(rows, age)

	cappedOW := decimal.Min(in.OrdinaryWages, table.monthlyOWCeiling)
	awRoom := decimal.Max(decimal.Zero, table.annualCeiling.Sub(in.YTDOrdinaryWages).Sub(cappedOW))
	cappedAW := decimal.Min(in.AdditionalWages, awRoom)

	totalWages := cappedOW.Add(cappedAW)

	// Employer and employee amounts round independently to the nearest
	// whole dollar; there is no shared rounding between them.
	employer := totalWages.Mul(rate.employerPct).Round(0)
	employee := totalWages.Mul(rate.employeePct).Round(0)
	total := employer.Add(employee)

	alloc := lookupAllocRow(table.allocation, age)
	ordinary := total.Mul(alloc.ordinaryPct).Round(2)
	special := total.Mul(alloc.specialPct).Round(2)
	// Medisave absorbs the allocation rounding remainder so the three
	// accounts sum exactly to the total contribution.
	medisave := total.Sub(ordinary).Sub(special)

	return payroll.CPFComputation{
		Age:             age,
		SPRBucket:       bucket,
		CappedOW:        cappedOW,
		CappedAW:        cappedAW,
		EmployerAmount:  employer,
		EmployeeAmount:  employee,
		OrdinaryAccount: ordinary,
		SpecialAccount:  special,
		MedisaveAccount: medisave,
	}
}
