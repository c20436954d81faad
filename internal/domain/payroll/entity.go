package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResidencyStatus enum
type ResidencyStatus string

const (
	ResidencyCitizen           ResidencyStatus = "citizen"
	ResidencyPermanentResident ResidencyStatus = "permanent_resident"
	ResidencyForeigner         ResidencyStatus = "foreigner"
)

// EmploymentProfile - Immutable-per-period snapshot of an employee's contract
// terms. Owned by the employee directory; the engine only reads it.
type EmploymentProfile struct {
	EmployeeID             string
	Name                   string
	DateOfBirth            time.Time
	DateJoined             time.Time
	Residency              ResidencyStatus
	Race                   string
	ContributionApplicable bool
	PRStartDate            *time.Time
	FullRateAgreed         bool
	BasicSalary            decimal.Decimal
	FixedAllowance         decimal.Decimal
	CustomAllowances       map[string]decimal.Decimal
	CustomDeductions       map[string]decimal.Decimal
	ContractualWeeklyHours decimal.Decimal
	ContractualDailyHours  decimal.Decimal
	WorkingDaysPerWeek     int
	RestDayOfWeek          time.Weekday
	Grade                  string
}

// CPFComputation - Result of one social-contribution calculation. The three
// sub-accounts always sum exactly to the total contribution.
type CPFComputation struct {
	Age             int
	SPRBucket       int
	CappedOW        decimal.Decimal
	CappedAW        decimal.Decimal
	EmployerAmount  decimal.Decimal
	EmployeeAmount  decimal.Decimal
	OrdinaryAccount decimal.Decimal
	SpecialAccount  decimal.Decimal
	MedisaveAccount decimal.Decimal
}

// SHGComputation - Community-fund deduction for one employee-month.
type SHGComputation struct {
	Fund       string
	Amount     decimal.Decimal
	Applicable bool
}

// TaxEstimate - Progressive tax estimate for an annual income.
type TaxEstimate struct {
	AnnualIncome  decimal.Decimal
	AnnualTax     decimal.Decimal
	MonthlyTax    decimal.Decimal
	EffectiveRate decimal.Decimal
}

// Payslip - Computed, append-only payroll output for one (employee, period).
// Never mutated after the run commits; persistence belongs to the caller.
type Payslip struct {
	ID          string
	EmployeeID  string
	PeriodYear  int
	PeriodMonth int

	BasicSalary          decimal.Decimal
	Allowances           map[string]decimal.Decimal
	Deductions           map[string]decimal.Decimal
	OT15Pay              decimal.Decimal
	OT20Pay              decimal.Decimal
	PHPay                decimal.Decimal
	PerformanceAllowance decimal.Decimal
	Bonus                decimal.Decimal
	UnpaidLeaveDeduction decimal.Decimal
	AttendanceDeduction  decimal.Decimal

	CPFEmployer decimal.Decimal
	CPFEmployee decimal.Decimal
	CPFOrdinary decimal.Decimal
	CPFSpecial  decimal.Decimal
	CPFMedisave decimal.Decimal
	SDL         decimal.Decimal
	SHGFund     string
	SHGAmount   decimal.Decimal

	GrossPay        decimal.Decimal
	NetPay          decimal.Decimal
	ComplianceNotes string
}

// RunSummary - Per-run aggregate folded from the ordered payslip list.
type RunSummary struct {
	RunID         string
	PeriodYear    int
	PeriodMonth   int
	EmployeeCount int
	TotalGross    decimal.Decimal
	TotalCPFER    decimal.Decimal
	TotalCPFEE    decimal.Decimal
	TotalSDL      decimal.Decimal
	TotalSHG      decimal.Decimal
	TotalNet      decimal.Decimal
}
