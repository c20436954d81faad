package payroll

import (
	"errors"
	"fmt"
	"time"

	"github.com/samat2k5/hrms-singapore-sub000/internal/domain/attendance"
	"github.com/samat2k5/hrms-singapore-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PROFILE ==========

type EmploymentProfileRequest struct {
	EmployeeID             string                     `json:"employee_id"`
	Name                   string                     `json:"name,omitempty"`
	DateOfBirth            string                     `json:"date_of_birth"`
	DateJoined             string                     `json:"date_joined"`
	Residency              string                     `json:"residency"`
	Race                   string                     `json:"race,omitempty"`
	ContributionApplicable bool                       `json:"contribution_applicable"`
	PRStartDate            *string                    `json:"pr_start_date,omitempty"`
	FullRateAgreed         bool                       `json:"full_rate_agreed"`
	BasicSalary            decimal.Decimal            `json:"basic_salary"`
	FixedAllowance         decimal.Decimal            `json:"fixed_allowance"`
	CustomAllowances       map[string]decimal.Decimal `json:"custom_allowances,omitempty"`
	CustomDeductions       map[string]decimal.Decimal `json:"custom_deductions,omitempty"`
	ContractualWeeklyHours *decimal.Decimal           `json:"contractual_weekly_hours,omitempty"`
	ContractualDailyHours  *decimal.Decimal           `json:"contractual_daily_hours,omitempty"`
	WorkingDaysPerWeek     *int                       `json:"working_days_per_week,omitempty"`
	RestDayOfWeek          *int                       `json:"rest_day_of_week,omitempty"`
	Grade                  string                     `json:"grade,omitempty"`
}

func parseResidency(s string) (ResidencyStatus, bool) {
	switch ResidencyStatus(s) {
	case ResidencyCitizen, ResidencyPermanentResident, ResidencyForeigner:
		return ResidencyStatus(s), true
	}
	return "", false
}

func (r *EmploymentProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.DateOfBirth); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.DateJoined); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_joined", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := parseResidency(r.Residency); !ok {
		errs = append(errs, validator.ValidationError{Field: "residency", Message: "must be citizen, permanent_resident or foreigner"})
	}
	if r.PRStartDate != nil {
		if _, ok := validator.IsValidDate(*r.PRStartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "pr_start_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.FixedAllowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "fixed_allowance", Message: "must be non-negative"})
	}
	if r.ContractualWeeklyHours != nil && !r.ContractualWeeklyHours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "contractual_weekly_hours", Message: "must be positive"})
	}
	if r.WorkingDaysPerWeek != nil && (*r.WorkingDaysPerWeek < 1 || *r.WorkingDaysPerWeek > 7) {
		errs = append(errs, validator.ValidationError{Field: "working_days_per_week", Message: "must be between 1 and 7"})
	}
	if r.RestDayOfWeek != nil && (*r.RestDayOfWeek < 0 || *r.RestDayOfWeek > 6) {
		errs = append(errs, validator.ValidationError{Field: "rest_day_of_week", Message: "must be between 0 (Sunday) and 6 (Saturday)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity resolves the request into an EmploymentProfile with defaults for
// every omitted contractual option. Must be called after Validate.
func (r *EmploymentProfileRequest) ToEntity() EmploymentProfile {
	dob, _ := validator.IsValidDate(r.DateOfBirth)
	joined, _ := validator.IsValidDate(r.DateJoined)
	residency, _ := parseResidency(r.Residency)

	profile := EmploymentProfile{
		EmployeeID:             r.EmployeeID,
		Name:                   r.Name,
		DateOfBirth:            dob,
		DateJoined:             joined,
		Residency:              residency,
		Race:                   r.Race,
		ContributionApplicable: r.ContributionApplicable,
		FullRateAgreed:         r.FullRateAgreed,
		BasicSalary:            r.BasicSalary,
		FixedAllowance:         r.FixedAllowance,
		CustomAllowances:       r.CustomAllowances,
		CustomDeductions:       r.CustomDeductions,
		ContractualWeeklyHours: decimal.NewFromInt(44),
		ContractualDailyHours:  decimal.NewFromInt(8),
		WorkingDaysPerWeek:     5,
		RestDayOfWeek:          time.Sunday,
	}

	if r.PRStartDate != nil {
		if prStart, ok := validator.IsValidDate(*r.PRStartDate); ok {
			profile.PRStartDate = &prStart
		}
	}
	if r.ContractualWeeklyHours != nil {
		profile.ContractualWeeklyHours = *r.ContractualWeeklyHours
	}
	if r.ContractualDailyHours != nil {
		profile.ContractualDailyHours = *r.ContractualDailyHours
	}
	if r.WorkingDaysPerWeek != nil {
		profile.WorkingDaysPerWeek = *r.WorkingDaysPerWeek
	}
	if r.RestDayOfWeek != nil {
		profile.RestDayOfWeek = time.Weekday(*r.RestDayOfWeek)
	}
	profile.Grade = r.Grade

	return profile
}

// ========== CPF ==========

type CPFRequest struct {
	DateOfBirth        string          `json:"date_of_birth"`
	OrdinaryWages      decimal.Decimal `json:"ordinary_wages"`
	AdditionalWages    decimal.Decimal `json:"additional_wages"`
	YTDOrdinaryWages   decimal.Decimal `json:"ytd_ordinary_wages"`
	YTDAdditionalWages decimal.Decimal `json:"ytd_additional_wages"`
	Residency          string          `json:"residency"`
	PRStartDate        *string         `json:"pr_start_date,omitempty"`
	FullRateAgreed     bool            `json:"full_rate_agreed"`
	ReferenceDate      string          `json:"reference_date"`
	TableYear          int             `json:"table_year"`
}

func (r *CPFRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.DateOfBirth); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := parseResidency(r.Residency); !ok {
		errs = append(errs, validator.ValidationError{Field: "residency", Message: "must be citizen, permanent_resident or foreigner"})
	}
	if r.PRStartDate != nil {
		if _, ok := validator.IsValidDate(*r.PRStartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "pr_start_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if _, ok := validator.IsValidDate(r.ReferenceDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "reference_date", Message: "must be YYYY-MM-DD"})
	}
	if r.OrdinaryWages.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "ordinary_wages", Message: "must be non-negative"})
	}
	if r.AdditionalWages.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "additional_wages", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CPFResponse struct {
	Age             int             `json:"age"`
	SPRBucket       int             `json:"spr_bucket"`
	CappedOW        decimal.Decimal `json:"capped_ordinary_wages"`
	CappedAW        decimal.Decimal `json:"capped_additional_wages"`
	EmployerAmount  decimal.Decimal `json:"employer_amount"`
	EmployeeAmount  decimal.Decimal `json:"employee_amount"`
	OrdinaryAccount decimal.Decimal `json:"ordinary_account"`
	SpecialAccount  decimal.Decimal `json:"special_account"`
	MedisaveAccount decimal.Decimal `json:"medisave_account"`
}

// ========== SDL / SHG ==========

type SDLRequest struct {
	TotalWages decimal.Decimal `json:"total_wages"`
}

type SDLResponse struct {
	Levy decimal.Decimal `json:"levy"`
}

type SHGRequest struct {
	Race      string          `json:"race"`
	Wages     decimal.Decimal `json:"wages"`
	Residency string          `json:"residency"`
}

func (r *SHGRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := parseResidency(r.Residency); !ok {
		errs = append(errs, validator.ValidationError{Field: "residency", Message: "must be citizen, permanent_resident or foreigner"})
	}
	if r.Wages.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "wages", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SHGResponse struct {
	Fund       string          `json:"fund"`
	Amount     decimal.Decimal `json:"amount"`
	Applicable bool            `json:"applicable"`
}

// ========== TAX ==========

type TaxRequest struct {
	AnnualIncome decimal.Decimal `json:"annual_income"`
	TaxResidency string          `json:"tax_residency"` // "resident" or "non_resident"
}

func (r *TaxRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TaxResidency != "resident" && r.TaxResidency != "non_resident" {
		errs = append(errs, validator.ValidationError{Field: "tax_residency", Message: "must be resident or non_resident"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaxResponse struct {
	AnnualIncome  decimal.Decimal `json:"annual_income"`
	AnnualTax     decimal.Decimal `json:"annual_tax"`
	MonthlyTax    decimal.Decimal `json:"monthly_tax"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
}

// ========== PAYROLL RUN ==========

type EmployeeRunInput struct {
	Profile            EmploymentProfileRequest      `json:"profile"`
	Shift              attendance.ShiftConfigRequest `json:"shift"`
	Days               []attendance.DayRecordRequest `json:"days,omitempty"`
	PartialOffDays     []string                      `json:"partial_off_days,omitempty"`
	Bonus              decimal.Decimal               `json:"bonus"`
	UnpaidLeaveDays    decimal.Decimal               `json:"unpaid_leave_days"`
	WorkingDaysInMonth *int                          `json:"working_days_in_month,omitempty"`
	YTDOrdinaryWages   decimal.Decimal               `json:"ytd_ordinary_wages"`
	YTDAdditionalWages decimal.Decimal               `json:"ytd_additional_wages"`
}

func (e *EmployeeRunInput) Validate() error {
	var errs validator.ValidationErrors

	if err := e.Profile.Validate(); err != nil {
		var profileErrs validator.ValidationErrors
		if errors.As(err, &profileErrs) {
			for _, pe := range profileErrs {
				errs = append(errs, validator.ValidationError{Field: "profile." + pe.Field, Message: pe.Message})
			}
		}
	}
	if err := e.Shift.Validate(); err != nil {
		var shiftErrs validator.ValidationErrors
		if errors.As(err, &shiftErrs) {
			for _, se := range shiftErrs {
				errs = append(errs, validator.ValidationError{Field: "shift." + se.Field, Message: se.Message})
			}
		}
	}
	if e.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonus", Message: "must be non-negative"})
	}
	if e.UnpaidLeaveDays.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "unpaid_leave_days", Message: "must be non-negative"})
	}
	if e.WorkingDaysInMonth != nil && *e.WorkingDaysInMonth <= 0 {
		errs = append(errs, validator.ValidationError{Field: "working_days_in_month", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RunPayrollRequest struct {
	EntityID       string             `json:"entity_id"`
	EmployeeGroup  string             `json:"employee_group,omitempty"`
	Year           int                `json:"year"`
	Month          int                `json:"month"`
	RateTableYear  *int               `json:"rate_table_year,omitempty"`
	PublicHolidays []string           `json:"public_holidays,omitempty"`
	Employees      []EmployeeRunInput `json:"employees"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EntityID) {
		errs = append(errs, validator.ValidationError{Field: "entity_id", Message: "is required"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	for _, d := range r.PublicHolidays {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{Field: "public_holidays", Message: "entries must be YYYY-MM-DD"})
			break
		}
	}
	for i := range r.Employees {
		if err := r.Employees[i].Validate(); err != nil {
			var empErrs validator.ValidationErrors
			if errors.As(err, &empErrs) {
				for _, ee := range empErrs {
					errs = append(errs, validator.ValidationError{
						Field:   fmt.Sprintf("employees[%d].%s", i, ee.Field),
						Message: ee.Message,
					})
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PreviewPayslipRequest struct {
	Year           int              `json:"year"`
	Month          int              `json:"month"`
	RateTableYear  *int             `json:"rate_table_year,omitempty"`
	PublicHolidays []string         `json:"public_holidays,omitempty"`
	Employee       EmployeeRunInput `json:"employee"`
}

func (r *PreviewPayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if err := r.Employee.Validate(); err != nil {
		var empErrs validator.ValidationErrors
		if errors.As(err, &empErrs) {
			for _, ee := range empErrs {
				errs = append(errs, validator.ValidationError{Field: "employee." + ee.Field, Message: ee.Message})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	PeriodYear  int    `json:"period_year"`
	PeriodMonth int    `json:"period_month"`

	BasicSalary          decimal.Decimal            `json:"basic_salary"`
	Allowances           map[string]decimal.Decimal `json:"allowances"`
	Deductions           map[string]decimal.Decimal `json:"deductions"`
	OT15Pay              decimal.Decimal            `json:"ot_1_5_pay"`
	OT20Pay              decimal.Decimal            `json:"ot_2_0_pay"`
	PHPay                decimal.Decimal            `json:"ph_pay"`
	PerformanceAllowance decimal.Decimal            `json:"performance_allowance"`
	Bonus                decimal.Decimal            `json:"bonus"`
	UnpaidLeaveDeduction decimal.Decimal            `json:"unpaid_leave_deduction"`
	AttendanceDeduction  decimal.Decimal            `json:"attendance_deduction"`

	CPFEmployer decimal.Decimal `json:"cpf_employer"`
	CPFEmployee decimal.Decimal `json:"cpf_employee"`
	CPFOrdinary decimal.Decimal `json:"cpf_ordinary_account"`
	CPFSpecial  decimal.Decimal `json:"cpf_special_account"`
	CPFMedisave decimal.Decimal `json:"cpf_medisave_account"`
	SDL         decimal.Decimal `json:"sdl"`
	SHGFund     string          `json:"shg_fund"`
	SHGAmount   decimal.Decimal `json:"shg_amount"`

	GrossPay        decimal.Decimal `json:"gross_pay"`
	NetPay          decimal.Decimal `json:"net_pay"`
	ComplianceNotes string          `json:"compliance_notes,omitempty"`
}

type RunPayrollResponse struct {
	RunID         string            `json:"run_id"`
	EntityID      string            `json:"entity_id"`
	EmployeeGroup string            `json:"employee_group,omitempty"`
	PeriodYear    int               `json:"period_year"`
	PeriodMonth   int               `json:"period_month"`
	EmployeeCount int               `json:"employee_count"`
	TotalGross    decimal.Decimal   `json:"total_gross"`
	TotalCPFER    decimal.Decimal   `json:"total_cpf_employer"`
	TotalCPFEE    decimal.Decimal   `json:"total_cpf_employee"`
	TotalSDL      decimal.Decimal   `json:"total_sdl"`
	TotalSHG      decimal.Decimal   `json:"total_shg"`
	TotalNet      decimal.Decimal   `json:"total_net"`
	Payslips      []PayslipResponse `json:"payslips"`
}
