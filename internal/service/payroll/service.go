package payroll

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	attendancedomain "github.com/samat2k5/hrms-singapore-sub000/internal/domain/attendance"
	"github.com/samat2k5/hrms-singapore-sub000/internal/domain/payroll"
	"github.com/samat2k5/hrms-singapore-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var (
	twelve       = decimal.NewFromInt(12)
	fiftyTwo     = decimal.NewFromInt(52)
	sixtyMinutes = decimal.NewFromInt(60)
	otRate15     = d("1.5")
	otRate20     = d("2.0")
	half         = d("0.5")
)

type PayrollServiceImpl struct {
	attendanceService attendancedomain.AttendanceService
}

func NewPayrollService(attendanceService attendancedomain.AttendanceService) payroll.PayrollService {
	return &PayrollServiceImpl{attendanceService: attendanceService}
}

// ========== CALCULATOR ENDPOINTS ==========

func (s *PayrollServiceImpl) ComputeCPF(ctx context.Context, req payroll.CPFRequest) (payroll.CPFResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.CPFResponse{}, err
	}

	dob, _ := validator.IsValidDate(req.DateOfBirth)
	refDate, _ := validator.IsValidDate(req.ReferenceDate)

	input := CPFInput{
		DateOfBirth:        dob,
		OrdinaryWages:      req.OrdinaryWages,
		AdditionalWages:    req.AdditionalWages,
		YTDOrdinaryWages:   req.YTDOrdinaryWages,
		YTDAdditionalWages: req.YTDAdditionalWages,
		Residency:          payroll.ResidencyStatus(req.Residency),
		FullRateAgreed:     req.FullRateAgreed,
		ReferenceDate:      refDate,
		TableYear:          req.TableYear,
	}
	if req.PRStartDate != nil {
		if prStart, ok := validator.IsValidDate(*req.PRStartDate); ok {
			input.PRStartDate = &prStart
		}
	}
	if input.TableYear == 0 {
		input.TableYear = refDate.Year()
	}

	result := ComputeCPF(input)

	return payroll.CPFResponse{
		Age:             result.Age,
		SPRBucket:       result.SPRBucket,
		CappedOW:        result.CappedOW,
		CappedAW:        result.CappedAW,
		EmployerAmount:  result.EmployerAmount,
		EmployeeAmount:  result.EmployeeAmount,
		OrdinaryAccount: result.OrdinaryAccount,
		SpecialAccount:  result.SpecialAccount,
		MedisaveAccount: result.MedisaveAccount,
	}, nil
}

func (s *PayrollServiceImpl) ComputeSDL(ctx context.Context, req payroll.SDLRequest) (payroll.SDLResponse, error) {
	return payroll.SDLResponse{Levy: ComputeSDL(req.TotalWages)}, nil
}

func (s *PayrollServiceImpl) ComputeSHG(ctx context.Context, req payroll.SHGRequest) (payroll.SHGResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SHGResponse{}, err
	}

	result := ComputeSHG(req.Race, req.Wages, payroll.ResidencyStatus(req.Residency))

	return payroll.SHGResponse{
		Fund:       result.Fund,
		Amount:     result.Amount,
		Applicable: result.Applicable,
	}, nil
}

func (s *PayrollServiceImpl) EstimateTax(ctx context.Context, req payroll.TaxRequest) (payroll.TaxResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.TaxResponse{}, err
	}

	estimate := EstimateTax(req.AnnualIncome, req.TaxResidency == "resident")

	return payroll.TaxResponse{
		AnnualIncome:  estimate.AnnualIncome,
		AnnualTax:     estimate.AnnualTax,
		MonthlyTax:    estimate.MonthlyTax,
		EffectiveRate: estimate.EffectiveRate,
	}, nil
}

// ========== PAYSLIP ==========

func (s *PayrollServiceImpl) PreviewPayslip(ctx context.Context, req payroll.PreviewPayslipRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	tableYear := req.Year
	if req.RateTableYear != nil {
		tableYear = *req.RateTableYear
	}

	payslip, err := s.computePayslip(ctx, req.Year, req.Month, tableYear, req.PublicHolidays, req.Employee)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return mapPayslipToResponse(payslip), nil
}

// RunPayroll processes every employee in scope sequentially and produces one
// payslip per employee, or none: any per-employee failure aborts the whole
// run so callers never see a partial payslip set.
func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunPayrollResponse{}, err
	}
	if len(req.Employees) == 0 {
		return payroll.RunPayrollResponse{}, payroll.ErrEmptyRunScope
	}

	tableYear := req.Year
	if req.RateTableYear != nil {
		tableYear = *req.RateTableYear
	}

	payslips := make([]payroll.Payslip, 0, len(req.Employees))
	for _, emp := range req.Employees {
		payslip, err := s.computePayslip(ctx, req.Year, req.Month, tableYear, req.PublicHolidays, emp)
		if err != nil {
			return payroll.RunPayrollResponse{}, fmt.Errorf("%w: employee %s: %v",
				payroll.ErrRunAborted, emp.Profile.EmployeeID, err)
		}
		payslips = append(payslips, payslip)
	}

	summary := foldRunSummary(req.Year, req.Month, payslips)

	responses := make([]payroll.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		responses = append(responses, mapPayslipToResponse(p))
	}

	return payroll.RunPayrollResponse{
		RunID:         summary.RunID,
		EntityID:      req.EntityID,
		EmployeeGroup: req.EmployeeGroup,
		PeriodYear:    summary.PeriodYear,
		PeriodMonth:   summary.PeriodMonth,
		EmployeeCount: summary.EmployeeCount,
		TotalGross:    summary.TotalGross,
		TotalCPFER:    summary.TotalCPFER,
		TotalCPFEE:    summary.TotalCPFEE,
		TotalSDL:      summary.TotalSDL,
		TotalSHG:      summary.TotalSHG,
		TotalNet:      summary.TotalNet,
		Payslips:      responses,
	}, nil
}

// foldRunSummary reduces an ordered payslip list into the immutable per-run
// aggregate.
func foldRunSummary(year, month int, payslips []payroll.Payslip) payroll.RunSummary {
	summary := payroll.RunSummary{
		RunID:         uuid.NewString(),
		PeriodYear:    year,
		PeriodMonth:   month,
		EmployeeCount: len(payslips),
		TotalGross:    decimal.Zero,
		TotalCPFER:    decimal.Zero,
		TotalCPFEE:    decimal.Zero,
		TotalSDL:      decimal.Zero,
		TotalSHG:      decimal.Zero,
		TotalNet:      decimal.Zero,
	}

	for _, p := range payslips {
		summary.TotalGross = summary.TotalGross.Add(p.GrossPay)
		summary.TotalCPFER = summary.TotalCPFER.Add(p.CPFEmployer)
		summary.TotalCPFEE = summary.TotalCPFEE.Add(p.CPFEmployee)
		summary.TotalSDL = summary.TotalSDL.Add(p.SDL)
		summary.TotalSHG = summary.TotalSHG.Add(p.SHGAmount)
		summary.TotalNet = summary.TotalNet.Add(p.NetPay)
	}

	return summary
}

func (s *PayrollServiceImpl) computePayslip(ctx context.Context, year, month, tableYear int, publicHolidays []string, emp payroll.EmployeeRunInput) (payroll.Payslip, error) {
	profile := emp.Profile.ToEntity()

	summary, err := s.attendanceService.ClassifyMonth(ctx, attendancedomain.ClassifyMonthRequest{
		Year:           year,
		Month:          month,
		Shift:          emp.Shift,
		RestDayOfWeek:  int(profile.RestDayOfWeek),
		PublicHolidays: publicHolidays,
		PartialOffDays: emp.PartialOffDays,
		Days:           emp.Days,
	})
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to classify attendance: %w", err)
	}

	shift := emp.Shift.ToEntity()

	allowances := make(map[string]decimal.Decimal)
	totalAllowances := decimal.Zero
	if profile.FixedAllowance.IsPositive() {
		allowances["fixed_allowance"] = profile.FixedAllowance
		totalAllowances = totalAllowances.Add(profile.FixedAllowance)
	}
	for name, amount := range profile.CustomAllowances {
		allowances[name] = amount
		totalAllowances = totalAllowances.Add(amount)
	}

	workingDays := workingDaysInMonth(profile.WorkingDaysPerWeek)
	if emp.WorkingDaysInMonth != nil {
		workingDays = decimal.NewFromInt(int64(*emp.WorkingDaysInMonth))
	}

	// Unpaid leave is deducted at the gross daily rate (basic plus
	// allowances), not the basic-only rate.
	unpaidDeduction := decimal.Zero
	if emp.UnpaidLeaveDays.IsPositive() {
		unpaidDeduction = profile.BasicSalary.Add(totalAllowances).
			Div(workingDays).Mul(emp.UnpaidLeaveDays).Round(2)
	}

	// The hourly base always derives from contractual weekly hours, never
	// from the actual shift pattern.
	hourlyBase := profile.BasicSalary.Mul(twelve).
		Div(fiftyTwo.Mul(profile.ContractualWeeklyHours))

	ot15Pay := summary.OT15Hours.Mul(hourlyBase).Mul(otRate15).Round(2)
	ot20Pay := summary.OT20Hours.Mul(hourlyBase).Mul(otRate20).Round(2)
	phPay := summary.PHHours.Mul(hourlyBase).Round(2)

	penaltyMins := decimal.NewFromInt(int64(summary.TotalLateMinutes + summary.TotalEarlyOutMinutes))
	attendanceDeduction := penaltyMins.Div(sixtyMinutes).Mul(hourlyBase).Round(2)

	performanceAllowance := summary.PerformanceCreditHours.
		Mul(hourlyBase).Mul(shift.PerformanceMultiplier).Round(2)

	grossPay := profile.BasicSalary.
		Add(totalAllowances).
		Add(ot15Pay).Add(ot20Pay).Add(phPay).
		Add(performanceAllowance).
		Add(emp.Bonus).
		Sub(unpaidDeduction).
		Round(2)

	payslip := payroll.Payslip{
		ID:                   uuid.NewString(),
		EmployeeID:           profile.EmployeeID,
		PeriodYear:           year,
		PeriodMonth:          month,
		BasicSalary:          profile.BasicSalary,
		Allowances:           allowances,
		OT15Pay:              ot15Pay,
		OT20Pay:              ot20Pay,
		PHPay:                phPay,
		PerformanceAllowance: performanceAllowance,
		Bonus:                emp.Bonus,
		UnpaidLeaveDeduction: unpaidDeduction,
		GrossPay:             grossPay,
		SHGFund:              "N/A",
		CPFEmployer:          decimal.Zero,
		CPFEmployee:          decimal.Zero,
		CPFOrdinary:          decimal.Zero,
		CPFSpecial:           decimal.Zero,
		CPFMedisave:          decimal.Zero,
		SHGAmount:            decimal.Zero,
	}

	if profile.ContributionApplicable {
		ordinaryWages := profile.BasicSalary.Add(totalAllowances).Sub(unpaidDeduction)
		additionalWages := ot15Pay.Add(ot20Pay).Add(phPay).Add(emp.Bonus)

		cpf := ComputeCPF(CPFInput{
			DateOfBirth:        profile.DateOfBirth,
			OrdinaryWages:      ordinaryWages,
			AdditionalWages:    additionalWages,
			YTDOrdinaryWages:   emp.YTDOrdinaryWages,
			YTDAdditionalWages: emp.YTDAdditionalWages,
			Residency:          profile.Residency,
			PRStartDate:        profile.PRStartDate,
			FullRateAgreed:     profile.FullRateAgreed,
			ReferenceDate:      endOfMonth(year, month),
			TableYear:          tableYear,
		})
		payslip.CPFEmployer = cpf.EmployerAmount
		payslip.CPFEmployee = cpf.EmployeeAmount
		payslip.CPFOrdinary = cpf.OrdinaryAccount
		payslip.CPFSpecial = cpf.SpecialAccount
		payslip.CPFMedisave = cpf.MedisaveAccount
	}

	payslip.SDL = ComputeSDL(grossPay)

	shg := ComputeSHG(profile.Race, grossPay, profile.Residency)
	payslip.SHGFund = shg.Fund
	payslip.SHGAmount = shg.Amount

	applyDeductionCap(&payslip, attendanceDeduction, profile.CustomDeductions)

	return payslip, nil
}

// applyDeductionCap enforces the statutory ceiling limiting total permitted
// deductions to half of gross pay. The statutory contribution and
// community-fund amounts are never reduced; the attendance and custom
// portions are clamped proportionally and a compliance note records the cap.
func applyDeductionCap(payslip *payroll.Payslip, attendanceDeduction decimal.Decimal, customDeductions map[string]decimal.Decimal) {
	statutory := payslip.CPFEmployee.Add(payslip.SHGAmount)

	flexible := attendanceDeduction
	customTotal := decimal.Zero
	for _, amount := range customDeductions {
		customTotal = customTotal.Add(amount)
	}
	flexible = flexible.Add(customTotal)

	deductionCap := payslip.GrossPay.Mul(half).Round(2)

	applied := make(map[string]decimal.Decimal, len(customDeductions))
	appliedAttendance := attendanceDeduction

	if statutory.Add(flexible).GreaterThan(deductionCap) {
		room := deductionCap.Sub(statutory)
		if room.IsNegative() {
			room = decimal.Zero
		}

		if flexible.IsPositive() {
			ratio := room.Div(flexible)
			appliedAttendance = attendanceDeduction.Mul(ratio).Round(2)

			keys := make([]string, 0, len(customDeductions))
			for name := range customDeductions {
				keys = append(keys, name)
			}
			sort.Strings(keys)

			// The last clamped item absorbs the rounding remainder so
			// the applied deductions total exactly the cap.
			remainder := room.Sub(appliedAttendance)
			for i, name := range keys {
				if i == len(keys)-1 {
					applied[name] = remainder
					remainder = decimal.Zero
					continue
				}
				scaled := customDeductions[name].Mul(ratio).Round(2)
				applied[name] = scaled
				remainder = remainder.Sub(scaled)
			}
			if len(keys) == 0 {
				appliedAttendance = room
			}
		}

		payslip.ComplianceNotes = fmt.Sprintf(
			"statutory deduction cap applied: total deductions limited to %s (50%% of gross pay)",
			deductionCap.StringFixed(2))
	} else {
		for name, amount := range customDeductions {
			applied[name] = amount
		}
	}

	payslip.AttendanceDeduction = appliedAttendance
	payslip.Deductions = applied

	totalDeductions := statutory.Add(appliedAttendance)
	for _, amount := range applied {
		totalDeductions = totalDeductions.Add(amount)
	}

	payslip.NetPay = payslip.GrossPay.Sub(totalDeductions).Round(2)
}

func workingDaysInMonth(daysPerWeek int) decimal.Decimal {
	return decimal.NewFromInt(int64(daysPerWeek)).Mul(fiftyTwo).Div(twelve).Round(0)
}

func endOfMonth(year, month int) time.Time {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
}

func mapPayslipToResponse(p payroll.Payslip) payroll.PayslipResponse {
	return payroll.PayslipResponse{
		ID:                   p.ID,
		EmployeeID:           p.EmployeeID,
		PeriodYear:           p.PeriodYear,
		PeriodMonth:          p.PeriodMonth,
		BasicSalary:          p.BasicSalary,
		Allowances:           p.Allowances,
		Deductions:           p.Deductions,
		OT15Pay:              p.OT15Pay,
		OT20Pay:              p.OT20Pay,
		PHPay:                p.PHPay,
		PerformanceAllowance: p.PerformanceAllowance,
		Bonus:                p.Bonus,
		UnpaidLeaveDeduction: p.UnpaidLeaveDeduction,
		AttendanceDeduction:  p.AttendanceDeduction,
		CPFEmployer:          p.CPFEmployer,
		CPFEmployee:          p.CPFEmployee,
		CPFOrdinary:          p.CPFOrdinary,
		CPFSpecial:           p.CPFSpecial,
		CPFMedisave:          p.CPFMedisave,
		SDL:                  p.SDL,
		SHGFund:              p.SHGFund,
		SHGAmount:            p.SHGAmount,
		GrossPay:             p.GrossPay,
		NetPay:               p.NetPay,
		ComplianceNotes:      p.ComplianceNotes,
	}
}
