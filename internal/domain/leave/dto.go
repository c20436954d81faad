package leave

import (
	"github.com/samat2k5/hrms-singapore-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type BalancesRequest struct {
	EmployeeID             string                     `json:"employee_id"`
	DateJoined             string                     `json:"date_joined"`
	AsOfDate               string                     `json:"as_of_date"`
	GradeAnnualEntitlement *decimal.Decimal           `json:"grade_annual_entitlement,omitempty"`
	Taken                  map[string]decimal.Decimal `json:"taken,omitempty"`
}

func (r *BalancesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.DateJoined); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_joined", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.AsOfDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "as_of_date", Message: "must be YYYY-MM-DD"})
	}
	if r.GradeAnnualEntitlement != nil && r.GradeAnnualEntitlement.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "grade_annual_entitlement", Message: "must be non-negative"})
	}
	for leaveType, taken := range r.Taken {
		switch LeaveType(leaveType) {
		case LeaveTypeAnnual, LeaveTypeMedical, LeaveTypeHospitalization:
		default:
			errs = append(errs, validator.ValidationError{Field: "taken", Message: "unknown leave type " + leaveType})
		}
		if taken.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "taken", Message: leaveType + " must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BalanceResponse struct {
	LeaveType string          `json:"leave_type"`
	Year      int             `json:"year"`
	Entitled  decimal.Decimal `json:"entitled"`
	Earned    decimal.Decimal `json:"earned"`
	Taken     decimal.Decimal `json:"taken"`
	Balance   decimal.Decimal `json:"balance"`
}

type BalancesResponse struct {
	EmployeeID string            `json:"employee_id"`
	AsOfDate   string            `json:"as_of_date"`
	Balances   []BalanceResponse `json:"balances"`
}
