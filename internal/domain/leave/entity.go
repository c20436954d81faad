package leave

import "github.com/shopspring/decimal"

// LeaveType enum
type LeaveType string

const (
	LeaveTypeAnnual          LeaveType = "annual"
	LeaveTypeMedical         LeaveType = "medical"
	LeaveTypeHospitalization LeaveType = "hospitalization"
)

// LeaveBalance - Computed-on-read view for one (employee, leave type, year).
// Taken is mutated only by the external leave-approval workflow; the engine
// just reads it.
type LeaveBalance struct {
	EmployeeID string
	LeaveType  LeaveType
	Year       int
	Entitled   decimal.Decimal
	Earned     decimal.Decimal
	Taken      decimal.Decimal
	Balance    decimal.Decimal
}
