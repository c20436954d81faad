package leave

import (
	"context"

	"github.com/samat2k5/hrms-singapore-sub000/internal/domain/leave"
	"github.com/samat2k5/hrms-singapore-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type LeaveServiceImpl struct{}

func NewLeaveService() leave.LeaveService {
	return &LeaveServiceImpl{}
}

// ComputeBalances derives the three statutory balances for one employee as
// of a date. Balances are computed on read; nothing is stored.
func (s *LeaveServiceImpl) ComputeBalances(ctx context.Context, req leave.BalancesRequest) (leave.BalancesResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.BalancesResponse{}, err
	}

	joined, _ := validator.IsValidDate(req.DateJoined)
	asOf, _ := validator.IsValidDate(req.AsOfDate)

	fullYear := annualEntitlement(joined, asOf, req.GradeAnnualEntitlement)
	annualEntitled := prorateEntitlement(fullYear, joined, asOf.Year())
	annualEarned := prorateAnnual(fullYear, joined, asOf)
	outpatient, hospitalization := medicalEntitlement(joined, asOf)

	balances := []leave.BalanceResponse{
		buildBalance(leave.LeaveTypeAnnual, asOf.Year(), annualEntitled, annualEarned, req.Taken),
		buildBalance(leave.LeaveTypeMedical, asOf.Year(), outpatient, outpatient, req.Taken),
		buildBalance(leave.LeaveTypeHospitalization, asOf.Year(), hospitalization, hospitalization, req.Taken),
	}

	return leave.BalancesResponse{
		EmployeeID: req.EmployeeID,
		AsOfDate:   req.AsOfDate,
		Balances:   balances,
	}, nil
}

// buildBalance nets taken days against the earned amount, flooring at zero
// so an over-taken type never reports a negative balance.
func buildBalance(leaveType leave.LeaveType, year int, entitled, earned decimal.Decimal, taken map[string]decimal.Decimal) leave.BalanceResponse {
	takenDays := decimal.Zero
	if t, ok := taken[string(leaveType)]; ok {
		takenDays = t
	}

	balance := earned.Sub(takenDays)
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	return leave.BalanceResponse{
		LeaveType: string(leaveType),
		Year:      year,
		Entitled:  entitled,
		Earned:    earned,
		Taken:     takenDays,
		Balance:   balance,
	}
}
