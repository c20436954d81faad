package leave

import "context"

type LeaveService interface {
	ComputeBalances(ctx context.Context, req BalancesRequest) (BalancesResponse, error)
}
