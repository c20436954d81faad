package payroll

import "context"

type PayrollService interface {
	ComputeCPF(ctx context.Context, req CPFRequest) (CPFResponse, error)
	ComputeSDL(ctx context.Context, req SDLRequest) (SDLResponse, error)
	ComputeSHG(ctx context.Context, req SHGRequest) (SHGResponse, error)
	EstimateTax(ctx context.Context, req TaxRequest) (TaxResponse, error)
	PreviewPayslip(ctx context.Context, req PreviewPayslipRequest) (PayslipResponse, error)
	RunPayroll(ctx context.Context, req RunPayrollRequest) (RunPayrollResponse, error)
}
