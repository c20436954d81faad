package payroll

import "errors"

var (
	ErrRunAborted       = errors.New("payroll run aborted")
	ErrEmptyRunScope    = errors.New("payroll run scope contains no employees")
	ErrInvalidPeriod    = errors.New("invalid payroll period")
	ErrUnknownResidency = errors.New("unknown residency status")
)
