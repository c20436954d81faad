package attendance

import "context"

type AttendanceService interface {
	ClassifyDay(ctx context.Context, req ClassifyDayRequest) (DayClassificationResponse, error)
	ClassifyMonth(ctx context.Context, req ClassifyMonthRequest) (MonthlySummaryResponse, error)
}
