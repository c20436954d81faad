package attendance

import (
	"context"
	"time"

	"github.com/samat2k5/hrms-singapore-sub000/internal/domain/attendance"
	"github.com/samat2k5/hrms-singapore-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
}

func NewAttendanceService() attendance.AttendanceService {
	return &AttendanceServiceImpl{}
}

// ClassifyDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClassifyDay(ctx context.Context, req attendance.ClassifyDayRequest) (attendance.DayClassificationResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayClassificationResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	rec := attendance.DailyAttendance{
		Date:       date,
		InMinutes:  clockStringToMinutes(req.InTime),
		OutMinutes: clockStringToMinutes(req.OutTime),
	}

	dayType := ResolveDayType(req.IsRestDay, req.IsPartialOffDay, req.IsPublicHoliday)
	classified := ClassifyDay(rec, req.Shift.ToEntity(), dayType)

	return mapDayToResponse(classified), nil
}

// ClassifyMonth implements attendance.AttendanceService. It folds the daily
// classifications into the monthly aggregate consumed by payroll.
func (s *AttendanceServiceImpl) ClassifyMonth(ctx context.Context, req attendance.ClassifyMonthRequest) (attendance.MonthlySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	summary := AggregateMonth(req)

	days := make([]attendance.DayClassificationResponse, 0, len(summary.Days))
	for _, day := range summary.Days {
		days = append(days, mapDayToResponse(day))
	}

	return attendance.MonthlySummaryResponse{
		Year:                   summary.Year,
		Month:                  int(summary.Month),
		DaysWorked:             summary.DaysWorked,
		NormalHours:            summary.NormalHours,
		OT15Hours:              summary.OT15Hours,
		OT20Hours:              summary.OT20Hours,
		PHHours:                summary.PHHours,
		TotalLateMinutes:       summary.TotalLateMinutes,
		TotalEarlyOutMinutes:   summary.TotalEarlyOutMinutes,
		PerformanceCreditHours: summary.PerformanceCreditHours,
		Days:                   days,
	}, nil
}

// AggregateMonth classifies every attendance record of a month and sums the
// hour buckets, penalty minutes and performance credits. Must be called with
// a validated request.
func AggregateMonth(req attendance.ClassifyMonthRequest) attendance.MonthlySummary {
	shift := req.Shift.ToEntity()
	restDay := time.Weekday(req.RestDayOfWeek)

	holidays := make(map[string]bool, len(req.PublicHolidays))
	for _, h := range req.PublicHolidays {
		holidays[h] = true
	}
	partialOff := make(map[string]bool, len(req.PartialOffDays))
	for _, p := range req.PartialOffDays {
		partialOff[p] = true
	}

	summary := attendance.MonthlySummary{
		Year:                   req.Year,
		Month:                  time.Month(req.Month),
		NormalHours:            decimal.Zero,
		OT15Hours:              decimal.Zero,
		OT20Hours:              decimal.Zero,
		PHHours:                decimal.Zero,
		PerformanceCreditHours: decimal.Zero,
	}

	for _, day := range req.Days {
		date, _ := validator.IsValidDate(day.Date)

		rec := attendance.DailyAttendance{
			Date:       date,
			InMinutes:  clockStringToMinutes(day.InTime),
			OutMinutes: clockStringToMinutes(day.OutTime),
		}
		if day.PerformanceCreditHours != nil {
			rec.PerformanceCreditHours = *day.PerformanceCreditHours
		}

		dayType := ResolveDayType(
			date.Weekday() == restDay,
			partialOff[day.Date],
			holidays[day.Date],
		)
		classified := ClassifyDay(rec, shift, dayType)

		summary.DaysWorked++
		summary.NormalHours = summary.NormalHours.Add(classified.NormalHours)
		summary.OT15Hours = summary.OT15Hours.Add(classified.OT15Hours)
		summary.OT20Hours = summary.OT20Hours.Add(classified.OT20Hours)
		summary.PHHours = summary.PHHours.Add(classified.PHHours)
		summary.TotalLateMinutes += classified.LateMinutes
		summary.TotalEarlyOutMinutes += classified.EarlyOutMinutes
		summary.PerformanceCreditHours = summary.PerformanceCreditHours.Add(classified.PerformanceCreditHours)
		summary.Days = append(summary.Days, classified)
	}

	return summary
}

func mapDayToResponse(day attendance.DailyAttendance) attendance.DayClassificationResponse {
	return attendance.DayClassificationResponse{
		Date:            day.Date.Format("2006-01-02"),
		DayType:         string(day.DayType),
		NormalHours:     day.NormalHours,
		OT15Hours:       day.OT15Hours,
		OT20Hours:       day.OT20Hours,
		PHHours:         day.PHHours,
		LateMinutes:     day.LateMinutes,
		EarlyOutMinutes: day.EarlyOutMinutes,
	}
}

func clockStringToMinutes(clock string) int {
	t, ok := validator.IsValidClockTime(clock)
	if !ok {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}
