package attendance

import (
	"context"
	"testing"

	"github.com/samat2k5/hrms-singapore-sub000/internal/domain/attendance"
	"github.com/samat2k5/hrms-singapore-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShiftRequest() attendance.ShiftConfigRequest {
	return attendance.ShiftConfigRequest{
		StartTime:      "09:00",
		EndTime:        "18:00",
		MealBreakStart: "12:00",
		MealBreakEnd:   "13:00",
	}
}

// ===== SINGLE-DAY CLASSIFICATION =====

func TestAttendanceService_ClassifyDay_Ordinary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewAttendanceService()

	result, err := svc.ClassifyDay(ctx, attendance.ClassifyDayRequest{
		Date:    "2025-06-02",
		InTime:  "09:00",
		OutTime: "20:00",
		Shift:   testShiftRequest(),
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-02", result.Date)
	assert.Equal(t, string(attendance.DayTypeOrdinary), result.DayType)
	assert.True(t, result.NormalHours.Equal(decimal.NewFromInt(8)), "normal got %s", result.NormalHours)
	assert.True(t, result.OT15Hours.Equal(decimal.NewFromInt(2)), "OT15 got %s", result.OT15Hours)
}

func TestAttendanceService_ClassifyDay_RestDayOutranksHoliday(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewAttendanceService()

	result, err := svc.ClassifyDay(ctx, attendance.ClassifyDayRequest{
		Date:            "2025-06-01",
		InTime:          "09:00",
		OutTime:         "19:00",
		Shift:           testShiftRequest(),
		IsRestDay:       true,
		IsPublicHoliday: true,
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.DayTypeRestDay), result.DayType)
	assert.True(t, result.OT20Hours.Equal(decimal.NewFromInt(9)), "OT20 got %s", result.OT20Hours)
}

func TestAttendanceService_ClassifyDay_ValidationError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewAttendanceService()

	_, err := svc.ClassifyDay(ctx, attendance.ClassifyDayRequest{
		Date:    "02-06-2025",
		InTime:  "25:00",
		OutTime: "18:00",
		Shift:   testShiftRequest(),
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "date")
	assert.Contains(t, details, "in_time")
}

// ===== MONTHLY AGGREGATION =====

func TestAttendanceService_ClassifyMonth_Aggregates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewAttendanceService()

	credit := decimal.RequireFromString("1.5")
	result, err := svc.ClassifyMonth(ctx, attendance.ClassifyMonthRequest{
		Year:           2025,
		Month:          6,
		Shift:          testShiftRequest(),
		RestDayOfWeek:  0, // Sunday
		PublicHolidays: []string{"2025-06-03"},
		PartialOffDays: []string{"2025-06-04"},
		Days: []attendance.DayRecordRequest{
			{Date: "2025-06-01", InTime: "09:00", OutTime: "19:00"}, // Sunday rest day
			{Date: "2025-06-02", InTime: "09:00", OutTime: "18:00", PerformanceCreditHours: &credit},
			{Date: "2025-06-03", InTime: "08:00", OutTime: "18:00"}, // public holiday
			{Date: "2025-06-04", InTime: "09:00", OutTime: "18:00"}, // partial off
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2025, result.Year)
	assert.Equal(t, 6, result.Month)
	assert.Equal(t, 4, result.DaysWorked)
	assert.True(t, result.NormalHours.Equal(decimal.NewFromInt(12)), "normal got %s", result.NormalHours)
	assert.True(t, result.OT15Hours.Equal(decimal.NewFromInt(5)), "OT15 got %s", result.OT15Hours)
	assert.True(t, result.OT20Hours.Equal(decimal.NewFromInt(11)), "OT20 got %s", result.OT20Hours)
	assert.True(t, result.PHHours.Equal(decimal.NewFromInt(8)), "PH got %s", result.PHHours)
	assert.Equal(t, 0, result.TotalLateMinutes)
	assert.Equal(t, 0, result.TotalEarlyOutMinutes)
	assert.True(t, result.PerformanceCreditHours.Equal(credit))

	require.Len(t, result.Days, 4)
	assert.Equal(t, string(attendance.DayTypeRestDay), result.Days[0].DayType)
	assert.Equal(t, string(attendance.DayTypeOrdinary), result.Days[1].DayType)
	assert.Equal(t, string(attendance.DayTypePublicHoliday), result.Days[2].DayType)
	assert.Equal(t, string(attendance.DayTypePartialOffDay), result.Days[3].DayType)
}

func TestAttendanceService_ClassifyMonth_PenaltiesAccumulate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewAttendanceService()

	result, err := svc.ClassifyMonth(ctx, attendance.ClassifyMonthRequest{
		Year:          2025,
		Month:         6,
		Shift:         testShiftRequest(),
		RestDayOfWeek: 0,
		Days: []attendance.DayRecordRequest{
			{Date: "2025-06-02", InTime: "09:16", OutTime: "18:00"}, // 16 late, no grace
			{Date: "2025-06-03", InTime: "09:00", OutTime: "17:00"}, // 60 early
		},
	})
	require.NoError(t, err)

	// 16 raw minutes round up to two 15-minute blocks
	assert.Equal(t, 30, result.TotalLateMinutes)
	assert.Equal(t, 60, result.TotalEarlyOutMinutes)
}

func TestAttendanceService_ClassifyMonth_ValidationError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewAttendanceService()

	_, err := svc.ClassifyMonth(ctx, attendance.ClassifyMonthRequest{
		Year:          2025,
		Month:         13,
		Shift:         testShiftRequest(),
		RestDayOfWeek: 9,
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "month")
	assert.Contains(t, details, "rest_day_of_week")
}
