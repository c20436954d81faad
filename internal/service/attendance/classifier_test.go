package attendance

import (
	"testing"

	"github.com/samat2k5/hrms-singapore-sub000/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dayShift() attendance.ShiftConfig {
	return attendance.ShiftConfig{
		StartMinutes:          9 * 60,
		EndMinutes:            18 * 60,
		MealBreakStartMinutes: 12 * 60,
		MealBreakEndMinutes:   13 * 60,
		LatePenaltyBlockMins:  15,
		EarlyPenaltyBlockMins: 15,
		ContractualDailyHours: dec("8"),
		PerformanceMultiplier: dec("1"),
	}
}

func clockedDay(inMins, outMins int) attendance.DailyAttendance {
	return attendance.DailyAttendance{InMinutes: inMins, OutMinutes: outMins}
}

// ===== DAY TYPE RESOLUTION =====

func TestResolveDayType_Priority(t *testing.T) {
	t.Parallel()

	assert.Equal(t, attendance.DayTypeRestDay, ResolveDayType(true, true, true))
	assert.Equal(t, attendance.DayTypePartialOffDay, ResolveDayType(false, true, true))
	assert.Equal(t, attendance.DayTypePublicHoliday, ResolveDayType(false, false, true))
	assert.Equal(t, attendance.DayTypeOrdinary, ResolveDayType(false, false, false))
}

// ===== HOUR BUCKETS =====

func TestClassifyDay_RestDayAllDoubleRate(t *testing.T) {
	t.Parallel()

	// 09:00-19:00 is ten hours; the fixed hour of break leaves nine, all at 2.0x
	got := ClassifyDay(clockedDay(9*60, 19*60), dayShift(), attendance.DayTypeRestDay)

	assert.True(t, got.NormalHours.IsZero())
	assert.True(t, got.OT15Hours.IsZero())
	assert.True(t, got.OT20Hours.Equal(dec("9")), "OT20 got %s", got.OT20Hours)
	assert.True(t, got.PHHours.IsZero())
}

func TestClassifyDay_PublicHolidaySplit(t *testing.T) {
	t.Parallel()

	// Ten hours on a holiday: eight in the holiday bucket, the rest at 2.0x
	got := ClassifyDay(clockedDay(8*60, 18*60), dayShift(), attendance.DayTypePublicHoliday)

	assert.True(t, got.PHHours.Equal(dec("8")), "PH got %s", got.PHHours)
	assert.True(t, got.OT20Hours.Equal(dec("2")), "OT20 got %s", got.OT20Hours)
	assert.True(t, got.NormalHours.IsZero())
}

func TestClassifyDay_PartialOffDaySplit(t *testing.T) {
	t.Parallel()

	// Seven hours on a partial off day: four normal, three at 1.5x
	got := ClassifyDay(clockedDay(9*60, 16*60), dayShift(), attendance.DayTypePartialOffDay)

	assert.True(t, got.NormalHours.Equal(dec("4")), "normal got %s", got.NormalHours)
	assert.True(t, got.OT15Hours.Equal(dec("3")), "OT15 got %s", got.OT15Hours)
}

func TestClassifyDay_OrdinaryMealBreakUnpaid(t *testing.T) {
	t.Parallel()

	// Full shift 09:00-18:00 minus the meal hour is exactly the contractual day
	got := ClassifyDay(clockedDay(9*60, 18*60), dayShift(), attendance.DayTypeOrdinary)

	assert.True(t, got.NormalHours.Equal(dec("8")), "normal got %s", got.NormalHours)
	assert.True(t, got.OT15Hours.IsZero())
}

func TestClassifyDay_OrdinaryOvertime(t *testing.T) {
	t.Parallel()

	// 09:00-20:00 minus the meal hour is ten paid hours: eight normal, two OT
	got := ClassifyDay(clockedDay(9*60, 20*60), dayShift(), attendance.DayTypeOrdinary)

	assert.True(t, got.NormalHours.Equal(dec("8")), "normal got %s", got.NormalHours)
	assert.True(t, got.OT15Hours.Equal(dec("2")), "OT15 got %s", got.OT15Hours)
}

func TestClassifyDay_OvertimeGatedByOTStart(t *testing.T) {
	t.Parallel()

	// Overtime only counts past the 18:30 boundary; the gated portion stays normal
	shift := dayShift()
	shift.OTStartMinutes = 18*60 + 30

	got := ClassifyDay(clockedDay(9*60, 19*60), shift, attendance.DayTypeOrdinary)

	assert.True(t, got.NormalHours.Equal(dec("8.5")), "normal got %s", got.NormalHours)
	assert.True(t, got.OT15Hours.Equal(dec("0.5")), "OT15 got %s", got.OT15Hours)
}

func TestClassifyDay_CrossMidnightShift(t *testing.T) {
	t.Parallel()

	// 22:00 in, 06:00 out: the clock-out lands on the next day
	shift := attendance.ShiftConfig{
		StartMinutes:          22 * 60,
		EndMinutes:            6 * 60,
		LatePenaltyBlockMins:  15,
		EarlyPenaltyBlockMins: 15,
		ContractualDailyHours: dec("8"),
		PerformanceMultiplier: dec("1"),
	}
	got := ClassifyDay(clockedDay(22*60, 6*60), shift, attendance.DayTypeOrdinary)

	assert.True(t, got.NormalHours.Equal(dec("8")), "normal got %s", got.NormalHours)
	assert.Equal(t, 0, got.EarlyOutMinutes)
}

func TestClassifyDay_MorningEqualClocksCollapseToZero(t *testing.T) {
	t.Parallel()

	// An out equal to the in before evening is treated as no work, not 24h
	got := ClassifyDay(clockedDay(9*60, 9*60), dayShift(), attendance.DayTypeOrdinary)
	assert.True(t, got.NormalHours.IsZero())
	assert.True(t, got.OT15Hours.IsZero())
}

func TestClassifyDay_BucketsSumToPaidTime(t *testing.T) {
	t.Parallel()

	shift := dayShift()
	dayTypes := []attendance.DayType{
		attendance.DayTypeOrdinary,
		attendance.DayTypeRestDay,
		attendance.DayTypePublicHoliday,
		attendance.DayTypePartialOffDay,
	}

	for _, dt := range dayTypes {
		got := ClassifyDay(clockedDay(9*60, 20*60), shift, dt)
		sum := got.NormalHours.Add(got.OT15Hours).Add(got.OT20Hours).Add(got.PHHours)
		require.True(t, sum.IsPositive(), "day type %s produced no paid hours", dt)

		// Worked 11h; every day type deducts at most one hour of break
		require.True(t, sum.GreaterThanOrEqual(dec("10")), "day type %s paid %s", dt, sum)
		require.True(t, sum.LessThanOrEqual(dec("11")), "day type %s paid %s", dt, sum)
	}
}

// ===== PENALTIES =====

func TestPenaltyMinutes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		raw   int
		grace int
		block int
		want  int
	}{
		{"within grace", 10, 15, 15, 0},
		{"at grace boundary", 15, 15, 15, 0},
		{"one past grace rounds up two blocks", 16, 15, 15, 30},
		{"zero grace costs one block minimum", 1, 0, 15, 15},
		{"exact block multiple", 30, 0, 15, 30},
		{"non-positive raw", 0, 0, 15, 0},
		{"zero block passes raw through", 20, 0, 0, 20},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, penaltyMinutes(c.raw, c.grace, c.block))
		})
	}
}

func TestClassifyDay_LateAndEarlyOutPenalties(t *testing.T) {
	t.Parallel()

	shift := dayShift()
	shift.LateGraceMinutes = 15

	// Arrived 09:16 with 15 grace: 16 raw minutes round to two blocks
	got := ClassifyDay(clockedDay(9*60+16, 18*60), shift, attendance.DayTypeOrdinary)
	assert.Equal(t, 30, got.LateMinutes)
	assert.Equal(t, 0, got.EarlyOutMinutes)

	// Left 17:00 with no grace: 60 raw minutes, exact block multiple
	got = ClassifyDay(clockedDay(9*60, 17*60), shift, attendance.DayTypeOrdinary)
	assert.Equal(t, 0, got.LateMinutes)
	assert.Equal(t, 60, got.EarlyOutMinutes)
}
