package attendance

import (
	"github.com/samat2k5/hrms-singapore-sub000/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

const (
	minutesPerDay       = 24 * 60
	lateEveningBoundary = 18 * 60
	restDayBreakMins    = 60
	partialOffNormalCap = 4 * 60
	publicHolidayCap    = 8 * 60
)

var sixty = decimal.NewFromInt(60)

// ResolveDayType decides the single day type for a date. The checks are
// ordered by rule priority: a rest day outranks every other designation.
func ResolveDayType(isRestDay, isPartialOffDay, isPublicHoliday bool) attendance.DayType {
	switch {
	case isRestDay:
		return attendance.DayTypeRestDay
	case isPartialOffDay:
		return attendance.DayTypePartialOffDay
	case isPublicHoliday:
		return attendance.DayTypePublicHoliday
	default:
		return attendance.DayTypeOrdinary
	}
}

func minutesToHours(mins int) decimal.Decimal {
	return decimal.NewFromInt(int64(mins)).Div(sixty)
}

// mealBreakOverlap returns the unpaid minutes of the shift's meal window that
// fall inside the worked interval.
func mealBreakOverlap(inMins, outMins int, shift attendance.ShiftConfig) int {
	if shift.MealBreakEndMinutes <= shift.MealBreakStartMinutes {
		return 0
	}
	start := shift.MealBreakStartMinutes
	end := shift.MealBreakEndMinutes
	if start < inMins {
		start = inMins
	}
	if end > outMins {
		end = outMins
	}
	if end <= start {
		return 0
	}
	return end - start
}

// penaltyMinutes rounds a raw lateness or early departure up to the next
// multiple of the penalty block. A grace of zero means any nonzero deviation
// costs at least one full block.
func penaltyMinutes(rawMins, graceMins, blockMins int) int {
	if rawMins <= 0 || rawMins <= graceMins {
		return 0
	}
	if blockMins <= 0 {
		return rawMins
	}
	blocks := (rawMins + blockMins - 1) / blockMins
	return blocks * blockMins
}

// ClassifyDay buckets a single clock-in/out pair into the normal, 1.5x, 2.0x
// and public-holiday hour categories for its day type, and computes the
// late-arrival and early-departure penalty minutes.
func ClassifyDay(rec attendance.DailyAttendance, shift attendance.ShiftConfig, dayType attendance.DayType) attendance.DailyAttendance {
	in := rec.InMinutes
	out := rec.OutMinutes

	// A clock-out at or before the clock-in late in the evening means the
	// shift ran past midnight.
	if out <= in {
		if in >= lateEveningBoundary {
			out += minutesPerDay
		} else {
			out = in
		}
	}

	workedMins := out - in

	rec.DayType = dayType
	rec.NormalHours = decimal.Zero
	rec.OT15Hours = decimal.Zero
	rec.OT20Hours = decimal.Zero
	rec.PHHours = decimal.Zero

	switch dayType {
	case attendance.DayTypeRestDay:
		paid := workedMins - restDayBreakMins
		if paid < 0 {
			paid = 0
		}
		rec.OT20Hours = minutesToHours(paid)

	case attendance.DayTypePartialOffDay:
		normal := workedMins
		if normal > partialOffNormalCap {
			normal = partialOffNormalCap
		}
		rec.NormalHours = minutesToHours(normal)
		rec.OT15Hours = minutesToHours(workedMins - normal)

	case attendance.DayTypePublicHoliday:
		ph := workedMins
		if ph > publicHolidayCap {
			ph = publicHolidayCap
		}
		rec.PHHours = minutesToHours(ph)
		rec.OT20Hours = minutesToHours(workedMins - ph)

	case attendance.DayTypeOrdinary:
		paid := workedMins - mealBreakOverlap(in, out, shift)
		if paid < 0 {
			paid = 0
		}
		threshold := int(shift.ContractualDailyHours.Mul(sixty).IntPart())
		if threshold <= 0 {
			threshold = publicHolidayCap
		}
		normal := paid
		if normal > threshold {
			normal = threshold
		}
		ot := paid - normal
		if shift.OTStartMinutes > 0 {
			beyondBoundary := out - shift.OTStartMinutes
			if beyondBoundary < 0 {
				beyondBoundary = 0
			}
			if ot > beyondBoundary {
				ot = beyondBoundary
			}
		}
		rec.NormalHours = minutesToHours(paid - ot)
		rec.OT15Hours = minutesToHours(ot)
	}

	rec.LateMinutes = penaltyMinutes(in-shift.StartMinutes, shift.LateGraceMinutes, shift.LatePenaltyBlockMins)

	shiftEnd := shift.EndMinutes
	if shiftEnd < shift.StartMinutes {
		shiftEnd += minutesPerDay
	}
	rec.EarlyOutMinutes = penaltyMinutes(shiftEnd-out, shift.EarlyOutGraceMinutes, shift.EarlyPenaltyBlockMins)

	return rec
}
