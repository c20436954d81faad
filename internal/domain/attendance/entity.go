package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayType classifies a worked calendar date. Exactly one applies per date.
type DayType string

const (
	DayTypeOrdinary      DayType = "ordinary"
	DayTypeRestDay       DayType = "rest_day"
	DayTypePublicHoliday DayType = "public_holiday"
	DayTypePartialOffDay DayType = "partial_off_day"
)

// ShiftConfig - Per site/shift attendance rules. Configured by administrators,
// read-only to the engine. Clock fields are minutes from midnight.
type ShiftConfig struct {
	Name                  string
	StartMinutes          int
	EndMinutes            int
	MealBreakStartMinutes int
	MealBreakEndMinutes   int
	OTStartMinutes        int
	LateGraceMinutes      int
	EarlyOutGraceMinutes  int
	LatePenaltyBlockMins  int
	EarlyPenaltyBlockMins int
	ContractualDailyHours decimal.Decimal
	CompulsoryOTHours     decimal.Decimal
	PerformanceMultiplier decimal.Decimal
}

// DailyAttendance - One clock-in/out pair per employee per calendar date,
// produced by attendance ingestion. The classifier derives the hour buckets
// and penalty minutes and attaches them to the record.
type DailyAttendance struct {
	Date                   time.Time
	InMinutes              int
	OutMinutes             int
	PerformanceCreditHours decimal.Decimal

	// Derived by the classifier. The four buckets are mutually exclusive and
	// sum to worked duration minus unpaid break.
	DayType         DayType
	NormalHours     decimal.Decimal
	OT15Hours       decimal.Decimal
	OT20Hours       decimal.Decimal
	PHHours         decimal.Decimal
	LateMinutes     int
	EarlyOutMinutes int
}

// MonthlySummary - Aggregate of a month of classified attendance, consumed by
// the payroll orchestrator.
type MonthlySummary struct {
	Year                   int
	Month                  time.Month
	DaysWorked             int
	NormalHours            decimal.Decimal
	OT15Hours              decimal.Decimal
	OT20Hours              decimal.Decimal
	PHHours                decimal.Decimal
	TotalLateMinutes       int
	TotalEarlyOutMinutes   int
	PerformanceCreditHours decimal.Decimal
	Days                   []DailyAttendance
}
