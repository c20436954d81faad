package attendance

import (
	"errors"
	"strconv"

	"github.com/samat2k5/hrms-singapore-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ShiftConfigRequest enumerates every recognized shift option. Zero-valued
// optional fields take the documented defaults in ToEntity.
type ShiftConfigRequest struct {
	Name                  string           `json:"name,omitempty"`
	StartTime             string           `json:"start_time"`
	EndTime               string           `json:"end_time"`
	MealBreakStart        string           `json:"meal_break_start,omitempty"`
	MealBreakEnd          string           `json:"meal_break_end,omitempty"`
	OTStartTime           string           `json:"ot_start_time,omitempty"`
	LateGraceMinutes      *int             `json:"late_grace_minutes,omitempty"`
	EarlyOutGraceMinutes  *int             `json:"early_out_grace_minutes,omitempty"`
	LatePenaltyBlockMins  *int             `json:"late_penalty_block_minutes,omitempty"`
	EarlyPenaltyBlockMins *int             `json:"early_out_penalty_block_minutes,omitempty"`
	ContractualDailyHours *decimal.Decimal `json:"contractual_daily_hours,omitempty"`
	CompulsoryOTHours     *decimal.Decimal `json:"compulsory_ot_hours,omitempty"`
	PerformanceMultiplier *decimal.Decimal `json:"performance_multiplier,omitempty"`
}

const (
	defaultPenaltyBlockMins  = 15
	defaultDailyHours        = 8
	defaultPerformanceFactor = 1
)

func (r *ShiftConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidClockTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM"})
	}
	if _, ok := validator.IsValidClockTime(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM"})
	}
	if r.MealBreakStart != "" {
		if _, ok := validator.IsValidClockTime(r.MealBreakStart); !ok {
			errs = append(errs, validator.ValidationError{Field: "meal_break_start", Message: "must be HH:MM"})
		}
	}
	if r.MealBreakEnd != "" {
		if _, ok := validator.IsValidClockTime(r.MealBreakEnd); !ok {
			errs = append(errs, validator.ValidationError{Field: "meal_break_end", Message: "must be HH:MM"})
		}
	}
	if r.OTStartTime != "" {
		if _, ok := validator.IsValidClockTime(r.OTStartTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "ot_start_time", Message: "must be HH:MM"})
		}
	}
	if r.LateGraceMinutes != nil && *r.LateGraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_grace_minutes", Message: "must be non-negative"})
	}
	if r.EarlyOutGraceMinutes != nil && *r.EarlyOutGraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "early_out_grace_minutes", Message: "must be non-negative"})
	}
	if r.LatePenaltyBlockMins != nil && *r.LatePenaltyBlockMins <= 0 {
		errs = append(errs, validator.ValidationError{Field: "late_penalty_block_minutes", Message: "must be positive"})
	}
	if r.EarlyPenaltyBlockMins != nil && *r.EarlyPenaltyBlockMins <= 0 {
		errs = append(errs, validator.ValidationError{Field: "early_out_penalty_block_minutes", Message: "must be positive"})
	}
	if r.ContractualDailyHours != nil && !r.ContractualDailyHours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "contractual_daily_hours", Message: "must be positive"})
	}
	if r.PerformanceMultiplier != nil && r.PerformanceMultiplier.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "performance_multiplier", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity resolves the request into a ShiftConfig, applying defaults for
// every omitted option. Must be called after Validate.
func (r *ShiftConfigRequest) ToEntity() ShiftConfig {
	cfg := ShiftConfig{
		Name:                  r.Name,
		StartMinutes:          clockToMinutes(r.StartTime),
		EndMinutes:            clockToMinutes(r.EndTime),
		LatePenaltyBlockMins:  defaultPenaltyBlockMins,
		EarlyPenaltyBlockMins: defaultPenaltyBlockMins,
		ContractualDailyHours: decimal.NewFromInt(defaultDailyHours),
		CompulsoryOTHours:     decimal.Zero,
		PerformanceMultiplier: decimal.NewFromInt(defaultPerformanceFactor),
	}

	if r.MealBreakStart != "" && r.MealBreakEnd != "" {
		cfg.MealBreakStartMinutes = clockToMinutes(r.MealBreakStart)
		cfg.MealBreakEndMinutes = clockToMinutes(r.MealBreakEnd)
	}
	if r.OTStartTime != "" {
		cfg.OTStartMinutes = clockToMinutes(r.OTStartTime)
	}
	if r.LateGraceMinutes != nil {
		cfg.LateGraceMinutes = *r.LateGraceMinutes
	}
	if r.EarlyOutGraceMinutes != nil {
		cfg.EarlyOutGraceMinutes = *r.EarlyOutGraceMinutes
	}
	if r.LatePenaltyBlockMins != nil {
		cfg.LatePenaltyBlockMins = *r.LatePenaltyBlockMins
	}
	if r.EarlyPenaltyBlockMins != nil {
		cfg.EarlyPenaltyBlockMins = *r.EarlyPenaltyBlockMins
	}
	if r.ContractualDailyHours != nil {
		cfg.ContractualDailyHours = *r.ContractualDailyHours
	}
	if r.CompulsoryOTHours != nil {
		cfg.CompulsoryOTHours = *r.CompulsoryOTHours
	}
	if r.PerformanceMultiplier != nil {
		cfg.PerformanceMultiplier = *r.PerformanceMultiplier
	}

	return cfg
}

func clockToMinutes(clock string) int {
	t, ok := validator.IsValidClockTime(clock)
	if !ok {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// ========== SINGLE-DAY CLASSIFICATION ==========

type ClassifyDayRequest struct {
	Date            string             `json:"date"`
	InTime          string             `json:"in_time"`
	OutTime         string             `json:"out_time"`
	Shift           ShiftConfigRequest `json:"shift"`
	IsPublicHoliday bool               `json:"is_public_holiday"`
	IsRestDay       bool               `json:"is_rest_day"`
	IsPartialOffDay bool               `json:"is_partial_off_day"`
}

func (r *ClassifyDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidClockTime(r.InTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "in_time", Message: "must be HH:MM"})
	}
	if _, ok := validator.IsValidClockTime(r.OutTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "out_time", Message: "must be HH:MM"})
	}

	if shiftErr := r.Shift.Validate(); shiftErr != nil {
		var shiftErrs validator.ValidationErrors
		if errors.As(shiftErr, &shiftErrs) {
			for _, e := range shiftErrs {
				errs = append(errs, validator.ValidationError{Field: "shift." + e.Field, Message: e.Message})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DayClassificationResponse struct {
	Date            string          `json:"date"`
	DayType         string          `json:"day_type"`
	NormalHours     decimal.Decimal `json:"normal_hours"`
	OT15Hours       decimal.Decimal `json:"ot_1_5_hours"`
	OT20Hours       decimal.Decimal `json:"ot_2_0_hours"`
	PHHours         decimal.Decimal `json:"ph_hours"`
	LateMinutes     int             `json:"late_minutes"`
	EarlyOutMinutes int             `json:"early_out_minutes"`
}

// ========== MONTHLY AGGREGATE ==========

type DayRecordRequest struct {
	Date                   string           `json:"date"`
	InTime                 string           `json:"in_time"`
	OutTime                string           `json:"out_time"`
	PerformanceCreditHours *decimal.Decimal `json:"performance_credit_hours,omitempty"`
}

type ClassifyMonthRequest struct {
	Year           int                `json:"year"`
	Month          int                `json:"month"`
	Shift          ShiftConfigRequest `json:"shift"`
	RestDayOfWeek  int                `json:"rest_day_of_week"` // 0=Sunday .. 6=Saturday
	PublicHolidays []string           `json:"public_holidays,omitempty"`
	PartialOffDays []string           `json:"partial_off_days,omitempty"`
	Days           []DayRecordRequest `json:"days"`
}

func (r *ClassifyMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.RestDayOfWeek < 0 || r.RestDayOfWeek > 6 {
		errs = append(errs, validator.ValidationError{Field: "rest_day_of_week", Message: "must be between 0 (Sunday) and 6 (Saturday)"})
	}
	for _, d := range r.PublicHolidays {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{Field: "public_holidays", Message: "entries must be YYYY-MM-DD"})
			break
		}
	}
	for _, d := range r.PartialOffDays {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{Field: "partial_off_days", Message: "entries must be YYYY-MM-DD"})
			break
		}
	}
	for i, day := range r.Days {
		if _, ok := validator.IsValidDate(day.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "days", Message: "record " + strconv.Itoa(i) + ": date must be YYYY-MM-DD"})
			continue
		}
		if _, ok := validator.IsValidClockTime(day.InTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "days", Message: "record " + strconv.Itoa(i) + ": in_time must be HH:MM"})
		}
		if _, ok := validator.IsValidClockTime(day.OutTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "days", Message: "record " + strconv.Itoa(i) + ": out_time must be HH:MM"})
		}
	}

	if shiftErr := r.Shift.Validate(); shiftErr != nil {
		var shiftErrs validator.ValidationErrors
		if errors.As(shiftErr, &shiftErrs) {
			for _, e := range shiftErrs {
				errs = append(errs, validator.ValidationError{Field: "shift." + e.Field, Message: e.Message})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlySummaryResponse struct {
	Year                   int                         `json:"year"`
	Month                  int                         `json:"month"`
	DaysWorked             int                         `json:"days_worked"`
	NormalHours            decimal.Decimal             `json:"normal_hours"`
	OT15Hours              decimal.Decimal             `json:"ot_1_5_hours"`
	OT20Hours              decimal.Decimal             `json:"ot_2_0_hours"`
	PHHours                decimal.Decimal             `json:"ph_hours"`
	TotalLateMinutes       int                         `json:"total_late_minutes"`
	TotalEarlyOutMinutes   int                         `json:"total_early_out_minutes"`
	PerformanceCreditHours decimal.Decimal             `json:"performance_credit_hours"`
	Days                   []DayClassificationResponse `json:"days"`
}
