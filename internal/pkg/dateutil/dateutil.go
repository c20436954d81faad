package dateutil

import "time"

// AgeAt returns the age in completed years at the reference date.
func AgeAt(dob, ref time.Time) int {
	years := ref.Year() - dob.Year()
	anniversary := time.Date(ref.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, ref.Location())
	if ref.Before(anniversary) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

// MonthsBetween returns the number of completed calendar months from one date
// to another. Returns 0 when to is before from.
func MonthsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	months := int(to.Month()) - int(from.Month())

	totalMonths := years*12 + months

	// Adjust if day hasn't passed yet
	if to.Day() < from.Day() {
		totalMonths--
	}

	if totalMonths < 0 {
		totalMonths = 0
	}

	return totalMonths
}

// YearsBetween returns the number of completed years from one date to another.
func YearsBetween(from, to time.Time) int {
	return MonthsBetween(from, to) / 12
}

// CompletedMonthsInYear returns the completed months worked within asOf's
// calendar year, counting from the join date when the employee joined that year.
func CompletedMonthsInYear(joined, asOf time.Time) int {
	start := time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, asOf.Location())
	if joined.After(start) {
		start = joined
	}
	if start.After(asOf) {
		return 0
	}
	months := MonthsBetween(start, asOf)
	if months > 12 {
		months = 12
	}
	return months
}

// PossibleMonthsInYear returns how many months of the given calendar year the
// employee can work, counting the join month itself.
func PossibleMonthsInYear(joined time.Time, year int) int {
	if joined.Year() > year {
		return 0
	}
	if joined.Year() < year {
		return 12
	}
	return 12 - int(joined.Month()) + 1
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
