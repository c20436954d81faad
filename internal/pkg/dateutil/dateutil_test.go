package dateutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeAt(t *testing.T) {
	cases := []struct {
		dob  time.Time
		ref  time.Time
		want int
	}{
		{date(1995, time.January, 15), date(2025, time.June, 30), 30},
		{date(1995, time.January, 15), date(2025, time.January, 14), 29},
		{date(1995, time.January, 15), date(2025, time.January, 15), 30},
		{date(2030, time.January, 1), date(2025, time.June, 30), 0},
	}
	for _, c := range cases {
		got := AgeAt(c.dob, c.ref)
		if got != c.want {
			t.Errorf("AgeAt(%v, %v) = %d, want %d", c.dob, c.ref, got, c.want)
		}
	}
}

func TestMonthsBetween(t *testing.T) {
	cases := []struct {
		from time.Time
		to   time.Time
		want int
	}{
		{date(2025, time.January, 1), date(2025, time.April, 1), 3},
		{date(2025, time.January, 15), date(2025, time.April, 14), 2},
		{date(2025, time.January, 15), date(2025, time.April, 15), 3},
		{date(2024, time.January, 1), date(2025, time.June, 30), 17},
		{date(2025, time.June, 1), date(2025, time.January, 1), 0},
	}
	for _, c := range cases {
		got := MonthsBetween(c.from, c.to)
		if got != c.want {
			t.Errorf("MonthsBetween(%v, %v) = %d, want %d", c.from, c.to, got, c.want)
		}
	}
}

func TestYearsBetween(t *testing.T) {
	if got := YearsBetween(date(2020, time.February, 1), date(2026, time.August, 15)); got != 6 {
		t.Errorf("YearsBetween = %d, want 6", got)
	}
	if got := YearsBetween(date(2025, time.January, 1), date(2025, time.December, 31)); got != 0 {
		t.Errorf("YearsBetween same year = %d, want 0", got)
	}
}

func TestCompletedMonthsInYear(t *testing.T) {
	cases := []struct {
		joined time.Time
		asOf   time.Time
		want   int
	}{
		// Joined in a prior year: counts from January 1st
		{date(2020, time.May, 1), date(2025, time.April, 1), 3},
		// Joined mid-year: counts from the join date
		{date(2025, time.March, 15), date(2025, time.June, 20), 3},
		// Joined after the as-of date
		{date(2025, time.September, 1), date(2025, time.June, 20), 0},
	}
	for _, c := range cases {
		got := CompletedMonthsInYear(c.joined, c.asOf)
		if got != c.want {
			t.Errorf("CompletedMonthsInYear(%v, %v) = %d, want %d", c.joined, c.asOf, got, c.want)
		}
	}
}

func TestPossibleMonthsInYear(t *testing.T) {
	cases := []struct {
		joined time.Time
		year   int
		want   int
	}{
		{date(2025, time.March, 10), 2025, 10},
		{date(2020, time.March, 10), 2025, 12},
		{date(2026, time.January, 1), 2025, 0},
	}
	for _, c := range cases {
		got := PossibleMonthsInYear(c.joined, c.year)
		if got != c.want {
			t.Errorf("PossibleMonthsInYear(%v, %d) = %d, want %d", c.joined, c.year, got, c.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2025, time.February, 28},
		{2025, time.June, 30},
		{2025, time.December, 31},
	}
	for _, c := range cases {
		got := DaysInMonth(c.year, c.month)
		if got != c.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}
