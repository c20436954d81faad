package payroll

import "github.com/shopspring/decimal"

// Rate tables are versioned by calendar year and selected by the period being
// processed. They are constructed once at package load and never mutated.

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// cpfRateRow - Age-banded contribution percentages. maxAge is the inclusive
// upper bound of the band; the last row of a table is open-ended (maxAge < 0).
type cpfRateRow struct {
	maxAge      int
	employerPct decimal.Decimal
	employeePct decimal.Decimal
}

// cpfAllocRow - Age-banded sub-account allocation as a share of the total
// contribution. Medisave is never computed by its own percentage; it absorbs
// the remainder so the three accounts always sum to the total.
type cpfAllocRow struct {
	maxAge      int
	ordinaryPct decimal.Decimal
	specialPct  decimal.Decimal
}

type cpfYearTable struct {
	monthlyOWCeiling decimal.Decimal
	annualCeiling    decimal.Decimal
	full             []cpfRateRow // citizens, 3rd-year+ SPRs, full-rate agreements
	sprYear1         []cpfRateRow
	sprYear2         []cpfRateRow
	allocation       []cpfAllocRow
}

var cpfAllocationRows = []cpfAllocRow{
	{maxAge: 35, ordinaryPct: d("0.6217"), specialPct: d("0.1621")},
	{maxAge: 45, ordinaryPct: d("0.5677"), specialPct: d("0.1891")},
	{maxAge: 50, ordinaryPct: d("0.5136"), specialPct: d("0.2162")},
	{maxAge: 55, ordinaryPct: d("0.4055"), specialPct: d("0.3108")},
	{maxAge: 60, ordinaryPct: d("0.3694"), specialPct: d("0.3076")},
	{maxAge: 65, ordinaryPct: d("0.1490"), specialPct: d("0.4042")},
	{maxAge: -1, ordinaryPct: d("0.0607"), specialPct: d("0.3030")},
}

var cpfSPRYear1Rows = []cpfRateRow{
	{maxAge: 55, employerPct: d("0.04"), employeePct: d("0.05")},
	{maxAge: 60, employerPct: d("0.04"), employeePct: d("0.05")},
	{maxAge: 65, employerPct: d("0.035"), employeePct: d("0.05")},
	{maxAge: -1, employerPct: d("0.035"), employeePct: d("0.05")},
}

var cpfSPRYear2Rows = []cpfRateRow{
	{maxAge: 55, employerPct: d("0.09"), employeePct: d("0.15")},
	{maxAge: 60, employerPct: d("0.06"), employeePct: d("0.125")},
	{maxAge: 65, employerPct: d("0.035"), employeePct: d("0.075")},
	{maxAge: -1, employerPct: d("0.035"), employeePct: d("0.05")},
}

var cpfTables = map[int]cpfYearTable{
	2024: {
		monthlyOWCeiling: d("6800"),
		annualCeiling:    d("102000"),
		full: []cpfRateRow{
			{maxAge: 55, employerPct: d("0.17"), employeePct: d("0.20")},
			{maxAge: 60, employerPct: d("0.15"), employeePct: d("0.16")},
			{maxAge: 65, employerPct: d("0.115"), employeePct: d("0.105")},
			{maxAge: 70, employerPct: d("0.09"), employeePct: d("0.075")},
			{maxAge: -1, employerPct: d("0.075"), employeePct: d("0.05")},
		},
		sprYear1:   cpfSPRYear1Rows,
		sprYear2:   cpfSPRYear2Rows,
		allocation: cpfAllocationRows,
	},
	2025: {
		monthlyOWCeiling: d("7400"),
		annualCeiling:    d("102000"),
		full: []cpfRateRow{
			{maxAge: 55, employerPct: d("0.17"), employeePct: d("0.20")},
			{maxAge: 60, employerPct: d("0.155"), employeePct: d("0.17")},
			{maxAge: 65, employerPct: d("0.12"), employeePct: d("0.115")},
			{maxAge: 70, employerPct: d("0.09"), employeePct: d("0.075")},
			{maxAge: -1, employerPct: d("0.075"), employeePct: d("0.05")},
		},
		sprYear1:   cpfSPRYear1Rows,
		sprYear2:   cpfSPRYear2Rows,
		allocation: cpfAllocationRows,
	},
}

// lookupCPFTable resolves the rate table for a year. Years beyond the defined
// range fall back to the nearest defined year rather than erroring.
func lookupCPFTable(year int) cpfYearTable {
	if table, ok := cpfTables[year]; ok {
		return table
	}

	bestBelow, bestAbove := 0, 0
	for y := range cpfTables {
		if y < year && y > bestBelow {
			bestBelow = y
		}
		if y > year && (bestAbove == 0 || y < bestAbove) {
			bestAbove = y
		}
	}
	if bestBelow != 0 {
		return cpfTables[bestBelow]
	}
	return cpfTables[bestAbove]
}

// lookupRateRow finds the age band containing age. Ages past the last bounded
// band resolve to the open-ended row.
func lookupRateRow(rows []cpfRateRow, age int) cpfRateRow {
	for _, row := range rows {
		if row.maxAge < 0 || age <= row.maxAge {
			return row
		}
	}
	return rows[len(rows)-1]
}

func lookupAllocRow(rows []cpfAllocRow, age int) cpfAllocRow {
	for _, row := range rows {
		if row.maxAge < 0 || age <= row.maxAge {
			return row
		}
	}
	return rows[len(rows)-1]
}
