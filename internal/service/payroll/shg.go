package payroll

import (
	"strings"

	"github.com/samat2k5/hrms-singapore-sub000/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// shgTier - One wage bracket of a community-fund table. The first tier whose
// upper bound covers the wages applies; a negative upper bound marks the
// open-ended last tier. Amounts are flat values, not percentages.
type shgTier struct {
	upTo   decimal.Decimal
	amount decimal.Decimal
}

type shgFundTable struct {
	fund  string
	tiers []shgTier
}

var shgFunds = map[string]shgFundTable{
	"chinese": {
		fund: "CDAC",
		tiers: []shgTier{
			{upTo: d("2000"), amount: d("0.50")},
			{upTo: d("3500"), amount: d("1.00")},
			{upTo: d("5000"), amount: d("1.50")},
			{upTo: d("7500"), amount: d("2.00")},
			{upTo: d("-1"), amount: d("3.00")},
		},
	},
	"indian": {
		fund: "SINDA",
		tiers: []shgTier{
			{upTo: d("1000"), amount: d("1.00")},
			{upTo: d("1500"), amount: d("3.00")},
			{upTo: d("2500"), amount: d("5.00")},
			{upTo: d("4500"), amount: d("7.00")},
			{upTo: d("7500"), amount: d("9.00")},
			{upTo: d("10000"), amount: d("12.00")},
			{upTo: d("15000"), amount: d("18.00")},
			{upTo: d("-1"), amount: d("30.00")},
		},
	},
	"malay": {
		fund: "MBMF",
		tiers: []shgTier{
			{upTo: d("1000"), amount: d("3.00")},
			{upTo: d("2000"), amount: d("4.50")},
			{upTo: d("3000"), amount: d("6.50")},
			{upTo: d("4000"), amount: d("15.00")},
			{upTo: d("6000"), amount: d("19.50")},
			{upTo: d("8000"), amount: d("24.00")},
			{upTo: d("10000"), amount: d("26.00")},
			{upTo: d("-1"), amount: d("26.00")},
		},
	},
	"eurasian": {
		fund: "ECF",
		tiers: []shgTier{
			{upTo: d("1000"), amount: d("2.00")},
			{upTo: d("1500"), amount: d("4.00")},
			{upTo: d("2500"), amount: d("6.00")},
			{upTo: d("4000"), amount: d("9.00")},
			{upTo: d("7000"), amount: d("12.00")},
			{upTo: d("10000"), amount: d("16.00")},
			{upTo: d("-1"), amount: d("20.00")},
		},
	},
}

// ComputeSHG resolves the community-fund deduction for a race code and wage
// amount. Foreigners and unmapped race codes are not liable.
func ComputeSHG(race string, wages decimal.Decimal, residency payroll.ResidencyStatus) payroll.SHGComputation {
	notApplicable := payroll.SHGComputation{Fund: "N/A", Amount: decimal.Zero, Applicable: false}

	if residency == payroll.ResidencyForeigner {
		return notApplicable
	}

	table, ok := shgFunds[strings.ToLower(strings.TrimSpace(race))]
	if !ok {
		return notApplicable
	}

	for _, tier := range table.tiers {
		if tier.upTo.IsNegative() || wages.LessThanOrEqual(tier.upTo) {
			return payroll.SHGComputation{Fund: table.fund, Amount: tier.amount, Applicable: true}
		}
	}
	last := table.tiers[len(table.tiers)-1]
	return payroll.SHGComputation{Fund: table.fund, Amount: last.amount, Applicable: true}
}
