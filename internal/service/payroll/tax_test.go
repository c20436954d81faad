package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateTax_ResidentBrackets(t *testing.T) {
	t.Parallel()

	cases := []struct {
		income string
		want   string
	}{
		{"0", "0"},
		{"20000", "0"},
		{"30000", "200"},
		{"40000", "550"},
		{"80000", "3350"},
		{"120000", "7950"},
		{"320000", "44550"},
		{"1000000", "199150"},
		{"1100000", "223150"},
	}

	for _, c := range cases {
		got := EstimateTax(d(c.income), true)
		assert.True(t, got.AnnualTax.Equal(d(c.want)),
			"EstimateTax(%s) = %s, want %s", c.income, got.AnnualTax, c.want)
	}
}

func TestEstimateTax_ResidentMonotonic(t *testing.T) {
	t.Parallel()

	prev := decimal.Zero
	income := decimal.Zero
	step := d("10000")
	for i := 0; i <= 60; i++ {
		got := EstimateTax(income, true)
		require.True(t, got.AnnualTax.GreaterThanOrEqual(prev),
			"tax decreased at income %s: %s < %s", income, got.AnnualTax, prev)
		require.True(t, got.AnnualTax.LessThanOrEqual(income.Add(d("1"))),
			"tax exceeds income at %s", income)
		prev = got.AnnualTax
		income = income.Add(step)
	}
}

func TestEstimateTax_NonResidentFloor(t *testing.T) {
	t.Parallel()

	// Flat employment rate dominates mid incomes
	got := EstimateTax(d("100000"), false)
	assert.True(t, got.AnnualTax.Equal(d("15000")), "got %s", got.AnnualTax)

	// Low incomes still pay the flat rate, not the progressive zero
	got = EstimateTax(d("1000"), false)
	assert.True(t, got.AnnualTax.Equal(d("150")), "got %s", got.AnnualTax)

	// Very high incomes switch to the progressive amount when it is larger
	progressive := EstimateTax(d("2000000"), true).AnnualTax
	nonResident := EstimateTax(d("2000000"), false).AnnualTax
	assert.True(t, nonResident.Equal(progressive), "got %s, want %s", nonResident, progressive)
}

func TestEstimateTax_DerivedFields(t *testing.T) {
	t.Parallel()

	got := EstimateTax(d("120000"), true)
	assert.True(t, got.MonthlyTax.Equal(d("662.5")), "monthly got %s", got.MonthlyTax)
	assert.True(t, got.EffectiveRate.Equal(d("0.0663")), "effective got %s", got.EffectiveRate)

	zero := EstimateTax(decimal.Zero, true)
	assert.True(t, zero.MonthlyTax.IsZero())
	assert.True(t, zero.EffectiveRate.IsZero())
}
